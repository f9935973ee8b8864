package persistence

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ivoirestore/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newSQLiteDB opens an in-memory database with every table migrated.
func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), GormConfig(logger.Default.LogMode(logger.Silent)))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// :memory: is per connection
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(Models()...))
	return db
}

// newMockDB returns a GORM handle on the postgres dialector backed by sqlmock.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})
	gormDB, err := gorm.Open(dialector, GormConfig(logger.Default.LogMode(logger.Silent)))
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func seedBoutique(t *testing.T, db *gorm.DB, name string, verified bool) *catalog.Boutique {
	t.Helper()
	b, err := catalog.NewBoutique(name, "+225 07 00 00 00", "Cocody, Abidjan")
	require.NoError(t, err)
	if verified {
		b.Verify()
	}
	require.NoError(t, db.Create(b).Error)
	return b
}

func seedProduct(t *testing.T, db *gorm.DB, boutique *catalog.Boutique, name string, price int64, stock int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(boutique.ID, name, decimal.NewFromInt(price))
	require.NoError(t, err)
	require.NoError(t, p.SetStock(stock))
	require.NoError(t, db.Omit("Boutique").Create(p).Error)
	return p
}
