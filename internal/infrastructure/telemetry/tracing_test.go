package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func installRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(previous)
		_ = tp.Shutdown(context.Background())
	})
	return recorder
}

func attrMap(attrs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	m := make(map[attribute.Key]attribute.Value, len(attrs))
	for _, a := range attrs {
		m[a.Key] = a.Value
	}
	return m
}

func TestStartServiceSpan(t *testing.T) {
	recorder := installRecorder(t)

	_, span := StartServiceSpan(context.Background(), "order", "place", attribute.Int(SpanAttrQuantity, 2))
	AddEvent(span, "stock_decremented", "product.id", "p-1", "quantity", 2, "ok", true)
	RecordError(span, errors.New("boom"))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "order.place", spans[0].Name())
	assert.Equal(t, int64(2), attrMap(spans[0].Attributes())[SpanAttrQuantity].AsInt64())
	assert.Equal(t, codes.Error, spans[0].Status().Code)

	require.NotEmpty(t, spans[0].Events())
	assert.Equal(t, "stock_decremented", spans[0].Events()[0].Name)
}

func TestRecordError_NilSafe(t *testing.T) {
	assert.NotPanics(t, func() {
		RecordError(nil, errors.New("x"))
		AddEvent(nil, "x")
	})
}

type tracedRow struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func newTracingTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&tracedRow{}))
	return db
}

func TestRegisterDBTracing_Disabled(t *testing.T) {
	db := newTracingTestDB(t)
	require.NoError(t, RegisterDBTracing(db, DBTracingConfig{}, zap.NewNop()))
	assert.Nil(t, db.Callback().Create().Get("ivoire:before_create"))
}

func TestRegisterDBTracing_RecordsSpans(t *testing.T) {
	recorder := installRecorder(t)
	db := newTracingTestDB(t)

	require.NoError(t, RegisterDBTracing(db, DBTracingConfig{Enabled: true, DBName: "sqlite"}, zap.NewNop()))

	ctx, parent := otel.Tracer("test").Start(context.Background(), "request")
	require.NoError(t, db.WithContext(ctx).Create(&tracedRow{Name: "a"}).Error)
	var row tracedRow
	require.NoError(t, db.WithContext(ctx).First(&row).Error)
	parent.End()

	assert.GreaterOrEqual(t, len(recorder.Ended()), 3)
}

func TestAnnotateSlowQuery(t *testing.T) {
	recorder := installRecorder(t)
	db := newTracingTestDB(t)

	ctx, span := otel.Tracer("test").Start(context.Background(), "query")
	ctx = context.WithValue(ctx, queryStartKey{}, time.Now().Add(-time.Second))

	tx := db.Session(&gorm.Session{Context: ctx})
	tx.Statement.Table = "products"
	tx.Statement.RowsAffected = 3
	annotateSlowQuery(tx, 200*time.Millisecond)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	attrs := attrMap(spans[0].Attributes())
	assert.True(t, attrs["db.slow_query"].AsBool())
	assert.Equal(t, "products", attrs["db.sql.table"].AsString())
	assert.Equal(t, int64(3), attrs["db.rows_affected"].AsInt64())
}

func TestAnnotateSlowQuery_IgnoresRecordNotFound(t *testing.T) {
	recorder := installRecorder(t)
	db := newTracingTestDB(t)

	ctx, span := otel.Tracer("test").Start(context.Background(), "query")
	tx := db.Session(&gorm.Session{Context: ctx})
	tx.Error = gorm.ErrRecordNotFound
	annotateSlowQuery(tx, time.Second)
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)
	_, slow := attrMap(spans[0].Attributes())["db.slow_query"]
	assert.False(t, slow)
}
