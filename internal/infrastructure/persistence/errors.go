package persistence

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

var (
	pgKeyDetail     = regexp.MustCompile(`Key \(([^)]+)\)`)
	sqliteUniqueMsg = regexp.MustCompile(`UNIQUE constraint failed: [\w]+\.(\w+)`)
)

// columnFields maps database columns to the field names clients send.
var columnFields = map[string]string{
	"boutique_id":       "boutique",
	"product_id":        "product",
	"customer_name":     "customerName",
	"customer_phone":    "customerPhone",
	"customer_location": "customerLocation",
	"is_active":         "isActive",
	"is_verified":       "isVerified",
	"commission_rate":   "commissionRate",
}

// translateError converts driver errors into domain errors. notFound is returned for
// gorm.ErrRecordNotFound; other unrecognized errors pass through wrapped.
func translateError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	if field, ok := uniqueViolationField(err); ok {
		return duplicateFieldError(field)
	}
	return err
}

// uniqueViolationField reports whether err is a unique-index violation and which
// column tripped it, when the driver says.
func uniqueViolationField(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		if m := pgKeyDetail.FindStringSubmatch(pgErr.Detail); m != nil {
			return m[1], true
		}
		return "", true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}
	if m := sqliteUniqueMsg.FindStringSubmatch(err.Error()); m != nil {
		return m[1], true
	}
	if strings.Contains(err.Error(), "duplicate key value") {
		return "", true
	}
	return "", false
}

func duplicateFieldError(column string) *shared.DomainError {
	if column == "" {
		return shared.ErrAlreadyExists
	}
	field := column
	if mapped, ok := columnFields[column]; ok {
		field = mapped
	}
	msg := fmt.Sprintf("La valeur du champ \"%s\" existe déjà. Veuillez utiliser une autre valeur.", field)
	return &shared.DomainError{
		Code:    shared.CodeAlreadyExists,
		Message: msg,
		Details: []shared.FieldError{{Field: field, Message: msg}},
	}
}
