// Package feedback holds customer reviews (avis). Reviews are anonymous and not linked
// to orders or products.
package feedback

import (
	"strings"
	"unicode/utf8"

	"github.com/ivoirestore/backend/internal/domain/shared"
)

// Review limits
const (
	NameMaxLength = 100
	TextMaxLength = 500
	MinRating     = 1
	MaxRating     = 5
)

// Avis is a customer review.
type Avis struct {
	shared.BaseEntity
	Name   string `gorm:"type:varchar(100);not null"`
	Text   string `gorm:"type:varchar(500);not null"`
	Rating int    `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Avis) TableName() string {
	return "avis"
}

// NewAvis validates and creates a review.
func NewAvis(name, text string, rating int) (*Avis, error) {
	var details []shared.FieldError
	switch {
	case strings.TrimSpace(name) == "":
		details = append(details, shared.FieldError{Field: "name", Message: "Le nom est obligatoire"})
	case utf8.RuneCountInString(name) > NameMaxLength:
		details = append(details, shared.FieldError{Field: "name", Message: "Le nom ne peut pas dépasser 100 caractères"})
	}
	switch {
	case strings.TrimSpace(text) == "":
		details = append(details, shared.FieldError{Field: "text", Message: "Le commentaire est obligatoire"})
	case utf8.RuneCountInString(text) > TextMaxLength:
		details = append(details, shared.FieldError{Field: "text", Message: "Le commentaire ne peut pas dépasser 500 caractères"})
	}
	if rating < MinRating || rating > MaxRating {
		details = append(details, shared.FieldError{Field: "rating", Message: "La note doit être entre 1 et 5"})
	}
	if len(details) > 0 {
		return nil, shared.NewValidationError("Données invalides.", details...)
	}

	return &Avis{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Text:       text,
		Rating:     rating,
	}, nil
}
