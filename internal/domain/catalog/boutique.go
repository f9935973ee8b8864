package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Boutique field limits
const (
	BoutiqueNameMaxLength        = 150
	BoutiquePhoneMaxLength       = 50
	BoutiqueAddressMaxLength     = 255
	BoutiqueDescriptionMaxLength = 500
)

// DefaultCommissionRate is the platform cut, in percent, applied to new boutiques.
var DefaultCommissionRate = decimal.NewFromInt(10)

// Boutique is a partner shop owning products.
type Boutique struct {
	shared.BaseEntity
	Name           string          `gorm:"type:varchar(150);not null"`
	Phone          string          `gorm:"type:varchar(50);not null"`
	Address        string          `gorm:"type:varchar(255);not null"`
	Description    string          `gorm:"type:varchar(500)"`
	Banner         string          `gorm:"type:text"`
	IsVerified     bool            `gorm:"not null;index"`
	CommissionRate decimal.Decimal `gorm:"type:decimal(5,2);not null"`
}

// TableName returns the table name for GORM
func (Boutique) TableName() string {
	return "boutiques"
}

// NewBoutique creates an unverified boutique with the default commission rate.
func NewBoutique(name, phone, address string) (*Boutique, error) {
	b := &Boutique{
		BaseEntity:     shared.NewBaseEntity(),
		CommissionRate: DefaultCommissionRate,
	}
	if err := b.SetContact(name, phone, address); err != nil {
		return nil, err
	}
	return b, nil
}

// SetContact replaces the identity fields of the boutique.
func (b *Boutique) SetContact(name, phone, address string) error {
	if err := validateBoutiqueName(name); err != nil {
		return err
	}
	if strings.TrimSpace(phone) == "" {
		return invalidField("phone", "Le numéro de téléphone est obligatoire")
	}
	if utf8.RuneCountInString(phone) > BoutiquePhoneMaxLength {
		return invalidField("phone", "Le numéro de téléphone ne peut pas dépasser 50 caractères")
	}
	if strings.TrimSpace(address) == "" {
		return invalidField("address", "L'adresse est obligatoire")
	}
	if utf8.RuneCountInString(address) > BoutiqueAddressMaxLength {
		return invalidField("address", "L'adresse ne peut pas dépasser 255 caractères")
	}
	b.Name = name
	b.Phone = phone
	b.Address = address
	b.Touch()
	return nil
}

// SetDescription sets the optional description.
func (b *Boutique) SetDescription(description string) error {
	if utf8.RuneCountInString(description) > BoutiqueDescriptionMaxLength {
		return invalidField("description", "La description ne peut pas dépasser 500 caractères")
	}
	b.Description = description
	b.Touch()
	return nil
}

// SetBanner sets the banner image URL.
func (b *Boutique) SetBanner(url string) {
	b.Banner = url
	b.Touch()
}

// SetCommissionRate sets the commission percentage. Orders already placed keep the
// commission computed at their creation.
func (b *Boutique) SetCommissionRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
		return invalidField("commissionRate", "Le taux de commission doit être entre 0 et 100")
	}
	b.CommissionRate = rate
	b.Touch()
	return nil
}

// Verify marks the boutique as verified by an admin.
func (b *Boutique) Verify() {
	b.IsVerified = true
	b.Touch()
}

// Unverify revokes the verification flag.
func (b *Boutique) Unverify() {
	b.IsVerified = false
	b.Touch()
}

func validateBoutiqueName(name string) error {
	if strings.TrimSpace(name) == "" {
		return invalidField("name", "Le nom de la boutique est obligatoire")
	}
	if utf8.RuneCountInString(name) > BoutiqueNameMaxLength {
		return invalidField("name", "Le nom ne peut pas dépasser 150 caractères")
	}
	return nil
}

func invalidField(field, message string) error {
	return shared.NewValidationError(message, shared.FieldError{Field: field, Message: message})
}
