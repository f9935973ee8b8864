package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product field limits
const (
	ProductNameMaxLength        = 200
	ProductDescriptionMaxLength = 1000
)

// Product is an item sold by exactly one boutique.
type Product struct {
	shared.BaseEntity
	Name        string          `gorm:"type:varchar(200);not null"`
	Price       decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Description string          `gorm:"type:varchar(1000)"`
	Images      []string        `gorm:"type:jsonb;serializer:json"`
	BoutiqueID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Boutique    *Boutique       `gorm:"foreignKey:BoutiqueID"`
	Stock       int             `gorm:"not null"`
	IsActive    bool            `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates an active product with no stock and no images.
func NewProduct(boutiqueID uuid.UUID, name string, price decimal.Decimal) (*Product, error) {
	if boutiqueID == uuid.Nil {
		return nil, invalidField("boutique", "La boutique est obligatoire")
	}
	p := &Product{
		BaseEntity: shared.NewBaseEntity(),
		BoutiqueID: boutiqueID,
		Images:     []string{},
		IsActive:   true,
	}
	if err := p.Rename(name); err != nil {
		return nil, err
	}
	if err := p.SetPrice(price); err != nil {
		return nil, err
	}
	return p, nil
}

// Rename changes the product name.
func (p *Product) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return invalidField("name", "Le nom du produit est obligatoire")
	}
	if utf8.RuneCountInString(name) > ProductNameMaxLength {
		return invalidField("name", "Le nom ne peut pas dépasser 200 caractères")
	}
	p.Name = name
	p.Touch()
	return nil
}

// SetPrice sets the unit price in FCFA.
func (p *Product) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return invalidField("price", "Le prix doit être un nombre positif")
	}
	p.Price = price
	p.Touch()
	return nil
}

// SetDescription sets the optional description.
func (p *Product) SetDescription(description string) error {
	if utf8.RuneCountInString(description) > ProductDescriptionMaxLength {
		return invalidField("description", "La description ne peut pas dépasser 1000 caractères")
	}
	p.Description = description
	p.Touch()
	return nil
}

// SetImages replaces the ordered list of image URLs.
func (p *Product) SetImages(images []string) {
	p.Images = append([]string{}, images...)
	p.Touch()
}

// SetStock sets the available quantity.
func (p *Product) SetStock(stock int) error {
	if stock < 0 {
		return invalidField("stock", "Le stock doit être un entier positif")
	}
	p.Stock = stock
	p.Touch()
	return nil
}

// MoveTo reassigns the product to another boutique.
func (p *Product) MoveTo(boutiqueID uuid.UUID) error {
	if boutiqueID == uuid.Nil {
		return invalidField("boutique", "La boutique est obligatoire")
	}
	p.BoutiqueID = boutiqueID
	p.Boutique = nil
	p.Touch()
	return nil
}

// Activate makes the product orderable again.
func (p *Product) Activate() {
	p.IsActive = true
	p.Touch()
}

// Deactivate hides the product from default listings and blocks new orders.
func (p *Product) Deactivate() {
	p.IsActive = false
	p.Touch()
}

// HasStock reports whether quantity units can be ordered.
func (p *Product) HasStock(quantity int) bool {
	return p.Stock >= quantity
}

// CommissionRate returns the owning boutique's rate, or zero when the boutique is not loaded.
func (p *Product) CommissionRate() decimal.Decimal {
	if p.Boutique == nil {
		return decimal.Zero
	}
	return p.Boutique.CommissionRate
}
