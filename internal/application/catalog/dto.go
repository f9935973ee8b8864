package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/application/sanitize"
	"github.com/ivoirestore/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateBoutiqueRequest represents a request to create a boutique
type CreateBoutiqueRequest struct {
	Name           string           `json:"name" binding:"required,max=150"`
	Phone          string           `json:"phone" binding:"required,max=50"`
	Address        string           `json:"address" binding:"required,max=255"`
	Description    string           `json:"description" binding:"max=500"`
	Banner         string           `json:"banner" binding:"omitempty,url"`
	IsVerified     *bool            `json:"isVerified"`
	CommissionRate *decimal.Decimal `json:"commissionRate"`
}

// Sanitized returns a copy with every text field normalized.
func (r CreateBoutiqueRequest) Sanitized() CreateBoutiqueRequest {
	r.Name = sanitize.Text(r.Name)
	r.Phone = sanitize.Text(r.Phone)
	r.Address = sanitize.Text(r.Address)
	r.Description = sanitize.Text(r.Description)
	r.Banner = sanitize.Text(r.Banner)
	return r
}

// UpdateBoutiqueRequest represents a partial boutique update; nil fields are left as is
type UpdateBoutiqueRequest struct {
	Name           *string          `json:"name" binding:"omitempty,max=150"`
	Phone          *string          `json:"phone" binding:"omitempty,max=50"`
	Address        *string          `json:"address" binding:"omitempty,max=255"`
	Description    *string          `json:"description" binding:"omitempty,max=500"`
	Banner         *string          `json:"banner" binding:"omitempty,url"`
	IsVerified     *bool            `json:"isVerified"`
	CommissionRate *decimal.Decimal `json:"commissionRate"`
}

// Sanitized returns a copy with every present text field normalized.
func (r UpdateBoutiqueRequest) Sanitized() UpdateBoutiqueRequest {
	r.Name = sanitize.TextPtr(r.Name)
	r.Phone = sanitize.TextPtr(r.Phone)
	r.Address = sanitize.TextPtr(r.Address)
	r.Description = sanitize.TextPtr(r.Description)
	r.Banner = sanitize.TextPtr(r.Banner)
	return r
}

// CreateProductRequest represents a request to create a product. Boutique is the
// owning boutique id.
type CreateProductRequest struct {
	Name        string           `json:"name" binding:"required,max=200"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Description string           `json:"description" binding:"max=1000"`
	Images      []string         `json:"images"`
	Boutique    string           `json:"boutique" binding:"required"`
	Stock       *int             `json:"stock" binding:"omitempty,min=0"`
	IsActive    *bool            `json:"isActive"`
}

// Sanitized returns a copy with every text field normalized.
func (r CreateProductRequest) Sanitized() CreateProductRequest {
	r.Name = sanitize.Text(r.Name)
	r.Description = sanitize.Text(r.Description)
	r.Images = sanitize.Texts(r.Images)
	r.Boutique = sanitize.Text(r.Boutique)
	return r
}

// UpdateProductRequest represents a partial product update; nil fields are left as is
type UpdateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=200"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description" binding:"omitempty,max=1000"`
	Images      []string         `json:"images"`
	Boutique    *string          `json:"boutique"`
	Stock       *int             `json:"stock" binding:"omitempty,min=0"`
	IsActive    *bool            `json:"isActive"`
}

// Sanitized returns a copy with every present text field normalized.
func (r UpdateProductRequest) Sanitized() UpdateProductRequest {
	r.Name = sanitize.TextPtr(r.Name)
	r.Description = sanitize.TextPtr(r.Description)
	r.Images = sanitize.Texts(r.Images)
	r.Boutique = sanitize.TextPtr(r.Boutique)
	return r
}

// BoutiqueResponse represents a boutique in API responses. Phone is empty unless the
// caller may view contact details.
type BoutiqueResponse struct {
	ID             uuid.UUID       `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	Address        string          `json:"address"`
	Description    string          `json:"description"`
	Banner         string          `json:"banner"`
	IsVerified     bool            `json:"isVerified"`
	CommissionRate decimal.Decimal `json:"commissionRate"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ProductBoutique is the boutique summary embedded in product responses
type ProductBoutique struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone,omitempty"`
	Address     string    `json:"address"`
	Description string    `json:"description,omitempty"`
	IsVerified  bool      `json:"isVerified"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	Price       decimal.Decimal  `json:"price"`
	Description string           `json:"description"`
	Images      []string         `json:"images"`
	BoutiqueID  uuid.UUID        `json:"boutiqueId"`
	Boutique    *ProductBoutique `json:"boutique"`
	Stock       int              `json:"stock"`
	IsActive    bool             `json:"isActive"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// ToBoutiqueResponse converts a domain Boutique. showContact controls whether the
// phone number is included.
func ToBoutiqueResponse(b *catalog.Boutique, showContact bool) BoutiqueResponse {
	resp := BoutiqueResponse{
		ID:             b.ID,
		Name:           b.Name,
		Address:        b.Address,
		Description:    b.Description,
		Banner:         b.Banner,
		IsVerified:     b.IsVerified,
		CommissionRate: b.CommissionRate,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
	if showContact {
		resp.Phone = b.Phone
	}
	return resp
}

// ToProductResponse converts a domain Product, embedding its boutique when loaded.
func ToProductResponse(p *catalog.Product, showContact bool) ProductResponse {
	images := p.Images
	if images == nil {
		images = []string{}
	}
	resp := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Images:      images,
		BoutiqueID:  p.BoutiqueID,
		Stock:       p.Stock,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if b := p.Boutique; b != nil {
		resp.Boutique = &ProductBoutique{
			ID:          b.ID,
			Name:        b.Name,
			Address:     b.Address,
			Description: b.Description,
			IsVerified:  b.IsVerified,
		}
		if showContact {
			resp.Boutique.Phone = b.Phone
		}
	}
	return resp
}

func toBoutiqueResponses(boutiques []catalog.Boutique, showContact bool) []BoutiqueResponse {
	out := make([]BoutiqueResponse, len(boutiques))
	for i := range boutiques {
		out[i] = ToBoutiqueResponse(&boutiques[i], showContact)
	}
	return out
}

func toProductResponses(products []catalog.Product, showContact bool) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i := range products {
		out[i] = ToProductResponse(&products[i], showContact)
	}
	return out
}
