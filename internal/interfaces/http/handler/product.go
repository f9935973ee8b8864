package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	catalogapp "github.com/ivoirestore/backend/internal/application/catalog"
	"github.com/ivoirestore/backend/internal/domain/catalog"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(base BaseHandler, productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{BaseHandler: base, productService: productService}
}

// productFilter reads the listing query. Malformed ids or prices are validation errors.
func productFilter(c *gin.Context) (catalog.ProductFilter, error) {
	filter := catalog.ProductFilter{
		Search:          c.Query("search"),
		IncludeInactive: c.Query("isActive") == "false",
	}

	if raw := c.Query("boutique"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, catalogapp.ErrInvalidBoutiqueID
		}
		filter.BoutiqueID = &id
	}

	var err error
	if filter.MinPrice, err = priceQuery(c, "minPrice"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = priceQuery(c, "maxPrice"); err != nil {
		return filter, err
	}
	return filter, nil
}

func priceQuery(c *gin.Context, key string) (*decimal.Decimal, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, shared.NewValidationError("Prix invalide",
			shared.FieldError{Field: key, Message: "Le prix doit être un nombre"})
	}
	return &price, nil
}

// List handles GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	filter, err := productFilter(c)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	page, err := h.productService.List(c.Request.Context(), filter,
		ParsePage(c, shared.DefaultPageSize), canViewContact(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	List(c, page)
}

// Get handles GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id, canViewContact(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Create handles POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req.Sanitized())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, "Produit créé avec succès.", product)
}

// Update handles PUT /api/products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}
	var req catalogapp.UpdateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req.Sanitized())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Produit mis à jour avec succès.", product)
}

// Delete handles DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Message(c, "Produit supprimé avec succès.", nil)
}
