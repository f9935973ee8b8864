package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/domain/catalog"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Product errors
var (
	ErrBoutiqueNotFound  = shared.NewNotFoundError("Boutique introuvable. Vérifiez l'ID de la boutique.")
	ErrInvalidBoutiqueID = shared.NewValidationError("ID de boutique invalide",
		shared.FieldError{Field: "boutique", Message: "ID de boutique invalide"})
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	boutiqueRepo catalog.BoutiqueRepository
	logger       *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	boutiqueRepo catalog.BoutiqueRepository,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		boutiqueRepo: boutiqueRepo,
		logger:       logger,
	}
}

// Create creates a new product in an existing boutique
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	req = req.Sanitized()

	boutique, err := s.loadBoutique(ctx, req.Boutique)
	if err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(boutique.ID, req.Name, *req.Price)
	if err != nil {
		return nil, err
	}
	if err := product.SetDescription(req.Description); err != nil {
		return nil, err
	}
	if len(req.Images) > 0 {
		product.SetImages(req.Images)
	}
	if req.Stock != nil {
		if err := product.SetStock(*req.Stock); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil && !*req.IsActive {
		product.Deactivate()
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}
	product.Boutique = boutique

	s.logger.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("name", product.Name),
		zap.String("boutique", boutique.Name))

	resp := ToProductResponse(product, true)
	return &resp, nil
}

// GetByID returns one product with its boutique
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID, showContact bool) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product, showContact)
	return &resp, nil
}

// List returns one page of products matching filter, newest first
func (s *ProductService) List(ctx context.Context, filter catalog.ProductFilter, page shared.Page, showContact bool) (shared.Paginated[ProductResponse], error) {
	products, total, err := s.productRepo.List(ctx, filter, page)
	if err != nil {
		return shared.Paginated[ProductResponse]{}, err
	}
	return shared.NewPaginated(toProductResponses(products, showContact), total, page), nil
}

// Update applies the fields present in req
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	req = req.Sanitized()

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Boutique != nil {
		boutique, err := s.loadBoutique(ctx, *req.Boutique)
		if err != nil {
			return nil, err
		}
		if err := product.MoveTo(boutique.ID); err != nil {
			return nil, err
		}
	}
	if req.Name != nil {
		if err := product.Rename(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Price != nil {
		if err := product.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		if err := product.SetDescription(*req.Description); err != nil {
			return nil, err
		}
	}
	if req.Images != nil {
		product.SetImages(req.Images)
	}
	if req.Stock != nil {
		if err := product.SetStock(*req.Stock); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil {
		if *req.IsActive {
			// Products of a deleted boutique stay inactive.
			if req.Boutique == nil {
				if _, err := s.loadBoutique(ctx, product.BoutiqueID.String()); err != nil {
					return nil, err
				}
			}
			product.Activate()
		} else {
			product.Deactivate()
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("Product updated", zap.String("product_id", product.ID.String()))

	return s.GetByID(ctx, product.ID, true)
}

// Delete deletes a product
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}

// loadBoutique resolves a boutique reference from a request body.
func (s *ProductService) loadBoutique(ctx context.Context, rawID string) (*catalog.Boutique, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidBoutiqueID
	}
	boutique, err := s.boutiqueRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrBoutiqueNotFound
		}
		return nil, err
	}
	return boutique, nil
}
