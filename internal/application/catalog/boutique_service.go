package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/domain/catalog"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// BoutiqueService handles boutique-related business operations
type BoutiqueService struct {
	boutiqueRepo catalog.BoutiqueRepository
	logger       *zap.Logger
}

// NewBoutiqueService creates a new BoutiqueService
func NewBoutiqueService(boutiqueRepo catalog.BoutiqueRepository, logger *zap.Logger) *BoutiqueService {
	return &BoutiqueService{
		boutiqueRepo: boutiqueRepo,
		logger:       logger,
	}
}

// Create creates a new boutique
func (s *BoutiqueService) Create(ctx context.Context, req CreateBoutiqueRequest) (*BoutiqueResponse, error) {
	req = req.Sanitized()

	boutique, err := catalog.NewBoutique(req.Name, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}
	if err := boutique.SetDescription(req.Description); err != nil {
		return nil, err
	}
	if req.Banner != "" {
		boutique.SetBanner(req.Banner)
	}
	if req.CommissionRate != nil {
		if err := boutique.SetCommissionRate(*req.CommissionRate); err != nil {
			return nil, err
		}
	}
	if req.IsVerified != nil && *req.IsVerified {
		boutique.Verify()
	}

	if err := s.boutiqueRepo.Save(ctx, boutique); err != nil {
		return nil, err
	}

	s.logger.Info("Boutique created",
		zap.String("boutique_id", boutique.ID.String()),
		zap.String("name", boutique.Name))

	resp := ToBoutiqueResponse(boutique, true)
	return &resp, nil
}

// GetByID returns one boutique
func (s *BoutiqueService) GetByID(ctx context.Context, id uuid.UUID, showContact bool) (*BoutiqueResponse, error) {
	boutique, err := s.boutiqueRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToBoutiqueResponse(boutique, showContact)
	return &resp, nil
}

// List returns one page of boutiques, newest first
func (s *BoutiqueService) List(ctx context.Context, filter catalog.BoutiqueFilter, page shared.Page, showContact bool) (shared.Paginated[BoutiqueResponse], error) {
	boutiques, total, err := s.boutiqueRepo.List(ctx, filter, page)
	if err != nil {
		return shared.Paginated[BoutiqueResponse]{}, err
	}
	return shared.NewPaginated(toBoutiqueResponses(boutiques, showContact), total, page), nil
}

// Update applies the fields present in req
func (s *BoutiqueService) Update(ctx context.Context, id uuid.UUID, req UpdateBoutiqueRequest) (*BoutiqueResponse, error) {
	req = req.Sanitized()

	boutique, err := s.boutiqueRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Phone != nil || req.Address != nil {
		name, phone, address := boutique.Name, boutique.Phone, boutique.Address
		if req.Name != nil {
			name = *req.Name
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Address != nil {
			address = *req.Address
		}
		if err := boutique.SetContact(name, phone, address); err != nil {
			return nil, err
		}
	}
	if req.Description != nil {
		if err := boutique.SetDescription(*req.Description); err != nil {
			return nil, err
		}
	}
	if req.Banner != nil {
		boutique.SetBanner(*req.Banner)
	}
	if req.CommissionRate != nil {
		if err := boutique.SetCommissionRate(*req.CommissionRate); err != nil {
			return nil, err
		}
	}
	if req.IsVerified != nil {
		if *req.IsVerified {
			boutique.Verify()
		} else {
			boutique.Unverify()
		}
	}

	if err := s.boutiqueRepo.Save(ctx, boutique); err != nil {
		return nil, err
	}

	s.logger.Info("Boutique updated", zap.String("boutique_id", boutique.ID.String()))

	resp := ToBoutiqueResponse(boutique, true)
	return &resp, nil
}

// Delete removes the boutique and deactivates its products
func (s *BoutiqueService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.boutiqueRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Boutique deleted, products deactivated", zap.String("boutique_id", id.String()))
	return nil
}
