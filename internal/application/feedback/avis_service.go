// Package feedback collects and lists customer reviews.
package feedback

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ivoirestore/backend/internal/application/sanitize"
	"github.com/ivoirestore/backend/internal/domain/feedback"
	"github.com/ivoirestore/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// DefaultListLimit is the page size when the client does not ask for one.
const DefaultListLimit = 20

// CreateAvisRequest represents a review submission
type CreateAvisRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Text   string `json:"text" binding:"required,max=500"`
	Rating int    `json:"rating" binding:"required,min=1,max=5"`
}

// Sanitized returns a copy with every text field normalized.
func (r CreateAvisRequest) Sanitized() CreateAvisRequest {
	r.Name = sanitize.Text(r.Name)
	r.Text = sanitize.Text(r.Text)
	return r
}

// AvisResponse represents a review in API responses
type AvisResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

func toAvisResponse(a *feedback.Avis) AvisResponse {
	return AvisResponse{
		ID:        a.ID,
		Name:      a.Name,
		Text:      a.Text,
		Rating:    a.Rating,
		CreatedAt: a.CreatedAt,
	}
}

// AvisService handles review operations
type AvisService struct {
	avisRepo feedback.AvisRepository
	logger   *zap.Logger
}

// NewAvisService creates a new AvisService
func NewAvisService(avisRepo feedback.AvisRepository, logger *zap.Logger) *AvisService {
	return &AvisService{avisRepo: avisRepo, logger: logger}
}

// Create stores a review
func (s *AvisService) Create(ctx context.Context, req CreateAvisRequest) (*AvisResponse, error) {
	req = req.Sanitized()

	avis, err := feedback.NewAvis(req.Name, req.Text, req.Rating)
	if err != nil {
		return nil, err
	}
	if err := s.avisRepo.Create(ctx, avis); err != nil {
		return nil, err
	}

	s.logger.Info("Review created", zap.String("name", avis.Name), zap.Int("rating", avis.Rating))

	resp := toAvisResponse(avis)
	return &resp, nil
}

// List returns one page of reviews, newest first
func (s *AvisService) List(ctx context.Context, page shared.Page) (shared.Paginated[AvisResponse], error) {
	reviews, total, err := s.avisRepo.List(ctx, page)
	if err != nil {
		return shared.Paginated[AvisResponse]{}, err
	}
	items := make([]AvisResponse, len(reviews))
	for i := range reviews {
		items[i] = toAvisResponse(&reviews[i])
	}
	return shared.NewPaginated(items, total, page), nil
}
