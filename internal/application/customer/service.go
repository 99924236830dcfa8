package customer

import (
	"context"
	"fmt"
	"time"

	"github.com/jhalaktiwarii/dealerspot-backend/internal/domain"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/pkg/id"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/pkg/validate"
)

// FeedbackStore is the persistence surface the service requires.
type FeedbackStore interface {
	Put(ctx context.Context, f *domain.CustomerFeedback) error
	ListByOwner(ctx context.Context, owner string, isWalkIn bool) ([]domain.CustomerFeedback, error)
}

type Service interface {
	Submit(ctx context.Context, owner string, req domain.CustomerFeedbackRequest) (*domain.CustomerFeedback, error)
	List(ctx context.Context, owner string, isWalkIn bool) ([]domain.CustomerFeedback, error)
}

type service struct {
	repo FeedbackStore
}

func NewService(repo FeedbackStore) Service {
	return &service{repo: repo}
}

func (s *service) Submit(ctx context.Context, owner string, req domain.CustomerFeedbackRequest) (*domain.CustomerFeedback, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	f := &domain.CustomerFeedback{
		ID:                     id.New(),
		Owner:                  owner,
		Name:                   req.Name,
		Phone:                  req.Phone,
		CarInterested:          req.CarInterested,
		Budget:                 req.Budget,
		TransmissionPreference: req.TransmissionPreference,
		Comments:               req.Comments,
		IsWalkIn:               *req.IsWalkIn,
		CreatedAt:              time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) List(ctx context.Context, owner string, isWalkIn bool) ([]domain.CustomerFeedback, error) {
	return s.repo.ListByOwner(ctx, owner, isWalkIn)
}
