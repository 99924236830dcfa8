package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/jhalaktiwarii/dealerspot-backend/internal/domain"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/pkg/id"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/pkg/validate"
)

// ExpenseStore is the persistence surface the service requires.
type ExpenseStore interface {
	Put(ctx context.Context, e *domain.MonthlyExpense) error
	ListByCompany(ctx context.Context, companyName string) ([]domain.MonthlyExpense, error)
}

type Service interface {
	Create(ctx context.Context, companyName string, req domain.CreateExpenseRequest) (*domain.MonthlyExpense, error)
	List(ctx context.Context, companyName string) ([]domain.MonthlyExpense, error)
}

type service struct {
	repo ExpenseStore
}

func NewService(repo ExpenseStore) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, companyName string, req domain.CreateExpenseRequest) (*domain.MonthlyExpense, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	e := &domain.MonthlyExpense{
		ID:               id.New(),
		CompanyName:      companyName,
		TotalCars:        req.TotalCars,
		RentLegalExpense: req.RentLegalExpense,
		LightBill:        req.LightBill,
		EmployeeCost:     req.EmployeeCost,
		Others:           req.Others,
		MonthlyExpense:   req.MonthlyExpense,
		DailyExpense:     req.DailyExpense,
		PerCarExpense:    req.PerCarExpense,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) List(ctx context.Context, companyName string) ([]domain.MonthlyExpense, error) {
	return s.repo.ListByCompany(ctx, companyName)
}
