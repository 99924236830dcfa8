package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jhalaktiwarii/dealerspot-backend/internal/domain"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/infrastructure/sns"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/pkg/validate"
	"golang.org/x/crypto/bcrypt"
)

// AccountStore is the persistence surface the service requires.
type AccountStore interface {
	Put(ctx context.Context, a *domain.Account) error
	Get(ctx context.Context, companyName string) (*domain.Account, error)
}

// TokenSigner issues bearer tokens carrying the company identity.
type TokenSigner interface {
	Sign(companyName string) (string, error)
}

type Service interface {
	// Register creates a dealer account. The company name must be unused.
	Register(ctx context.Context, req domain.RegisterAccountRequest) (*domain.Account, error)
	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, req domain.LoginRequest) (string, *domain.Account, error)
}

type service struct {
	repo   AccountStore
	signer TokenSigner
	sms    sns.SMSSender // optional, nil when SNS is unavailable
}

func NewService(repo AccountStore, signer TokenSigner, sms sns.SMSSender) Service {
	return &service{repo: repo, signer: signer, sms: sms}
}

func (s *service) Register(ctx context.Context, req domain.RegisterAccountRequest) (*domain.Account, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	a := &domain.Account{
		CompanyName:   req.CompanyName,
		ContactNumber: req.ContactNumber,
		OwnerName:     req.OwnerName,
		Location:      req.Location,
		GSTIN:         req.GSTIN,
		PasswordHash:  string(hash),
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, a); err != nil {
		return nil, err
	}

	// Welcome SMS is best-effort: registration already committed.
	if s.sms != nil && a.ContactNumber != "" {
		msg := fmt.Sprintf("Welcome to DealerSpot, %s! Your dealership %s is now registered.", a.OwnerName, a.CompanyName)
		if err := s.sms.SendSMS(ctx, a.ContactNumber, msg); err != nil {
			slog.Warn("welcome SMS failed", "company", a.CompanyName, "err", err)
		}
	}
	return a, nil
}

func (s *service) Login(ctx context.Context, req domain.LoginRequest) (string, *domain.Account, error) {
	if err := validate.Struct(req); err != nil {
		return "", nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	a, err := s.repo.Get(ctx, req.CompanyName)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, fmt.Errorf("invalid credentials: %w", domain.ErrUnauthorized)
	}
	token, err := s.signer.Sign(a.CompanyName)
	if err != nil {
		return "", nil, err
	}
	return token, a, nil
}
