package friend

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhalaktiwarii/dealerspot-backend/internal/domain"
)

// FriendStore is the friend-edge persistence surface the service requires.
type FriendStore interface {
	Put(ctx context.Context, f *domain.FriendLink) error
	ListByOwner(ctx context.Context, owner string) ([]domain.FriendLink, error)
	ExistsCompany(ctx context.Context, owner, company string) (bool, error)
	Delete(ctx context.Context, owner, friendID string) error
}

// AccountStore resolves company identifiers to registered accounts.
type AccountStore interface {
	Get(ctx context.Context, companyName string) (*domain.Account, error)
	ScanAll(ctx context.Context) ([]domain.Account, error)
}

// ListingStore fetches car listings for the friends-listings join.
type ListingStore interface {
	ScanByStatus(ctx context.Context, status string) ([]domain.Car, error)
}

type Service interface {
	// AddFriend resolves targetIdentifier to a registered dealer and inserts
	// a directed edge from owner to it. The reverse edge is never created.
	AddFriend(ctx context.Context, owner, displayName, targetIdentifier string) (*domain.FriendLink, error)
	ListFriends(ctx context.Context, owner string) ([]domain.FriendLink, error)
	// RemoveFriend is idempotent: deleting an unknown friend id succeeds.
	RemoveFriend(ctx context.Context, owner, friendID string) error
	// SearchAccounts matches query as a case-insensitive substring of company
	// or owner name, excluding the caller and the caller's existing friends.
	SearchAccounts(ctx context.Context, owner, query string) ([]domain.AccountSummary, error)
	// ListFriendsListings returns the available listings owned by the
	// caller's friends.
	ListFriendsListings(ctx context.Context, owner string) ([]domain.Car, error)
}

type service struct {
	friends  FriendStore
	accounts AccountStore
	listings ListingStore
}

func NewService(friends FriendStore, accounts AccountStore, listings ListingStore) Service {
	return &service{friends: friends, accounts: accounts, listings: listings}
}

func (s *service) AddFriend(ctx context.Context, owner, displayName, targetIdentifier string) (*domain.FriendLink, error) {
	exists, err := s.friends.ExistsCompany(ctx, owner, targetIdentifier)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateFriend
	}

	account, err := s.resolveAccount(ctx, targetIdentifier)
	if err != nil {
		return nil, err
	}

	// The fallback resolution may land on a different canonical name than
	// the one the caller typed; re-check so one company never gets two edges.
	if account.CompanyName != targetIdentifier {
		exists, err = s.friends.ExistsCompany(ctx, owner, account.CompanyName)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrDuplicateFriend
		}
	}

	now := time.Now().UTC()
	link := &domain.FriendLink{
		Owner:     owner,
		FriendID:  strconv.FormatInt(now.UnixMilli(), 10),
		Name:      displayName,
		Company:   account.CompanyName,
		CreatedAt: now,
	}
	if err := s.friends.Put(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// resolveAccount prefers an exact canonical key hit; only when that misses
// does it fall back to a case-insensitive substring scan over all accounts.
func (s *service) resolveAccount(ctx context.Context, identifier string) (*domain.Account, error) {
	account, err := s.accounts.Get(ctx, identifier)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	all, err := s.accounts.ScanAll(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(identifier)
	for i := range all {
		if strings.Contains(strings.ToLower(all[i].CompanyName), needle) {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("resolve %q: %w", identifier, domain.ErrAccountNotFound)
}

func (s *service) ListFriends(ctx context.Context, owner string) ([]domain.FriendLink, error) {
	return s.friends.ListByOwner(ctx, owner)
}

func (s *service) RemoveFriend(ctx context.Context, owner, friendID string) error {
	return s.friends.Delete(ctx, owner, friendID)
}

func (s *service) SearchAccounts(ctx context.Context, owner, query string) ([]domain.AccountSummary, error) {
	friends, err := s.friends.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	befriended := make(map[string]struct{}, len(friends))
	for _, f := range friends {
		befriended[f.Company] = struct{}{}
	}

	accounts, err := s.accounts.ScanAll(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	results := []domain.AccountSummary{}
	for _, a := range accounts {
		if a.CompanyName == owner {
			continue
		}
		if _, ok := befriended[a.CompanyName]; ok {
			continue
		}
		if !strings.Contains(strings.ToLower(a.CompanyName), needle) &&
			!strings.Contains(strings.ToLower(a.OwnerName), needle) {
			continue
		}
		results = append(results, domain.AccountSummary{
			CompanyName: a.CompanyName,
			Name:        a.OwnerName,
		})
	}
	return results, nil
}

func (s *service) ListFriendsListings(ctx context.Context, owner string) ([]domain.Car, error) {
	friends, err := s.friends.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}
	available, err := s.listings.ScanByStatus(ctx, domain.CarStatusAvailable)
	if err != nil {
		return nil, err
	}

	// Match on the friend's company OR display name: legacy edges sometimes
	// stored the company value in the name field.
	known := make(map[string]struct{}, 2*len(friends))
	for _, f := range friends {
		known[f.Company] = struct{}{}
		known[f.Name] = struct{}{}
	}

	listings := []domain.Car{}
	for _, car := range available {
		if _, ok := known[car.CompanyName]; ok {
			listings = append(listings, car)
		}
	}
	return listings, nil
}
