package car

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jhalaktiwarii/dealerspot-backend/internal/domain"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/pkg/validate"
)

const maxPhotos = 5

// CarStore is the listing persistence surface the service requires.
type CarStore interface {
	Put(ctx context.Context, c *domain.Car) error
	ListByOwner(ctx context.Context, owner string) ([]domain.Car, error)
	ScanPage(ctx context.Context, limit int32, cursor string) ([]domain.Car, string, error)
	UpdateStatus(ctx context.Context, owner string, createdAt time.Time, status string) (*domain.Car, error)
}

// FriendLister resolves the fan-out recipients for a new listing.
type FriendLister interface {
	ListByOwner(ctx context.Context, owner string) ([]domain.FriendLink, error)
}

// Notifier delivers one notification per recipient.
type Notifier interface {
	Notify(ctx context.Context, recipientCompany, message, notifType string) (*domain.Notification, error)
}

// MediaStore uploads listing photos and videos.
type MediaStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

// Upload is one incoming multipart file.
type Upload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

type Service interface {
	// Create validates and persists a listing with its media, then fans out
	// a notification to each of the owner's friends in the background.
	Create(ctx context.Context, owner string, req domain.CreateCarRequest, photos []Upload, video *Upload) (*domain.Car, error)
	ListMine(ctx context.Context, owner string) ([]domain.Car, error)
	ListAllPage(ctx context.Context, limit int32, cursor string) ([]domain.Car, string, error)
	UpdateStatus(ctx context.Context, owner, createdAt, status string) (*domain.Car, error)
}

type service struct {
	repo     CarStore
	friends  FriendLister
	notifier Notifier
	media    MediaStore
}

func NewService(repo CarStore, friends FriendLister, notifier Notifier, media MediaStore) Service {
	return &service{repo: repo, friends: friends, notifier: notifier, media: media}
}

func (s *service) Create(ctx context.Context, owner string, req domain.CreateCarRequest, photos []Upload, video *Upload) (*domain.Car, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", err, domain.ErrBadRequest)
	}
	if video == nil {
		return nil, fmt.Errorf("video file is required: %w", domain.ErrBadRequest)
	}
	if len(photos) > maxPhotos {
		photos = photos[:maxPhotos]
	}

	photoURLs := make([]string, 0, len(photos))
	for _, p := range photos {
		url, err := s.media.Upload(ctx, mediaKey("cars/photos", p.Filename), p.Content, p.ContentType)
		if err != nil {
			return nil, fmt.Errorf("upload photo: %w", err)
		}
		photoURLs = append(photoURLs, url)
	}
	videoURL, err := s.media.Upload(ctx, mediaKey("cars/videos", video.Filename), video.Content, video.ContentType)
	if err != nil {
		return nil, fmt.Errorf("upload video: %w", err)
	}

	c := &domain.Car{
		Owner:             owner,
		CompanyName:       owner,
		Model:             req.Model,
		Year:              req.Year,
		Transmission:      req.Transmission,
		Color:             req.Color,
		Insurance:         req.Insurance,
		PurchaseDate:      req.PurchaseDate,
		OriginalPrice:     req.OriginalPrice,
		Refurb:            req.Refurb,
		InterestRate:      req.InterestRate,
		Fuel:              req.Fuel,
		NegotiationBuffer: req.NegotiationBuffer,
		ProfitMargin:      req.ProfitMargin,
		CurrentPrice:      req.CurrentPrice,
		SuggestedPrice:    req.SuggestedPrice,
		Description:       req.Description,
		KmsDriven:         req.KmsDriven,
		PhotoURLs:         photoURLs,
		VideoURL:          videoURL,
		Status:            domain.CarStatusAvailable,
		CreatedAt:         time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, c); err != nil {
		return nil, err
	}

	// Fan-out runs after the listing is committed and must not delay or fail
	// the caller's response; each recipient's failure is logged and dropped.
	go s.fanOutNewListing(context.WithoutCancel(ctx), c)

	return c, nil
}

func (s *service) fanOutNewListing(ctx context.Context, c *domain.Car) {
	friends, err := s.friends.ListByOwner(ctx, c.Owner)
	if err != nil {
		slog.Error("fan-out: list friends", "owner", c.Owner, "err", err)
		return
	}
	msg := fmt.Sprintf("%s added a %s %d for ₹%.0f", c.Owner, c.Model, c.Year, c.OriginalPrice)
	for _, f := range friends {
		if _, err := s.notifier.Notify(ctx, f.Company, msg, domain.NotificationTypeFriendAddedCar); err != nil {
			slog.Error("fan-out: notify friend", "owner", c.Owner, "recipient", f.Company, "err", err)
		}
	}
}

func (s *service) ListMine(ctx context.Context, owner string) ([]domain.Car, error) {
	return s.repo.ListByOwner(ctx, owner)
}

func (s *service) ListAllPage(ctx context.Context, limit int32, cursor string) ([]domain.Car, string, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.ScanPage(ctx, limit, cursor)
}

func (s *service) UpdateStatus(ctx context.Context, owner, createdAt, status string) (*domain.Car, error) {
	if status != domain.CarStatusAvailable && status != domain.CarStatusSold {
		return nil, fmt.Errorf("status must be %q or %q: %w", domain.CarStatusAvailable, domain.CarStatusSold, domain.ErrBadRequest)
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("invalid createdAt: %w", domain.ErrBadRequest)
	}
	return s.repo.UpdateStatus(ctx, owner, ts, status)
}

func mediaKey(folder, filename string) string {
	return fmt.Sprintf("%s/%d-%s", folder, time.Now().UnixNano(), filename)
}
