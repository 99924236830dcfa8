package notification

import (
	"context"
	"time"

	"github.com/jhalaktiwarii/dealerspot-backend/internal/domain"
	"github.com/jhalaktiwarii/dealerspot-backend/internal/pkg/id"
)

// EventNewNotification is the hub event name carrying a freshly persisted notification.
const EventNewNotification = "new_notification"

// Store is the notification persistence surface the service requires.
type Store interface {
	Put(ctx context.Context, n *domain.Notification) error
	ListAll(ctx context.Context, companyName string) ([]domain.Notification, error)
	ListUnread(ctx context.Context, companyName string) ([]domain.Notification, error)
	ListUnseen(ctx context.Context, companyName string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id, companyName string) error
	MarkSeen(ctx context.Context, id, companyName string) error
}

// SettingsStore reads and writes per-company notification settings.
type SettingsStore interface {
	Get(ctx context.Context, companyName string) (*domain.NotificationSettings, error)
	Put(ctx context.Context, s *domain.NotificationSettings) error
}

// Publisher is the live-push surface the service requires.
type Publisher interface {
	HasSubscribers(companyName string) bool
	Publish(companyName, event string, payload interface{})
}

type Service interface {
	// Notify persists a notification for the recipient and, when the
	// recipient is not muted and has a live connection, pushes it. The
	// persisted row is the durable source of truth; push is best-effort.
	Notify(ctx context.Context, recipientCompany, message, notifType string) (*domain.Notification, error)

	ListAll(ctx context.Context, companyName string) ([]domain.Notification, error)
	ListUnread(ctx context.Context, companyName string) ([]domain.Notification, error)
	ListUnseen(ctx context.Context, companyName string) ([]domain.Notification, error)

	MarkRead(ctx context.Context, id, companyName string) error
	MarkSeen(ctx context.Context, id, companyName string) error

	GetSettings(ctx context.Context, companyName string) (bool, error)
	SetSettings(ctx context.Context, companyName string, enabled bool) error
}

type service struct {
	repo     Store
	settings SettingsStore
	hub      Publisher
}

func NewService(repo Store, settings SettingsStore, hub Publisher) Service {
	return &service{repo: repo, settings: settings, hub: hub}
}

func (s *service) Notify(ctx context.Context, recipientCompany, message, notifType string) (*domain.Notification, error) {
	enabled, err := s.GetSettings(ctx, recipientCompany)
	if err != nil {
		return nil, err
	}

	n := &domain.Notification{
		ID:          id.New(),
		CompanyName: recipientCompany,
		Message:     message,
		Type:        notifType,
		IsRead:      false,
		// Muted recipients never get a live push, so their notifications
		// are born already seen.
		IsSeen:    !enabled,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Put(ctx, n); err != nil {
		return nil, err
	}

	if enabled && s.hub.HasSubscribers(recipientCompany) {
		s.hub.Publish(recipientCompany, EventNewNotification, n)
	}
	return n, nil
}

func (s *service) ListAll(ctx context.Context, companyName string) ([]domain.Notification, error) {
	return s.repo.ListAll(ctx, companyName)
}

func (s *service) ListUnread(ctx context.Context, companyName string) ([]domain.Notification, error) {
	return s.repo.ListUnread(ctx, companyName)
}

func (s *service) ListUnseen(ctx context.Context, companyName string) ([]domain.Notification, error) {
	return s.repo.ListUnseen(ctx, companyName)
}

func (s *service) MarkRead(ctx context.Context, id, companyName string) error {
	return s.repo.MarkRead(ctx, id, companyName)
}

func (s *service) MarkSeen(ctx context.Context, id, companyName string) error {
	return s.repo.MarkSeen(ctx, id, companyName)
}

// GetSettings defaults to enabled when the company has never written a row.
func (s *service) GetSettings(ctx context.Context, companyName string) (bool, error) {
	row, err := s.settings.Get(ctx, companyName)
	if err != nil {
		return false, err
	}
	if row == nil {
		return true, nil
	}
	return row.NotificationsEnabled, nil
}

func (s *service) SetSettings(ctx context.Context, companyName string, enabled bool) error {
	return s.settings.Put(ctx, &domain.NotificationSettings{
		CompanyName:          companyName,
		NotificationsEnabled: enabled,
	})
}
