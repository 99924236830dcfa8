package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/jhalaktiwarii/dealerspot-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockStore struct{ mock.Mock }

func (m *mockStore) Put(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}
func (m *mockStore) ListAll(ctx context.Context, companyName string) ([]domain.Notification, error) {
	args := m.Called(ctx, companyName)
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *mockStore) ListUnread(ctx context.Context, companyName string) ([]domain.Notification, error) {
	args := m.Called(ctx, companyName)
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *mockStore) ListUnseen(ctx context.Context, companyName string) ([]domain.Notification, error) {
	args := m.Called(ctx, companyName)
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *mockStore) MarkRead(ctx context.Context, id, companyName string) error {
	return m.Called(ctx, id, companyName).Error(0)
}
func (m *mockStore) MarkSeen(ctx context.Context, id, companyName string) error {
	return m.Called(ctx, id, companyName).Error(0)
}

type mockSettingsStore struct{ mock.Mock }

func (m *mockSettingsStore) Get(ctx context.Context, companyName string) (*domain.NotificationSettings, error) {
	args := m.Called(ctx, companyName)
	if s, _ := args.Get(0).(*domain.NotificationSettings); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockSettingsStore) Put(ctx context.Context, s *domain.NotificationSettings) error {
	return m.Called(ctx, s).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) HasSubscribers(companyName string) bool {
	return m.Called(companyName).Bool(0)
}
func (m *mockPublisher) Publish(companyName, event string, payload interface{}) {
	m.Called(companyName, event, payload)
}

// --- Notify tests ---

func TestNotify_EnabledWithSubscriber(t *testing.T) {
	store := &mockStore{}
	settings := &mockSettingsStore{}
	pub := &mockPublisher{}
	settings.On("Get", mock.Anything, "Prime Motors").Return(nil, nil)
	store.On("Put", mock.Anything, mock.Anything).Return(nil)
	pub.On("HasSubscribers", "Prime Motors").Return(true)
	pub.On("Publish", "Prime Motors", EventNewNotification, mock.Anything).Return()

	svc := NewService(store, settings, pub)
	n, err := svc.Notify(context.Background(), "Prime Motors", "AutoHub added a Swift", domain.NotificationTypeFriendAddedCar)

	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)
	assert.False(t, n.IsRead)
	assert.False(t, n.IsSeen)
	pub.AssertNumberOfCalls(t, "Publish", 1)
	store.AssertExpectations(t)
}

func TestNotify_EnabledNoSubscriber(t *testing.T) {
	store := &mockStore{}
	settings := &mockSettingsStore{}
	pub := &mockPublisher{}
	settings.On("Get", mock.Anything, "Prime Motors").Return(nil, nil)
	store.On("Put", mock.Anything, mock.Anything).Return(nil)
	pub.On("HasSubscribers", "Prime Motors").Return(false)

	svc := NewService(store, settings, pub)
	n, err := svc.Notify(context.Background(), "Prime Motors", "msg", domain.NotificationTypeFriendAddedCar)

	require.NoError(t, err)
	assert.False(t, n.IsSeen)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestNotify_MutedRecipient(t *testing.T) {
	store := &mockStore{}
	settings := &mockSettingsStore{}
	pub := &mockPublisher{}
	settings.On("Get", mock.Anything, "Prime Motors").Return(
		&domain.NotificationSettings{CompanyName: "Prime Motors", NotificationsEnabled: false}, nil)
	store.On("Put", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(store, settings, pub)
	n, err := svc.Notify(context.Background(), "Prime Motors", "msg", domain.NotificationTypeFriendAddedCar)

	require.NoError(t, err)
	// Muted recipients still get a persisted row, born already seen, and
	// never a live push.
	assert.True(t, n.IsSeen)
	pub.AssertNotCalled(t, "HasSubscribers", mock.Anything)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
	store.AssertExpectations(t)
}

func TestNotify_PutFailure(t *testing.T) {
	store := &mockStore{}
	settings := &mockSettingsStore{}
	pub := &mockPublisher{}
	settings.On("Get", mock.Anything, "Prime Motors").Return(nil, nil)
	store.On("Put", mock.Anything, mock.Anything).Return(errors.New("dynamo down"))

	svc := NewService(store, settings, pub)
	_, err := svc.Notify(context.Background(), "Prime Motors", "msg", domain.NotificationTypeFriendAddedCar)

	require.Error(t, err)
	pub.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

// --- settings tests ---

func TestGetSettings_DefaultsEnabled(t *testing.T) {
	settings := &mockSettingsStore{}
	settings.On("Get", mock.Anything, "Prime Motors").Return(nil, nil)

	svc := NewService(&mockStore{}, settings, &mockPublisher{})
	enabled, err := svc.GetSettings(context.Background(), "Prime Motors")

	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestGetSettings_ExplicitlyDisabled(t *testing.T) {
	settings := &mockSettingsStore{}
	settings.On("Get", mock.Anything, "Prime Motors").Return(
		&domain.NotificationSettings{CompanyName: "Prime Motors", NotificationsEnabled: false}, nil)

	svc := NewService(&mockStore{}, settings, &mockPublisher{})
	enabled, err := svc.GetSettings(context.Background(), "Prime Motors")

	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestSetSettings_WritesRow(t *testing.T) {
	settings := &mockSettingsStore{}
	settings.On("Put", mock.Anything, &domain.NotificationSettings{
		CompanyName:          "Prime Motors",
		NotificationsEnabled: false,
	}).Return(nil)

	svc := NewService(&mockStore{}, settings, &mockPublisher{})
	err := svc.SetSettings(context.Background(), "Prime Motors", false)

	require.NoError(t, err)
	settings.AssertExpectations(t)
}

// --- mark tests ---

func TestMarkRead_PassesThrough(t *testing.T) {
	store := &mockStore{}
	store.On("MarkRead", mock.Anything, "01F8", "Prime Motors").Return(nil)

	svc := NewService(store, &mockSettingsStore{}, &mockPublisher{})
	require.NoError(t, svc.MarkRead(context.Background(), "01F8", "Prime Motors"))
	store.AssertExpectations(t)
}

func TestMarkSeen_PassesThrough(t *testing.T) {
	store := &mockStore{}
	store.On("MarkSeen", mock.Anything, "01F8", "Prime Motors").Return(nil)

	svc := NewService(store, &mockSettingsStore{}, &mockPublisher{})
	require.NoError(t, svc.MarkSeen(context.Background(), "01F8", "Prime Motors"))
	store.AssertExpectations(t)
}
