package car

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/jhalaktiwarii/dealerspot-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockCarStore struct{ mock.Mock }

func (m *mockCarStore) Put(ctx context.Context, c *domain.Car) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockCarStore) ListByOwner(ctx context.Context, owner string) ([]domain.Car, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *mockCarStore) ScanPage(ctx context.Context, limit int32, cursor string) ([]domain.Car, string, error) {
	args := m.Called(ctx, limit, cursor)
	return args.Get(0).([]domain.Car), args.String(1), args.Error(2)
}
func (m *mockCarStore) UpdateStatus(ctx context.Context, owner string, createdAt time.Time, status string) (*domain.Car, error) {
	args := m.Called(ctx, owner, createdAt, status)
	if c, _ := args.Get(0).(*domain.Car); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockFriendLister struct{ mock.Mock }

func (m *mockFriendLister) ListByOwner(ctx context.Context, owner string) ([]domain.FriendLink, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).([]domain.FriendLink), args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) Notify(ctx context.Context, recipientCompany, message, notifType string) (*domain.Notification, error) {
	args := m.Called(ctx, recipientCompany, message, notifType)
	if n, _ := args.Get(0).(*domain.Notification); n != nil {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockMediaStore struct{ mock.Mock }

func (m *mockMediaStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, r, contentType)
	return args.String(0), args.Error(1)
}

// --- helpers ---

func baseReq() domain.CreateCarRequest {
	return domain.CreateCarRequest{
		Model:         "Swift",
		Year:          2021,
		Transmission:  "manual",
		Color:         "white",
		Insurance:     "comprehensive",
		PurchaseDate:  "2024-01-15",
		OriginalPrice: 550000,
		Refurb:        "none",
		Fuel:          "petrol",
		Description:   "Single owner, serviced",
		KmsDriven:     32000,
	}
}

func upload(name string) Upload {
	return Upload{Filename: name, ContentType: "image/jpeg", Content: strings.NewReader("data")}
}

// --- Create tests ---

func TestCreate_Success(t *testing.T) {
	repo := &mockCarStore{}
	friends := &mockFriendLister{}
	media := &mockMediaStore{}
	media.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("https://bucket/x", nil)
	repo.On("Put", mock.Anything, mock.Anything).Return(nil)
	friends.On("ListByOwner", mock.Anything, "AutoHub").Return([]domain.FriendLink{}, nil).Maybe()

	svc := NewService(repo, friends, &mockNotifier{}, media)
	vid := upload("walkaround.mp4")
	c, err := svc.Create(context.Background(), "AutoHub", baseReq(), []Upload{upload("front.jpg")}, &vid)

	require.NoError(t, err)
	assert.Equal(t, "AutoHub", c.Owner)
	assert.Equal(t, domain.CarStatusAvailable, c.Status)
	assert.Len(t, c.PhotoURLs, 1)
	assert.NotEmpty(t, c.VideoURL)
	repo.AssertExpectations(t)
}

func TestCreate_MissingVideo(t *testing.T) {
	svc := NewService(&mockCarStore{}, &mockFriendLister{}, &mockNotifier{}, &mockMediaStore{})
	_, err := svc.Create(context.Background(), "AutoHub", baseReq(), nil, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestCreate_InvalidRequest(t *testing.T) {
	req := baseReq()
	req.Fuel = "steam"

	svc := NewService(&mockCarStore{}, &mockFriendLister{}, &mockNotifier{}, &mockMediaStore{})
	vid := upload("walkaround.mp4")
	_, err := svc.Create(context.Background(), "AutoHub", req, nil, &vid)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestCreate_TruncatesPhotosToFive(t *testing.T) {
	repo := &mockCarStore{}
	friends := &mockFriendLister{}
	media := &mockMediaStore{}
	media.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("https://bucket/x", nil)
	repo.On("Put", mock.Anything, mock.Anything).Return(nil)
	friends.On("ListByOwner", mock.Anything, "AutoHub").Return([]domain.FriendLink{}, nil).Maybe()

	photos := make([]Upload, 7)
	for i := range photos {
		photos[i] = upload("p.jpg")
	}

	svc := NewService(repo, friends, &mockNotifier{}, media)
	vid := upload("walkaround.mp4")
	c, err := svc.Create(context.Background(), "AutoHub", baseReq(), photos, &vid)

	require.NoError(t, err)
	assert.Len(t, c.PhotoURLs, 5)
}

func TestCreate_UploadFailure(t *testing.T) {
	repo := &mockCarStore{}
	media := &mockMediaStore{}
	media.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("s3 down"))

	svc := NewService(repo, &mockFriendLister{}, &mockNotifier{}, media)
	vid := upload("walkaround.mp4")
	_, err := svc.Create(context.Background(), "AutoHub", baseReq(), []Upload{upload("front.jpg")}, &vid)

	require.Error(t, err)
	repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

// --- fan-out tests ---

func TestFanOut_NotifiesEveryFriend(t *testing.T) {
	friends := &mockFriendLister{}
	notifier := &mockNotifier{}
	friends.On("ListByOwner", mock.Anything, "AutoHub").Return([]domain.FriendLink{
		{Owner: "AutoHub", Company: "Prime Motors"},
		{Owner: "AutoHub", Company: "City Motors"},
	}, nil)
	notifier.On("Notify", mock.Anything, "Prime Motors", mock.Anything, domain.NotificationTypeFriendAddedCar).
		Return(&domain.Notification{}, nil)
	notifier.On("Notify", mock.Anything, "City Motors", mock.Anything, domain.NotificationTypeFriendAddedCar).
		Return(&domain.Notification{}, nil)

	svc := &service{friends: friends, notifier: notifier}
	svc.fanOutNewListing(context.Background(), &domain.Car{Owner: "AutoHub", Model: "Swift", Year: 2021, OriginalPrice: 550000})

	notifier.AssertExpectations(t)
}

func TestFanOut_FailureDoesNotStopOthers(t *testing.T) {
	friends := &mockFriendLister{}
	notifier := &mockNotifier{}
	friends.On("ListByOwner", mock.Anything, "AutoHub").Return([]domain.FriendLink{
		{Owner: "AutoHub", Company: "Prime Motors"},
		{Owner: "AutoHub", Company: "City Motors"},
	}, nil)
	notifier.On("Notify", mock.Anything, "Prime Motors", mock.Anything, mock.Anything).
		Return(nil, errors.New("dynamo down"))
	notifier.On("Notify", mock.Anything, "City Motors", mock.Anything, mock.Anything).
		Return(&domain.Notification{}, nil)

	svc := &service{friends: friends, notifier: notifier}
	svc.fanOutNewListing(context.Background(), &domain.Car{Owner: "AutoHub", Model: "Swift"})

	notifier.AssertExpectations(t)
}

// --- UpdateStatus tests ---

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := NewService(&mockCarStore{}, &mockFriendLister{}, &mockNotifier{}, &mockMediaStore{})
	_, err := svc.UpdateStatus(context.Background(), "AutoHub", time.Now().Format(time.RFC3339Nano), "scrapped")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestUpdateStatus_BadTimestamp(t *testing.T) {
	svc := NewService(&mockCarStore{}, &mockFriendLister{}, &mockNotifier{}, &mockMediaStore{})
	_, err := svc.UpdateStatus(context.Background(), "AutoHub", "yesterday", domain.CarStatusSold)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestUpdateStatus_Success(t *testing.T) {
	repo := &mockCarStore{}
	ts := time.Now().UTC().Truncate(time.Millisecond)
	repo.On("UpdateStatus", mock.Anything, "AutoHub", ts, domain.CarStatusSold).
		Return(&domain.Car{Owner: "AutoHub", Status: domain.CarStatusSold}, nil)

	svc := NewService(repo, &mockFriendLister{}, &mockNotifier{}, &mockMediaStore{})
	c, err := svc.UpdateStatus(context.Background(), "AutoHub", ts.Format(time.RFC3339Nano), domain.CarStatusSold)

	require.NoError(t, err)
	assert.Equal(t, domain.CarStatusSold, c.Status)
	repo.AssertExpectations(t)
}
