package services_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"cvhub/internal/repositories"
	"cvhub/internal/services"
	"cvhub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockObjectStore is a mock implementation of storage.ObjectStore
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Upload(ctx context.Context, key string, data []byte, contentType string, metadata map[string]string) error {
	args := m.Called(ctx, key, data, contentType, metadata)
	return args.Error(0)
}

func (m *MockObjectStore) Sign(ctx context.Context, key string, ttl time.Duration) (string, time.Time, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var pdf = services.File{Filename: "cv.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4 test")}

func newExportService(f *fixture, store storage.ObjectStore) *services.ExportService {
	return services.NewExportService(f.guard, f.shares, f.users, store, nil, services.ExportConfig{
		ShareLinkTTL:      time.Hour,
		ProfilePictureTTL: 24 * time.Hour,
	}, nil)
}

func TestExportService_ShareLinkIsReused(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner@example.com")
	cv := f.cv(t, owner, "CV")

	store := new(MockObjectStore)
	expires := time.Now().UTC().Add(time.Hour)
	store.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "cvs/user-"+owner.ID+"/cv-"+cv.ID+"-") && strings.HasSuffix(key, ".pdf")
	}), pdf.Data, "application/pdf", mock.Anything).Return(nil).Once()
	store.On("Sign", mock.Anything, mock.Anything, time.Hour).Return("https://files.example.com/signed", expires, nil).Once()

	svc := newExportService(f, store)

	first, err := svc.CreateShareLink(context.Background(), cv.ID, owner.ID, pdf)
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/signed", first.URL)
	assert.WithinDuration(t, expires, first.ExpiresAt, time.Second)

	second, err := svc.CreateShareLink(context.Background(), cv.ID, owner.ID, pdf)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.URL, second.URL)

	store.AssertExpectations(t)
}

func TestExportService_ConcurrentShareLinksUploadOnce(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner@example.com")
	cv := f.cv(t, owner, "CV")

	store := storage.NewMemoryStore("https://files.example.com")
	svc := newExportService(f, store)

	const workers = 5
	ids := make([]string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			link, err := svc.CreateShareLink(context.Background(), cv.ID, owner.ID, pdf)
			if assert.NoError(t, err) {
				ids[i] = link.ID
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, store.Uploads())
	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	links, err := f.shares.ListByCV(cv.ID)
	require.NoError(t, err)
	assert.Len(t, links, 1)
}

func TestExportService_ShareLinkRejections(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner@example.com")
	intruder := f.user(t, "intruder@example.com")
	cv := f.cv(t, owner, "CV")

	store := new(MockObjectStore)
	svc := newExportService(f, store)
	ctx := context.Background()

	_, err := svc.CreateShareLink(ctx, cv.ID, intruder.ID, pdf)
	assert.True(t, errors.Is(err, services.ErrAccessDenied))

	_, err = svc.CreateShareLink(ctx, cv.ID, owner.ID, services.File{Filename: "cv.png", ContentType: "image/png", Data: []byte("x")})
	assert.True(t, errors.Is(err, services.ErrInvalidInput))

	_, err = svc.CreateShareLink(ctx, cv.ID, owner.ID, services.File{Filename: "cv.pdf", ContentType: "application/pdf"})
	assert.True(t, errors.Is(err, services.ErrInvalidInput))

	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	unconfigured := newExportService(f, nil)
	_, err = unconfigured.CreateShareLink(ctx, cv.ID, owner.ID, pdf)
	assert.True(t, errors.Is(err, services.ErrStorageMisconfigured))
}

func TestExportService_UploadFailureStoresNothing(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner@example.com")
	cv := f.cv(t, owner, "CV")

	store := new(MockObjectStore)
	store.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("bucket unavailable")).Once()

	svc := newExportService(f, store)
	_, err := svc.CreateShareLink(context.Background(), cv.ID, owner.ID, pdf)
	assert.True(t, errors.Is(err, services.ErrUpstreamFailure))

	links, err := f.shares.ListByCV(cv.ID)
	require.NoError(t, err)
	assert.Empty(t, links)
	store.AssertExpectations(t)
}

func TestExportService_UploadProfilePicture(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner@example.com")

	store := storage.NewMemoryStore("https://files.example.com")
	svc := newExportService(f, store)
	ctx := context.Background()

	png := services.File{Filename: "me.png", ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}
	updated, err := svc.UploadProfilePicture(ctx, owner, png)
	require.NoError(t, err)
	require.NotNil(t, updated.ProfilePictureURL)
	assert.Contains(t, *updated.ProfilePictureURL, "profile-pictures")

	obj, ok := store.Get("profile-pictures/user-" + owner.ID + ".png")
	require.True(t, ok)
	assert.Equal(t, "image/png", obj.ContentType)

	stored, err := f.users.GetByID(owner.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated.ProfilePictureURL, *stored.ProfilePictureURL)

	_, err = svc.UploadProfilePicture(ctx, owner, services.File{Filename: "me.gif", ContentType: "image/gif", Data: []byte("GIF89a")})
	assert.True(t, errors.Is(err, services.ErrInvalidInput))

	_, err = newExportService(f, nil).UploadProfilePicture(ctx, owner, png)
	assert.True(t, errors.Is(err, services.ErrStorageMisconfigured))
}

func TestExportService_StorageCallsFinishBeforeLockExpires(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner@example.com")
	cv := f.cv(t, owner, "CV")

	var deadline time.Time
	store := new(MockObjectStore)
	store.On("Upload", mock.Anything, mock.Anything, pdf.Data, "application/pdf", mock.Anything).
		Run(func(args mock.Arguments) {
			var ok bool
			deadline, ok = args.Get(0).(context.Context).Deadline()
			assert.True(t, ok, "upload context has no deadline")
		}).Return(nil).Once()
	store.On("Sign", mock.Anything, mock.Anything, time.Hour).
		Return("https://files.example.com/signed", time.Now().Add(time.Hour), nil).Once()

	started := time.Now()
	_, err := newExportService(f, store).CreateShareLink(context.Background(), cv.ID, owner.ID, pdf)
	require.NoError(t, err)
	assert.True(t, deadline.Before(started.Add(services.ShareLinkLockTTL)))
	store.AssertExpectations(t)
}

func TestExportService_SlowUploadTimesOutWithoutRow(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "owner@example.com")
	cv := f.cv(t, owner, "CV")

	store := new(MockObjectStore)
	store.On("Upload", mock.Anything, mock.Anything, pdf.Data, "application/pdf", mock.Anything).
		Run(func(args mock.Arguments) {
			<-args.Get(0).(context.Context).Done()
		}).Return(context.DeadlineExceeded).Once()

	svc := services.NewExportService(f.guard, f.shares, f.users, store, nil, services.ExportConfig{
		ShareLinkTTL: time.Hour,
		IssueTimeout: 50 * time.Millisecond,
	}, nil)

	_, err := svc.CreateShareLink(context.Background(), cv.ID, owner.ID, pdf)
	assert.True(t, errors.Is(err, services.ErrUpstreamFailure))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	_, err = f.shares.FindActive(cv.ID, owner.ID, time.Now().UTC())
	assert.True(t, errors.Is(err, repositories.ErrRecordNotFound))
	store.AssertNotCalled(t, "Sign", mock.Anything, mock.Anything, mock.Anything)
}
