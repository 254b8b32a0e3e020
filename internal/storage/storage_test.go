package storage_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"cvhub/internal/config"
	"cvhub/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := storage.NewMemoryStore("memory://test")
	ctx := context.Background()

	_, _, err := store.Sign(ctx, "missing", time.Minute)
	assert.Error(t, err)

	require.NoError(t, store.Upload(ctx, "cvs/a.pdf", []byte("%PDF"), "application/pdf", map[string]string{"cv_id": "1"}))
	obj, ok := store.Get("cvs/a.pdf")
	require.True(t, ok)
	assert.Equal(t, "application/pdf", obj.ContentType)
	assert.Equal(t, "1", obj.Metadata["cv_id"])
	assert.Equal(t, 1, store.Uploads())

	u, expiresAt, err := store.Sign(ctx, "cvs/a.pdf", time.Hour)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(u, "memory://test/"))
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)
}

func TestNew_SelectsDriver(t *testing.T) {
	store, err := storage.New(context.Background(), &config.Config{StorageDriver: "memory", AppName: "x"})
	require.NoError(t, err)
	assert.IsType(t, &storage.MemoryStore{}, store)

	_, err = storage.New(context.Background(), &config.Config{StorageDriver: "s3"})
	assert.True(t, errors.Is(err, storage.ErrNotConfigured))

	_, err = storage.New(context.Background(), &config.Config{StorageDriver: "ftp"})
	assert.True(t, errors.Is(err, storage.ErrNotConfigured))
}

func newTestS3Store(t *testing.T, endpoint string) *storage.S3Store {
	t.Helper()
	store, err := storage.NewS3Store(context.Background(), storage.S3Config{
		Bucket:          "cv-bucket",
		Region:          "us-east-1",
		Endpoint:        endpoint,
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
		UsePathStyle:    true,
	})
	require.NoError(t, err)
	return store
}

func TestS3Store_SignCapsTTL(t *testing.T) {
	store := newTestS3Store(t, "http://127.0.0.1:9000")

	signed, expiresAt, err := store.Sign(context.Background(), "profile-pictures/user-1.png", 90*24*time.Hour)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(storage.MaxPresignTTL), expiresAt, 5*time.Second)

	u, err := url.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "/cv-bucket/profile-pictures/user-1.png", u.Path)
	assert.Equal(t, "604800", u.Query().Get("X-Amz-Expires"))
}

func TestS3Store_Upload(t *testing.T) {
	var gotPath, gotType, gotMeta, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotMeta = r.Header.Get("X-Amz-Meta-Cv_id")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := newTestS3Store(t, srv.URL)
	err := store.Upload(context.Background(), "cvs/user-1/cv-2-x.pdf", []byte("%PDF-1.4"), "application/pdf", map[string]string{"cv_id": "2"})
	require.NoError(t, err)

	assert.Equal(t, "/cv-bucket/cvs/user-1/cv-2-x.pdf", gotPath)
	assert.Equal(t, "application/pdf", gotType)
	assert.Equal(t, "2", gotMeta)
	assert.Contains(t, gotBody, "%PDF-1.4")
}
