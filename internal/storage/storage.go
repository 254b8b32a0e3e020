// Package storage uploads blobs and hands out time-limited signed URLs to them.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cvhub/internal/config"
)

// ErrNotConfigured is returned when the selected backend lacks required settings.
var ErrNotConfigured = errors.New("object storage not configured")

// ObjectStore stores bytes under a key and signs read URLs for them.
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string, metadata map[string]string) error
	Sign(ctx context.Context, key string, ttl time.Duration) (url string, expiresAt time.Time, err error)
}

// New builds the store selected by cfg.StorageDriver.
func New(ctx context.Context, cfg *config.Config) (ObjectStore, error) {
	switch cfg.StorageDriver {
	case "s3", "":
		store, err := NewS3Store(ctx, S3Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			UsePathStyle:    cfg.S3UsePathStyle,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	case "memory":
		return NewMemoryStore("memory://" + cfg.AppName), nil
	default:
		return nil, fmt.Errorf("%w: unknown storage driver %q", ErrNotConfigured, cfg.StorageDriver)
	}
}
