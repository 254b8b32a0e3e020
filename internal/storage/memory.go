package storage

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"
)

// Object is a blob held by MemoryStore.
type Object struct {
	Data        []byte
	ContentType string
	Metadata    map[string]string
}

// MemoryStore is an in-process ObjectStore for development and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	baseURL string
	objects map[string]Object
	uploads int
}

// NewMemoryStore creates an empty store whose signed URLs start with baseURL.
func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{baseURL: baseURL, objects: make(map[string]Object)}
}

// Upload stores a copy of data under key.
func (m *MemoryStore) Upload(ctx context.Context, key string, data []byte, contentType string, metadata map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	meta := make(map[string]string, len(metadata))
	for k, v := range metadata {
		meta[k] = v
	}
	m.objects[key] = Object{Data: append([]byte(nil), data...), ContentType: contentType, Metadata: meta}
	m.uploads++
	return nil
}

// Sign returns a fake URL that encodes the expiry. The key must exist.
func (m *MemoryStore) Sign(ctx context.Context, key string, ttl time.Duration) (string, time.Time, error) {
	m.mu.RLock()
	_, ok := m.objects[key]
	m.mu.RUnlock()
	if !ok {
		return "", time.Time{}, fmt.Errorf("object %s not found", key)
	}

	expiresAt := time.Now().UTC().Add(ttl)
	u := fmt.Sprintf("%s/%s?expires=%d", m.baseURL, url.PathEscape(key), expiresAt.Unix())
	return u, expiresAt, nil
}

// Get returns the object stored at key.
func (m *MemoryStore) Get(key string) (Object, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[key]
	return obj, ok
}

// Uploads reports how many Upload calls succeeded.
func (m *MemoryStore) Uploads() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.uploads
}
