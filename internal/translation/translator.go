// Package translation routes CV translation requests to the configured providers.
package translation

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable means the provider could not be reached.
	ErrUnavailable = errors.New("translation provider unavailable")
	// ErrBadResponse means the provider answered with an unusable body.
	ErrBadResponse = errors.New("translation provider returned an invalid response")
	// ErrFailed means the provider answered with a non-2xx status.
	ErrFailed = errors.New("translation provider request failed")
)

// Translator translates every text field of a CV.
type Translator interface {
	TranslateCV(ctx context.Context, cv CV, source, target string) (*CV, error)
}
