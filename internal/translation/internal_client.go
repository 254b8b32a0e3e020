package translation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"cvhub/internal/upstream"
)

// InternalClient talks to the in-house translation service.
type InternalClient struct {
	baseURL string
	timeout time.Duration
}

// NewInternalClient creates a client for the service at baseURL.
func NewInternalClient(baseURL string, timeout time.Duration) (*InternalClient, error) {
	if baseURL == "" {
		return nil, errors.New("TRANSLATION_SERVICE_URL not configured")
	}
	return &InternalClient{baseURL: strings.TrimRight(baseURL, "/"), timeout: timeout}, nil
}

type internalRequest struct {
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	CV             CV     `json:"cv"`
}

type internalResponse struct {
	Translation *CV `json:"translation"`
}

// TranslateCV sends the whole CV in one request and returns the translated copy.
func (c *InternalClient) TranslateCV(ctx context.Context, cv CV, source, target string) (*CV, error) {
	resp, err := upstream.PostJSON(ctx, upstream.Request{
		URL:     c.baseURL + "/translate",
		Body:    internalRequest{SourceLanguage: source, TargetLanguage: target, CV: cv},
		Timeout: c.timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: unable to reach translation service at %s: %v", ErrUnavailable, c.baseURL, err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("%w: translation service returned %d: %s", ErrFailed, resp.Status, string(resp.Body))
	}

	var out internalResponse
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if out.Translation == nil {
		return nil, fmt.Errorf("%w: response missing 'translation'", ErrBadResponse)
	}
	return out.Translation, nil
}
