package translation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"cvhub/internal/upstream"
)

// GoogleV2Endpoint is used when no explicit endpoint is configured.
const GoogleV2Endpoint = "https://translation.googleapis.com/language/translate/v2"

// ExternalClient talks to a Google Translate v2 compatible API with key auth.
type ExternalClient struct {
	endpoint string
	apiKey   string
	timeout  time.Duration
}

// NewExternalClient creates a client. An empty endpoint selects GoogleV2Endpoint.
func NewExternalClient(endpoint, apiKey string, timeout time.Duration) (*ExternalClient, error) {
	if apiKey == "" {
		return nil, errors.New("EXTERNAL_TRANSLATION_API_KEY not configured")
	}
	if endpoint == "" {
		endpoint = GoogleV2Endpoint
	}
	return &ExternalClient{endpoint: strings.TrimRight(endpoint, "/"), apiKey: apiKey, timeout: timeout}, nil
}

type googleRequest struct {
	Q      []string `json:"q"`
	Source string   `json:"source"`
	Target string   `json:"target"`
	Format string   `json:"format"`
}

type googleResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// TranslateCV flattens the CV's text fields into one batch, translates it and
// writes the results back in the same order. Nothing is sent when the CV has no text.
func (c *ExternalClient) TranslateCV(ctx context.Context, cv CV, source, target string) (*CV, error) {
	out := cv.Clone()
	b := collect(&out)
	if len(b.texts) == 0 {
		return &out, nil
	}

	translated, err := c.translateTexts(ctx, b.texts, source, target)
	if err != nil {
		return nil, err
	}
	b.scatter(translated)
	return &out, nil
}

func (c *ExternalClient) translateTexts(ctx context.Context, texts []string, source, target string) ([]string, error) {
	resp, err := upstream.PostJSON(ctx, upstream.Request{
		URL:     c.endpoint,
		Query:   "key=" + url.QueryEscape(c.apiKey),
		Body:    googleRequest{Q: texts, Source: source, Target: target, Format: "text"},
		Timeout: c.timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: unable to reach translation API at %s: %v", ErrUnavailable, c.endpoint, err)
	}
	if !resp.OK() {
		return nil, fmt.Errorf("%w: translation API returned %d: %s", ErrFailed, resp.Status, string(resp.Body))
	}

	var parsed googleResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if len(parsed.Data.Translations) != len(texts) {
		return nil, fmt.Errorf("%w: expected %d translations, got %d", ErrBadResponse, len(texts), len(parsed.Data.Translations))
	}

	out := make([]string, len(texts))
	for i, t := range parsed.Data.Translations {
		out[i] = t.TranslatedText
	}
	return out, nil
}
