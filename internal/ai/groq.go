// Package ai wraps the LLM used for CV writing assistance.
package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"cvhub/internal/upstream"
)

var (
	// ErrNotConfigured means no API key was provided.
	ErrNotConfigured = errors.New("AI service not configured")
	// ErrUnavailable means the LLM API could not be reached.
	ErrUnavailable = errors.New("unable to reach the LLM API")
	// ErrBadResponse means the LLM API answered with an error or an unusable body.
	ErrBadResponse = errors.New("LLM API returned an invalid response")
)

// Completer produces a completion for a single user prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error)
}

// GroqClient calls the Groq OpenAI-compatible chat completions endpoint.
type GroqClient struct {
	apiKey  string
	model   string
	url     string
	timeout time.Duration
}

// NewGroqClient returns ErrNotConfigured when apiKey is empty.
func NewGroqClient(apiKey, model, url string, timeout time.Duration) (*GroqClient, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	return &GroqClient{apiKey: apiKey, model: model, url: url, timeout: timeout}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends prompt as a single user message and returns the trimmed reply.
func (c *GroqClient) Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	resp, err := upstream.PostJSON(ctx, upstream.Request{
		URL:     c.url,
		Headers: map[string]string{"Authorization": "Bearer " + c.apiKey},
		Body: chatRequest{
			Model:       c.model,
			Messages:    []chatMessage{{Role: "user", Content: prompt}},
			Temperature: temperature,
			MaxTokens:   maxTokens,
		},
		Timeout: c.timeout,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !resp.OK() {
		return "", fmt.Errorf("%w: status %d: %s", ErrBadResponse, resp.Status, string(resp.Body))
	}

	var parsed chatResponse
	if err := json.Unmarshal(resp.Body, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrBadResponse)
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
