// Package upstream posts JSON to third party HTTP APIs through fiber's client.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ErrUnreachable is returned when no HTTP response was received.
var ErrUnreachable = errors.New("upstream unreachable")

// Request describes one JSON POST.
type Request struct {
	URL     string
	Query   string
	Headers map[string]string
	Body    interface{}
	Timeout time.Duration
}

// Response is the raw outcome of a request that reached the server.
type Response struct {
	Status int
	Body   []byte
}

// OK reports a 2xx status.
func (r Response) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// PostJSON sends req and returns the response. Transport failures wrap ErrUnreachable.
// The effective timeout is the smaller of req.Timeout and the context deadline.
func PostJSON(ctx context.Context, req Request) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	timeout := req.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); timeout <= 0 || remaining < timeout {
			timeout = remaining
		}
	}

	agent := fiber.Post(req.URL)
	if req.Query != "" {
		agent.QueryString(req.Query)
	}
	for k, v := range req.Headers {
		agent.Set(k, v)
	}
	if timeout > 0 {
		agent.Timeout(timeout)
	}
	agent.JSON(req.Body)

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return Response{}, fmt.Errorf("%w: %s: %v", ErrUnreachable, req.URL, errors.Join(errs...))
	}
	return Response{Status: status, Body: body}, nil
}
