// Package backend is the HTTP client for the story platform's REST API.
// Every request goes through a transport that attaches the caller's bearer
// token, and every 401 invalidates the caller's session before the error
// reaches the calling code.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// TokenSource yields the bearer token for a request context, empty when
// the caller is anonymous.
type TokenSource interface {
	Token(ctx context.Context) string
}

type Options struct {
	BaseURL string
	Tokens  TokenSource

	// OnUnauthorized runs for every 401 response before ErrUnauthorized
	// is returned to the caller. It is the session invalidation hook.
	OnUnauthorized func(ctx context.Context)

	Log *zap.Logger
}

type Client struct {
	base           string
	http           *http.Client
	onUnauthorized func(ctx context.Context)
	log            *zap.Logger
}

func New(opts Options) *Client {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		base: strings.TrimSuffix(opts.BaseURL, "/"),
		http: &http.Client{
			Transport: &authTransport{tokens: opts.Tokens},
		},
		onUnauthorized: opts.OnUnauthorized,
		log:            log,
	}
}

// envelope is the uniform response wrapper the backend uses everywhere.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// Page is the paginated payload shape inside the envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalElements int64 `json:"totalElements"`
}

func (c *Client) call(ctx context.Context, method, path string, query url.Values, body any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	return c.decode(ctx, resp)
}

func (c *Client) decode(ctx context.Context, resp *http.Response) (*envelope, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	env := &envelope{}
	// Error bodies are not guaranteed to be JSON, so a decode failure
	// here only loses the message, not the status.
	_ = json.Unmarshal(raw, env)

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized(ctx)
		}
		return nil, ErrUnauthorized
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Status: resp.StatusCode, Message: env.Message}
	}

	return env, nil
}

func request[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var out T

	env, err := c.call(ctx, method, path, query, body)
	if err != nil {
		return out, err
	}

	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, &out); err != nil {
			return out, fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
		}
	}

	return out, nil
}

func get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	return request[T](ctx, c, http.MethodGet, path, query, nil)
}

func pageQuery(page, size int) url.Values {
	if page < 0 {
		page = 0
	}
	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	v.Set("size", strconv.Itoa(size))
	return v
}

var ErrUnauthorized = errors.New("backend: unauthorized")

// Error is a non-2xx backend response carrying the envelope message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend: status %d", e.Status)
}

// Message extracts the backend's structured message from err, falling
// back to the given string when there is none.
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
