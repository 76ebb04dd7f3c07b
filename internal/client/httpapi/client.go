// Package httpapi implements api.AuthAPI over the backend's HTTP JSON API.
//
// Every response body is the envelope described in package api. Transport
// failures and bodies that are not an envelope are reported as
// api.ErrUnavailable.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/codirector/internal/client/api"
	"github.com/dmitrijs2005/codirector/internal/client/models"
	"github.com/dmitrijs2005/codirector/internal/logging"
)

const (
	DefaultBaseURL = "http://localhost:3001/api"
	DefaultTimeout = 15 * time.Second
)

// TokenSource returns the bearer token to send, or "" for none.
type TokenSource func() string

type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
	log     logging.Logger
}

var _ api.AuthAPI = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.token = ts }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   func() string { return "" },
		log:     logging.Nop{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthSession, error) {
	return call[*api.AuthSession](ctx, c, http.MethodPost, "/auth/login", req)
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := call[json.RawMessage](ctx, c, http.MethodPost, "/auth/logout", nil)
	return err
}

func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*models.UserProfile, error) {
	return call[*models.UserProfile](ctx, c, http.MethodPost, "/auth/register", req)
}

func (c *Client) FetchUserProfile(ctx context.Context) (*models.UserProfile, error) {
	return call[*models.UserProfile](ctx, c, http.MethodGet, "/auth/me", nil)
}

// Ping checks that the backend answers its health route.
func (c *Client) Ping(ctx context.Context) error {
	_, err := call[json.RawMessage](ctx, c, http.MethodGet, "/health", nil)
	return err
}

func call[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var zero T

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return zero, fmt.Errorf("encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return zero, fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "backend request failed", "method", method, "path", path, "error", err)
		return zero, fmt.Errorf("%w: %w", api.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var env api.Response[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.log.Warn(ctx, "backend response is not an envelope",
			"method", method, "path", path, "status", resp.StatusCode, "error", err)
		return zero, fmt.Errorf("%w: %s %s returned %d", api.ErrUnavailable, method, path, resp.StatusCode)
	}
	if err := env.Err(); err != nil {
		return zero, err
	}
	return env.Data, nil
}
