package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Client is the typed HTTP client for the YouShop backend. It injects
// the bearer token on every request, classifies error responses and
// never retries mutations on its own; a failed call is surfaced to the
// caller with local state untouched.
type Client struct {
	http   *resty.Client
	logger zerolog.Logger

	mu               sync.Mutex
	token            string
	onSessionExpired func()
}

type Option func(*Client)

// WithToken seeds the client with a previously issued session token.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithSessionExpiredHandler is invoked after a 401 clears the token,
// so the caller can route the user back to login.
func WithSessionExpiredHandler(fn func()) Option {
	return func(c *Client) { c.onSessionExpired = fn }
}

func New(baseURL string, timeout time.Duration, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is empty")
	}

	c := &Client{logger: logger}
	for _, opt := range opts {
		opt(c)
	}

	c.http = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if token := c.Token(); token != "" {
				req.SetHeader("Authorization", "Bearer "+token)
			}
			return nil
		})

	return c, nil
}

func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, out any) error {
	req := c.http.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Get(path)
	return c.finish("GET", path, resp, err)
}

func (c *Client) send(ctx context.Context, method, path string, body, out any, headers map[string]string) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	for k, v := range headers {
		req.SetHeader(k, v)
	}
	resp, err := req.Execute(method, path)
	return c.finish(method, path, resp, err)
}

func (c *Client) finish(method, path string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("api call")

	if resp.IsError() {
		return c.apiError(resp)
	}
	return nil
}

func (c *Client) resetSession() {
	c.mu.Lock()
	c.token = ""
	handler := c.onSessionExpired
	c.mu.Unlock()

	c.logger.Warn().Msg("session expired, token cleared")

	if handler != nil {
		handler()
	}
}
