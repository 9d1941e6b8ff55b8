// Package newsapi is the access layer for the news crawler backend. A Client
// owns one configured HTTP client, groups the backend's REST operations into
// Articles and Crawler, and reports every call to the hooks attached to it.
package newsapi

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client is safe for concurrent use. It keeps no state between calls.
type Client struct {
	cfg   Config
	base  string
	http  *http.Client
	hooks []Hook

	Articles *ArticleAPI
	Crawler  *CrawlerAPI
}

type options struct {
	hooks     []Hook
	transport http.RoundTripper
}

// Option customizes a Client at construction time.
type Option func(*options)

// WithHooks attaches hooks to this client instance. They run in the given order.
func WithHooks(hooks ...Hook) Option {
	return func(o *options) {
		o.hooks = append(o.hooks, hooks...)
	}
}

// WithTransport replaces the base round tripper, e.g. with an instrumented one.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) {
		o.transport = rt
	}
}

// New builds a Client. The configuration is copied and never changes afterwards.
func New(cfg Config, opts ...Option) *Client {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	cfg = cfg.clone()
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	c := &Client{
		cfg:  cfg,
		base: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: o.transport,
		},
		hooks: o.hooks,
	}
	c.Articles = &ArticleAPI{c: c}
	c.Crawler = &CrawlerAPI{c: c}
	return c
}

// Config returns a copy of the client's configuration.
func (c *Client) Config() Config {
	return c.cfg.clone()
}

func (c *Client) do(ctx context.Context, operation, method, path string) (*Result, error) {
	method = strings.ToUpper(method)
	callID := uuid.NewString()
	start := time.Now()

	for _, h := range c.hooks {
		h.BeforeRequest(ctx, RequestEvent{
			CallID:    callID,
			Operation: operation,
			Method:    method,
			Path:      path,
			Time:      start,
		})
	}

	res, apiErr := c.send(ctx, method, path)
	elapsed := time.Since(start)

	if apiErr != nil {
		for _, h := range c.hooks {
			h.OnError(ctx, ErrorEvent{
				CallID:    callID,
				Operation: operation,
				Method:    method,
				Path:      path,
				Duration:  elapsed,
				Err:       apiErr,
			})
		}
		return nil, apiErr
	}

	for _, h := range c.hooks {
		h.AfterResponse(ctx, ResponseEvent{
			CallID:     callID,
			Operation:  operation,
			Method:     method,
			Path:       path,
			StatusCode: res.StatusCode,
			Duration:   elapsed,
		})
	}
	return res, nil
}

func (c *Client) send(ctx context.Context, method, path string) (*Result, *Error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, nil)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: err.Error(), Method: method, Path: path, Err: err}
	}
	for k, v := range c.cfg.DefaultHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, transportError(method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(method, path, resp.StatusCode, resp.Header.Get("Content-Type"), body)
	}

	return &Result{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
