// Package api implements the HTTP client for the remote documentation
// search service. Every call is a single request/response exchange: no
// retries, no caching, no connection state beyond the standard library's.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// Client issues requests against a fixed documentation service base URL,
// resolved exactly once at construction.
type Client struct {
	base       *url.URL
	httpClient *http.Client
	userAgent  string
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a Client for the given absolute base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL %q: %w", baseURL, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("base URL %q is not absolute", baseURL)
	}

	c := &Client{
		base:       u,
		httpClient: http.DefaultClient,
		userAgent:  "searchlight (https://github.com/stormlightlabs/searchlight)",
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the resolved base URL string.
func (c *Client) BaseURL() string { return c.base.String() }

// CallOptions shape a single request. Params follow the sparse rule: nil
// values and empty strings never reach the query string. Body is honored
// only for POST, which then declares a JSON content type.
type CallOptions struct {
	Method string // http.MethodGet when empty
	Params map[string]any
	Body   any
}

// Call performs one request against the service and decodes the JSON
// response into T. An empty success body yields the zero T. Failures are
// reported as *StatusError (non-2xx) or *DecodeError (invalid JSON).
func Call[T any](ctx context.Context, c *Client, path string, opts *CallOptions) (T, error) {
	var out T
	if opts == nil {
		opts = &CallOptions{}
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	u := c.base.JoinPath(path)
	u.RawQuery = encodeParams(opts.Params).Encode()
	resolved := u.String()

	var body io.Reader
	if method == http.MethodPost && opts.Body != nil {
		encoded, err := json.Marshal(opts.Body)
		if err != nil {
			return out, fmt.Errorf("encode request body for %s: %w", resolved, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, resolved, body)
	if err != nil {
		return out, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return out, fmt.Errorf("request to %s failed: %w", resolved, err)
	}
	defer resp.Body.Close()

	// Always drain the body as text before interpreting it; error bodies
	// are frequently not JSON.
	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, fmt.Errorf("read response from %s: %w", resolved, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := string(text)
		if detail == "" {
			detail = resp.Status
		}
		return out, &StatusError{URL: resolved, StatusCode: resp.StatusCode, Body: detail}
	}

	if len(text) == 0 {
		return out, nil
	}

	if err := json.Unmarshal(text, &out); err != nil {
		return out, &DecodeError{URL: resolved, Err: err}
	}

	return out, nil
}

// encodeParams assembles a query string, dropping nil values and empty
// strings. The omission is a contract with the service: an absent parameter
// and an empty one are not the same thing remotely.
func encodeParams(params map[string]any) url.Values {
	values := url.Values{}
	for key, v := range params {
		switch t := v.(type) {
		case nil:
			continue
		case string:
			if t == "" {
				continue
			}
			values.Set(key, t)
		case int:
			values.Set(key, strconv.Itoa(t))
		case float64:
			values.Set(key, strconv.FormatFloat(t, 'f', -1, 64))
		case bool:
			values.Set(key, strconv.FormatBool(t))
		default:
			values.Set(key, fmt.Sprint(t))
		}
	}
	return values
}

// SearchRequest carries the parameters of one search call.
type SearchRequest struct {
	Query      string `json:"query"`
	Tag        string `json:"tag,omitempty"`
	MaxResults int    `json:"maxResults,omitempty"`
	Post       bool   `json:"-"`
}

// Search runs a keyword search, as a GET with query parameters or as a
// POST with a JSON body when req.Post is set.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	var opts CallOptions
	if req.Post {
		opts.Method = http.MethodPost
		opts.Body = req
	} else {
		opts.Params = map[string]any{"q": req.Query}
		if req.Tag != "" {
			opts.Params["tag"] = req.Tag
		}
		if req.MaxResults > 0 {
			opts.Params["maxResults"] = req.MaxResults
		}
	}

	resp, err := Call[SearchResponse](ctx, c, "/search", &opts)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Content fetches the stored markdown body for a route.
func (c *Client) Content(ctx context.Context, route string) (*ContentResponse, error) {
	resp, err := Call[ContentResponse](ctx, c, "/content", &CallOptions{
		Params: map[string]any{"route": route},
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Indexes lists the index tags known to the service.
func (c *Client) Indexes(ctx context.Context) (*IndexListResponse, error) {
	resp, err := Call[IndexListResponse](ctx, c, "/indexes", nil)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Routes lists the content routes stored by the service.
func (c *Client) Routes(ctx context.Context) (*RouteListResponse, error) {
	resp, err := Call[RouteListResponse](ctx, c, "/list-content", nil)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Metadata fetches the service's root metadata document.
func (c *Client) Metadata(ctx context.Context) (map[string]any, error) {
	return Call[map[string]any](ctx, c, "/", nil)
}
