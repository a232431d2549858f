// Package rest implements the types.Gateway interface over a hosted
// PostgREST-style CRUD service: tables are addressed by name under
// /rest/v1/, ordering uses order=column.direction query parameters, and
// row selection uses column=eq.value filters.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/universal-funeral/columbary/pkg/types"
)

const basePath = "/rest/v1/"

// retry parameters for transient gateway failures.
const (
	maxRetries = 3
	baseDelay  = 250 * time.Millisecond
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// Client talks to the remote gateway. The api key is sent both as the
// apikey header and as a bearer token, as the hosted service expects.
type Client struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL and api key.
func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("rest: base URL is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("rest: invalid base URL: %w", err)
	}
	c := &Client{
		baseURL: parsed,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Select returns all rows of the table matching opts.
func (c *Client) Select(ctx context.Context, table string, opts types.SelectOptions) ([]types.Row, error) {
	q := url.Values{}
	q.Set("select", "*")
	if opts.OrderBy != "" {
		dir := "asc"
		if opts.Descending {
			dir = "desc"
		}
		q.Set("order", opts.OrderBy+"."+dir)
	}
	for column, value := range opts.Equals {
		q.Set(column, "eq."+value)
	}

	body, err := c.do(ctx, http.MethodGet, table, q, nil, "")
	if err != nil {
		return nil, err
	}
	var rows []types.Row
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("rest: decode select response: %w", err)
	}
	return rows, nil
}

// Insert stores the rows and returns them as stored.
func (c *Client) Insert(ctx context.Context, table string, rows []types.Row) ([]types.Row, error) {
	body, err := c.do(ctx, http.MethodPost, table, nil, rows, "return=representation")
	if err != nil {
		return nil, err
	}
	var inserted []types.Row
	if err := json.Unmarshal(body, &inserted); err != nil {
		return nil, fmt.Errorf("rest: decode insert response: %w", err)
	}
	return inserted, nil
}

// Update overwrites the given columns of the row with the given id.
func (c *Client) Update(ctx context.Context, table, id string, fields types.Row) (types.Row, error) {
	q := url.Values{}
	q.Set("id", "eq."+id)
	body, err := c.do(ctx, http.MethodPatch, table, q, fields, "return=representation")
	if err != nil {
		return nil, err
	}
	var updated []types.Row
	if err := json.Unmarshal(body, &updated); err != nil {
		return nil, fmt.Errorf("rest: decode update response: %w", err)
	}
	if len(updated) == 0 {
		return nil, types.ErrNotFound
	}
	return updated[0], nil
}

// Delete removes the row with the given id.
func (c *Client) Delete(ctx context.Context, table, id string) error {
	q := url.Values{}
	q.Set("id", "eq."+id)
	_, err := c.do(ctx, http.MethodDelete, table, q, nil, "")
	return err
}

// do issues one request with retries on transient failures and returns the
// response body. A non-2xx terminal response surfaces as *HTTPError.
func (c *Client) do(ctx context.Context, method, table string, q url.Values, payload any, prefer string) ([]byte, error) {
	ref := &url.URL{Path: basePath + table}
	if len(q) > 0 {
		ref.RawQuery = q.Encode()
	}
	fullURL := c.baseURL.ResolveReference(ref).String()

	var encoded []byte
	if payload != nil {
		var err error
		encoded, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("rest: encode request body: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleep(ctx, baseDelay<<(attempt-1)); err != nil {
				return nil, err
			}
		}

		var reqBody io.Reader
		if encoded != nil {
			reqBody = bytes.NewReader(encoded)
		}
		req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
		if err != nil {
			return nil, err
		}
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		if encoded != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if prefer != "" {
			req.Header.Set("Prefer", prefer)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("rest: read response body: %w", err)
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return body, nil
		}
		lastErr = &HTTPError{StatusCode: resp.StatusCode, Body: body}
		if !retryable(resp.StatusCode) {
			return nil, lastErr
		}
	}
	return nil, lastErr
}

// retryable reports whether the status code is worth another attempt.
func retryable(status int) bool {
	return status >= 500 || status == http.StatusTooManyRequests || status == http.StatusRequestTimeout
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
