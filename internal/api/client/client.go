// Package client provides a thin HTTP client for the price alert API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
)

const csrfHeader = "x-csrf-token"

// Client is a thin HTTP client for the price alert API. Mutating calls
// fetch an anti-forgery token on first use; the secret cookie that backs
// it is held in the client's cookie jar.
type Client struct {
	baseURL    string
	httpClient *http.Client
	csrfToken  string
}

// New creates a new API client targeting the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		jar, _ := cookiejar.New(nil)
		c.httpClient = &http.Client{Jar: jar}
	}
	return c
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client. It should carry a cookie jar,
// or mutating calls will fail the anti-forgery check.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// tokenResponse is the body of GET /csrf-token.
type tokenResponse struct {
	Success   bool   `json:"success"`
	CSRFToken string `json:"csrfToken"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// Token fetches a fresh anti-forgery token and caches it for subsequent
// mutating calls.
func (c *Client) Token(ctx context.Context) (string, error) {
	var resp tokenResponse
	if err := c.get(ctx, "/csrf-token", &resp); err != nil {
		return "", err
	}
	c.csrfToken = resp.CSRFToken
	return resp.CSRFToken, nil
}

// ensureToken fetches a token if none is cached yet.
func (c *Client) ensureToken(ctx context.Context) error {
	if c.csrfToken != "" {
		return nil
	}
	_, err := c.Token(ctx)
	return err
}

// get performs a GET request and decodes the JSON response into dst.
func (c *Client) get(ctx context.Context, path string, dst any) error {
	return c.do(ctx, http.MethodGet, path, nil, dst)
}

// post performs a POST request with a JSON body and decodes the response
// into dst. The anti-forgery token travels in the request header.
func (c *Client) post(ctx context.Context, path string, body, dst any) error {
	if err := c.ensureToken(ctx); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, body, dst)
}

func (c *Client) do(ctx context.Context, method, path string, body, dst any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet && c.csrfToken != "" {
		req.Header.Set(csrfHeader, c.csrfToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isConnectionRefused(err) {
			return fmt.Errorf("API server not running at %s", c.baseURL)
		}
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("API error (HTTP %d): %s", resp.StatusCode, string(respBody))
	}

	if dst != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, dst); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

func isConnectionRefused(err error) bool {
	return strings.Contains(err.Error(), "connection refused") ||
		strings.Contains(err.Error(), "connect: connection refused")
}
