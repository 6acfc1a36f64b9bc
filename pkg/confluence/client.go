package confluence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Config holds the connection settings of a Confluence Cloud site.
type Config struct {
	BaseURL  string // e.g. https://acme.atlassian.net (no /wiki suffix)
	Email    string
	APIToken string
}

// Client is the HTTP wrapper for the Confluence REST API.
// It issues single attempts: no retries, no circuit breaking.
type Client struct {
	baseURL    string
	email      string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a new Confluence HTTP client.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		email:      cfg.Email,
		apiToken:   cfg.APIToken,
		httpClient: &http.Client{},
	}
}

// WithHTTPClient overrides the underlying *http.Client, e.g. to bound requests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// PageURL turns a _links.webui path into a browsable URL.
func (c *Client) PageURL(webui string) string {
	return c.baseURL + WebPrefix + webui
}

// Get issues an authenticated GET and decodes a 2xx JSON body into out.
// The response headers are returned so callers can follow Link headers.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) (http.Header, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build confluence GET request: %w", err)
	}

	return c.do(httpReq, path, out)
}

// Post issues an authenticated JSON POST and decodes a 2xx JSON body into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal confluence request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build confluence POST request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	_, err = c.do(httpReq, path, out)
	return err
}

func (c *Client) do(httpReq *http.Request, path string, out any) (http.Header, error) {
	if c.baseURL == "" || c.email == "" || c.apiToken == "" {
		return nil, ErrNotConfigured
	}

	httpReq.SetBasicAuth(c.email, c.apiToken)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call confluence %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp.Header, &APIError{
			Method:     httpReq.Method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.Header, fmt.Errorf("failed to decode confluence %s response: %w", path, err)
		}
	}
	return resp.Header, nil
}
