// Package client is a typed Go client for the Video Catalog API.
//
// Every call takes a context and performs exactly one HTTP request; nothing
// retries automatically. Responses are unwrapped from the API's { data }
// envelope, and error bodies are mapped to the package's sentinel errors.
package client

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
	"sync/atomic"
	"time"
)

const defaultTimeout = 15 * time.Second

// Config holds configuration for the catalog client
type Config struct {
	// BaseURL is the root of the API, e.g. http://localhost:8080
	BaseURL string

	// Timeout applies when no custom HTTPClient is given. Default: 15s
	Timeout time.Duration

	// HTTPClient overrides the default client (for testing or custom
	// transports)
	HTTPClient *http.Client
}

// Client talks to a Video Catalog API server
type Client struct {
	baseURL    string
	httpClient *http.Client

	// listGen orders list requests so late responses from superseded
	// requests can be discarded
	listGen atomic.Int64
}

// New creates a catalog client for the given server
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}, nil
}

// dataEnvelope is the success envelope every endpoint uses
type dataEnvelope struct {
	Data json.RawMessage `json:"data"`
}

// do performs one request and decodes the { data } envelope into out.
// A nil out discards the payload.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr errorBody
		_ = json.Unmarshal(raw, &apiErr)
		return mapError(resp.StatusCode, apiErr)
	}

	if out == nil {
		return nil
	}

	var envelope dataEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("decoding response data: %w", err)
	}
	return nil
}
