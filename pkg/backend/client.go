package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"tripfinder/pkg/logger"
)

// RemoteFetchError is returned for any backend call that fails or answers non-2xx.
type RemoteFetchError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *RemoteFetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("remote fetch %s: status %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("remote fetch %s: %v", e.Endpoint, e.Err)
}

func (e *RemoteFetchError) Unwrap() error { return e.Err }

// Client talks to the travel agency REST backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     logger.Logger
}

func NewClient(httpClient *http.Client, baseURL string, log logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     log,
	}
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("failed to build backend request", logger.Field{Key: "error", Value: err})
		return &RemoteFetchError{Endpoint: path, Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RemoteFetchError{Endpoint: path, Err: fmt.Errorf("external api call failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return &RemoteFetchError{Endpoint: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RemoteFetchError{Endpoint: path, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}
