// Package upstream is the typed HTTP client for the remote POS REST API.
// That API owns every persistent record (businesses, staff, catalog, sales);
// this service only forwards requests with the caller's bearer token and maps
// failures into a small error taxonomy.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gallegosdmz/pos-front-sub000/internal/infra"
)

// Client talks to the upstream POS API. All calls run through a circuit
// breaker so a dead upstream fast-fails instead of piling up requests.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cb         *infra.CircuitBreaker
}

func NewClient(baseURL string, timeout time.Duration, cb *infra.CircuitBreaker) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		cb:         cb,
	}
}

// do performs one authenticated JSON request. body and out may be nil.
//
// Status mapping:
//   - 401                → ErrUnauthorized
//   - 400                → *ValidationError (messages from the body)
//   - other non-2xx      → *RequestError
//   - transport failures → wrapped error (counts against the breaker)
//
// Client errors (4xx) do not count as breaker failures — the upstream is
// healthy, the request was just bad.
func (c *Client) do(ctx context.Context, token, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("upstream: marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("upstream: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	var apiErr error
	execErr := c.cb.Execute(func() error {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("upstream: request failed: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("upstream: read response: %w", err)
		}

		switch {
		case resp.StatusCode >= 500:
			msgs := parseMessage(data)
			msg := ""
			if len(msgs) > 0 {
				msg = msgs[0]
			}
			return &RequestError{Status: resp.StatusCode, Message: msg}

		case resp.StatusCode == http.StatusUnauthorized:
			apiErr = ErrUnauthorized
			return nil

		case resp.StatusCode == http.StatusBadRequest:
			apiErr = &ValidationError{Messages: parseMessage(data)}
			return nil

		case resp.StatusCode >= 400:
			msgs := parseMessage(data)
			msg := ""
			if len(msgs) > 0 {
				msg = msgs[0]
			}
			apiErr = &RequestError{Status: resp.StatusCode, Message: msg}
			return nil
		}

		if out != nil && len(data) > 0 {
			if err := json.Unmarshal(data, out); err != nil {
				return fmt.Errorf("upstream: decode response: %w", err)
			}
		}
		return nil
	})
	if execErr != nil {
		return execErr
	}
	return apiErr
}
