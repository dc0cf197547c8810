package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/rxtrade/binance-stream/apicode"
)

// HTTPError represents a non-2xx reply from the venue. When the body carried
// the venue's {"code","msg"} payload, API holds the classified code; Body
// keeps the raw bytes either way.
type HTTPError struct {
	StatusCode int
	API        *apicode.APIError
	Body       []byte
}

func (e *HTTPError) Error() string {
	if e.API != nil {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.API.Error())
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, statusReason(e.StatusCode))
}

func (e *HTTPError) Unwrap() error {
	if e.API != nil {
		return e.API
	}
	return nil
}

// IsRetryable returns true if the error should trigger a retry.
func (e *HTTPError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}

// statusReason spells out the venue's meaning for the statuses it assigns
// beyond their plain HTTP reading.
func statusReason(status int) string {
	switch status {
	case http.StatusForbidden:
		return "blocked by web application firewall"
	case http.StatusTeapot:
		return "ip address banned after repeated rate limit violations"
	case http.StatusTooManyRequests:
		return "request rate limit reached"
	case http.StatusServiceUnavailable:
		return "request timed out inside the venue; execution state unknown"
	default:
		return http.StatusText(status)
	}
}

// doRequest performs a single HTTP request against the market's API.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values) ([]byte, error) {
	fullURL := c.baseURL + c.market.pathPrefix() + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-MBX-APIKEY", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		httpErr := &HTTPError{StatusCode: resp.StatusCode, Body: body}
		// 4xx and 5xx bodies usually carry a {"code","msg"} payload; the
		// firewall and ban statuses do not.
		if apiErr, err := apicode.Parse(body, c.market.codeTable()); err == nil {
			httpErr.API = apiErr
		}
		return nil, httpErr
	}

	return body, nil
}

// doWithRetry performs a request with exponential backoff retry.
func (c *Client) doWithRetry(ctx context.Context, method, path string, query url.Values) ([]byte, error) {
	var lastErr error
	backoff := c.retryBackoff

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// Add jitter: backoff * (0.5 to 1.5)
			jitter := backoff/2 + time.Duration(rand.Int63n(int64(backoff)))
			c.logger.Debug("retrying request",
				"attempt", attempt,
				"backoff", jitter,
				"path", path,
			)

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(jitter):
			}

			backoff *= 2
		}

		body, err := c.doRequest(ctx, method, path, query)
		if err == nil {
			return body, nil
		}

		lastErr = err

		httpErr, ok := err.(*HTTPError)
		if !ok || !httpErr.IsRetryable() {
			return nil, err
		}
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

// get performs a GET request with retries and decodes the JSON reply.
func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	body, err := c.doWithRetry(ctx, http.MethodGet, path, query)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}

// do performs a request with retries for methods with empty replies or
// replies decoded by the caller.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, result any) error {
	body, err := c.doWithRetry(ctx, method, path, query)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}
