// Package gateway wraps outbound HTTP requests to the exchange service with
// a fixed timeout and failure classification.
//
// Transport failures (timeout, refused connection, DNS) surface as
// *NetworkError and 5xx responses as *ServerError; both mean "the service is
// unreachable or broken" and are worth retrying. 4xx responses are returned
// as ordinary responses because the service encodes application-level
// rejections in their bodies, and those are the caller's to interpret.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds every request. There is no retry and no cancellation
// beyond this.
const DefaultTimeout = 30 * time.Second

// NetworkError is a transport-level failure: the request never produced an
// HTTP response.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error calling %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a 5xx response: the service answered but is malfunctioning.
type ServerError struct {
	URL        string
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error %d from %s", e.StatusCode, e.URL)
}

// Response is a non-5xx HTTP response with its body fully read.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports a 2xx status.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Client issues JSON requests against a fixed base URL.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// New returns a gateway for baseURL. A nil logger is replaced with a nop.
func New(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		logger:  logger,
	}
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Do sends one request. A non-nil body is JSON-encoded; a non-empty apiKey
// is sent as a bearer credential.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any, apiKey string) (*Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed", zap.String("method", method), zap.String("url", u), zap.Error(err))
		return nil, &NetworkError{URL: u, Err: err}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: u, Err: err}
	}

	if resp.StatusCode >= 500 {
		c.logger.Warn("server error", zap.String("url", u), zap.Int("status", resp.StatusCode))
		return nil, &ServerError{URL: u, StatusCode: resp.StatusCode}
	}

	return &Response{StatusCode: resp.StatusCode, Body: b}, nil
}
