// Package apiclient talks to the Niko Free backend REST API. The backend
// owns authentication, event storage, bookings and payments; this package
// only issues requests and decodes responses.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nikofree-web/internal/metrics"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// maxErrorBody caps how much of an error response is read
const maxErrorBody = 64 << 10

// APIError is a non-2xx response from the backend
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// StatusOf returns the HTTP status carried by err, or 0
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// MessageOf returns the server-provided message carried by err, or fallback
func MessageOf(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// Client is the backend REST client
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logrus.Logger
	metrics *metrics.Metrics
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the logger used for upstream call logging
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics sets the collectors upstream calls are recorded in
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New creates a client for the API rooted at baseURL
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request describes one upstream call
type request struct {
	endpoint string // metrics label
	method   string
	path     string
	token    string
	body     interface{}
}

func (c *Client) newRequest(ctx context.Context, req request) (*http.Request, error) {
	var body io.Reader
	if req.body != nil {
		payload, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s request: %w", req.endpoint, err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", req.endpoint, err)
	}

	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}
	httpReq.Header.Set("X-Request-ID", requestID(ctx))

	return httpReq, nil
}

// send performs the request and returns the response when its status is 2xx.
// The caller closes the body.
func (c *Client) send(ctx context.Context, req request) (*http.Response, error) {
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	elapsed := time.Since(start)

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	c.observe(req.endpoint, status, elapsed)

	entry := c.logger.WithFields(logrus.Fields{
		"endpoint":    req.endpoint,
		"method":      req.method,
		"path":        req.path,
		"status":      status,
		"duration_ms": elapsed.Milliseconds(),
		"request_id":  httpReq.Header.Get("X-Request-ID"),
	})

	if err != nil {
		entry.WithError(err).Warn("api request failed")
		return nil, fmt.Errorf("failed to send %s request: %w", req.endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		apiErr := decodeAPIError(resp)
		entry.WithField("error", apiErr.Message).Warn("api request rejected")
		return nil, apiErr
	}

	entry.Debug("api request")
	return resp, nil
}

// do performs the request and decodes a JSON body into out (when non-nil)
func (c *Client) do(ctx context.Context, req request, out interface{}) error {
	resp, err := c.send(ctx, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", req.endpoint, err)
	}
	return nil
}

func (c *Client) observe(endpoint string, status int, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.APIRequests.WithLabelValues(endpoint, metrics.StatusClass(status)).Inc()
	c.metrics.APILatency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// decodeAPIError reads the backend's {"error": ...} or {"message": ...} body
func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Msg     string `json:"msg"`
	}
	if json.Unmarshal(body, &payload) == nil {
		switch {
		case payload.Error != "":
			apiErr.Message = payload.Error
		case payload.Message != "":
			apiErr.Message = payload.Message
		case payload.Msg != "":
			apiErr.Message = payload.Msg
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
	}
	return apiErr
}

// requestID forwards the incoming request id, or mints one
func requestID(ctx context.Context) string {
	if id := chimiddleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
