// Package backend talks to the remote automation service over HTTP.
package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/doeshing/autopilot-go/internal/domain"
	"github.com/doeshing/autopilot-go/internal/ports"
)

var wireAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Client posts commands to the /interact and /extract endpoints.
type Client struct {
	baseURL      string
	headers      map[string]string
	httpClient   *http.Client
	logger       ports.Logger
	newRequestID func() string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithHeaders adds static headers to every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for key, value := range headers {
			c.headers[key] = value
		}
	}
}

// WithLogger routes request logs to logger.
func WithLogger(logger ports.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a client for the backend at baseURL. The client sets no
// timeout of its own; callers bound requests through the context.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		headers:      map[string]string{},
		httpClient:   &http.Client{},
		logger:       nopLogger{},
		newRequestID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend address without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Submit implements ports.AutomationBackend.
func (c *Client) Submit(ctx context.Context, req domain.AutomationRequest) (domain.AutomationResult, error) {
	payload, err := wireAPI.Marshal(req.Body())
	if err != nil {
		return domain.AutomationResult{}, err
	}

	endpoint := c.baseURL + req.Mode.Endpoint()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.AutomationResult{}, err
	}
	requestID := c.newRequestID()
	httpReq.Header.Set("content-type", "application/json")
	httpReq.Header.Set("accept", "application/json")
	for key, value := range c.headers {
		httpReq.Header.Set(key, value)
	}
	httpReq.Header.Set(domain.RequestIDHeader, requestID)

	fields := map[string]interface{}{
		"endpoint":   endpoint,
		"mode":       req.Mode.String(),
		"request_id": requestID,
	}
	c.logger.Debug("posting command", fields)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("backend request failed", err, fields)
		return domain.AutomationResult{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.AutomationResult{}, fmt.Errorf("read %s response: %w", req.Mode, err)
	}
	fields["status_code"] = resp.StatusCode
	fields["duration_ms"] = time.Since(start).Milliseconds()
	fields["bytes"] = len(body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Message:    backendMessage(body),
		}
		c.logger.Error("backend returned non-2xx", statusErr, fields)
		return domain.AutomationResult{}, statusErr
	}

	result, err := domain.DecodeResult(body)
	if err != nil {
		c.logger.Error("backend returned malformed body", err, fields)
		return domain.AutomationResult{}, fmt.Errorf("decode %s response: %w", req.Mode, err)
	}

	fields["status"] = string(result.Status)
	fields["kind"] = string(result.Kind())
	c.logger.Info("backend responded", fields)
	return result, nil
}

// Ping reports whether anything answers at the base URL. Any HTTP response,
// whatever its status, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

// StatusError is returned when the backend answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Status     string
	// Message is the backend's own error text, when its body carried one.
	Message string
}

func (e *StatusError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	if e.Message == "" {
		return "backend returned " + status
	}
	return fmt.Sprintf("backend returned %s: %s", status, e.Message)
}

// backendMessage pulls "error" or "message" out of an error body.
func backendMessage(body []byte) string {
	for _, key := range []string{"error", "message"} {
		value := wireAPI.Get(body, key)
		if value.ValueType() == jsoniter.StringValue {
			if text := strings.TrimSpace(value.ToString()); text != "" {
				return text
			}
		}
	}
	return ""
}

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warn(string, map[string]interface{})         {}
func (nopLogger) Error(string, error, map[string]interface{}) {}

var (
	_ ports.AutomationBackend = (*Client)(nil)
	_ ports.BackendProbe      = (*Client)(nil)
)
