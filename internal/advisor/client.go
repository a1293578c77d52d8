package advisor

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

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/muurk/agri-advisor/internal/logging"
	"github.com/muurk/agri-advisor/internal/version"
)

const (
	// DefaultTimeout is the fixed client-side deadline for one query
	DefaultTimeout = 30 * time.Second

	// AskPath is the backend endpoint, relative to the base URL
	AskPath = "/api/ask"

	// RequestIDHeader carries a per-submit UUID for backend log correlation
	RequestIDHeader = "X-Request-ID"

	// maxResponseSize bounds how much of a response body is read
	maxResponseSize = 4 << 20

	tracerName = "github.com/muurk/agri-advisor/internal/advisor"
)

// Client sends questions to an Agri-Advisor backend
type Client struct {
	// BaseURL is the backend base URL (e.g., "http://localhost:5000")
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// Timeout bounds each call to Ask, including reading the body
	Timeout time.Duration

	// UserAgent is sent with every request
	UserAgent string
}

// NewClient creates a client for the backend at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
		Timeout:    DefaultTimeout,
		UserAgent:  "agri-advisor/" + version.Version,
	}
}

// SetTimeout sets the per-query deadline
func (c *Client) SetTimeout(timeout time.Duration) {
	c.Timeout = timeout
}

// Endpoint returns the full URL of the ask endpoint
func (c *Client) Endpoint() string {
	return strings.TrimRight(c.BaseURL, "/") + AskPath
}

// Ask sends one question to the backend and returns its answer.
// Exactly one HTTP request is made; failures are never retried.
// Every returned error is a *QueryError.
func (c *Client) Ask(ctx context.Context, input QueryInput) (*QueryResult, error) {
	// Invalid input never reaches the network
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// The deadline covers connecting, sending and reading the body
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Correlates this query with the backend's logs
	requestID := uuid.NewString()

	ctx, span := otel.Tracer(tracerName).Start(ctx, "advisor.Ask",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("agri.request_id", requestID),
			attribute.String("agri.location", input.Location),
			attribute.String("http.url", c.Endpoint()),
		),
	)
	defer span.End()

	// Single attempt; failures are reported, never retried
	result, err := c.askAttempt(ctx, input, requestID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logging.Warn("Query failed",
			zap.String("request_id", requestID),
			zap.String("endpoint", c.Endpoint()),
			zap.Error(err),
		)
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	logging.Debug("Query answered",
		zap.String("request_id", requestID),
		zap.String("summary", result.Summary()),
	)
	return result, nil
}

// askAttempt performs the single request for Ask
func (c *Client) askAttempt(ctx context.Context, input QueryInput, requestID string) (*QueryResult, error) {
	// Build JSON request body
	body, err := json.Marshal(input)
	if err != nil {
		return nil, NewUnknownError(0, fmt.Errorf("failed to encode request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, NewUnknownError(0, fmt.Errorf("failed to create POST request: %w", err))
	}

	// Set headers
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set(RequestIDHeader, requestID)
	// Carry the trace context to the backend
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	logging.LogRequest(requestID, req.Method, req.URL.String(), input.Location)

	// Send request
	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, ClassifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	// Read response body (bounded)
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, ClassifyTransportError(err)
	}

	// A deadline that fired while the body was being read still wins
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return nil, NewTimeoutError(ctxErr)
		}
		return nil, NewUnknownError(resp.StatusCode, ctxErr)
	}

	logging.LogResponse(requestID, resp.StatusCode, len(data), time.Since(start))
	logging.LogBody("Response body", data)

	return decodeResponse(resp.StatusCode, data)
}

// decodeResponse turns a received body into a result or a QueryError.
// An "error" field wins over the status code; a non-2xx status without
// one is unknown.
func decodeResponse(statusCode int, data []byte) (*QueryResult, error) {
	// Check for an error payload first
	var payload errorPayload
	if err := json.Unmarshal(data, &payload); err == nil && strings.TrimSpace(payload.Error) != "" {
		return nil, NewApplicationError(statusCode, payload.Error)
	}

	// Non-2xx without an error message
	if statusCode < 200 || statusCode >= 300 {
		return nil, NewUnknownError(statusCode, fmt.Errorf("unexpected status code: %d", statusCode))
	}

	// Objects the backend omits stay missing rather than zero
	result := newQueryResult()
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, NewUnknownError(statusCode, fmt.Errorf("failed to parse JSON response: %w", err))
	}

	return &result, nil
}
