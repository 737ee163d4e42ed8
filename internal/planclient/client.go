// Package planclient talks to the external trip-planning service.
package planclient

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Iron-Ham/tripbook/internal/errors"
	"github.com/Iron-Ham/tripbook/internal/logging"
	"github.com/Iron-Ham/tripbook/internal/trip"
	"github.com/xeipuuv/gojsonschema"
)

const (
	// DefaultBaseURL is where the planning service listens in local development.
	DefaultBaseURL = "http://localhost:8000"

	// DefaultTimeout bounds a single request. Plan generation is slow, so
	// this is generous; it exists so a hung request cannot pin the wizard
	// in its loading state forever.
	DefaultTimeout = 3 * time.Minute

	// maxBodyBytes caps how much of a response we read.
	maxBodyBytes = 8 << 20
)

// Fallback messages when the service gives no usable explanation.
const (
	msgSubmitFailed     = "Failed to generate plan"
	msgGenerationFailed = "Plan generation failed"
	msgListFailed       = "Failed to load saved trips"
	msgGetFailed        = "Failed to load trip"
)

//go:embed schema.json
var planSchemaJSON string

// Client defines the operations tripbook needs from the planning service.
type Client interface {
	// Submit sends a planning request and returns the generated plan.
	Submit(ctx context.Context, spec trip.Spec) (*trip.Plan, error)
	// ListTrips returns previously saved trips.
	ListTrips(ctx context.Context) ([]trip.Summary, error)
	// GetTrip returns a previously saved plan by id.
	GetTrip(ctx context.Context, id string) (*trip.Plan, error)
}

// HTTPClient implements Client over the service's JSON HTTP API.
type HTTPClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	logger     *logging.Logger
	schema     *gojsonschema.Schema
}

// ClientOption configures an HTTPClient.
type ClientOption func(*HTTPClient)

// WithBaseURL sets the service root, e.g. "http://localhost:8000".
func WithBaseURL(base string) ClientOption {
	return func(c *HTTPClient) {
		c.baseURL = strings.TrimRight(base, "/")
	}
}

// WithTimeout sets the per-request deadline. Zero disables it.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(logger *logging.Logger) ClientOption {
	return func(c *HTTPClient) {
		if logger != nil {
			c.logger = logger.WithComponent("planclient")
		}
	}
}

// New creates an HTTPClient. It fails only if the embedded response schema
// cannot be compiled.
func New(opts ...ClientOption) (*HTTPClient, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(planSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("compile plan schema: %w", err)
	}

	c := &HTTPClient{
		baseURL:    DefaultBaseURL,
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
		logger:     logging.NopLogger(),
		schema:     schema,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// submitResponse is the body of POST /plan.
type submitResponse struct {
	Status string          `json:"status"`
	RunID  string          `json:"run_id"`
	Error  string          `json:"error"`
	Plan   json.RawMessage `json:"plan"`
}

// tripResponse is the body of GET /trips/{id}.
type tripResponse struct {
	RunID string          `json:"run_id"`
	Plan  json.RawMessage `json:"plan"`
}

// errorResponse covers the failure shapes the service produces.
type errorResponse struct {
	Detail json.RawMessage `json:"detail"`
	Error  json.RawMessage `json:"error"`
}

// Submit sends spec to POST /plan. It makes exactly one attempt.
//
// Failures are *errors.RequestFailedError for transport problems, non-2xx
// statuses and unusable bodies, and *errors.GenerationFailedError when the
// service reports that planning itself failed.
func (c *HTTPClient) Submit(ctx context.Context, spec trip.Spec) (*trip.Plan, error) {
	body, err := json.Marshal(spec)
	if err != nil {
		return nil, errors.NewRequestFailedError(msgSubmitFailed).WithCause(err)
	}

	c.logger.Info("submitting plan request",
		"origin", spec.Origin,
		"destination", spec.Destination,
		"travelers", spec.Travelers,
	)

	start := time.Now()
	status, data, err := c.do(ctx, http.MethodPost, "/plan", body)
	if err != nil {
		c.logger.Warn("plan request failed", "error", err, "elapsed", time.Since(start))
		return nil, err
	}
	if !isSuccess(status) {
		msg := errorMessage(data, msgSubmitFailed)
		c.logger.Warn("plan request rejected", "status", status, "message", msg)
		return nil, errors.NewRequestFailedError(msg).WithStatus(status)
	}

	var resp submitResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, errors.NewRequestFailedError("invalid plan response: " + err.Error()).WithStatus(status)
	}

	if resp.Status == "failed" {
		msg := resp.Error
		if msg == "" {
			msg = msgGenerationFailed
		}
		c.logger.Warn("plan generation failed", "run_id", resp.RunID, "message", msg)
		return nil, errors.NewGenerationFailedError(msg).WithRunID(resp.RunID)
	}

	plan, err := c.decodePlan(resp.Plan)
	if err != nil {
		return nil, errors.NewRequestFailedError(err.Error()).WithStatus(status)
	}
	plan.FillEndpoints(spec)

	c.logger.Info("plan received",
		"run_id", resp.RunID,
		"days", len(plan.Itinerary),
		"elapsed", time.Since(start),
	)
	return plan, nil
}

// ListTrips fetches GET /trips.
func (c *HTTPClient) ListTrips(ctx context.Context) ([]trip.Summary, error) {
	status, data, err := c.do(ctx, http.MethodGet, "/trips", nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, errors.NewRequestFailedError(errorMessage(data, msgListFailed)).WithStatus(status)
	}

	var trips []trip.Summary
	if err := json.Unmarshal(data, &trips); err != nil {
		return nil, errors.NewRequestFailedError("invalid trips response: " + err.Error()).WithStatus(status)
	}
	if trips == nil {
		trips = []trip.Summary{}
	}
	return trips, nil
}

// GetTrip fetches GET /trips/{id}.
func (c *HTTPClient) GetTrip(ctx context.Context, id string) (*trip.Plan, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.NewValidationError("trip id is required").WithField("id")
	}

	status, data, err := c.do(ctx, http.MethodGet, "/trips/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, errors.NewRequestFailedError(errorMessage(data, msgGetFailed)).WithStatus(status)
	}

	var resp tripResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, errors.NewRequestFailedError("invalid trip response: " + err.Error()).WithStatus(status)
	}
	plan, err := c.decodePlan(resp.Plan)
	if err != nil {
		return nil, errors.NewRequestFailedError(err.Error()).WithStatus(status)
	}
	if plan.TripID == "" {
		plan.TripID = resp.RunID
	}
	return plan, nil
}

// do performs one request under the configured timeout and returns the
// status code and body.
func (c *HTTPClient) do(ctx context.Context, method, path string, body []byte) (int, []byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, errors.NewRequestFailedError("create request").WithCause(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return 0, nil, errors.NewTimeoutError(method+" "+path, c.timeout)
		}
		return 0, nil, errors.NewRequestFailedError("Could not reach the planning service").WithCause(err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return 0, nil, errors.NewTimeoutError(method+" "+path, c.timeout)
		}
		return 0, nil, errors.NewRequestFailedError("read response").WithStatus(resp.StatusCode).WithCause(err)
	}

	c.logger.Debug("planning service response", "method", method, "path", path, "status", resp.StatusCode, "bytes", len(data))
	return resp.StatusCode, data, nil
}

// decodePlan validates raw against the plan schema and decodes it into a
// normalized Plan. Day numbering problems are logged, not fatal.
func (c *HTTPClient) decodePlan(raw json.RawMessage) (*trip.Plan, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("invalid plan response: missing plan")
	}

	result, err := c.schema.Validate(gojsonschema.NewBytesLoader(trimmed))
	if err != nil {
		return nil, fmt.Errorf("invalid plan response: %w", err)
	}
	if !result.Valid() {
		problems := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			problems = append(problems, e.String())
		}
		return nil, fmt.Errorf("invalid plan response: %s", strings.Join(problems, "; "))
	}

	var plan trip.Plan
	if err := json.Unmarshal(trimmed, &plan); err != nil {
		return nil, fmt.Errorf("invalid plan response: %w", err)
	}
	plan.Normalize()

	if err := plan.CheckDays(); err != nil {
		c.logger.Warn("plan has inconsistent day numbers", "error", err)
	}
	return &plan, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

// errorMessage extracts a human-readable message from a failure body:
// a string detail, then detail.error, then a top-level error, then fallback.
func errorMessage(body []byte, fallback string) string {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fallback
	}

	if s, ok := asString(resp.Detail); ok {
		return s
	}
	if len(resp.Detail) > 0 {
		var nested errorResponse
		if err := json.Unmarshal(resp.Detail, &nested); err == nil {
			if s, ok := asString(nested.Error); ok {
				return s
			}
		}
	}
	if s, ok := asString(resp.Error); ok {
		return s
	}
	return fallback
}

// asString reports whether raw is a non-empty JSON string.
func asString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}
