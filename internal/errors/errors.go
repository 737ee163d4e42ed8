// Package errors provides the error taxonomy for tripbook: sentinel errors,
// typed errors for each failure class a planning session can hit, and
// classification helpers used at the UI boundary.
//
// # Error Types
//
// Four typed errors cover everything the user can see:
//   - ValidationError: a wizard field is missing or inconsistent. Handled
//     inline at the form and never sent to the planning service.
//   - RequestFailedError: transport failure, timeout, non-2xx status, or a
//     response whose shape cannot be used.
//   - GenerationFailedError: the planning service answered successfully but
//     reported that it could not produce a plan.
//   - MissingPlanStateError: the results screen was opened without a stored
//     plan. Callers redirect to the wizard instead of displaying it.
//
// # Usage
//
//	err := errors.NewRequestFailedError("Destination not supported").WithStatus(422)
//
//	if errors.Is(err, errors.ErrRequestFailed) { ... }
//
//	var genErr *errors.GenerationFailedError
//	if errors.As(err, &genErr) { ... }
//
//	alert := errors.UserMessage(err)
package errors

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Planning sentinel errors
var (
	// ErrInvalidInput indicates that wizard input validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrRequestFailed indicates the planning request did not complete.
	ErrRequestFailed = New("plan request failed")
	// ErrGenerationFailed indicates the planning service could not build a plan.
	ErrGenerationFailed = New("plan generation failed")
	// ErrMissingPlan indicates that no current plan is stored.
	ErrMissingPlan = New("no current plan")
	// ErrTimeout indicates that an operation timed out.
	ErrTimeout = New("operation timed out")
)

// Data quality sentinel errors
var (
	// ErrDuplicateDay indicates two itinerary days share a day number.
	ErrDuplicateDay = New("duplicate day number")
	// ErrInvalidDay indicates a day number below 1.
	ErrInvalidDay = New("invalid day number")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// TripError is the base interface for all tripbook errors.
type TripError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRetryable returns true if the user may simply submit again.
	IsRetryable() bool

	// IsUserFacing returns true if the message is safe to show in an alert.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	retryable  bool
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Message returns the message without the cause chain.
func (e *baseError) Message() string {
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsRetryable returns whether the error is retryable.
func (e *baseError) IsRetryable() bool {
	return e.retryable
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// -----------------------------------------------------------------------------
// ValidationError
// -----------------------------------------------------------------------------

// ValidationError represents a bad or missing wizard field.
//
// Example:
//
//	err := errors.NewValidationError("start date must not be after end date").
//		WithField("dates").WithValue("2024-06-05 to 2024-06-01")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	prefix := "validation error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("validation error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if target == ErrInvalidInput {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// RequestFailedError
// -----------------------------------------------------------------------------

// RequestFailedError represents a planning request that did not produce a
// usable response: transport failure, timeout, or non-2xx status.
//
// Example:
//
//	err := errors.NewRequestFailedError("Graph workflow not initialized").WithStatus(500)
//	fmt.Println(err) // "request failed [status=500]: Graph workflow not initialized"
type RequestFailedError struct {
	baseError
	Status int
}

// NewRequestFailedError creates a new RequestFailedError.
func NewRequestFailedError(message string) *RequestFailedError {
	return &RequestFailedError{
		baseError: baseError{
			message:    message,
			severity:   SeverityError,
			retryable:  true,
			userFacing: true,
		},
	}
}

// WithStatus records the HTTP status code, if one was received.
func (e *RequestFailedError) WithStatus(status int) *RequestFailedError {
	e.Status = status
	return e
}

// WithCause adds a cause to the error.
func (e *RequestFailedError) WithCause(cause error) *RequestFailedError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *RequestFailedError) Error() string {
	prefix := "request failed"
	if e.Status != 0 {
		prefix = fmt.Sprintf("request failed [status=%d]", e.Status)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *RequestFailedError) Is(target error) bool {
	if _, ok := target.(*RequestFailedError); ok {
		return true
	}
	if target == ErrRequestFailed {
		return true
	}
	return e.baseError.Is(target)
}

// NewTimeoutError creates a RequestFailedError for a request that exceeded
// its deadline. It matches both ErrRequestFailed and ErrTimeout.
func NewTimeoutError(operation string, duration time.Duration) *RequestFailedError {
	return NewRequestFailedError(fmt.Sprintf("%s timed out after %s", operation, duration)).
		WithCause(ErrTimeout)
}

// -----------------------------------------------------------------------------
// GenerationFailedError
// -----------------------------------------------------------------------------

// GenerationFailedError represents a planning service that answered the
// request but reported an internal planning failure.
type GenerationFailedError struct {
	baseError
	RunID string
}

// NewGenerationFailedError creates a new GenerationFailedError.
func NewGenerationFailedError(message string) *GenerationFailedError {
	return &GenerationFailedError{
		baseError: baseError{
			message:    message,
			severity:   SeverityError,
			retryable:  true,
			userFacing: true,
		},
	}
}

// WithRunID records the service run identifier, if one was returned.
func (e *GenerationFailedError) WithRunID(id string) *GenerationFailedError {
	e.RunID = id
	return e
}

// Error returns the formatted error message.
func (e *GenerationFailedError) Error() string {
	if e.RunID != "" {
		return fmt.Sprintf("generation failed [run=%s]: %s", e.RunID, e.message)
	}
	return fmt.Sprintf("generation failed: %s", e.message)
}

// Is checks if this error matches the target.
func (e *GenerationFailedError) Is(target error) bool {
	if _, ok := target.(*GenerationFailedError); ok {
		return true
	}
	if target == ErrGenerationFailed {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// MissingPlanStateError
// -----------------------------------------------------------------------------

// MissingPlanStateError is returned when the results screen is requested
// but no plan is stored. It is never shown as an error; callers redirect.
type MissingPlanStateError struct {
	baseError
	Key string
}

// NewMissingPlanStateError creates a new MissingPlanStateError for the store key.
func NewMissingPlanStateError(key string) *MissingPlanStateError {
	return &MissingPlanStateError{
		baseError: baseError{
			message:    "no stored plan",
			severity:   SeverityInfo,
			retryable:  false,
			userFacing: false,
		},
		Key: key,
	}
}

// Error returns the formatted error message.
func (e *MissingPlanStateError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("missing plan state [key=%s]: %s", e.Key, e.message)
	}
	return fmt.Sprintf("missing plan state: %s", e.message)
}

// Is checks if this error matches the target.
func (e *MissingPlanStateError) Is(target error) bool {
	if _, ok := target.(*MissingPlanStateError); ok {
		return true
	}
	return target == ErrMissingPlan
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable returns true if the user may submit the same request again.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var tripErr TripError
	if As(err, &tripErr) {
		return tripErr.IsRetryable()
	}

	return Is(err, ErrTimeout)
}

// IsUserFacing returns true if the error message is safe to display to end users.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var tripErr TripError
	if As(err, &tripErr) {
		return tripErr.IsUserFacing()
	}

	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement TripError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var tripErr TripError
	if As(err, &tripErr) {
		return tripErr.Severity()
	}

	return SeverityError
}

// genericAlert is shown when an error carries no user-safe message.
const genericAlert = "Failed to generate plan. Please try again."

// UserMessage returns the text shown in the single submission alert.
// Request and generation failures show the service's message; anything
// else collapses to a generic retry prompt.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var validation *ValidationError
	if As(err, &validation) {
		return validation.message
	}
	var request *RequestFailedError
	if As(err, &request) {
		return request.message
	}
	var generation *GenerationFailedError
	if As(err, &generation) {
		return generation.message
	}

	return genericAlert
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
