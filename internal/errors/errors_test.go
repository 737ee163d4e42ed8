package errors

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

// -----------------------------------------------------------------------------
// Severity Tests
// -----------------------------------------------------------------------------

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityDebug, "debug"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.severity.String(); got != tt.want {
				t.Errorf("Severity.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// ValidationError Tests
// -----------------------------------------------------------------------------

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			name: "message only",
			err:  NewValidationError("origin is required"),
			want: "validation error: origin is required",
		},
		{
			name: "with field",
			err:  NewValidationError("origin is required").WithField("origin"),
			want: "validation error [field=origin]: origin is required",
		},
		{
			name: "with field and value",
			err:  NewValidationError("bad date").WithField("start_date").WithValue("2024-13-01"),
			want: "validation error [field=start_date, value=2024-13-01]: bad date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Is(t *testing.T) {
	err := NewValidationError("destination is required").WithField("destination")
	wrapped := fmt.Errorf("building spec: %w", err)

	if !errors.Is(wrapped, ErrInvalidInput) {
		t.Error("errors.Is(wrapped, ErrInvalidInput) = false, want true")
	}
	if errors.Is(wrapped, ErrRequestFailed) {
		t.Error("errors.Is(wrapped, ErrRequestFailed) = true, want false")
	}

	var ve *ValidationError
	if !errors.As(wrapped, &ve) {
		t.Fatal("errors.As(wrapped, *ValidationError) = false, want true")
	}
	if ve.Field != "destination" {
		t.Errorf("Field = %q, want %q", ve.Field, "destination")
	}
	if ve.IsRetryable() {
		t.Error("IsRetryable() = true, want false")
	}
}

// -----------------------------------------------------------------------------
// RequestFailedError Tests
// -----------------------------------------------------------------------------

func TestRequestFailedError(t *testing.T) {
	err := NewRequestFailedError("Trip not found").WithStatus(404)

	if got, want := err.Error(), "request failed [status=404]: Trip not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrRequestFailed) {
		t.Error("errors.Is(err, ErrRequestFailed) = false, want true")
	}
	if errors.Is(err, ErrGenerationFailed) {
		t.Error("errors.Is(err, ErrGenerationFailed) = true, want false")
	}
	if !err.IsRetryable() {
		t.Error("IsRetryable() = false, want true")
	}
	if err.Severity() != SeverityError {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityError)
	}
}

func TestNewTimeoutError(t *testing.T) {
	err := NewTimeoutError("plan request", 2*time.Minute)

	if !errors.Is(err, ErrTimeout) {
		t.Error("errors.Is(err, ErrTimeout) = false, want true")
	}
	if !errors.Is(err, ErrRequestFailed) {
		t.Error("errors.Is(err, ErrRequestFailed) = false, want true")
	}
	if got, want := UserMessage(err), "plan request timed out after 2m0s"; got != want {
		t.Errorf("UserMessage() = %q, want %q", got, want)
	}
}

// -----------------------------------------------------------------------------
// GenerationFailedError Tests
// -----------------------------------------------------------------------------

func TestGenerationFailedError(t *testing.T) {
	err := NewGenerationFailedError("no flights found")

	if got, want := err.Error(), "generation failed: no flights found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrGenerationFailed) {
		t.Error("errors.Is(err, ErrGenerationFailed) = false, want true")
	}

	err = err.WithRunID("run-1")
	if got, want := err.Error(), "generation failed [run=run-1]: no flights found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

// -----------------------------------------------------------------------------
// MissingPlanStateError Tests
// -----------------------------------------------------------------------------

func TestMissingPlanStateError(t *testing.T) {
	err := NewMissingPlanStateError("currentPlan")

	if !errors.Is(err, ErrMissingPlan) {
		t.Error("errors.Is(err, ErrMissingPlan) = false, want true")
	}
	if err.IsUserFacing() {
		t.Error("IsUserFacing() = true, want false")
	}
	if GetSeverity(err) != SeverityInfo {
		t.Errorf("GetSeverity() = %v, want %v", GetSeverity(err), SeverityInfo)
	}
}

// -----------------------------------------------------------------------------
// Classification Helper Tests
// -----------------------------------------------------------------------------

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"request failed", NewRequestFailedError("Destination not supported").WithStatus(422), "Destination not supported"},
		{"generation failed", fmt.Errorf("submit: %w", NewGenerationFailedError("no flights found")), "no flights found"},
		{"validation", NewValidationError("origin is required"), "origin is required"},
		{"plain error", errors.New("boom"), genericAlert},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"request failed", NewRequestFailedError("x"), true},
		{"validation", NewValidationError("x"), false},
		{"bare timeout", fmt.Errorf("wait: %w", ErrTimeout), true},
		{"plain", errors.New("x"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsUserFacing(t *testing.T) {
	if IsUserFacing(nil) {
		t.Error("IsUserFacing(nil) = true, want false")
	}
	if !IsUserFacing(NewGenerationFailedError("x")) {
		t.Error("IsUserFacing(GenerationFailedError) = false, want true")
	}
	if IsUserFacing(errors.New("internal")) {
		t.Error("IsUserFacing(plain) = true, want false")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ctx") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	err := Wrapf(ErrMissingPlan, "loading %s", "currentPlan")
	if !errors.Is(err, ErrMissingPlan) {
		t.Error("Wrapf should preserve the chain")
	}
	if got, want := err.Error(), "loading currentPlan: no current plan"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
