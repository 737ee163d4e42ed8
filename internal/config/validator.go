package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/Iron-Ham/tripbook/internal/export"
	"github.com/Iron-Ham/tripbook/internal/tui/results"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "store.backend")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidBackends returns the list of valid store backends
func ValidBackends() []string {
	return []string{"file", "memory", "redis"}
}

// ValidExportFormats returns the formats accepted by export.format.
// PDF is excluded: the "e" key writes a structured document.
func ValidExportFormats() []string {
	var formats []string
	for _, f := range export.Formats() {
		if f.Structured() {
			formats = append(formats, string(f))
		}
	}
	return formats
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validatePlanner()...)
	errors = append(errors, c.validateStore()...)
	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateExport()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validatePlanner() []ValidationError {
	var errors []ValidationError

	u, err := url.Parse(c.Planner.BaseURL)
	if c.Planner.BaseURL == "" || err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		errors = append(errors, ValidationError{
			Field:   "planner.base_url",
			Value:   c.Planner.BaseURL,
			Message: "must be an absolute http(s) URL",
		})
	}

	if c.Planner.RequestTimeout < 0 {
		errors = append(errors, ValidationError{
			Field:   "planner.request_timeout",
			Value:   c.Planner.RequestTimeout,
			Message: "must be non-negative",
		})
	}

	return errors
}

func (c *Config) validateStore() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidBackends(), c.Store.Backend) {
		errors = append(errors, ValidationError{
			Field:   "store.backend",
			Value:   c.Store.Backend,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidBackends(), ", ")),
		})
	}

	if strings.TrimSpace(c.Store.Key) == "" || strings.ContainsAny(c.Store.Key, `/\`) {
		errors = append(errors, ValidationError{
			Field:   "store.key",
			Value:   c.Store.Key,
			Message: "must be a non-empty name without path separators",
		})
	}

	if c.Store.Backend == "redis" {
		if c.Store.Redis.Addr == "" {
			errors = append(errors, ValidationError{
				Field:   "store.redis.addr",
				Value:   c.Store.Redis.Addr,
				Message: "is required for the redis backend",
			})
		}
		if c.Store.Redis.DB < 0 {
			errors = append(errors, ValidationError{
				Field:   "store.redis.db",
				Value:   c.Store.Redis.DB,
				Message: "must be non-negative",
			})
		}
		if c.Store.Redis.TTL < 0 {
			errors = append(errors, ValidationError{
				Field:   "store.redis.ttl",
				Value:   c.Store.Redis.TTL,
				Message: "must be non-negative",
			})
		}
	}

	return errors
}

func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.DefaultView != "" {
		if _, ok := results.ParseView(c.TUI.DefaultView); !ok {
			errors = append(errors, ValidationError{
				Field:   "tui.default_view",
				Value:   c.TUI.DefaultView,
				Message: fmt.Sprintf("must be one of: %s", strings.Join(results.ValidViews(), ", ")),
			})
		}
	}

	return errors
}

func (c *Config) validateExport() []ValidationError {
	var errors []ValidationError

	format, err := export.ParseFormat(c.Export.Format)
	if err != nil || !format.Structured() {
		errors = append(errors, ValidationError{
			Field:   "export.format",
			Value:   c.Export.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidExportFormats(), ", ")),
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
