package config

import (
	"strings"
	"testing"
	"time"
)

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		Field:   "test.field",
		Value:   123,
		Message: "must be greater than zero",
	}

	expected := "test.field: must be greater than zero (got: 123)"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("empty errors", func(t *testing.T) {
		var errs ValidationErrors
		if errs.Error() != "" {
			t.Errorf("Error() for empty = %q, want empty string", errs.Error())
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "field1", Value: "bad", Message: "is invalid"},
			{Field: "field2", Value: -1, Message: "must be positive"},
		}
		result := errs.Error()
		if !strings.Contains(result, "2 validation errors") {
			t.Errorf("Error() should mention 2 errors: %s", result)
		}
	})
}

func TestConfig_Validate_DefaultConfig(t *testing.T) {
	if errs := Default().Validate(); len(errs) != 0 {
		t.Errorf("Default config should be valid, got: %v", errs)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*Config)
		wantField string
	}{
		{"empty base url", func(c *Config) { c.Planner.BaseURL = "" }, "planner.base_url"},
		{"relative base url", func(c *Config) { c.Planner.BaseURL = "/api" }, "planner.base_url"},
		{"ftp base url", func(c *Config) { c.Planner.BaseURL = "ftp://planner" }, "planner.base_url"},
		{"negative timeout", func(c *Config) { c.Planner.RequestTimeout = -time.Second }, "planner.request_timeout"},
		{"unknown backend", func(c *Config) { c.Store.Backend = "sqlite" }, "store.backend"},
		{"empty key", func(c *Config) { c.Store.Key = " " }, "store.key"},
		{"path key", func(c *Config) { c.Store.Key = "../plan" }, "store.key"},
		{"redis without addr", func(c *Config) { c.Store.Backend = "redis"; c.Store.Redis.Addr = "" }, "store.redis.addr"},
		{"redis negative db", func(c *Config) { c.Store.Backend = "redis"; c.Store.Redis.DB = -1 }, "store.redis.db"},
		{"redis negative ttl", func(c *Config) { c.Store.Backend = "redis"; c.Store.Redis.TTL = -time.Hour }, "store.redis.ttl"},
		{"unknown view", func(c *Config) { c.TUI.DefaultView = "budget" }, "tui.default_view"},
		{"pdf export format", func(c *Config) { c.Export.Format = "pdf" }, "export.format"},
		{"unknown export format", func(c *Config) { c.Export.Format = "csv" }, "export.format"},
		{"unknown log level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("Validate() returned %d errors, want 1: %v", len(errs), errs)
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("Field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}
}

func TestConfig_Validate_Accepts(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"memory backend", func(c *Config) { c.Store.Backend = "memory" }},
		{"redis backend", func(c *Config) { c.Store.Backend = "redis" }},
		{"yaml export", func(c *Config) { c.Export.Format = "yaml" }},
		{"yml export", func(c *Config) { c.Export.Format = "yml" }},
		{"uppercase log level", func(c *Config) { c.Logging.Level = "DEBUG" }},
		{"mixed case view", func(c *Config) { c.TUI.DefaultView = "Packing" }},
		{"empty view", func(c *Config) { c.TUI.DefaultView = "" }},
		{"no timeout", func(c *Config) { c.Planner.RequestTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if errs := cfg.Validate(); len(errs) != 0 {
				t.Errorf("Validate() = %v, want no errors", errs)
			}
		})
	}
}
