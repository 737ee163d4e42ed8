// Package export writes the current plan to files: a structured document
// (JSON or YAML) holding the exact plan, and a PDF holding an image of the
// rendered results view.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Iron-Ham/tripbook/internal/errors"
	"github.com/Iron-Ham/tripbook/internal/trip"
	"gopkg.in/yaml.v3"
)

// Format is an export file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatPDF  Format = "pdf"
)

// Formats returns all supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatPDF}
}

// ParseFormat parses a format name, accepting "yml" for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", errors.NewValidationError(fmt.Sprintf("unknown export format %q (want json, yaml or pdf)", s)).
		WithField("format").WithValue(s)
}

// Filename returns the fixed download name for the format.
func (f Format) Filename() string {
	return "trip-plan." + string(f)
}

// Structured reports whether the format serializes the plan itself.
func (f Format) Structured() bool {
	return f == FormatJSON || f == FormatYAML
}

// WriteJSON writes plan as indented JSON.
func WriteJSON(w io.Writer, plan *trip.Plan) error {
	if plan == nil {
		return errors.NewMissingPlanStateError("")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(plan); err != nil {
		return fmt.Errorf("encode plan as json: %w", err)
	}
	return nil
}

// WriteYAML writes plan as YAML.
func WriteYAML(w io.Writer, plan *trip.Plan) error {
	if plan == nil {
		return errors.NewMissingPlanStateError("")
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(plan); err != nil {
		return fmt.Errorf("encode plan as yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode plan as yaml: %w", err)
	}
	return nil
}
