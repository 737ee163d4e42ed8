package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Iron-Ham/tripbook/internal/errors"
	"github.com/Iron-Ham/tripbook/internal/logging"
	"github.com/Iron-Ham/tripbook/internal/trip"
)

// Exporter writes export files into a directory.
type Exporter struct {
	dir    string
	logger *logging.Logger
}

// NewExporter creates an Exporter writing into dir. An empty dir means the
// current working directory.
func NewExporter(dir string, logger *logging.Logger) *Exporter {
	if dir == "" {
		dir = "."
	}
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Exporter{dir: dir, logger: logger.WithComponent("export")}
}

// Dir returns the output directory.
func (e *Exporter) Dir() string {
	return e.dir
}

// Structured writes plan as trip-plan.json or trip-plan.yaml and returns
// the file path.
func (e *Exporter) Structured(plan *trip.Plan, format Format) (string, error) {
	if plan == nil {
		return "", errors.NewMissingPlanStateError("")
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case FormatJSON:
		err = WriteJSON(&buf, plan)
	case FormatYAML:
		err = WriteYAML(&buf, plan)
	default:
		return "", errors.NewValidationError(fmt.Sprintf("%s is not a structured format", format)).
			WithField("format").WithValue(string(format))
	}
	if err != nil {
		return "", err
	}
	return e.write(format, buf.Bytes())
}

// Visual rasterizes the rendered view and writes it as trip-plan.pdf.
func (e *Exporter) Visual(rendered string) (string, error) {
	img, clipped := Rasterize(rendered)
	if clipped > 0 {
		e.logger.Warn("rendered view taller than one page, clipping", "clipped_lines", clipped)
	}

	var buf bytes.Buffer
	if err := WritePDF(&buf, img); err != nil {
		return "", err
	}
	return e.write(FormatPDF, buf.Bytes())
}

func (e *Exporter) write(format Format, data []byte) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(e.dir, format.Filename())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", format.Filename(), err)
	}
	e.logger.Info("plan exported", "format", string(format), "path", path, "bytes", len(data))
	return path, nil
}
