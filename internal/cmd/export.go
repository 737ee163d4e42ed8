package cmd

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/tripbook/internal/errors"
	"github.com/Iron-Ham/tripbook/internal/export"
	"github.com/Iron-Ham/tripbook/internal/tui/results"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current plan",
	Long: `Export the current plan to a file.

Formats:
  json  the exact plan as indented JSON (trip-plan.json)
  yaml  the exact plan as YAML (trip-plan.yaml)
  pdf   an image of the rendered view on an A4 page (trip-plan.pdf)`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportFormatFlag string
	exportOutFlag    string
	exportViewFlag   string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportFormatFlag, "format", "f", "", "json, yaml or pdf (default from export.format)")
	exportCmd.Flags().StringVarP(&exportOutFlag, "out", "o", "", "output directory (default from export.dir)")
	exportCmd.Flags().StringVar(&exportViewFlag, "view", "", "view rendered into the pdf (default from tui.default_view)")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	d, err := loadDeps(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	format := d.exportFormat()
	if exportFormatFlag != "" {
		if format, err = export.ParseFormat(exportFormatFlag); err != nil {
			return err
		}
	}

	view := d.defaultView()
	if exportViewFlag != "" {
		v, ok := results.ParseView(exportViewFlag)
		if !ok {
			return errors.NewValidationError(fmt.Sprintf("unknown view %q (want one of: %s)",
				exportViewFlag, strings.Join(results.ValidViews(), ", "))).WithField("view").WithValue(exportViewFlag)
		}
		view = v
	}

	exporter := d.exporter
	if exportOutFlag != "" {
		exporter = export.NewExporter(exportOutFlag, d.logger)
	}

	plan, err := d.store.Require(ctx)
	if err != nil {
		return err
	}

	var path string
	if format.Structured() {
		path, err = exporter.Structured(plan, format)
	} else {
		path, err = exporter.Visual(results.NewPresenter(plan, view).Render(plainWidth))
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", path)
	return nil
}
