package cmd

import (
	"context"
	"fmt"

	"github.com/Iron-Ham/tripbook/internal/tui"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Open the current plan, or the trip wizard if there is none",
	Args:  cobra.NoArgs,
	RunE:  runStart,
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a new trip with the wizard",
	Long: `Open the trip wizard. When the planning service returns a plan it
replaces the current plan and the results screen opens.`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(planCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	return launch(cmd.Context(), false)
}

func runPlan(cmd *cobra.Command, args []string) error {
	return launch(cmd.Context(), true)
}

func launch(ctx context.Context, wizardFirst bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	d, err := loadDeps(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	d.logger.Info("starting tui", "wizard_first", wizardFirst)
	app := tui.New(ctx, tui.Options{
		Store:         d.store,
		Client:        d.client,
		Exporter:      d.exporter,
		DefaultView:   d.defaultView(),
		ExportFormat:  d.exportFormat(),
		Logger:        d.logger,
		StartInWizard: wizardFirst,
	})
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
