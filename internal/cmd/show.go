package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Iron-Ham/tripbook/internal/errors"
	"github.com/Iron-Ham/tripbook/internal/trip"
	"github.com/Iron-Ham/tripbook/internal/tui"
	"github.com/Iron-Ham/tripbook/internal/tui/results"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const plainWidth = 100

const missingPlanNotice = "No current plan. Run `tripbook plan` to create one."

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current plan",
	Long: `Show the current plan on the results screen.

With --plain, or when stdout is not a terminal, the selected view is printed
instead of opening the interactive screen.

Views: ` + strings.Join(results.ValidViews(), ", "),
	Args: cobra.NoArgs,
	RunE: runShow,
}

var (
	showView  string
	showPlain bool
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showView, "view", "", "view to show (default from tui.default_view)")
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "print the view instead of opening the TUI")
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	d, err := loadDeps(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	view := d.defaultView()
	if showView != "" {
		v, ok := results.ParseView(showView)
		if !ok {
			return errors.NewValidationError(fmt.Sprintf("unknown view %q (want one of: %s)",
				showView, strings.Join(results.ValidViews(), ", "))).WithField("view").WithValue(showView)
		}
		view = v
	}

	out := cmd.OutOrStdout()
	interactive := !showPlain && term.IsTerminal(int(os.Stdout.Fd()))

	plan, err := d.store.Require(ctx)
	if errors.Is(err, errors.ErrMissingPlan) {
		d.logger.Info("show: no current plan")
		fmt.Fprintln(out, missingPlanNotice)
		if !interactive {
			return nil
		}
		return tui.New(ctx, tui.Options{
			Store:         d.store,
			Client:        d.client,
			Exporter:      d.exporter,
			DefaultView:   view,
			ExportFormat:  d.exportFormat(),
			Logger:        d.logger,
			StartInWizard: true,
		}).Run()
	}
	if err != nil {
		return err
	}

	if !interactive {
		return renderPlain(out, plan, view, terminalWidth())
	}
	return tui.New(ctx, tui.Options{
		Store:        d.store,
		Client:       d.client,
		Exporter:     d.exporter,
		DefaultView:  view,
		ExportFormat: d.exportFormat(),
		Logger:       d.logger,
	}).Run()
}

// renderPlain writes one view of plan, heading and budget summary included.
func renderPlain(w io.Writer, plan *trip.Plan, view results.View, width int) error {
	p := results.NewPresenter(plan, view)
	_, err := fmt.Fprintln(w, p.Render(width))
	return err
}

// terminalWidth returns the stdout width, or plainWidth when stdout is not
// a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return plainWidth
}
