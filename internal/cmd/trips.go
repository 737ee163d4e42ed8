package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Iron-Ham/tripbook/internal/trip"
	"github.com/spf13/cobra"
)

var tripsCmd = &cobra.Command{
	Use:   "trips",
	Short: "List trips saved by the planning service",
	Args:  cobra.NoArgs,
	RunE:  runTrips,
}

var tripsOpenCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Make a saved trip the current plan",
	Args:  cobra.ExactArgs(1),
	RunE:  runTripsOpen,
}

func init() {
	rootCmd.AddCommand(tripsCmd)
	tripsCmd.AddCommand(tripsOpenCmd)
}

func runTrips(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	d, err := loadDeps(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	trips, err := d.client.ListTrips(ctx)
	if err != nil {
		return err
	}
	return printTrips(cmd.OutOrStdout(), trips)
}

func printTrips(w io.Writer, trips []trip.Summary) error {
	if len(trips) == 0 {
		_, err := fmt.Fprintln(w, "No saved trips yet.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDESTINATION\tTITLE")
	for _, t := range trips {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, t.Destination, t.Title)
	}
	return tw.Flush()
}

func runTripsOpen(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	d, err := loadDeps(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	plan, err := d.client.GetTrip(ctx, args[0])
	if err != nil {
		return err
	}
	if err := d.store.Save(ctx, plan); err != nil {
		return err
	}
	d.logger.Info("opened saved trip", "trip_id", args[0])
	fmt.Fprintf(cmd.OutOrStdout(), "Trip %s is now the current plan. Run `tripbook show` to view it.\n", args[0])
	return nil
}
