package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Discard the current plan",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	d, err := loadDeps(ctx)
	if err != nil {
		return err
	}
	defer d.Close()

	if err := d.store.Clear(ctx); err != nil {
		return err
	}
	d.logger.Info("cleared current plan")
	fmt.Fprintln(cmd.OutOrStdout(), "Cleared the current plan.")
	return nil
}
