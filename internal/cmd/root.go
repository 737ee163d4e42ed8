package cmd

import (
	"strings"

	"github.com/Iron-Ham/tripbook/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "tripbook",
	Short: "Plan trips from your terminal",
	Long: `tripbook collects your trip preferences, asks the planning service for a
complete itinerary, and presents it as tabbed views: day-by-day itinerary,
places, flights, hotels and a packing list, with a budget summary.

Running tripbook with no subcommand opens the current plan, or the trip
wizard when there is none.`,
	SilenceUsage: true,
	RunE:         runStart,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/tripbook/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	rootCmd.PersistentFlags().String("planner", "", "planning service base URL (overrides planner.base_url)")
	_ = viper.BindPFlag("planner.base_url", rootCmd.PersistentFlags().Lookup("planner"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/tripbook")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TRIPBOOK")
	// e.g., TRIPBOOK_PLANNER_BASE_URL for planner.base_url
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
