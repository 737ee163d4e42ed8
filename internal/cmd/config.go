package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Iron-Ham/tripbook/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View tripbook configuration",
	Long: `View tripbook configuration.

Without arguments, displays the current configuration.
Use subcommands to locate or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/tripbook/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	out := cmd.OutOrStdout()
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n\n")
	}
	return writeConfig(out, cfg)
}

func writeConfig(w io.Writer, cfg *config.Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configFile := config.ConfigFile()
	if err := initConfigFile(configFile); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	fmt.Fprintln(cmd.OutOrStdout(), "Edit this file to customize tripbook's behavior.")
	return nil
}

const configHeader = `# tripbook configuration
#
# Every key can be overridden with a TRIPBOOK_ environment variable,
# e.g. TRIPBOOK_PLANNER_BASE_URL for planner.base_url.
#
# store.backend: file, memory or redis
# tui.default_view: itinerary, places, flights, hotels or packing
# export.format: json or yaml
# logging.level: debug, info, warn or error

`

// initConfigFile writes the default configuration to path, refusing to
// overwrite an existing file.
func initConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	defer f.Close()

	if _, err := io.WriteString(f, configHeader); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return writeConfig(f, config.Default())
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	configFile := config.ConfigFile()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", configFile)
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", configFile)
	fmt.Fprintf(out, "  2. $HOME/.config/tripbook/config.yaml\n")
	fmt.Fprintf(out, "  3. ./config.yaml (current directory)\n")
	fmt.Fprintf(out, "\nData directory: %s\n", config.DataDir())
	fmt.Fprintln(out, "\nEnvironment variables: TRIPBOOK_* (e.g., TRIPBOOK_STORE_BACKEND)")
	return nil
}
