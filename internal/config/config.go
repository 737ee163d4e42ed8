package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete tripbook configuration
type Config struct {
	Planner PlannerConfig `mapstructure:"planner" yaml:"planner"`
	Store   StoreConfig   `mapstructure:"store" yaml:"store"`
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Export  ExportConfig  `mapstructure:"export" yaml:"export"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// PlannerConfig controls how the planning service is reached
type PlannerConfig struct {
	// BaseURL is the planning service root, e.g. "http://localhost:8000"
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
	// RequestTimeout bounds a single request. Plan generation is slow, so
	// the default is minutes rather than seconds. 0 disables the timeout.
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`
}

// StoreConfig controls where the current plan is kept
type StoreConfig struct {
	// Backend is one of "file", "memory", "redis"
	Backend string `mapstructure:"backend" yaml:"backend"`
	// Dir is the file backend directory (default: the data directory)
	Dir string `mapstructure:"dir" yaml:"dir"`
	// Key names the stored plan
	Key   string      `mapstructure:"key" yaml:"key"`
	Redis RedisConfig `mapstructure:"redis" yaml:"redis"`
}

// RedisConfig configures the redis backend
type RedisConfig struct {
	Addr     string `mapstructure:"addr" yaml:"addr"`
	Password string `mapstructure:"password" yaml:"password"`
	DB       int    `mapstructure:"db" yaml:"db"`
	// TTL expires the stored plan; 0 keeps it until cleared
	TTL time.Duration `mapstructure:"ttl" yaml:"ttl"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// DefaultView is the results tab shown first
	DefaultView string `mapstructure:"default_view" yaml:"default_view"`
}

// ExportConfig controls plan exports
type ExportConfig struct {
	// Dir receives exported files (default: current directory)
	Dir string `mapstructure:"dir" yaml:"dir"`
	// Format is the structured export format bound to the "e" key
	Format string `mapstructure:"format" yaml:"format"`
}

// LoggingConfig controls debug logging
type LoggingConfig struct {
	// Enabled writes debug.log into the data directory
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is one of "debug", "info", "warn", "error"
	Level string `mapstructure:"level" yaml:"level"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Planner: PlannerConfig{
			BaseURL:        "http://localhost:8000",
			RequestTimeout: 3 * time.Minute,
		},
		Store: StoreConfig{
			Backend: "file",
			Dir:     "",
			Key:     "currentPlan",
			Redis: RedisConfig{
				Addr: "localhost:6379",
				DB:   0,
				TTL:  0,
			},
		},
		TUI: TUIConfig{
			DefaultView: "itinerary",
		},
		Export: ExportConfig{
			Dir:    ".",
			Format: "json",
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Planner defaults
	viper.SetDefault("planner.base_url", defaults.Planner.BaseURL)
	viper.SetDefault("planner.request_timeout", defaults.Planner.RequestTimeout)

	// Store defaults
	viper.SetDefault("store.backend", defaults.Store.Backend)
	viper.SetDefault("store.dir", defaults.Store.Dir)
	viper.SetDefault("store.key", defaults.Store.Key)
	viper.SetDefault("store.redis.addr", defaults.Store.Redis.Addr)
	viper.SetDefault("store.redis.password", defaults.Store.Redis.Password)
	viper.SetDefault("store.redis.db", defaults.Store.Redis.DB)
	viper.SetDefault("store.redis.ttl", defaults.Store.Redis.TTL)

	// TUI defaults
	viper.SetDefault("tui.default_view", defaults.TUI.DefaultView)

	// Export defaults
	viper.SetDefault("export.dir", defaults.Export.Dir)
	viper.SetDefault("export.format", defaults.Export.Format)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// StoreDir returns the file backend directory, falling back to DataDir.
func (c *StoreConfig) StoreDir() string {
	if c.Dir != "" {
		return c.Dir
	}
	return DataDir()
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tripbook")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tripbook"
	}
	return filepath.Join(home, ".config", "tripbook")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// DataDir returns the directory holding the stored plan and debug log
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "tripbook")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tripbook"
	}
	return filepath.Join(home, ".local", "share", "tripbook")
}
