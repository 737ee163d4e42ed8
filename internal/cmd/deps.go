package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/Iron-Ham/tripbook/internal/config"
	"github.com/Iron-Ham/tripbook/internal/export"
	"github.com/Iron-Ham/tripbook/internal/logging"
	"github.com/Iron-Ham/tripbook/internal/planclient"
	"github.com/Iron-Ham/tripbook/internal/store"
	"github.com/Iron-Ham/tripbook/internal/tui/results"
	"github.com/google/uuid"
)

// deps holds the collaborators built from configuration for one command run.
type deps struct {
	cfg      *config.Config
	logger   *logging.Logger
	store    *store.PlanStore
	client   *planclient.HTTPClient
	exporter *export.Exporter

	closers []io.Closer
}

// loadDeps reads configuration and wires the store, client, exporter and
// logger. Callers must Close the result.
func loadDeps(ctx context.Context) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return newDeps(ctx, cfg)
}

func newDeps(ctx context.Context, cfg *config.Config) (*deps, error) {
	d := &deps{cfg: cfg}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	d.logger = logger
	d.closers = append(d.closers, logger)

	backend, err := openBackend(ctx, cfg.Store)
	if err != nil {
		d.Close()
		return nil, err
	}
	if c, ok := backend.(io.Closer); ok {
		d.closers = append(d.closers, c)
	}
	d.store = store.NewPlanStore(backend,
		store.WithKey(cfg.Store.Key),
		store.WithLogger(logger),
	)

	d.client, err = planclient.New(
		planclient.WithBaseURL(cfg.Planner.BaseURL),
		planclient.WithTimeout(cfg.Planner.RequestTimeout),
		planclient.WithLogger(logger),
	)
	if err != nil {
		d.Close()
		return nil, err
	}

	d.exporter = export.NewExporter(cfg.Export.Dir, logger)

	logger.Debug("dependencies ready",
		"store_backend", cfg.Store.Backend,
		"planner", cfg.Planner.BaseURL,
	)
	return d, nil
}

// newLogger returns the run's logger, tagged with a fresh session id.
// Disabled logging yields a logger that discards everything.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if !cfg.Logging.Enabled {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewLogger(config.DataDir(), logging.ParseLevel(cfg.Logging.Level))
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return logger.WithSession(uuid.NewString()), nil
}

func openBackend(ctx context.Context, cfg config.StoreConfig) (store.Backend, error) {
	switch cfg.Backend {
	case "memory":
		return store.NewMemoryBackend(), nil
	case "redis":
		backend, err := store.NewRedisBackend(ctx, store.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TTL:      cfg.Redis.TTL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		return backend, nil
	default:
		backend, err := store.NewFileBackend(cfg.StoreDir())
		if err != nil {
			return nil, fmt.Errorf("failed to open plan store: %w", err)
		}
		return backend, nil
	}
}

func (d *deps) defaultView() results.View {
	v, _ := results.ParseView(d.cfg.TUI.DefaultView)
	return v
}

func (d *deps) exportFormat() export.Format {
	f, err := export.ParseFormat(d.cfg.Export.Format)
	if err != nil {
		return export.FormatJSON
	}
	return f
}

// Close releases every resource in reverse order of acquisition.
func (d *deps) Close() {
	for i := len(d.closers) - 1; i >= 0; i-- {
		_ = d.closers[i].Close()
	}
	d.closers = nil
}
