// Package cmd holds the qbank subcommands and the runtime they share.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gravitrone/qbank/internal/api"
	"github.com/gravitrone/qbank/internal/catalog"
	"github.com/gravitrone/qbank/internal/config"
	"github.com/gravitrone/qbank/internal/logging"
	"github.com/gravitrone/qbank/internal/prefs"
)

// Options carries the root flags that override the config file.
type Options struct {
	Source   string
	PageSize int
}

// Env is the runtime of one command invocation.
type Env struct {
	Config *config.Config
	Logger *logging.Logger
	Source api.Source
	KV     *prefs.BadgerKV
}

// LoadEnv reads the config, applies flag overrides and opens the log file
// and the preference store. A missing config file is not an error.
func LoadEnv(opts *Options) (*Env, error) {
	cfg, err := config.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if opts != nil {
		if s := strings.TrimSpace(opts.Source); s != "" {
			cfg.DataSource = s
		}
		if opts.PageSize > 0 {
			cfg.PageSize = opts.PageSize
		}
	}

	logger, err := logging.New(config.Dir(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	kv, err := prefs.OpenBadger(cfg.StoreDir, logger.Logger)
	if err != nil {
		logger.Close()
		return nil, err
	}

	return &Env{
		Config: cfg,
		Logger: logger,
		Source: api.NewSource(cfg.DataSource),
		KV:     kv,
	}, nil
}

// Close releases the preference store and the log file.
func (e *Env) Close() error {
	var errs []error
	if e.KV != nil {
		if err := e.KV.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close preference store: %w", err))
		}
	}
	if err := e.Logger.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Engine loads the records and builds an engine persisting into kv.
func (e *Env) Engine(ctx context.Context, kv prefs.KV) (*catalog.Engine, error) {
	records, err := e.Source.Load(ctx)
	if err != nil {
		return nil, err
	}
	store := catalog.NewStore(records)
	e.Logger.Debug("questions loaded", "count", store.Len())
	return catalog.NewEngine(store, prefs.NewStore(kv, e.Logger.Logger),
		catalog.WithPageSize(e.Config.PageSize),
		catalog.WithLogger(e.Logger.Logger),
	), nil
}

// DryRunEngine is Engine over a copy of the stored preferences, so filter
// flags never overwrite what the TUI persisted.
func (e *Env) DryRunEngine(ctx context.Context) (*catalog.Engine, error) {
	kv, err := prefs.CopyKV(e.KV)
	if err != nil {
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	return e.Engine(ctx, kv)
}
