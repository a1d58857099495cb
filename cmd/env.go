package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheet/internal/config"
	"github.com/abhisek/worksheet/internal/export"
	"github.com/abhisek/worksheet/internal/logger"
	"github.com/abhisek/worksheet/internal/measure"
	"github.com/abhisek/worksheet/internal/printjob"
	"github.com/abhisek/worksheet/internal/render"
	"github.com/abhisek/worksheet/internal/store"
	"github.com/abhisek/worksheet/internal/taskbank"
	"github.com/abhisek/worksheet/internal/variantplan"
)

// flagKeys maps persistent flags to config keys.
var flagKeys = map[string]string{
	"db":        "db",
	"pool":      "pool",
	"templates": "templates_dir",
	"log-mode":  "log.mode",
}

// env is the process-scoped infrastructure of one command invocation.
type env struct {
	manager *config.Manager
	cfg     *config.Config
	log     *logger.Logger
	closers []func() error
}

// setup loads configuration with flag overrides and builds the logger.
func setup(cmd *cobra.Command, extra map[string]string) (*env, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	m, err := config.NewManager(cfgFile)
	if err != nil {
		return nil, err
	}

	bind := func(flag, key string) error {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			return nil
		}
		return m.Viper().BindPFlag(key, f)
	}
	for flag, key := range flagKeys {
		if err := bind(flag, key); err != nil {
			return nil, err
		}
	}
	for flag, key := range extra {
		if err := bind(flag, key); err != nil {
			return nil, err
		}
	}
	if err := m.Reload(); err != nil {
		return nil, err
	}

	cfg := m.Get()
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return &env{manager: m, cfg: cfg, log: log}, nil
}

func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			e.log.Warn("close failed", "error", err)
		}
	}
	e.log.Sync()
}

// openStore opens the database: the configured path, else the default
// XDG location.
func (e *env) openStore() (*store.Store, error) {
	path := e.cfg.DB
	if path == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		path = p
	} else if err := store.EnsureDir(path); err != nil {
		return nil, err
	}

	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	e.closers = append(e.closers, st.Close)
	return st, nil
}

func (e *env) loadPool() (*taskbank.Pool, error) {
	pool, err := taskbank.LoadFile(e.cfg.Pool)
	if err != nil {
		return nil, fmt.Errorf("load task pool: %w", err)
	}
	e.log.Debug("task pool loaded", "path", e.cfg.Pool, "tasks", pool.Len())
	return pool, nil
}

func (e *env) loadTemplates() (*variantplan.Catalog, error) {
	c, err := variantplan.LoadCatalog(e.cfg.TemplatesDir)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	e.log.Debug("templates loaded", "dir", e.cfg.TemplatesDir, "count", c.Len())
	return c, nil
}

func (e *env) renderConfig() render.Config {
	rc := render.DefaultConfig()
	rc.Engine = e.cfg.Render.Engine
	rc.Timeout = e.cfg.Render.Timeout
	rc.ChromiumPath = e.cfg.Render.ChromiumPath
	if e.cfg.Render.LatexPath != "" {
		rc.LatexPath = e.cfg.Render.LatexPath
	}
	rc.Retry.Attempts = e.cfg.Render.Retries + 1
	return rc
}

// printRunner builds the print pipeline. Measurement, the shared height
// cache and export are enabled by configuration; failures to reach the
// cache only disable it.
func (e *env) printRunner(ctx context.Context, registry *render.Registry, withExport bool) (*printjob.Runner, error) {
	var opts []printjob.Option

	if e.cfg.Measure.Enabled {
		caches := []measure.Cache{measure.NewSessionCache()}
		if e.cfg.Measure.RedisURL != "" {
			rc, err := measure.NewRedisCache(e.cfg.Measure.RedisURL, e.cfg.Measure.CacheTTL)
			if err != nil {
				e.log.Warn("redis height cache disabled", "error", err)
			} else {
				caches = append(caches, rc)
				e.closers = append(e.closers, rc.Close)
			}
		}
		m := measure.NewLatexMeasurer(e.renderConfig().LatexPath, e.cfg.Measure.Timeout)
		opts = append(opts, printjob.WithHeights(measure.NewService(m, e.cfg.Measure.Timeout, e.log, caches...)))
	}

	if withExport && e.cfg.Export.Dir != "" {
		sink, err := export.Open(ctx, e.cfg.Export.Dir, e.cfg.Export.S3Region)
		if err != nil {
			return nil, fmt.Errorf("open export sink: %w", err)
		}
		opts = append(opts, printjob.WithSink(sink))
	}

	return printjob.New(registry, e.log, opts...), nil
}
