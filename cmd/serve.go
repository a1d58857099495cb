package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/worksheet/internal/config"
	"github.com/abhisek/worksheet/internal/render"
	"github.com/abhisek/worksheet/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, map[string]string{"addr": "server.addr"})
		if err != nil {
			return err
		}
		defer e.Close()

		pool, err := e.loadPool()
		if err != nil {
			return err
		}
		templates, err := e.loadTemplates()
		if err != nil {
			return err
		}
		st, err := e.openStore()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		registry := render.NewRegistry(e.renderConfig(), e.log)
		runner, err := e.printRunner(ctx, registry, true)
		if err != nil {
			return err
		}

		// The engine override can change without a restart.
		e.manager.OnChange(func(cfg *config.Config) {
			registry.SetEnvOverride(cfg.Render.Engine)
			e.log.Info("config reloaded", "render_engine", cfg.Render.Engine)
		})
		e.manager.WatchConfig()

		srv := server.New(server.Deps{
			Works:     st,
			Pool:      pool,
			Templates: templates,
			Jobs:      runner,
			Log:       e.log,
		})
		e.log.Info("starting server", "tasks", pool.Len(), "templates", templates.Len())
		return srv.Run(ctx, e.cfg.Server.Addr)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides WORKSHEET_SERVER_ADDR)")
}
