package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/polliant/megagent-core/internal/config"
	"github.com/polliant/megagent-core/internal/observability"
	"github.com/polliant/megagent-core/internal/server"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			setupLogging(os.Stderr, cfg.LogLevel)

			shutdownTracing, err := observability.SetupTracing(cmd.Context(), observability.TracingConfig{
				Enabled:  cfg.TracingEnabled,
				Endpoint: cfg.TracingEndpoint,
			})
			if err != nil {
				return err
			}
			defer func() {
				if err := shutdownTracing(context.Background()); err != nil {
					slog.Warn("tracing shutdown", "error", err)
				}
			}()

			srv, err := server.NewServer(server.Config{
				Logger:  slog.Default(),
				Gateway: newOrchestrator(cfg),
			})
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			slog.Info("gateway listening", "addr", cfg.Addr)
			return srv.ListenAndServe(ctx, cfg.Addr)
		},
	}
}
