package main

import (
	"io"

	"github.com/polliant/megagent-core/internal/config"
	"github.com/polliant/megagent-core/internal/tui"
	"github.com/spf13/cobra"
)

func newChatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat with the gateway from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			// The TUI owns the terminal; logs would corrupt the display.
			setupLogging(io.Discard, cfg.LogLevel)

			return tui.Run(cmd.Context(), newOrchestrator(cfg))
		},
	}
}
