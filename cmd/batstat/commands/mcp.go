package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shiptools/shiptools/internal/mcp"
)

func mcpCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for AI agent integration",
		Long: `Start a Model Context Protocol (MCP) server on stdio transport.

The server exposes two tools AI agents can discover and invoke:
  - battery_status: current battery state as structured JSON
  - suggest_commit: conventional commit message for staged changes`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if debug {
				level = slog.LevelDebug
			}

			// stdout carries the MCP protocol; logs must go to stderr.
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			srv := mcp.NewServer(mcp.ServerDeps{Logger: logger})

			return srv.Run(cobraCmd.Context())
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging to stderr")

	return cmd
}
