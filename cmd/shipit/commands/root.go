// Package commands wires the shipit CLI.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/shiptools/shiptools/internal/config"
	"github.com/shiptools/shiptools/internal/gitcmd"
	"github.com/shiptools/shiptools/internal/shipit"
	"github.com/shiptools/shiptools/pkg/version"
)

// NewRootCommand builds the shipit root command. Running it without a
// subcommand executes the commit flow.
func NewRootCommand() *cobra.Command {
	var (
		opts       shipit.Options
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "shipit",
		Short: "Stage, classify, commit, and push in one step",
		Long: `Shipit derives a conventional commit message from the staged
changes, asks for confirmation, then commits and pushes.

The proposed message can be accepted, edited, or replaced at the prompt.
Pass --ai to generate the message with a language model instead of the
built-in classification rules.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			flow := &shipit.Flow{
				Config: cfg,
				Git:    &gitcmd.Runner{DryRun: opts.DryRun, Out: cmd.OutOrStdout()},
				In:     cmd.InOrStdin(),
				Out:    cmd.OutOrStdout(),
			}

			return flow.Run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Message, "message", "m", "", "use this commit message verbatim")
	cmd.Flags().BoolVarP(&opts.AutoStage, "auto", "a", false, "stage all changes before committing")
	cmd.Flags().BoolVar(&opts.UseAI, "ai", false, "generate the message with a language model")
	cmd.Flags().StringVar(&opts.Model, "model", "", "model for --ai (default from config)")
	cmd.Flags().BoolVarP(&opts.Edit, "edit", "e", false, "open the proposed message in an editor")
	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "preview git commands without running them")
	cmd.Flags().StringVar(&opts.Branch, "branch", "", "push branch (default: current branch)")
	cmd.Flags().StringVar(&opts.Remote, "remote", "", "push remote (default from config)")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "skip the confirmation prompt")
	cmd.Flags().BoolVar(&opts.NoVerify, "no-verify", false, "bypass commit hooks")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(versionCmd())

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(os.Stdout, version.String("shipit"))
		},
	}
}
