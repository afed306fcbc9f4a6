// Package commands wires the batstat CLI.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shiptools/shiptools/internal/battery"
	"github.com/shiptools/shiptools/internal/config"
	"github.com/shiptools/shiptools/internal/ios"
	"github.com/shiptools/shiptools/internal/render"
	"github.com/shiptools/shiptools/pkg/version"
)

// ErrConflictingFormats indicates more than one output format flag was set.
var ErrConflictingFormats = errors.New("choose at most one of --simple, --json, --yaml")

// ErrIOSMachineFormat indicates a machine output format was combined with
// --ios, which only produces text reports.
var ErrIOSMachineFormat = errors.New("--json and --yaml are not available with --ios")

// reportOptions are the per-invocation display settings.
type reportOptions struct {
	raw     bool
	simple  bool
	jsonOut bool
	yamlOut bool
	noColor bool
	iosMode bool
	noIOS   bool
	iosUDID string
}

// NewRootCommand builds the batstat root command. Running it without a
// subcommand prints the battery report.
func NewRootCommand() *cobra.Command {
	var (
		opts       reportOptions
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "batstat",
		Short: "Battery and charger overview for macOS and USB-connected iOS devices",
		Long: `Batstat reads the smart battery state through ioreg, pmset, and
system_profiler and prints a sectioned report: charge, health, power
details, time remaining, and the connected adapter.

Connected iOS devices are reported as well when libimobiledevice is
installed. Use --simple for script-friendly lines or --json/--yaml for
machine output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			applyConfig(&opts, cfg)

			return runReport(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.raw, "raw", "r", false, "also print raw collector output")
	cmd.Flags().BoolVarP(&opts.simple, "simple", "s", false, "script-friendly line output")
	cmd.Flags().BoolVarP(&opts.jsonOut, "json", "j", false, "JSON output")
	cmd.Flags().BoolVar(&opts.yamlOut, "yaml", false, "YAML output")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVar(&opts.iosMode, "ios", false, "report a USB-connected iOS device instead")
	cmd.Flags().BoolVar(&opts.noIOS, "no-ios", false, "skip auto-detection of connected iOS devices")
	cmd.Flags().StringVar(&opts.iosUDID, "ios-udid", "", "target a specific iOS device by UDID")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path")

	cmd.AddCommand(versionCmd(), schemaCmd(), mcpCmd())

	return cmd
}

func applyConfig(opts *reportOptions, cfg *config.Config) {
	if cfg.Battery.NoColor {
		opts.noColor = true
	}

	if cfg.Battery.Raw {
		opts.raw = true
	}
}

func runReport(ctx context.Context, out io.Writer, opts reportOptions) error {
	if countFormats(opts) > 1 {
		return ErrConflictingFormats
	}

	if opts.iosMode && (opts.jsonOut || opts.yamlOut) {
		return ErrIOSMachineFormat
	}

	renderer := render.New(out, opts.noColor)

	if opts.iosMode {
		return runIOSReport(ctx, renderer, opts)
	}

	snapshot, err := battery.NewCollector(nil).Collect(ctx)
	if err != nil {
		return err
	}

	switch {
	case opts.jsonOut:
		return renderer.JSON(snapshot)
	case opts.yamlOut:
		return renderer.YAML(snapshot)
	case opts.simple:
		renderer.Simple(snapshot)
	default:
		renderer.Table(snapshot)

		if opts.raw {
			renderer.Raw(snapshot.Power.Raw)
		}

		if !opts.noIOS {
			appendIOSReports(ctx, renderer)
		}
	}

	return nil
}

// runIOSReport makes a connected iOS device the primary report source.
func runIOSReport(ctx context.Context, renderer *render.Renderer, opts reportOptions) error {
	client := ios.NewClient(nil)

	udid, err := client.ResolveUDID(ctx, opts.iosUDID)
	if err != nil {
		return err
	}

	info, err := client.BatteryInfo(ctx, udid)
	if err != nil {
		return fmt.Errorf("%w (ensure the device is connected, unlocked, and trusted)", err)
	}

	if opts.simple {
		renderer.SimpleIOS(info)

		return nil
	}

	renderer.TableIOS(info)

	if opts.raw {
		renderer.Raw(info.RawText)
	}

	return nil
}

// appendIOSReports adds a section per connected iOS device, best effort.
func appendIOSReports(ctx context.Context, renderer *render.Renderer) {
	client := ios.NewClient(nil)

	devices, err := client.ListDevices(ctx)
	if err != nil {
		return
	}

	for _, udid := range devices {
		info, infoErr := client.BatteryInfo(ctx, udid)
		if infoErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: unable to read iOS battery info for %s: %v\n", udid, infoErr)

			continue
		}

		renderer.TableIOS(info)
	}
}

func countFormats(opts reportOptions) int {
	count := 0

	for _, set := range []bool{opts.simple, opts.jsonOut, opts.yamlOut} {
		if set {
			count++
		}
	}

	return count
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintln(os.Stdout, version.String("batstat"))
		},
	}
}

func schemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the --json report",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), render.Schema())
		},
	}
}
