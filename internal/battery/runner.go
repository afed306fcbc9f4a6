// Package battery collects macOS battery state from ioreg, pmset, and
// system_profiler and derives display metrics from the raw readings.
package battery

import (
	"context"
	"fmt"
	"os/exec"
)

// Runner executes an external command and returns its stdout. Tests inject
// fixture output through this type.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecRunner runs the command through os/exec.
func ExecRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", name, err)
	}

	return out, nil
}
