// Package gitcmd runs git mutations through the git binary so that commit
// hooks, signing, and credential helpers behave exactly as on the command
// line.
package gitcmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// gitBinary is the executable used for all mutations.
const gitBinary = "git"

// Runner executes git commands in a working directory.
type Runner struct {
	// Dir is the working directory for git invocations. Empty means the
	// current directory.
	Dir string
	// DryRun prints commands instead of executing them.
	DryRun bool
	// Out receives command output and dry-run previews. Defaults to
	// os.Stdout.
	Out io.Writer
}

// AddAll stages every change in the working tree, including deletions.
func (r *Runner) AddAll(ctx context.Context) error {
	return r.run(ctx, "add", "--all")
}

// Commit records the staged changes with the given message.
func (r *Runner) Commit(ctx context.Context, message string, noVerify bool) error {
	args := []string{"commit", "-m", message}
	if noVerify {
		args = append(args, "--no-verify")
	}

	return r.run(ctx, args...)
}

// Push pushes branch to remote.
func (r *Runner) Push(ctx context.Context, remote, branch string) error {
	return r.run(ctx, "push", remote, branch)
}

func (r *Runner) run(ctx context.Context, args ...string) error {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}

	if r.DryRun {
		fmt.Fprintf(out, "would run: %s %s\n", gitBinary, strings.Join(args, " "))

		return nil
	}

	slog.Debug("running git command", "args", args, "dir", r.Dir)

	cmd := exec.CommandContext(ctx, gitBinary, args...)
	cmd.Dir = r.Dir
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	err := cmd.Run()
	if err != nil {
		return fmt.Errorf("git %s: %w", args[0], err)
	}

	return nil
}
