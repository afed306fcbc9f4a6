package gitcmd_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiptools/shiptools/internal/gitcmd"
)

func TestRunner_DryRunPreviews(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	runner := &gitcmd.Runner{DryRun: true, Out: &buf}

	require.NoError(t, runner.AddAll(context.Background()))
	require.NoError(t, runner.Commit(context.Background(), "fix: update source", true))
	require.NoError(t, runner.Push(context.Background(), "origin", "main"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "would run: git add --all", lines[0])
	assert.Equal(t, "would run: git commit -m fix: update source --no-verify", lines[1])
	assert.Equal(t, "would run: git push origin main", lines[2])
}

func TestRunner_DryRunCommitWithoutNoVerify(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	runner := &gitcmd.Runner{DryRun: true, Out: &buf}

	require.NoError(t, runner.Commit(context.Background(), "docs: update documentation", false))
	assert.NotContains(t, buf.String(), "--no-verify")
}
