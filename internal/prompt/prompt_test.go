package prompt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiptools/shiptools/internal/prompt"
)

func TestConfirm_EmptyReplyAccepts(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	outcome, err := prompt.Confirm(strings.NewReader("\n"), &out, "fix: update source")
	require.NoError(t, err)
	assert.Equal(t, prompt.ActionAccept, outcome.Action)
	assert.Equal(t, "fix: update source", outcome.Message)
	assert.Contains(t, out.String(), "fix: update source")
}

func TestConfirm_YesAccepts(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	outcome, err := prompt.Confirm(strings.NewReader("Y\n"), &out, "docs: update documentation")
	require.NoError(t, err)
	assert.Equal(t, prompt.ActionAccept, outcome.Action)
}

func TestConfirm_EditRequested(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	outcome, err := prompt.Confirm(strings.NewReader("e\n"), &out, "test: update tests")
	require.NoError(t, err)
	assert.Equal(t, prompt.ActionEdit, outcome.Action)
	assert.Equal(t, "test: update tests", outcome.Message)
}

func TestConfirm_NoAsksForRetype(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	outcome, err := prompt.Confirm(strings.NewReader("n\nchore: tidy helpers\n"), &out, "test: update tests")
	require.NoError(t, err)
	assert.Equal(t, prompt.ActionReplace, outcome.Action)
	assert.Equal(t, "chore: tidy helpers", outcome.Message)
	assert.Contains(t, out.String(), "Enter commit message:")
}

func TestConfirm_NoThenEmptyAborts(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	outcome, err := prompt.Confirm(strings.NewReader("no\n\n"), &out, "test: update tests")
	require.NoError(t, err)
	assert.Equal(t, prompt.ActionAbort, outcome.Action)
}

func TestConfirm_QuitAborts(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	outcome, err := prompt.Confirm(strings.NewReader("q\n"), &out, "test: update tests")
	require.NoError(t, err)
	assert.Equal(t, prompt.ActionAbort, outcome.Action)
}

func TestConfirm_TypedTextReplaces(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	outcome, err := prompt.Confirm(strings.NewReader("feat: add login flow\n"), &out, "fix: update source")
	require.NoError(t, err)
	assert.Equal(t, prompt.ActionReplace, outcome.Action)
	assert.Equal(t, "feat: add login flow", outcome.Message)
}

func TestConfirm_EOFAccepts(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	outcome, err := prompt.Confirm(strings.NewReader(""), &out, "fix: update source")
	require.NoError(t, err)
	assert.Equal(t, prompt.ActionAccept, outcome.Action)
}

func TestResolveEditor_OverrideWins(t *testing.T) {
	t.Setenv("VISUAL", "nano")
	t.Setenv("EDITOR", "vim")

	assert.Equal(t, "code --wait", prompt.ResolveEditor("code --wait"))
}

func TestResolveEditor_VisualBeatsEditor(t *testing.T) {
	t.Setenv("VISUAL", "nano")
	t.Setenv("EDITOR", "vim")

	assert.Equal(t, "nano", prompt.ResolveEditor(""))
}

func TestResolveEditor_Fallback(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")

	assert.Equal(t, "vi", prompt.ResolveEditor(""))
}
