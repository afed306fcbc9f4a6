package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiptools/shiptools/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultRemote, cfg.Commit.Remote)
	assert.Equal(t, config.DefaultAIModel, cfg.AI.Model)
	assert.Equal(t, config.DefaultAIKeyEnv, cfg.AI.APIKeyEnv)
	assert.False(t, cfg.Battery.NoColor)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("commit:\n  remote: upstream\n  no_verify: true\nai:\n  model: claude-sonnet-4-5\nbattery:\n  no_color: true\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "upstream", cfg.Commit.Remote)
	assert.True(t, cfg.Commit.NoVerify)
	assert.Equal(t, "claude-sonnet-4-5", cfg.AI.Model)
	assert.True(t, cfg.Battery.NoColor)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("commit:\n  remote: \"\"\n"), 0o600))

	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrEmptyRemote)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Commit: config.CommitConfig{Remote: "origin"},
		AI:     config.AIConfig{Model: "gpt-4o-mini", APIKeyEnv: "KEY"},
	}
	require.NoError(t, cfg.Validate())

	cfg.AI.Model = ""
	require.ErrorIs(t, cfg.Validate(), config.ErrEmptyModel)
}
