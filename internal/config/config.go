package config

import "errors"

// Config is the top-level configuration struct for shiptools.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Commit  CommitConfig  `mapstructure:"commit"`
	AI      AIConfig      `mapstructure:"ai"`
	Battery BatteryConfig `mapstructure:"battery"`
}

// CommitConfig holds commit helper settings.
type CommitConfig struct {
	// Remote is the push target. Defaults to "origin".
	Remote string `mapstructure:"remote"`
	// Branch overrides the push branch. Empty means the current HEAD branch.
	Branch string `mapstructure:"branch"`
	// Editor overrides $VISUAL/$EDITOR for message editing.
	Editor string `mapstructure:"editor"`
	// NoVerify passes --no-verify to git commit.
	NoVerify bool `mapstructure:"no_verify"`
}

// AIConfig holds message-generation settings.
type AIConfig struct {
	Model     string `mapstructure:"model"`
	Endpoint  string `mapstructure:"endpoint"`
	APIKeyEnv string `mapstructure:"api_key_env"`
}

// BatteryConfig holds battery reporter settings.
type BatteryConfig struct {
	NoColor bool `mapstructure:"no_color"`
	Raw     bool `mapstructure:"raw"`
}

// Sentinel errors for configuration validation.
var (
	// ErrEmptyRemote indicates commit.remote was set to an empty string.
	ErrEmptyRemote = errors.New("commit.remote must not be empty")
	// ErrEmptyModel indicates ai.model was set to an empty string.
	ErrEmptyModel = errors.New("ai.model must not be empty")
	// ErrEmptyAPIKeyEnv indicates ai.api_key_env was set to an empty string.
	ErrEmptyAPIKeyEnv = errors.New("ai.api_key_env must not be empty")
)

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Commit.Remote == "" {
		return ErrEmptyRemote
	}

	if c.AI.Model == "" {
		return ErrEmptyModel
	}

	if c.AI.APIKeyEnv == "" {
		return ErrEmptyAPIKeyEnv
	}

	return nil
}
