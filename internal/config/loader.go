// Package config loads shiptools configuration from file, environment, and
// defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file name without extension.
const configName = ".shiptools"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for shiptools settings.
const envPrefix = "SHIPTOOLS"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// Defaults applied before file and environment lookup.
const (
	DefaultRemote    = "origin"
	DefaultAIModel   = "gpt-4o-mini"
	DefaultAIKeyEnv  = "SHIPTOOLS_AI_KEY"
	DefaultAIBaseURL = "https://api.openai.com/v1"
)

// Load loads configuration from file, env vars, and defaults.
// If configPath is non-empty, it is used as the explicit config file path.
// Otherwise, the config file is searched in CWD and $HOME.
// Missing config file is not an error; defaults are used.
func Load(configPath string) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("commit.remote", DefaultRemote)
	viperCfg.SetDefault("commit.branch", "")
	viperCfg.SetDefault("commit.editor", "")
	viperCfg.SetDefault("commit.no_verify", false)

	viperCfg.SetDefault("ai.model", DefaultAIModel)
	viperCfg.SetDefault("ai.endpoint", DefaultAIBaseURL)
	viperCfg.SetDefault("ai.api_key_env", DefaultAIKeyEnv)

	viperCfg.SetDefault("battery.no_color", false)
	viperCfg.SetDefault("battery.raw", false)
}
