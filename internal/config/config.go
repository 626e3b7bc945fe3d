// SPDX-License-Identifier: MPL-2.0

// Package config loads modcheck configuration with viper: compiled-in
// defaults, then an optional modcheck.toml in the platform config
// directory, then MODCHECK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"
	"mvdan.cc/sh/v3/shell"
)

const (
	// AppName is the application name.
	AppName = "modcheck"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "modcheck"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
)

type (
	// ToolConfig describes how to invoke one external check tool. Command
	// strings use shell-style field splitting with quoting, so a command
	// component may contain spaces when quoted — unlike per-module
	// parameter files, which are whitespace-split only.
	ToolConfig struct {
		// Command is the base command line for both modes, e.g. "cargo fmt".
		Command string `mapstructure:"command"`
		// CheckArgs are appended in check-only mode, e.g. "-- --check -l".
		CheckArgs string `mapstructure:"check_args"`
	}

	// Config is the resolved modcheck configuration.
	Config struct {
		Fmt  ToolConfig `mapstructure:"fmt"`
		Lint ToolConfig `mapstructure:"lint"`
		// DefaultParams is the single parameter set used when a module has
		// no parameter file ("use all optional capabilities").
		DefaultParams string `mapstructure:"default_params"`
		Verbose       bool   `mapstructure:"verbose"`
	}
)

// DefaultConfig returns the compiled-in defaults: cargo conventions for the
// two tools and the all-features baseline parameter set.
func DefaultConfig() *Config {
	return &Config{
		Fmt: ToolConfig{
			Command:   "cargo fmt",
			CheckArgs: "-- --check -l",
		},
		Lint: ToolConfig{
			Command:   "cargo clippy",
			CheckArgs: "-- -D warnings",
		},
		DefaultParams: "--all-features",
	}
}

// ConfigDir returns the modcheck configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// Load resolves the configuration. configFile, when non-empty, is used
// exclusively (the --config flag); otherwise the platform config directory
// is searched and a missing file falls back to defaults silently.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("fmt.command", defaults.Fmt.Command)
	v.SetDefault("fmt.check_args", defaults.Fmt.CheckArgs)
	v.SetDefault("lint.command", defaults.Lint.Command)
	v.SetDefault("lint.check_args", defaults.Lint.CheckArgs)
	v.SetDefault("default_params", defaults.DefaultParams)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileExt)
		if dir, err := ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Argv splits the tool's base command into argument fields. Shell quoting is
// honored; environment expansion is not.
func (t ToolConfig) Argv() ([]string, error) {
	return splitCommand(t.Command)
}

// CheckArgv splits the tool's check-only arguments into argument fields.
func (t ToolConfig) CheckArgv() ([]string, error) {
	return splitCommand(t.CheckArgs)
}

func splitCommand(s string) ([]string, error) {
	fields, err := shell.Fields(s, func(string) string { return "" })
	if err != nil {
		return nil, fmt.Errorf("failed to split command %q: %w", s, err)
	}
	return fields, nil
}
