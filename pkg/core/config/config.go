// ============================================================================
// nvdiff - NV item dump comparison
// ============================================================================
//
// Package:     config
// Description: Configuration file loading (TOML or YAML) with defaults
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/nvdiff/foundation/core/error"
	"github.com/msto63/nvdiff/foundation/core/log"
	"github.com/msto63/nvdiff/foundation/utils/filex"
)

// EnvConfigPath names the environment variable holding the config path
const EnvConfigPath = "NVDIFF_CONFIG"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Compare CompareConfig `toml:"compare" yaml:"compare"`
	Browse  BrowseConfig  `toml:"browse" yaml:"browse"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// CompareConfig holds the defaults of the compare command
type CompareConfig struct {
	Mode       string `toml:"mode" yaml:"mode"`
	Format     string `toml:"format" yaml:"format"`
	Dictionary string `toml:"dictionary" yaml:"dictionary"`
	Color      string `toml:"color" yaml:"color"`
}

// BrowseConfig holds diff viewer settings
type BrowseConfig struct {
	// LogFile receives log output while the viewer owns the terminal.
	// Empty discards it.
	LogFile string `toml:"log_file" yaml:"log_file"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, mdwerror.New("config file not found").
				WithCode(mdwerror.CodeNotFound).
				WithCause(err).
				WithDetail("file", path)
		}
		return nil, mdwerror.New("config file not readable").
			WithCode(mdwerror.CodeConfigError).
			WithCause(err).
			WithDetail("file", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &cfg)
	default:
		_, err = toml.Decode(string(content), &cfg)
	}
	if err != nil {
		return nil, mdwerror.New("failed to parse config").
			WithCode(mdwerror.CodeConfigError).
			WithCause(err).
			WithDetail("file", path)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, mdwerror.Wrap(err, "invalid config").WithDetail("file", path)
	}

	return &cfg, nil
}

// Locate returns the config file to use. An explicit path always wins,
// then NVDIFF_CONFIG, then the default locations that exist.
func Locate(explicit string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, true
	}

	defaultPaths := []string{
		"./nvdiff.toml",
		"./nvdiff.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		defaultPaths = append(defaultPaths,
			filepath.Join(home, ".config", "nvdiff", "config.toml"),
			filepath.Join(home, ".config", "nvdiff", "config.yaml"),
		)
	}

	return filex.FirstFile(defaultPaths...)
}

// LoadOrDefault loads the located config file, or the defaults when none
// exists. It returns the path that was used, empty for defaults.
func LoadOrDefault(explicit string) (*Config, string, error) {
	path, ok := Locate(explicit)
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// Validate checks the values that can be checked without the command layer
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.General.LogLevel); err != nil {
		return mdwerror.New("unknown log level").
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("value", c.General.LogLevel)
	}
	if _, err := log.ParseFormat(c.General.LogFormat); err != nil {
		return mdwerror.New("unknown log format").
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("value", c.General.LogFormat)
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.LogLevel == "" {
		c.General.LogLevel = log.DefaultLevel().String()
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	// Compare
	if c.Compare.Mode == "" {
		c.Compare.Mode = "present"
	}
	if c.Compare.Format == "" {
		c.Compare.Format = "interleaved"
	}
	if c.Compare.Dictionary == "" {
		c.Compare.Dictionary = "nv.txt"
	}
	if c.Compare.Color == "" {
		c.Compare.Color = "auto"
	}
}

// expandEnvVars expands environment variables in path values
func (c *Config) expandEnvVars() {
	c.Compare.Dictionary = os.ExpandEnv(c.Compare.Dictionary)
	c.Browse.LogFile = os.ExpandEnv(c.Browse.LogFile)
}
