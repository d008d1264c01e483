// Package config resolves generator settings.
//
// Every setting has a default that reproduces the stock behavior, so the
// generators run with zero configuration. A YAML file passed with --config
// may override individual keys. Environment variables are not consulted.
package config

import (
	"fmt"
	"io/fs"
	"strconv"

	"github.com/klauspost/compress/flate"
	"github.com/spf13/viper"
)

// Config holds the resolved settings for both generators.
type Config struct {
	Clone    CloneConfig    `mapstructure:"clone"`
	Frontend FrontendConfig `mapstructure:"frontend"`
	Files    FilesConfig    `mapstructure:"files"`
	Log      LogConfig      `mapstructure:"log"`
}

// CloneConfig configures generate-uber-clone.
type CloneConfig struct {
	BaseDir          string `mapstructure:"base_dir"`
	Archive          string `mapstructure:"archive"`
	CompressionLevel int    `mapstructure:"compression_level"`
}

// FrontendConfig configures setup-uber-frontend. An empty BaseDir means the
// current working directory.
type FrontendConfig struct {
	BaseDir string `mapstructure:"base_dir"`
}

// FilesConfig controls how generated files are created.
type FilesConfig struct {
	Mode string `mapstructure:"mode"` // Octal, e.g. "0644"
}

// LogConfig controls the debug logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Defaults
const (
	DefaultCloneBaseDir = "uber-clone"
	DefaultCloneArchive = "uber-clone.zip"
	DefaultFileMode     = "0644"
	DefaultLogLevel     = "silent"
)

// Load returns the default configuration overlaid with the YAML file at
// path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("clone.base_dir", DefaultCloneBaseDir)
	v.SetDefault("clone.archive", DefaultCloneArchive)
	v.SetDefault("clone.compression_level", flate.BestCompression)
	v.SetDefault("frontend.base_dir", "")
	v.SetDefault("files.mode", DefaultFileMode)
	v.SetDefault("log.level", DefaultLogLevel)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that viper cannot type-check on its own.
func (c *Config) Validate() error {
	if c.Clone.BaseDir == "" {
		return fmt.Errorf("clone.base_dir must not be empty")
	}
	if c.Clone.Archive == "" {
		return fmt.Errorf("clone.archive must not be empty")
	}
	if l := c.Clone.CompressionLevel; l < flate.NoCompression || l > flate.BestCompression {
		return fmt.Errorf("clone.compression_level must be between %d and %d, got %d",
			flate.NoCompression, flate.BestCompression, l)
	}
	if _, err := c.Files.FileMode(); err != nil {
		return err
	}
	return nil
}

// FileMode parses the configured octal permission string.
func (f FilesConfig) FileMode() (fs.FileMode, error) {
	mode, err := strconv.ParseUint(f.Mode, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("files.mode %q is not an octal permission: %w", f.Mode, err)
	}
	if mode > 0777 {
		return 0, fmt.Errorf("files.mode %q has bits outside 0777", f.Mode)
	}
	return fs.FileMode(mode), nil
}
