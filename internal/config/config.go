// Package config loads slidekit tool configuration from file and
// environment via viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the tool settings.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Sticky StickyConfig `mapstructure:"sticky"`
}

// LogConfig controls logging output.
type LogConfig struct {
	// Level is the minimum level: debug, info, warn, error. Default: info.
	Level string `mapstructure:"level"`
	// Format is "console" or "json". Default: console.
	Format string `mapstructure:"format"`
}

// StickyConfig sets the sticky-note defaults.
type StickyConfig struct {
	// Fill is the note fill color as RRGGBB hex. Default: FFF599.
	Fill string `mapstructure:"fill"`
	// WidthIn is the note width in inches. Default: 2.
	WidthIn float64 `mapstructure:"width_in"`
	// HeightIn is the note height in inches. Default: 2.
	HeightIn float64 `mapstructure:"height_in"`
}

// setDefaults registers every default in one place.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("sticky.fill", "FFF599")
	v.SetDefault("sticky.width_in", 2.0)
	v.SetDefault("sticky.height_in", 2.0)
}

// Load reads configuration from the given file (optional), falling back
// to $HOME/.slidekit.yaml, with SLIDEKIT_* environment overrides
// (e.g. SLIDEKIT_LOG_LEVEL=debug).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SLIDEKIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(".slidekit")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME")
		if err := v.ReadInConfig(); err != nil {
			// a missing default config file is fine
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}
