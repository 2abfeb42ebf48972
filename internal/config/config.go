// Package config handles nativetheme configuration loading and validation.
package config

import (
	"fmt"
	"time"

	"github.com/tOgg1/nativetheme/internal/logging"
	"github.com/tOgg1/nativetheme/internal/platform"
	"github.com/tOgg1/nativetheme/internal/probe"
	"github.com/tOgg1/nativetheme/internal/resolver"
	"github.com/tOgg1/nativetheme/internal/rgb"
)

// Config is the root configuration structure.
type Config struct {
	// Logging settings
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`

	// Theme resolution overrides
	Theme ThemeConfig `yaml:"theme" mapstructure:"theme"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level" mapstructure:"level"`

	// Format is the output format (json, console).
	Format string `yaml:"format" mapstructure:"format"`

	// EnableCaller adds caller information to logs.
	EnableCaller bool `yaml:"enable_caller" mapstructure:"enable_caller"`
}

// ThemeConfig overrides parts of theme resolution.
type ThemeConfig struct {
	// Platform resolves for another platform (macos, windows, linux). Empty means the host.
	Platform string `yaml:"platform" mapstructure:"platform"`

	// Appearance forces light or dark mode (auto, light, dark).
	Appearance string `yaml:"appearance" mapstructure:"appearance"`

	// Accent forces the accent color ("#RRGGBB"). Empty means use the probe.
	Accent string `yaml:"accent" mapstructure:"accent"`

	// ProbeTimeout bounds each native preference query.
	ProbeTimeout time.Duration `yaml:"probe_timeout" mapstructure:"probe_timeout"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:        "info",
			Format:       "console",
			EnableCaller: false,
		},
		Theme: ThemeConfig{
			Platform:     "",
			Appearance:   string(resolver.AppearanceAuto),
			Accent:       "",
			ProbeTimeout: probe.DefaultTimeout,
		},
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("logging.level must be one of trace, debug, info, warn, error")
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be console or json")
	}

	if c.Theme.Platform != "" {
		if _, err := platform.Parse(c.Theme.Platform); err != nil {
			return fmt.Errorf("theme.platform: %w", err)
		}
	}
	if _, err := resolver.ParseAppearance(c.Theme.Appearance); err != nil {
		return fmt.Errorf("theme.appearance: %w", err)
	}
	if c.Theme.Accent != "" {
		if _, err := rgb.Parse(c.Theme.Accent); err != nil {
			return fmt.Errorf("theme.accent: %w", err)
		}
	}
	if c.Theme.ProbeTimeout <= 0 {
		return fmt.Errorf("theme.probe_timeout must be positive")
	}

	return nil
}

// LoggingOptions converts the logging section for logging.Init.
func (c *Config) LoggingOptions() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = c.Logging.Format
	cfg.EnableCaller = c.Logging.EnableCaller
	return cfg
}

// ResolverOptions converts the theme section into resolver options.
func (c *Config) ResolverOptions() ([]resolver.Option, error) {
	opts := []resolver.Option{resolver.WithProbeTimeout(c.Theme.ProbeTimeout)}

	if c.Theme.Platform != "" {
		tag, err := platform.Parse(c.Theme.Platform)
		if err != nil {
			return nil, fmt.Errorf("theme.platform: %w", err)
		}
		opts = append(opts, resolver.WithPlatform(tag))
	}

	appearance, err := resolver.ParseAppearance(c.Theme.Appearance)
	if err != nil {
		return nil, fmt.Errorf("theme.appearance: %w", err)
	}
	opts = append(opts, resolver.WithAppearance(appearance))

	if c.Theme.Accent != "" {
		accent, err := rgb.Parse(c.Theme.Accent)
		if err != nil {
			return nil, fmt.Errorf("theme.accent: %w", err)
		}
		opts = append(opts, resolver.WithAccent(accent))
	}

	return opts, nil
}
