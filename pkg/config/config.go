// Package config provides Viper-based configuration loading for the
// manor game.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DisplayConfig holds output styling settings.
type DisplayConfig struct {
	// ColorMode controls ANSI styling: "auto" (only when stdout is a
	// terminal), "always", or "never".
	ColorMode string `mapstructure:"color_mode"`
	// TypewriterDelay is the per-character delay for narration text.
	TypewriterDelay time.Duration `mapstructure:"typewriter_delay"`
	// Locale selects the message catalog, e.g. "en_GB". Empty keeps
	// the built-in strings.
	Locale string `mapstructure:"locale"`
	// LocaleDir is the directory holding message catalogs.
	LocaleDir string `mapstructure:"locale_dir"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Display DisplayConfig `mapstructure:"display"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
func (c Config) Validate() error {
	var errs []string

	if err := validateDisplay(c.Display); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateDisplay(d DisplayConfig) error {
	var errs []string
	validModes := map[string]bool{"auto": true, "always": true, "never": true}
	if !validModes[d.ColorMode] {
		errs = append(errs, fmt.Sprintf("display.color_mode must be one of [auto, always, never], got %q", d.ColorMode))
	}
	if d.TypewriterDelay < 0 {
		errs = append(errs, "display.typewriter_delay must not be negative")
	}
	if d.Locale != "" && d.LocaleDir == "" {
		errs = append(errs, "display.locale_dir must be set when display.locale is set")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be \"json\" or \"console\", got %q", l.Format)
	}
	return nil
}

// Load reads configuration from an optional file plus SPOOKY_*
// environment overrides. An empty path means defaults and environment
// only.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix("SPOOKY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds a Config from an already-configured Viper
// instance.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("display.color_mode", "auto")
	v.SetDefault("display.typewriter_delay", "5ms")
	v.SetDefault("display.locale", "")
	v.SetDefault("display.locale_dir", "locales")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}
