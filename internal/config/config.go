// Package config provides Viper-based configuration loading for the skirmish engine.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// BoardConfig holds battlefield grid settings.
type BoardConfig struct {
	// Width is the number of columns on the grid.
	Width int `mapstructure:"width"`
	// Height is the number of rows on the grid.
	Height int `mapstructure:"height"`
	// TerritoryDepth is the number of rows from each edge that belong
	// to that side's summoning territory.
	TerritoryDepth int `mapstructure:"territory_depth"`
}

// MatchConfig holds per-match rule settings.
type MatchConfig struct {
	// StartingLevel is the level newly summoned units enter play at.
	StartingLevel int `mapstructure:"starting_level"`
}

// ContentConfig holds game content catalog settings.
type ContentConfig struct {
	// Dir is the root directory of the YAML content catalog.
	Dir string `mapstructure:"dir"`
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
	Board   BoardConfig   `mapstructure:"board"`
	Match   MatchConfig   `mapstructure:"match"`
	Content ContentConfig `mapstructure:"content"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateBoard(c.Board); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateMatch(c.Match); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateContent(c.Content); err != nil {
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

func validateBoard(b BoardConfig) error {
	var errs []string
	if b.Width < 1 {
		errs = append(errs, fmt.Sprintf("board.width must be >= 1, got %d", b.Width))
	}
	if b.Height < 1 {
		errs = append(errs, fmt.Sprintf("board.height must be >= 1, got %d", b.Height))
	}
	if b.TerritoryDepth < 1 {
		errs = append(errs, fmt.Sprintf("board.territory_depth must be >= 1, got %d", b.TerritoryDepth))
	}
	if b.Height >= 1 && b.TerritoryDepth*2 > b.Height {
		errs = append(errs, fmt.Sprintf("board.territory_depth %d leaves no neutral rows on a %d-row board", b.TerritoryDepth, b.Height))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateMatch(m MatchConfig) error {
	if m.StartingLevel < 1 {
		return fmt.Errorf("match.starting_level must be >= 1, got %d", m.StartingLevel)
	}
	return nil
}

func validateContent(c ContentConfig) error {
	if c.Dir == "" {
		return fmt.Errorf("content.dir must not be empty")
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
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment variable
// overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with SKIRMISH_ prefix
	v.SetEnvPrefix("SKIRMISH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
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
	v.SetDefault("board.width", 14)
	v.SetDefault("board.height", 12)
	v.SetDefault("board.territory_depth", 3)

	v.SetDefault("match.starting_level", 5)

	v.SetDefault("content.dir", "content")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
