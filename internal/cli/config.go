package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pipeloop/loop"
)

// Config holds command defaults read from a config file.
//
// TOML example:
//
//	input   = "input/day10.txt"
//	verbose = false
//
//	[render]
//	color = true
//
//	[walk]
//	departure = "first"
type Config struct {
	// Input is the grid file used when no argument is given.
	Input   string       `toml:"input" yaml:"input"`
	Verbose bool         `toml:"verbose" yaml:"verbose"`
	Render  RenderConfig `toml:"render" yaml:"render"`
	Walk    WalkConfig   `toml:"walk" yaml:"walk"`
}

// RenderConfig controls the raster view.
type RenderConfig struct {
	Color bool `toml:"color" yaml:"color"`
}

// WalkConfig controls the loop walker.
type WalkConfig struct {
	// Departure is "first" or "second".
	Departure string `toml:"departure" yaml:"departure"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{Color: true},
		Walk:   WalkConfig{Departure: loop.First.String()},
	}
}

// ValidationError reports an invalid config field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// LoadConfig reads the config file at path. The format follows the
// extension: .yaml/.yml is YAML, anything else TOML. Missing keys keep
// their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = toml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateConfig checks field values.
func ValidateConfig(cfg *Config) error {
	if _, err := loop.ParseDeparture(cfg.Walk.Departure); err != nil {
		return ValidationError{Field: "walk.departure", Message: fmt.Sprintf("must be %q or %q, got %q", "first", "second", cfg.Walk.Departure)}
	}
	return nil
}

// walkOptions converts the config into loop options.
func (c *Config) walkOptions() []loop.Option {
	d, _ := loop.ParseDeparture(c.Walk.Departure)
	return []loop.Option{loop.WithDeparture(d)}
}
