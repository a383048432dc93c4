// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: TOML configuration with deterministic defaults.
//
// Deterministic defaults:
//   • aromaticity.model      = "huckel"
//   • aromaticity.max_passes = aromaticity.DefaultMaxPasses
//   • kekule.enabled         = false
//   • orbital.enabled        = false
//   • orbital.heteroatoms    = false
//   • log.level              = "info"

package perception

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvlchem/aromaticity"
)

// ErrInvalidConfig indicates a configuration value out of range or an
// unknown key in a configuration file.
var ErrInvalidConfig = errors.New("perception: invalid config")

// Config drives Perceive and the lvlchem CLI.
type Config struct {
	Aromaticity AromaticityConfig `toml:"aromaticity"`
	Kekule      KekuleConfig      `toml:"kekule"`
	Orbital     OrbitalConfig     `toml:"orbital"`
	Log         LogConfig         `toml:"log"`
}

// AromaticityConfig selects the classifier model.
type AromaticityConfig struct {
	Model     string `toml:"model"`
	MaxPasses int    `toml:"max_passes"`
}

// KekuleConfig toggles the Kekulization stage.
type KekuleConfig struct {
	Enabled bool `toml:"enabled"`
}

// OrbitalConfig toggles the Hückel molecular-orbital stage.
type OrbitalConfig struct {
	Enabled     bool `toml:"enabled"`
	Heteroatoms bool `toml:"heteroatoms"`
}

// LogConfig sets the CLI log level; the library itself never reads it.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Aromaticity: AromaticityConfig{Model: aromaticity.ModelHuckel.String(), MaxPasses: aromaticity.DefaultMaxPasses},
		Log:         LogConfig{Level: "info"},
	}
}

// LoadConfig reads a TOML file over DefaultConfig. Keys missing from the
// file keep their defaults; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("perception: LoadConfig %s: %w", path, err)
	}

	return finish(cfg, md)
}

// ParseConfig is LoadConfig for in-memory TOML.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("perception: ParseConfig: %w", err)
	}

	return finish(cfg, md)
}

func finish(cfg Config, md toml.MetaData) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("unknown keys %s: %w", strings.Join(keys, ", "), ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := aromaticity.ParseModel(c.Aromaticity.Model); err != nil {
		return fmt.Errorf("aromaticity.model: %v: %w", err, ErrInvalidConfig)
	}
	if c.Aromaticity.MaxPasses < 1 {
		return fmt.Errorf("aromaticity.max_passes = %d: %w", c.Aromaticity.MaxPasses, ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalidConfig)
	}

	return nil
}

// Model returns the parsed aromaticity model. Call Validate first.
func (c Config) Model() aromaticity.Model {
	m, _ := aromaticity.ParseModel(c.Aromaticity.Model)

	return m
}

// LogLevel returns the parsed log level, InfoLevel when unparsable.
func (c Config) LogLevel() log.Level {
	l, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}

	return l
}
