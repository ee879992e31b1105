// SPDX-License-Identifier: MIT

// Package config loads tapematrix settings from a YAML file.
//
//	error_log: errors.txt
//	display:
//	  blank_padding: true
//	  blank_out_of_band: true
//	encode:
//	  strict: false
//	session:
//	  snapshot: session.yaml.zst
//
// Missing keys keep their Default() values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no --config is given.
const DefaultFile = "tapematrix.yaml"

// ErrInvalidConfig marks an unreadable or semantically invalid config file.
var ErrInvalidConfig = errors.New("config: invalid config")

// Config is the full runtime configuration.
type Config struct {
	ErrorLog string  `yaml:"error_log"`
	Display  Display `yaml:"display"`
	Encode   Encode  `yaml:"encode"`
	Session  Session `yaml:"session"`
}

// Display controls how matrices and storages are rendered on screen.
type Display struct {
	BlankPadding   bool `yaml:"blank_padding"`
	BlankOutOfBand bool `yaml:"blank_out_of_band"`
}

// Encode selects the encoder used for loaded and computed matrices.
type Encode struct {
	// Strict refuses matrices whose detected bandwidth would drop entries.
	Strict bool `yaml:"strict"`
}

// Session configures session persistence.
type Session struct {
	// Snapshot, when set, is loaded on start and written on exit.
	Snapshot string `yaml:"snapshot"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ErrorLog: "errors.txt",
		Display: Display{
			BlankPadding:   true,
			BlankOutOfBand: true,
		},
	}
}

// Load reads path over Default(). A missing file is an error; use
// LoadOptional for the implicit DefaultFile.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config.load %s: %w", path, err)
	}

	return Parse(b)
}

// LoadOptional is Load, except that a missing file yields Default().
func LoadOptional(path string) (Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// Parse decodes YAML bytes over Default(). Unknown keys are rejected.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks semantic constraints.
func (c Config) Validate() error {
	if c.ErrorLog == "" {
		return fmt.Errorf("%w: error_log must not be empty", ErrInvalidConfig)
	}

	return nil
}
