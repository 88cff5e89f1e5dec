// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/toeirei/passkeep/internal/db"
	"github.com/toeirei/passkeep/internal/generator"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete Passkeep configuration.
type Config struct {
	Storage   Storage   `mapstructure:"storage" yaml:"storage"`
	Generator Generator `mapstructure:"generator" yaml:"generator"`
	UI        UI        `mapstructure:"ui" yaml:"ui"`
	Language  string    `mapstructure:"language" yaml:"language" validate:"omitempty,oneof=en de"`
	Log       Log       `mapstructure:"log" yaml:"log"`
}

// Storage selects the db backend holding the saved entries.
type Storage struct {
	Type string `mapstructure:"type" yaml:"type" validate:"required,oneof=file sqlite postgres mysql memory"`
	// DSN is a directory for "file", a driver DSN for the SQL backends.
	// Empty means the per-user default for the type.
	DSN string `mapstructure:"dsn" yaml:"dsn"`
}

// Generator holds the initial generation options and the length range
// offered by the user interfaces.
type Generator struct {
	Length    int  `mapstructure:"length" yaml:"length" validate:"gte=1"`
	Numbers   bool `mapstructure:"numbers" yaml:"numbers"`
	Symbols   bool `mapstructure:"symbols" yaml:"symbols"`
	MinLength int  `mapstructure:"min_length" yaml:"min_length" validate:"gte=1"`
	MaxLength int  `mapstructure:"max_length" yaml:"max_length" validate:"gtefield=MinLength"`
}

// UI holds presentation switches.
type UI struct {
	// CopyFillsValue also places the generated password in the save form's
	// value field whenever it is copied.
	CopyFillsValue bool `mapstructure:"copy_fills_value" yaml:"copy_fills_value"`
}

// Log configures the logger.
type Log struct {
	// File receives log output while the TUI runs. Empty uses
	// <user dir>/passkeep.log.
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// Defaults returns the default values keyed the way viper expects them.
func Defaults() map[string]any {
	return map[string]any{
		"storage.type":         db.TypeFile,
		"storage.dsn":          "",
		"generator.length":     generator.DefaultLength,
		"generator.numbers":    false,
		"generator.symbols":    false,
		"generator.min_length": generator.DefaultMinLength,
		"generator.max_length": generator.DefaultMaxLength,
		"ui.copy_fills_value":  true,
		"language":             "en",
		"log.file":             "",
		"log.level":            "info",
	}
}

// Default returns the Config equivalent of Defaults.
func Default() Config {
	return Config{
		Storage: Storage{Type: db.TypeFile},
		Generator: Generator{
			Length:    generator.DefaultLength,
			MinLength: generator.DefaultMinLength,
			MaxLength: generator.DefaultMaxLength,
		},
		UI:       UI{CopyFillsValue: true},
		Language: "en",
		Log:      Log{Level: "info"},
	}
}

// Options returns the initial generation options.
func (g Generator) Options() generator.Options {
	return generator.Options{Length: g.Length, Numbers: g.Numbers, Symbols: g.Symbols}
}

// Bounds returns the configured length range.
func (g Generator) Bounds() generator.Bounds {
	return generator.Bounds{Min: g.MinLength, Max: g.MaxLength}
}

var validate = validator.New()

// Validate checks c and returns an error wrapping ErrInvalid on failure.
func Validate(c Config) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := c.Generator.Bounds().Check(c.Generator.Length); err != nil {
		return fmt.Errorf("%w: generator.length: %v", ErrInvalid, err)
	}
	return nil
}

// ResolveDSN returns the configured DSN, or the per-user default for the
// storage type: the user dir itself for "file", <user dir>/passkeep.db for
// "sqlite". Postgres and MySQL have no default.
func (s Storage) ResolveDSN() (string, error) {
	if s.DSN != "" || s.Type == db.TypeMemory {
		return s.DSN, nil
	}
	switch s.Type {
	case db.TypeFile, db.TypeSQLite:
		dir, err := UserDir()
		if err != nil {
			return "", err
		}
		if s.Type == db.TypeSQLite {
			return filepath.Join(dir, "passkeep.db"), nil
		}
		return dir, nil
	default:
		return "", fmt.Errorf("%w: storage.dsn is required for %s", ErrInvalid, s.Type)
	}
}

// ResolveLogFile returns the configured log path or <user dir>/passkeep.log.
// It returns "" if the user dir cannot be determined.
func (l Log) ResolveLogFile() string {
	if l.File != "" {
		return l.File
	}
	dir, err := UserDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "passkeep.log")
}
