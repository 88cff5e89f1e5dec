// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging wraps charmbracelet/log with a few package-level helpers
// and knows how to move output into a rotating file while the TUI owns the
// terminal.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	clog "github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SetDebug switches between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
		return
	}
	L.SetLevel(clog.InfoLevel)
}

// SetLevel parses a level name ("debug", "info", "warn", "error").
// An empty name leaves the level unchanged.
func SetLevel(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	lvl, err := clog.ParseLevel(strings.ToLower(name))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	L.SetLevel(lvl)
	return nil
}

// SetOutput redirects the package logger to w.
func SetOutput(w io.Writer) {
	L.SetOutput(w)
}

// ToFile redirects log output to a size-rotated file at path and returns a
// function that restores stderr and closes the file. An empty path discards
// log output instead, since nothing may be written to the terminal while
// the TUI is drawing.
func ToFile(path string) (restore func(), err error) {
	if path == "" {
		L.SetOutput(io.Discard)
		return func() { L.SetOutput(os.Stderr) }, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("could not create log directory: %w", err)
	}
	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	L.SetOutput(lj)
	L.SetReportTimestamp(true)
	return func() {
		L.SetOutput(os.Stderr)
		L.SetReportTimestamp(false)
		_ = lj.Close()
	}, nil
}
