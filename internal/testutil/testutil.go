// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package testutil holds small helpers shared by package tests.
package testutil

import (
	"fmt"
	"strings"
	"testing"
)

// IsolateConfig points the user config and home directories at a fresh
// temporary directory so config lookups, default stores and log files stay
// inside the test. It returns that directory.
func IsolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("AppData", dir)
	return dir
}

// SQLiteMemDSN returns an in-memory, shared-cache SQLite DSN unique to t.
func SQLiteMemDSN(t *testing.T) string {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
}
