// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui groups the user-facing front ends of Passkeep. The command-line
// interface lives in ui/cli; the interactive terminal UI it starts lives in
// internal/tui.
package ui
