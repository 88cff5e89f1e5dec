// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Passkeep using Cobra.
// It wires configuration, storage and the saved-entry vault, and provides
// commands that delegate to the generator and vault packages. Running the
// root command on a terminal starts the TUI.
package cli
