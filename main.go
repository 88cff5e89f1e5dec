// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Passkeep.
//
// Usage:
//
//	go run . [flags]
//	./passkeep [flags]
//
// This launches the Passkeep CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/passkeep/ui/cli"
)

// main is the entrypoint for the Passkeep CLI.
func main() {
	// cobra already printed the error.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
