// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

// Command passkeep is the installable binary:
//
//	go install github.com/toeirei/passkeep/cmd/passkeep@latest
package main

import (
	"os"

	"github.com/toeirei/passkeep/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
