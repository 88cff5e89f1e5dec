// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/toeirei/passkeep/internal/clipboard"
	"github.com/toeirei/passkeep/internal/config"
	"github.com/toeirei/passkeep/internal/i18n"
	"github.com/toeirei/passkeep/internal/logging"
)

func newDebugCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "debug",
		Short: i18n.T("cli.debug.short"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "--- PASSKEEP DEBUG ---")

			if path, err := config.GetConfigPath(false); err == nil {
				_, _ = fmt.Fprintf(out, "User config path: %s\n", path)
			}
			if a.cfgFile != "" {
				_, _ = fmt.Fprintf(out, "Config file flag: %s\n", a.cfgFile)
			}

			// Effective configuration
			b, err := yaml.Marshal(a.cfg)
			if err != nil {
				logging.Errorf("could not marshal config: %v", err)
			} else {
				_, _ = fmt.Fprintln(out, "-- effective config --")
				_, _ = fmt.Fprint(out, string(b))
			}

			_, _ = fmt.Fprintf(out, "Saved entries: %d\n", a.vault.Len())
			_, _ = fmt.Fprintf(out, "Clipboard available: %t\n", clipboard.Available())
			_, _ = fmt.Fprintf(out, "Language: %s (available: %s)\n", i18n.GetLang(), strings.Join(i18n.Codes(), ", "))

			_, _ = fmt.Fprintln(out, "-- flags --")
			cmd.Flags().VisitAll(func(f *pflag.Flag) {
				_, _ = fmt.Fprintf(out, "%s = %s\n", f.Name, f.Value.String())
			})

			_, _ = fmt.Fprintln(out, "-- environment (PASSKEEP_*) --")
			for _, e := range os.Environ() {
				if strings.HasPrefix(e, "PASSKEEP_") {
					_, _ = fmt.Fprintln(out, e)
				}
			}
			_, _ = fmt.Fprintln(out, "--- END DEBUG ---")
		},
	}
}
