// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/passkeep/internal/clipboard"
	"github.com/toeirei/passkeep/internal/generator"
	"github.com/toeirei/passkeep/internal/i18n"
)

// newGenerateCmd represents the 'generate' command.
func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   i18n.T("cli.generate.short"),
		Long: `Prints one or more random passwords. Lowercase letters are always used;
digits and symbols are added with -n and -s. Flags that are not given fall
back to the generator section of the config file.

Examples:
  # One 16 character password with digits
  passkeep generate -l 16 -n

  # Five passwords, the last one is copied to the clipboard
  passkeep generate -c 5 --copy`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.generateOptions(cmd)
			if err != nil {
				return err
			}
			count, _ := cmd.Flags().GetInt("count")
			if count < 1 {
				return errors.New(i18n.T("cli.generate.error_count", count))
			}

			var last string
			for i := 0; i < count; i++ {
				last = opts.Generate(a.gen)
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), last)
			}

			if copyFlag, _ := cmd.Flags().GetBool("copy"); copyFlag {
				if !clipboard.Copy(a.clip, last) {
					return errors.New(i18n.T("cli.error_clipboard"))
				}
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("notice.copied_password"))
			}
			return nil
		},
	}

	cmd.Flags().IntP("length", "l", 0, "Password length (default from config)")
	cmd.Flags().BoolP("numbers", "n", false, "Include digits")
	cmd.Flags().BoolP("symbols", "s", false, "Include symbols")
	cmd.Flags().IntP("count", "c", 1, "Number of passwords to print")
	cmd.Flags().Bool("copy", false, "Copy the last password to the clipboard")
	return cmd
}

// generateOptions merges the generator flags over the configured options
// and checks the length against the configured bounds.
func (a *app) generateOptions(cmd *cobra.Command) (generator.Options, error) {
	opts := a.cfg.Generator.Options()
	if cmd.Flags().Changed("length") {
		opts.Length, _ = cmd.Flags().GetInt("length")
	}
	if cmd.Flags().Changed("numbers") {
		opts.Numbers, _ = cmd.Flags().GetBool("numbers")
	}
	if cmd.Flags().Changed("symbols") {
		opts.Symbols, _ = cmd.Flags().GetBool("symbols")
	}
	if err := a.cfg.Generator.Bounds().Check(opts.Length); err != nil {
		return opts, err
	}
	return opts, nil
}
