// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/toeirei/passkeep/internal/clipboard"
	"github.com/toeirei/passkeep/internal/i18n"
	"github.com/toeirei/passkeep/internal/vault"
	"golang.org/x/term"
)

// newSaveCmd represents the 'save' command.
func newSaveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save <label> [value]",
		Short: i18n.T("cli.save.short"),
		Long: `Appends a labelled entry to the saved list. When no value is given it is
read from the terminal without echo, or generated with --generate using
the configured generator options.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := strings.TrimSpace(args[0])
			var value string
			switch {
			case len(args) == 2:
				value = args[1]
			case mustBool(cmd, "generate"):
				opts, err := a.generateOptions(cmd)
				if err != nil {
					return err
				}
				value = opts.Generate(a.gen)
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
			default:
				v, err := a.promptSecret(cmd, i18n.T("cli.save.prompt", label))
				if err != nil {
					return err
				}
				value = v
			}

			e, err := a.vault.Append(cmd.Context(), label, value)
			switch {
			case errors.Is(err, vault.ErrEmptyLabel), errors.Is(err, vault.ErrEmptyValue):
				return errors.New(i18n.T("notice.save_rejected"))
			case err != nil:
				return err
			}
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.save.done", e.Label, e.ID))
			return nil
		},
	}
	cmd.Flags().BoolP("generate", "g", false, "Save a freshly generated password")
	cmd.Flags().IntP("length", "l", 0, "Length of the generated password (default from config)")
	cmd.Flags().BoolP("numbers", "n", false, "Include digits in the generated password")
	cmd.Flags().BoolP("symbols", "s", false, "Include symbols in the generated password")
	return cmd
}

func mustBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

// promptSecret reads one line. On a terminal the input is not echoed.
func (a *app) promptSecret(cmd *cobra.Command, prompt string) (string, error) {
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), prompt)
	if f, ok := a.in.(*os.File); ok && a.isTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("could not read value: %w", err)
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(a.in).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("could not read value: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// newListCmd represents the 'list' command.
func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   i18n.T("cli.list.short"),
		Long: `Displays the saved entries in insertion order. Values are masked unless
--reveal is given. The index in the first column is what 'copy' expects.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := a.vault.Entries()
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.list.empty"))
				return nil
			}
			reveal := mustBool(cmd, "reveal")

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, i18n.T("cli.list.header"))
			for i, e := range entries {
				value := e.Masked()
				if reveal {
					value = e.Value
				}
				_, _ = fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", i, e.ID, e.Label, value)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Bool("reveal", false, "Show values in clear text")
	return cmd
}

// newCopyCmd represents the 'copy' command.
func newCopyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <index>",
		Short: i18n.T("cli.copy.short"),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.New(i18n.T("cli.copy.error_index", args[0]))
			}
			e, err := a.vault.Get(index)
			if err != nil {
				return errors.New(i18n.T("cli.copy.error_index", args[0]))
			}

			text, what := e.Value, "notice.copied_value"
			if mustBool(cmd, "label") {
				text, what = e.Label, "notice.copied_label"
			}
			if !clipboard.Copy(a.clip, text) {
				return errors.New(i18n.T("cli.error_clipboard"))
			}
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), i18n.T(what))
			return nil
		},
	}
	cmd.Flags().Bool("label", false, "Copy the label instead of the value")
	return cmd
}
