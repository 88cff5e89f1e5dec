// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
	"github.com/toeirei/passkeep/internal/i18n"
	"github.com/toeirei/passkeep/internal/model"
	"github.com/toeirei/passkeep/internal/vault"
)

// newBackupCmd represents the 'backup' command.
// It dumps the saved entries into a zstd-compressed JSON file.
func newBackupCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "backup [output-file]",
		Short: i18n.T("cli.backup.short"),
		Long: `Writes all saved entries into a single, Zstandard-compressed JSON file.

If an output file is specified, '.zst' will be appended to the name if it's not already present.
If no output file is specified, a default filename 'passkeep-backup-YYYY-MM-DD.json.zst' is used.

The file can be read back with 'passkeep import', also into a different storage backend.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var outputFile string
			if len(args) == 0 {
				outputFile = fmt.Sprintf("passkeep-backup-%s.json.zst", time.Now().Format("2006-01-02"))
			} else {
				outputFile = args[0]
				if !strings.HasSuffix(outputFile, ".zst") {
					outputFile += ".zst"
				}
			}

			entries := a.vault.Entries()
			if err := writeCompressedBackup(outputFile, entries); err != nil {
				return errors.New(i18n.T("cli.backup.error_write", err))
			}
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.backup.done", len(entries), outputFile))
			return nil
		},
	}
}

// newImportCmd represents the 'import' command. Imported entries are
// appended with fresh ids; nothing already saved is replaced.
func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: i18n.T("cli.import.short"),
		Long: `Appends the entries of a backup to the saved list. Files ending in '.zst' are
decompressed first; anything else is read as a plain JSON array of
{"id", "name", "password"} objects. Imported entries receive new ids.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := readBackup(args[0])
			if err != nil {
				return errors.New(i18n.T("cli.import.error_read", err))
			}
			n, err := a.vault.Import(cmd.Context(), entries)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("cli.import.done", n, args[0]))
			return nil
		},
	}
}

// writeCompressedBackup writes the encoded collection to a zstd-compressed file.
func writeCompressedBackup(filename string, entries model.Collection) error {
	data, err := vault.Encode(entries)
	if err != nil {
		return err
	}

	file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	zstdWriter, err := zstd.NewWriter(file)
	if err != nil {
		return fmt.Errorf("could not create zstd writer: %w", err)
	}
	if _, err := zstdWriter.Write(data); err != nil {
		_ = zstdWriter.Close()
		return fmt.Errorf("could not write to zstd writer: %w", err)
	}
	if err := zstdWriter.Close(); err != nil {
		return fmt.Errorf("could not finish zstd stream: %w", err)
	}
	return file.Close()
}

// readBackup reads a backup file, decompressing it when it ends in ".zst".
func readBackup(filename string) (model.Collection, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var r io.Reader = file
	if strings.HasSuffix(filename, ".zst") {
		zstdReader, err := zstd.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("could not create zstd reader: %w", err)
		}
		defer zstdReader.Close()
		r = zstdReader
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read backup: %w", err)
	}
	return vault.Decode(data)
}
