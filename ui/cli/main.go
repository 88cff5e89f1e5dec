// Copyright (c) 2026 Keymaster Team
// Passkeep - password generator and saved-entry vault
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for Passkeep using the
// Cobra library. It defines the root command, the global flags, the service
// wiring shared by every subcommand and the main entry point for execution.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/passkeep/buildvars"
	"github.com/toeirei/passkeep/internal/clipboard"
	"github.com/toeirei/passkeep/internal/config"
	"github.com/toeirei/passkeep/internal/db"
	"github.com/toeirei/passkeep/internal/generator"
	"github.com/toeirei/passkeep/internal/i18n"
	"github.com/toeirei/passkeep/internal/logging"
	"github.com/toeirei/passkeep/internal/state"
	"github.com/toeirei/passkeep/internal/tui"
	"github.com/toeirei/passkeep/internal/vault"
	"golang.org/x/term"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// app holds the services one command invocation runs against. A fresh app
// is created per root command so tests never share state.
type app struct {
	cfg   config.Config
	store db.Store
	vault *vault.Vault
	gen   *generator.Generator
	clip  clipboard.Sink
	in    io.Reader

	cfgFile         string
	verbose         bool
	showVersionFlag bool
	// isTerminal reports whether the given file descriptor is a TTY.
	isTerminal func(fd int) bool
	runTUI     func(ctx context.Context, d tui.Deps) error
}

func newApp() *app {
	return &app{
		clip:       clipboard.System(),
		in:         os.Stdin,
		isTerminal: term.IsTerminal,
		runTUI:     tui.Run,
	}
}

func (a *app) setupDefaultServices(cmd *cobra.Command, args []string) error {
	if a.verbose {
		logging.SetDebug(true)
		db.SetDebug(true)
	}

	// Load optional config file argument from cli
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	// A "file not found" error is expected on first run, so we handle it specifically.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		def := config.Default()
		if path, writeErr := config.WriteConfigFile(&def, false); writeErr != nil {
			// The app can run on defaults.
			logging.Warnf("could not write default config file: %v", writeErr)
		} else {
			logging.Debugf("wrote default config to %s", path)
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if cfg.Language == "" {
		cfg.Language = "en"
	}
	i18n.Init(cfg.Language)

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if !a.verbose {
		if err := logging.SetLevel(cfg.Log.Level); err != nil {
			return err
		}
	}
	a.cfg = cfg

	if a.store == nil {
		store, err := openStore(cfg.Storage)
		if err != nil {
			return errors.New(i18n.T("cli.error_open_store", err))
		}
		a.store = store
	}
	a.vault = vault.Load(cmd.Context(), a.store)
	if a.gen == nil {
		a.gen = generator.New(nil)
	}
	logging.Debugf("storage %s ready with %d saved entries", cfg.Storage.Type, a.vault.Len())
	return nil
}

// openStore resolves the DSN for s and opens the backend. The parent
// directory of a local SQLite file is created on demand.
func openStore(s config.Storage) (db.Store, error) {
	dsn, err := s.ResolveDSN()
	if err != nil {
		return nil, err
	}
	if s.Type == db.TypeSQLite && !strings.Contains(dsn, "mode=memory") && dsn != ":memory:" {
		path := strings.TrimPrefix(dsn, "file:")
		if i := strings.IndexByte(path, '?'); i >= 0 {
			path = path[:i]
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("could not create database directory: %w", err)
		}
	}
	return db.New(s.Type, dsn)
}

func (a *app) close() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		logging.Warnf("closing store: %v", err)
	}
	a.store = nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := newApp()
	defer a.close()
	return newRootCmd(a).ExecuteContext(ctx)
}

func applyDefaultFlags(cmd *cobra.Command) {
	if cmd.PersistentFlags().Lookup("storage.type") == nil {
		cmd.PersistentFlags().String("storage.type", "", `Storage backend ("file", "sqlite", "postgres", "mysql", "memory")`)
	}
	if cmd.PersistentFlags().Lookup("storage.dsn") == nil {
		cmd.PersistentFlags().String("storage.dsn", "", "Storage location: directory for file, DSN for SQL backends")
	}
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}

		if path == "" {
			return nil, nil
		}

		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command.
func NewRootCmd() *cobra.Command {
	return newRootCmd(newApp())
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passkeep",
		Short: i18n.T("cli.root.short"),
		Long: `Passkeep generates random passwords from lowercase letters and,
optionally, digits and symbols, and keeps a small append-only list of
labelled entries in a local store.

Running without a subcommand will launch the interactive TUI.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setupDefaultServices,
		PersistentPostRun: func(cmd *cobra.Command, args []string) { a.close() },
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.isTerminal(int(os.Stdout.Fd())) {
				return cmd.Help()
			}
			st := state.New(a.cfg.Generator.Options(), a.cfg.Generator.Bounds(), a.cfg.UI.CopyFillsValue)
			return a.runTUI(cmd.Context(), tui.Deps{
				Vault:     a.vault,
				Generator: a.gen,
				Clipboard: a.clip,
				State:     st,
				LogFile:   a.cfg.Log.ResolveLogFile(),
			})
		},
	}

	// cobra prints cmd.Version when the root's --version flag is set.
	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().BoolVarP(&a.showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "", `Interface language ("en", "de")`)
	applyDefaultFlags(cmd)

	cmd.AddCommand(
		newGenerateCmd(a),
		newSaveCmd(a),
		newListCmd(a),
		newCopyCmd(a),
		newBackupCmd(a),
		newImportCmd(a),
		newDebugCmd(a),
		newVersionCmd(),
	)

	return cmd
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	composite := v
	if c != "" && c != "dev" {
		composite = composite + " (" + c + ")"
	}
	if d != "" {
		composite = composite + " built: " + d
	}
	return composite
}

// newVersionCmd adds a lightweight `version` subcommand so users and CI can
// run `passkeep version` without touching config or storage.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "version",
		Short:             "Print version",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "version: %s\n", v)
			_, _ = fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				_, _ = fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if infoLocal, found := debug.ReadBuildInfo(); found {
			info = infoLocal
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// If Main doesn't contain the version (some build paths), try to
		// find our module in the dependencies and use that version.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == "github.com/toeirei/passkeep" && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}

		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort, show an ldflags-provided commit to aid support.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
