// Package cli wires configuration, storage and the todo store to the tada
// command line. Running tada without a subcommand starts the interactive
// view; the subcommands are scriptable one-shot operations on the same list.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/tada/internal/config"
	"github.com/idilsaglam/tada/internal/logging"
	"github.com/idilsaglam/tada/internal/storage"
	"github.com/idilsaglam/tada/internal/todo"
	"github.com/idilsaglam/tada/internal/tui"
	"github.com/idilsaglam/tada/internal/ui"
)

// App carries flag values and the resources a command opens.
type App struct {
	ConfigFile string
	Backend    string
	DataDir    string
	DBPath     string
	Key        string
	Theme      string
	NoColor    bool
	LogLevel   string
	LogFile    string

	// WorkDir anchors relative paths and project config lookup. Empty
	// means the process working directory.
	WorkDir string

	cfg   *config.Config
	log   *logging.Logger
	kv    storage.KV
	store *todo.Store
}

// Execute runs tada with args and returns the exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	return execute(NewRootCmd(&App{}), args, stdout, stderr)
}

func execute(cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	ui.Fail(stderr, err.Error())
	var ue *usageError
	if errors.As(err, &ue) && ue.hint != "" {
		ui.Note(stderr, ue.hint)
	}
	return ExitCode(err)
}

func NewRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tada",
		Short:         "A small task list: interactive view plus scriptable commands",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive view
  tada

  # Scriptable commands
  tada add "Buy milk"
  tada ls --group
  tada done 2
  tada edit 1 "Buy oat milk"
  tada rm 3
`),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usagef("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.loadConfig(cmd)
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{msg: err.Error(), hint: "Hint: run `" + cmd.CommandPath() + " --help` for usage"}
	})

	f := cmd.PersistentFlags()
	f.StringVar(&app.ConfigFile, "config", "", "Config file (replaces user and project config lookup)")
	f.StringVar(&app.Backend, "backend", "", "Storage backend (file|sqlite|memory)")
	f.StringVar(&app.DataDir, "data-dir", "", "Directory for the file backend")
	f.StringVar(&app.DBPath, "db", "", "Database file for the sqlite backend")
	f.StringVar(&app.Key, "key", "", "Storage key the list is kept under")
	f.StringVar(&app.Theme, "theme", "", "Colour theme (classic|neon|mono)")
	f.BoolVar(&app.NoColor, "no-color", false, "Disable colour output")
	f.StringVar(&app.LogLevel, "log-level", "", "Diagnostic log level (debug|info|warn|error)")
	f.StringVar(&app.LogFile, "log-file", "", "Append diagnostics to this file")

	cmd.AddCommand(newTUICmd(app))
	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newDoneCmd(app))
	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newRemoveCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func newTUICmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive view",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, app)
		},
	}
}

func runTUI(cmd *cobra.Command, app *App) error {
	if err := app.open(cmd, true); err != nil {
		return err
	}
	defer app.close()
	return tui.Run(app.store, tui.Options{AddDelay: app.cfg.UI.AddDelay})
}

// loadConfig resolves defaults, files, environment and flags, then applies
// the theme.
func (a *App) loadConfig(cmd *cobra.Command) error {
	cfg, err := config.Load(a.WorkDir, a.ConfigFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Storage.Backend = a.Backend
	}
	if flags.Changed("data-dir") {
		cfg.Storage.Dir = a.DataDir
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = a.DBPath
	}
	if flags.Changed("key") {
		cfg.Storage.Key = a.Key
	}
	if flags.Changed("theme") {
		cfg.UI.Theme = a.Theme
	}
	if flags.Changed("no-color") {
		cfg.UI.NoColor = a.NoColor
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.LogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = a.LogFile
	}

	if err := config.Finalize(cfg, a.WorkDir); err != nil {
		return &usageError{msg: err.Error()}
	}
	ui.SetTheme(cfg.UI.Theme)
	ui.SetColorProfile(cfg.UI.NoColor)
	a.cfg = cfg
	return nil
}

// open builds the logger, the storage backend and the hydrated store.
func (a *App) open(cmd *cobra.Command, interactive bool) error {
	var (
		logger *logging.Logger
		err    error
	)
	if interactive {
		logger, err = logging.FromConfig(a.cfg.Log, true)
	} else {
		logger, err = logging.New(logging.Options{
			Level:    a.cfg.Log.Level,
			File:     a.cfg.Log.File,
			Fallback: cmd.ErrOrStderr(),
		})
	}
	if err != nil {
		return err
	}

	kv, err := storage.Open(a.cfg.Storage)
	if err != nil {
		_ = logger.Close()
		return fmt.Errorf("open storage: %w", err)
	}
	logger.Debug("storage opened", "backend", a.cfg.Storage.Backend, "key", a.cfg.Storage.Key)

	a.log = logger
	a.kv = kv
	a.store = todo.New(kv, todo.Options{Key: a.cfg.Storage.Key, Logger: logger.Logger})
	return nil
}

func (a *App) close() {
	if a.kv != nil {
		if err := a.kv.Close(); err != nil {
			a.log.Error("close storage", "err", err)
		}
	}
	_ = a.log.Close()
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usagef("%s: unexpected argument %q", cmd.Name(), args[0])
	}
	return nil
}

func minArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return usagef("usage: %s", usage)
		}
		return nil
	}
}

func exactArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return usagef("usage: %s", usage)
		}
		return nil
	}
}
