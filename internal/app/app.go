package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/five82/wsltune/internal/config"
	"github.com/five82/wsltune/internal/prefs"
	"github.com/five82/wsltune/internal/state"
	"github.com/five82/wsltune/internal/theme"
	"github.com/five82/wsltune/internal/ui"
)

// Options configure the wsltune application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/wsltune/config.toml
	Verbose    bool   // forces debug logging
	Logger     *log.Logger
	Signal     theme.Signal // nil uses the terminal background
}

// Env is everything a command needs once configuration has been read.
type Env struct {
	Config     config.Config
	Facade     *state.Facade
	Prefs      *prefs.File
	Appearance *ui.Appearance
	Resolver   *theme.Resolver
	Logger     *log.Logger
}

// NewLogger returns the prefixed stderr logger used by the CLI.
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "wsltune",
	})
}

// Open loads the tool config and the .wslconfig it points at, and wires the
// theme resolver to the preferences file. The theme is not resolved yet.
func Open(opts Options) (*Env, error) {
	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(os.Stderr)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load wsltune config: %w", err)
	}
	applyLevel(logger, cfg.LogLevel, opts.Verbose)
	logger.Debug("config loaded", "wslconfig", cfg.WSLConfigPath, "prefs", cfg.PrefsPath, "theme_fallback", cfg.ThemeFallback)

	facade := state.NewFacade(cfg.WSLConfigPath)
	if err := facade.Load(); err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.WSLConfigPath, err)
	}
	logger.Debug("wslconfig loaded", "summary", facade.Snapshot().Summary())

	signal := opts.Signal
	if signal == nil {
		signal = theme.TerminalSignal{Out: os.Stdout}
	}
	store := prefs.NewFile(cfg.PrefsPath)
	appearance := ui.NewAppearance()

	return &Env{
		Config:     cfg,
		Facade:     facade,
		Prefs:      store,
		Appearance: appearance,
		Resolver:   theme.NewResolver(store, appearance, signal, cfg.ThemeFallback),
		Logger:     logger,
	}, nil
}

// Run boots the wsltune editor until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Open(opts)
	if err != nil {
		return err
	}

	active := env.Resolver.Initialize()
	env.Logger.Debug("theme resolved", "theme", active)

	uiOpts := ui.Options{
		Context:    ctx,
		Facade:     env.Facade,
		Resolver:   env.Resolver,
		Appearance: env.Appearance,
	}
	if err := ui.Run(uiOpts); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	if snap := env.Facade.Snapshot(); snap.Dirty {
		env.Logger.Warn("exited with unsaved changes", "path", snap.Path)
	}
	return nil
}

func applyLevel(logger *log.Logger, level string, verbose bool) {
	if verbose {
		logger.SetLevel(log.DebugLevel)
		return
	}
	parsed, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		logger.Warn("unknown log level, using info", "level", level)
		parsed = log.InfoLevel
	}
	logger.SetLevel(parsed)
}
