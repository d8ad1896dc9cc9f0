// Package app provides the orchestration layer for wsltune.
//
// # Overview
//
// This package wires together configuration, the settings facade, theme
// preferences and the UI. It is the composition root: every dependency is
// built here and handed down explicitly.
//
// # Initialization
//
//  1. Load the tool config from ~/.config/wsltune/config.toml
//  2. Set the logger level (log_level, or debug with --verbose)
//  3. Build a state.Facade bound to wslconfig_path and load the file
//  4. Connect the theme resolver to the prefs file, the UI appearance and
//     the terminal background signal
//
// Open stops there, which is all the non-interactive commands need. Run
// additionally resolves the startup theme and blocks in the editor.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Open()     │
//	└──────┬───────┘
//	       ├─────> config.Load()         Read tool config
//	       ├─────> state.NewFacade()     Settings model + file path
//	       ├─────> facade.Load()         Parse existing .wslconfig
//	       └─────> theme.NewResolver()   prefs.File + ui.Appearance
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> resolver.Initialize() Persisted theme or system preference
//	       └─────> ui.Run()              Editor (blocks)
//
// # Logging
//
// Logging uses charmbracelet/log with a "wsltune" prefix on stderr. Nothing
// is logged while the editor owns the terminal.
//
// # Error Handling
//
// Config and .wslconfig read failures abort startup. A missing .wslconfig is
// not an error; the editor starts from the defaults. Theme persistence
// failures are reported in the editor status line and never abort.
package app
