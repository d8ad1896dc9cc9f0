// Package config loads wsltune's own configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/wsltune/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/wsltune/config.toml
//   - WSL config: ~/.wslconfig
//   - Preferences: ~/.config/wsltune/prefs.toml
//   - Theme fallback: system
//   - Log level: info
//
// # TOML Format
//
//	wslconfig_path = "/mnt/c/Users/me/.wslconfig"
//	prefs_path = "~/.config/wsltune/prefs.toml"
//	theme_fallback = "system" # or "dark"
//	log_level = "info"
//
// All fields are optional. Tilde expansion is performed on both paths.
//
// theme_fallback picks the theme when no preference has been saved yet:
// "system" follows the terminal background (dark when it cannot be
// queried), "dark" always starts dark.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors and unknown theme_fallback values.
// Missing config files are NOT an error.
package config
