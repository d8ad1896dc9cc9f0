package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/wsltune/internal/theme"
)

// Config captures wsltune's own settings.
type Config struct {
	WSLConfigPath string
	PrefsPath     string
	ThemeFallback theme.Policy
	LogLevel      string
}

const (
	defaultConfigPath    = "~/.config/wsltune/config.toml"
	defaultWSLConfigPath = "~/.wslconfig"
	defaultPrefsPath     = "~/.config/wsltune/prefs.toml"
	defaultLogLevel      = "info"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		WSLConfigPath: mustExpand(defaultWSLConfigPath),
		PrefsPath:     mustExpand(defaultPrefsPath),
		ThemeFallback: theme.PolicySystem,
		LogLevel:      defaultLogLevel,
	}
}

// Load locates and parses the wsltune config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		WSLConfigPath string `toml:"wslconfig_path"`
		PrefsPath     string `toml:"prefs_path"`
		ThemeFallback string `toml:"theme_fallback"`
		LogLevel      string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if v := strings.TrimSpace(raw.WSLConfigPath); v != "" {
		cfg.WSLConfigPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.PrefsPath); v != "" {
		cfg.PrefsPath = mustExpand(v)
	}
	policy, err := theme.ParsePolicy(raw.ThemeFallback)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.ThemeFallback = policy
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	return cfg, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
