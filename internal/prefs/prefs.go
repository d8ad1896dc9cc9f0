// Package prefs handles wsltune user preferences persistence.
// Preferences are stored in ~/.config/wsltune/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds user preferences for wsltune.
type Prefs struct {
	Theme string `toml:"theme,omitempty"`
}

const defaultPrefsPath = "~/.config/wsltune/prefs.toml"

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path. Missing or unreadable files
// yield empty preferences.
func Load(path string) Prefs {
	resolved, err := resolvePath(path)
	if err != nil {
		return Prefs{}
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return Prefs{} // Graceful degradation
	}

	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{}
	}
	p.Theme = strings.TrimSpace(p.Theme)
	return p
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

// File exposes a prefs file as a key-value store. Only the "theme" key is
// backed; other keys read as absent and refuse writes.
type File struct {
	path string
}

// NewFile returns a store over path; empty uses DefaultPath.
func NewFile(path string) *File {
	return &File{path: path}
}

// Get returns the stored value for key.
func (f *File) Get(key string) (string, bool) {
	if key != "theme" {
		return "", false
	}
	p := Load(f.path)
	return p.Theme, p.Theme != ""
}

// Set overwrites the value for key.
func (f *File) Set(key, value string) error {
	if key != "theme" {
		return fmt.Errorf("unsupported preference %q", key)
	}
	p := Load(f.path)
	p.Theme = value
	return Save(f.path, p)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
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
