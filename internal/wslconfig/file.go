package wslconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/five82/wsltune/internal/settings"
)

// FileName is the per-user configuration file read by the WSL host.
const FileName = ".wslconfig"

// Load reads the file at path. A missing file yields the defaults.
func Load(path string) (settings.Settings, error) {
	if strings.TrimSpace(path) == "" {
		return settings.Defaults(), fmt.Errorf("wslconfig path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings.Defaults(), nil
		}
		return settings.Defaults(), fmt.Errorf("read wslconfig: %w", err)
	}
	return Parse(data)
}

// Save writes the serialized settings to path, creating directories as needed.
func Save(path string, s settings.Settings) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("wslconfig path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create wslconfig dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(Serialize(s)), 0o644); err != nil {
		return fmt.Errorf("write wslconfig: %w", err)
	}
	return nil
}
