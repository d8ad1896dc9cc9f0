package wslconfig

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/five82/wsltune/internal/settings"
)

var loadOptions = ini.LoadOptions{
	KeyValueDelimiters:      "=",
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	SkipUnrecognizableLines: true,
}

var keyIndex = func() map[string]settings.Field {
	idx := make(map[string]settings.Field)
	for _, sec := range Sections() {
		for _, e := range sec.Entries {
			idx[e.Key] = mustField(e.Field)
		}
	}
	return idx
}()

// Parse reads .wslconfig text over the defaults. Keys are matched in any
// section and unknown keys are skipped. Booleans are true only for "true";
// any other number or size that does not parse leaves the default in place.
func Parse(data []byte) (settings.Settings, error) {
	return ParseOver(settings.Defaults(), data)
}

// ParseOver is Parse with a caller-supplied starting record.
func ParseOver(base settings.Settings, data []byte) (settings.Settings, error) {
	cfg, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return base, fmt.Errorf("parse wslconfig: %w", err)
	}

	out := base
	for _, sec := range cfg.Sections() {
		for _, key := range sec.Keys() {
			f, ok := keyIndex[key.Name()]
			if !ok {
				continue
			}
			// Invalid values keep the previous one.
			_ = f.SetLenient(&out, key.Value())
		}
	}
	return out, nil
}

// FieldForKey maps a .wslconfig key such as "processors" to its field.
func FieldForKey(key string) (settings.Field, bool) {
	f, ok := keyIndex[key]
	return f, ok
}
