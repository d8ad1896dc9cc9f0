package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/wsltune/internal/settings"
	"github.com/five82/wsltune/internal/wslconfig"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Settings  settings.Settings
	Path      string
	Dirty     bool // changed since the last load or save
	LastSaved time.Time
	LastError error
}

// Facade is the single entry point for reading, updating and exporting the
// settings. It owns a settings.Model and serializes access to it.
type Facade struct {
	mu       sync.RWMutex
	model    *settings.Model
	path     string
	dirty    bool
	lastSave time.Time
	lastErr  error
}

// NewFacade returns a Facade over a fresh default model bound to the
// .wslconfig at path. Nothing is read until Load.
func NewFacade(path string) *Facade {
	return &Facade{model: settings.NewModel(), path: path}
}

// GetConfig returns a copy of the current settings.
func (f *Facade) GetConfig() settings.Settings {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.model.State()
}

// SetConfig merges p into the model.
func (f *Facade) SetConfig(p settings.Partial) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.model.Merge(p)
	f.dirty = true
}

// ResetToDefault discards every override.
func (f *Facade) ResetToDefault() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.model.Reset()
	f.dirty = true
}

// ExportConfig renders the current settings as .wslconfig text.
func (f *Facade) ExportConfig() string {
	return wslconfig.Serialize(f.GetConfig())
}

// Set assigns one field from its string form.
func (f *Facade) Set(name, raw string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.model.Set(name, raw); err != nil {
		return err
	}
	f.dirty = true
	return nil
}

// Toggle flips a boolean field and returns its new value.
func (f *Facade) Toggle(name string) (bool, error) {
	field, ok := settings.Lookup(name)
	if !ok {
		return false, &settings.FieldError{Field: name, Err: settings.ErrUnknownField}
	}
	if field.Kind != settings.KindBool {
		return false, fmt.Errorf("%s is not a boolean setting", name)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.model.State()
	field.Toggle(&s)
	f.model.Replace(s)
	f.dirty = true
	return field.Value(s) == "true", nil
}

// Load replaces the model with the file contents read over the defaults.
// A missing file leaves the defaults in place.
func (f *Facade) Load() error {
	loaded, err := wslconfig.Load(f.path)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.lastErr = err
		return err
	}
	f.model.Replace(loaded)
	f.dirty = false
	f.lastErr = nil
	return nil
}

// Save writes the exported text to the bound path.
func (f *Facade) Save() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := wslconfig.Save(f.path, f.model.State()); err != nil {
		f.lastErr = err
		return err
	}
	f.dirty = false
	f.lastSave = time.Now()
	f.lastErr = nil
	return nil
}

// Path returns the bound .wslconfig location.
func (f *Facade) Path() string {
	return f.path
}

// Snapshot returns a copy of the current state for rendering.
func (f *Facade) Snapshot() Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()

	snap := Snapshot{
		Settings:  f.model.State(),
		Path:      f.path,
		Dirty:     f.dirty,
		LastSaved: f.lastSave,
	}
	if f.lastErr != nil {
		snap.LastError = fmt.Errorf("%w", f.lastErr)
	}
	return snap
}

// Summary is a one-line description of the sizes most people tune.
func (s Snapshot) Summary() string {
	return fmt.Sprintf("memory=%dGB swap=%dGB processors=%d", s.Settings.MemoryLimit, s.Settings.Swap, s.Settings.ProcessorCount)
}
