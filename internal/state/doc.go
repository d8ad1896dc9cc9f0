// Package state provides the thread-safe settings facade shared by the CLI
// and the TUI.
//
// # Overview
//
// Facade wraps a settings.Model together with the .wslconfig path it is bound
// to. It exposes the four operations every front end needs:
//
//	GetConfig()       current settings (copy)
//	SetConfig(p)      merge a partial update, no validation
//	ResetToDefault()  discard all overrides
//	ExportConfig()    .wslconfig text of the current settings
//
// plus Set and Toggle for single-field edits by name, and Load and Save for
// the file round trip.
//
// # Concurrency Model
//
// The Model itself is not synchronized. Facade guards it with a
// sync.RWMutex:
//
//   - GetConfig, ExportConfig, Snapshot: read lock
//   - SetConfig, ResetToDefault, Set, Toggle, Load, Save: write lock
//
// File reads happen before the lock is taken; Save holds the lock for the
// write so the file always matches one consistent record.
//
// # Snapshot
//
// Snapshot bundles the settings with bookkeeping for display:
//
//   - Dirty: edits since the last Load or Save
//   - LastSaved: time of the last successful Save
//   - LastError: most recent Load/Save failure (nil after a success)
//
// Errors are copied so the caller never shares the stored instance.
//
// # Usage Example
//
//	f := state.NewFacade(cfg.WSLConfigPath)
//	if err := f.Load(); err != nil {
//		return err
//	}
//	f.SetConfig(settings.Partial{MemoryLimit: &mem})
//	fmt.Print(f.ExportConfig())
//	return f.Save()
package state
