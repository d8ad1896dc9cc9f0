// Package settings holds the in-memory model of WSL2 virtualization tunables.
//
// Settings is a closed, always fully populated record. A Model starts from
// Defaults, changes only through Merge, Set, Replace or Reset, and is never persisted
// by this package; the wslconfig package reads and writes the file form.
//
// Merge takes a Partial whose nil fields are left untouched, so Merge of the
// zero Partial is the identity. No range or format checks are performed on
// merged values; the WSL host is the authority on what it accepts.
//
// The Fields registry maps each camelCase name to its kind and is what the
// CLI and TUI use to edit a single value from text.
package settings
