// Package theme resolves the dark/light display preference.
//
// Resolution runs once at startup: a persisted choice wins, otherwise the
// Policy decides between the system signal and a fixed dark default. After
// that the value only changes through SetTheme.
package theme

import (
	"fmt"
	"strings"
)

// Value is the display theme.
type Value string

const (
	Dark  Value = "dark"
	Light Value = "light"
)

// Key is the preference-store key the theme is persisted under.
const Key = "theme"

// Parse accepts exactly "dark" or "light", ignoring case and surrounding space.
func Parse(s string) (Value, bool) {
	switch Value(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark, true
	case Light:
		return Light, true
	}
	return "", false
}

// Toggle returns the other theme.
func (v Value) Toggle() Value {
	if v == Light {
		return Dark
	}
	return Light
}

// Store is a persisted key-value preference store.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Display receives the active theme.
type Display interface {
	Apply(Value)
}

// Signal reports the platform's color-scheme preference. ok is false when
// no preference can be queried.
type Signal interface {
	PrefersDark() (dark, ok bool)
}

// Policy picks the theme when nothing has been persisted.
type Policy int

const (
	// PolicySystem follows the system signal, falling back to dark when the
	// signal is unavailable.
	PolicySystem Policy = iota
	// PolicyDark ignores the system signal.
	PolicyDark
)

func (p Policy) String() string {
	if p == PolicyDark {
		return "dark"
	}
	return "system"
}

// ParsePolicy maps "system" or "dark" to a Policy. Empty means PolicySystem.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "system":
		return PolicySystem, nil
	case "dark":
		return PolicyDark, nil
	}
	return PolicySystem, fmt.Errorf("unknown theme fallback %q", s)
}

// Resolver ties the store, display and system signal together.
type Resolver struct {
	store   Store
	display Display
	signal  Signal
	policy  Policy
}

// NewResolver builds a Resolver. A nil signal is treated as unavailable.
func NewResolver(store Store, display Display, signal Signal, policy Policy) *Resolver {
	return &Resolver{store: store, display: display, signal: signal, policy: policy}
}

// SystemPreference queries the signal; dark when it is unavailable.
func (r *Resolver) SystemPreference() Value {
	if r.signal == nil {
		return Dark
	}
	dark, ok := r.signal.PrefersDark()
	if !ok || dark {
		return Dark
	}
	return Light
}

// Initialize resolves the startup theme, applies it and returns it.
// Unrecognised persisted values count as absent.
func (r *Resolver) Initialize() Value {
	v := r.resolve()
	r.apply(v)
	return v
}

func (r *Resolver) resolve() Value {
	if r.store != nil {
		if raw, ok := r.store.Get(Key); ok {
			if v, ok := Parse(raw); ok {
				return v
			}
		}
	}
	if r.policy == PolicyDark {
		return Dark
	}
	return r.SystemPreference()
}

// SetTheme applies v and persists it. The display is updated even when the
// store write fails.
func (r *Resolver) SetTheme(v Value) error {
	r.apply(v)
	if r.store == nil {
		return nil
	}
	if err := r.store.Set(Key, string(v)); err != nil {
		return fmt.Errorf("persist theme: %w", err)
	}
	return nil
}

func (r *Resolver) apply(v Value) {
	if r.display != nil {
		r.display.Apply(v)
	}
}
