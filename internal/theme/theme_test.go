package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type memStore struct {
	values map[string]string
	err    error
	writes int
}

func newMemStore() *memStore { return &memStore{values: map[string]string{}} }

func (m *memStore) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *memStore) Set(key, value string) error {
	m.writes++
	if m.err != nil {
		return m.err
	}
	m.values[key] = value
	return nil
}

type recordDisplay struct {
	applied []Value
}

func (d *recordDisplay) Apply(v Value) { d.applied = append(d.applied, v) }

func (d *recordDisplay) current() Value {
	if len(d.applied) == 0 {
		return ""
	}
	return d.applied[len(d.applied)-1]
}

type fixedSignal struct {
	dark, ok bool
	calls    int
}

func (s *fixedSignal) PrefersDark() (bool, bool) {
	s.calls++
	return s.dark, s.ok
}

func TestInitialize_PersistedValueWins(t *testing.T) {
	store := newMemStore()
	store.values[Key] = "dark"
	display := &recordDisplay{}
	signal := &fixedSignal{dark: false, ok: true}

	got := NewResolver(store, display, signal, PolicySystem).Initialize()
	if got != Dark {
		t.Fatalf("Initialize = %q, want dark", got)
	}
	if display.current() != Dark {
		t.Fatalf("display = %q, want dark", display.current())
	}
	if signal.calls != 0 {
		t.Fatalf("signal consulted %d times with a persisted value", signal.calls)
	}
}

func TestInitialize_FollowsSystemWithoutPersistedValue(t *testing.T) {
	cases := []struct {
		name   string
		signal *fixedSignal
		want   Value
	}{
		{"system_light", &fixedSignal{dark: false, ok: true}, Light},
		{"system_dark", &fixedSignal{dark: true, ok: true}, Dark},
		{"system_unavailable", &fixedSignal{ok: false}, Dark},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			display := &recordDisplay{}
			got := NewResolver(newMemStore(), display, tc.signal, PolicySystem).Initialize()
			if got != tc.want {
				t.Fatalf("Initialize = %q, want %q", got, tc.want)
			}
			if display.current() != tc.want {
				t.Fatalf("display = %q, want %q", display.current(), tc.want)
			}
		})
	}
}

func TestInitialize_NilSignalDefaultsDark(t *testing.T) {
	if got := NewResolver(newMemStore(), nil, nil, PolicySystem).Initialize(); got != Dark {
		t.Fatalf("Initialize = %q, want dark", got)
	}
}

func TestInitialize_DarkPolicyIgnoresSystem(t *testing.T) {
	signal := &fixedSignal{dark: false, ok: true}
	got := NewResolver(newMemStore(), nil, signal, PolicyDark).Initialize()
	if got != Dark {
		t.Fatalf("Initialize = %q, want dark", got)
	}
	if signal.calls != 0 {
		t.Fatalf("signal consulted under PolicyDark")
	}
}

func TestInitialize_InvalidPersistedValueIsIgnored(t *testing.T) {
	store := newMemStore()
	store.values[Key] = "solarized"
	got := NewResolver(store, nil, &fixedSignal{dark: false, ok: true}, PolicySystem).Initialize()
	if got != Light {
		t.Fatalf("Initialize = %q, want light from system", got)
	}
}

func TestSetTheme_AppliesAndPersists(t *testing.T) {
	store := newMemStore()
	store.values[Key] = "dark"
	display := &recordDisplay{}
	r := NewResolver(store, display, nil, PolicySystem)
	r.Initialize()

	if err := r.SetTheme(Light); err != nil {
		t.Fatalf("SetTheme returned error: %v", err)
	}
	if display.current() != Light {
		t.Fatalf("display = %q, want light", display.current())
	}
	if store.values[Key] != "light" {
		t.Fatalf("persisted = %q, want light", store.values[Key])
	}
}

func TestSetTheme_StoreFailureStillApplies(t *testing.T) {
	store := newMemStore()
	store.err = errors.New("disk full")
	display := &recordDisplay{}
	r := NewResolver(store, display, nil, PolicySystem)

	err := r.SetTheme(Light)
	if err == nil {
		t.Fatalf("SetTheme returned nil error, want persist error")
	}
	if display.current() != Light {
		t.Fatalf("display = %q, want light", display.current())
	}
}

func TestParse(t *testing.T) {
	cases := map[string]Value{"dark": Dark, " Light ": Light, "DARK": Dark}
	for in, want := range cases {
		got, ok := Parse(in)
		if !ok || got != want {
			t.Fatalf("Parse(%q) = %q, %v; want %q", in, got, ok, want)
		}
	}
	if _, ok := Parse("blue"); ok {
		t.Fatalf("Parse(blue) ok = true, want false")
	}
}

func TestToggle(t *testing.T) {
	if Dark.Toggle() != Light || Light.Toggle() != Dark {
		t.Fatalf("Toggle did not swap dark and light")
	}
}

func TestParsePolicy(t *testing.T) {
	if p, err := ParsePolicy(""); err != nil || p != PolicySystem {
		t.Fatalf("ParsePolicy(\"\") = %v, %v", p, err)
	}
	if p, err := ParsePolicy("Dark"); err != nil || p != PolicyDark {
		t.Fatalf("ParsePolicy(Dark) = %v, %v", p, err)
	}
	if _, err := ParsePolicy("sepia"); err == nil {
		t.Fatalf("ParsePolicy(sepia) returned nil error")
	}
}

func TestTerminalSignal_UnavailableOffTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()

	if _, ok := (TerminalSignal{Out: f}).PrefersDark(); ok {
		t.Fatalf("PrefersDark ok = true for a regular file")
	}
}
