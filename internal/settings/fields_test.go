package settings

import (
	"errors"
	"testing"
)

func TestFields_CoverEverySetting(t *testing.T) {
	if got := len(Fields()); got != 28 {
		t.Fatalf("len(Fields()) = %d, want 28", got)
	}
	seen := map[string]bool{}
	for _, f := range Fields() {
		if seen[f.Name] {
			t.Fatalf("duplicate field %q", f.Name)
		}
		seen[f.Name] = true
	}
}

func TestField_ValueRendersDefaults(t *testing.T) {
	d := Defaults()
	cases := map[string]string{
		"memoryLimit":           "8",
		"swapFile":              `C:\wsl.swap`,
		"localhostForwarding":   "true",
		"debugConsole":          "false",
		"dnsTunnelingIpAddress": "10.255.255.254",
		"kernel":                "",
	}
	for name, want := range cases {
		f, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) failed", name)
		}
		if got := f.Value(d); got != want {
			t.Fatalf("%s Value = %q, want %q", name, got, want)
		}
	}
}

func TestModelSet(t *testing.T) {
	cases := []struct {
		name  string
		field string
		raw   string
		check func(Settings) bool
	}{
		{"size_gb", "memoryLimit", "16GB", func(s Settings) bool { return s.MemoryLimit == 16 }},
		{"size_mb", "swap", "2048MB", func(s Settings) bool { return s.Swap == 2 }},
		{"size_bare", "defaultVhdSize", " 512 ", func(s Settings) bool { return s.DefaultVhdSize == 512 }},
		{"int", "vmIdleTimeout", "120000", func(s Settings) bool { return s.VMIdleTimeout == 120000 }},
		{"bool", "safeMode", "TRUE", func(s Settings) bool { return s.SafeMode }},
		{"string", "networkMode", "nat", func(s Settings) bool { return s.NetworkMode == "nat" }},
		{"string_verbatim", "kernelCommandLine", "quiet splash=1", func(s Settings) bool { return s.KernelCommandLine == "quiet splash=1" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewModel()
			if err := m.Set(tc.field, tc.raw); err != nil {
				t.Fatalf("Set(%q, %q) returned error: %v", tc.field, tc.raw, err)
			}
			if !tc.check(m.State()) {
				t.Fatalf("Set(%q, %q) did not apply: %+v", tc.field, tc.raw, m.State())
			}
		})
	}
}

func TestModelSet_Errors(t *testing.T) {
	m := NewModel()
	if err := m.Set("nope", "1"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("Set unknown = %v, want ErrUnknownField", err)
	}
	if err := m.Set("processorCount", "four"); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("Set bad int = %v, want ErrInvalidValue", err)
	}
	if err := m.Set("firewall", "maybe"); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("Set bad bool = %v, want ErrInvalidValue", err)
	}
	if got := m.State(); got != Defaults() {
		t.Fatalf("failed Set changed state: %+v", got)
	}
}

func TestField_Toggle(t *testing.T) {
	s := Defaults()
	fw, _ := Lookup("firewall")
	if !fw.Toggle(&s) || s.Firewall {
		t.Fatalf("Toggle(firewall) did not flip, Firewall = %v", s.Firewall)
	}
	mem, _ := Lookup("memoryLimit")
	if mem.Toggle(&s) {
		t.Fatalf("Toggle on a size field reported success")
	}
}

func TestParseSizeGB(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"8GB", 8, false},
		{"8gb", 8, false},
		{"1023MB", 0, false},
		{"4096MB", 4, false},
		{"12", 12, false},
		{"lots", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseSizeGB(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseSizeGB(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseSizeGB(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestField_SetLenient(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"true", true},
		{"True", true},
		{" TRUE ", true},
		{"false", false},
		{"yes", false},
		{"1", false},
		{"T", false},
		{"", false},
	}
	f, _ := Lookup("firewall")
	for _, tc := range cases {
		s := Defaults()
		s.Firewall = !tc.want
		if err := f.SetLenient(&s, tc.raw); err != nil {
			t.Fatalf("SetLenient(%q) error = %v", tc.raw, err)
		}
		if s.Firewall != tc.want {
			t.Fatalf("SetLenient(%q) = %v, want %v", tc.raw, s.Firewall, tc.want)
		}
	}

	mem, _ := Lookup("memoryLimit")
	s := Defaults()
	if err := mem.SetLenient(&s, "lots"); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("SetLenient on a size field err = %v, want ErrInvalidValue", err)
	}
	if s.MemoryLimit != Defaults().MemoryLimit {
		t.Fatalf("MemoryLimit = %d, want default kept", s.MemoryLimit)
	}
}
