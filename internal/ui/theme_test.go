package ui

import (
	"testing"

	"github.com/five82/wsltune/internal/theme"
)

func TestGetTheme(t *testing.T) {
	if got := GetTheme(theme.Light).Name; got != theme.Light {
		t.Fatalf("GetTheme(light).Name = %q, want light", got)
	}
	if got := GetTheme(theme.Dark).Name; got != theme.Dark {
		t.Fatalf("GetTheme(dark).Name = %q, want dark", got)
	}
	if got := GetTheme("").Name; got != theme.Dark {
		t.Fatalf("GetTheme(empty).Name = %q, want dark (fallback)", got)
	}
}

func TestPalettesDiffer(t *testing.T) {
	dark, light := GetTheme(theme.Dark), GetTheme(theme.Light)
	if dark.Background == light.Background || dark.Text == light.Text {
		t.Fatalf("dark and light palettes share base colors")
	}
}

func TestAppearance_ApplyAndCurrent(t *testing.T) {
	a := NewAppearance()
	if got := a.Current(); got != theme.Dark {
		t.Fatalf("initial Current = %q, want dark", got)
	}
	a.Apply(theme.Light)
	if got := a.Theme().Name; got != theme.Light {
		t.Fatalf("Theme().Name after Apply(light) = %q, want light", got)
	}

	var nilAppearance *Appearance
	if got := nilAppearance.Current(); got != theme.Dark {
		t.Fatalf("nil Appearance Current = %q, want dark", got)
	}
}

func TestAppearance_IsDisplay(t *testing.T) {
	var _ theme.Display = NewAppearance()
}
