package ui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/wsltune/internal/theme"
)

// Theme defines colors for the UI.
type Theme struct {
	Name theme.Value

	// Base colors
	Background string // Outermost background
	Surface    string // Header and footer bars
	SurfaceAlt string // Section headings

	// Table colors
	SelectionBg   string
	SelectionText string

	Border string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Section: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	// Components
	Header   lipgloss.Style
	Footer   lipgloss.Style
	Section  lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style
}

// WithBackground returns a copy of Styles with every text style carrying bgColor.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)
	out := s
	out.Background = s.Background.Background(bg)
	out.Text = s.Text.Background(bg)
	out.MutedText = s.MutedText.Background(bg)
	out.FaintText = s.FaintText.Background(bg)
	out.AccentText = s.AccentText.Background(bg)
	out.SuccessText = s.SuccessText.Background(bg)
	out.WarningText = s.WarningText.Background(bg)
	out.DangerText = s.DangerText.Background(bg)
	out.Logo = s.Logo.Background(bg)
	return out
}

// GetTheme returns the palette for v. Anything but Light is dark.
func GetTheme(v theme.Value) Theme {
	if v == theme.Light {
		return dayfoxTheme()
	}
	return nightfoxTheme()
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: theme.Dark,

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2

		SelectionBg:   "#2b3b51", // sel0
		SelectionText: "#cdcecf", // fg1

		Border: "#39506d", // bg4

		Text:    "#cdcecf", // fg1
		Muted:   "#738091", // comment
		Faint:   "#71839b", // fg3
		Accent:  "#719cd6", // blue
		Success: "#81b29a", // green
		Warning: "#dbc074", // yellow
		Danger:  "#c94f6d", // red
	}
}

func dayfoxTheme() Theme {
	// Dayfox palette, the light variant of Nightfox.
	return Theme{
		Name: theme.Light,

		Background: "#e4dcd4", // bg0
		Surface:    "#f6f2ee", // bg1
		SurfaceAlt: "#dbd1dd", // bg2

		SelectionBg:   "#e7d2be", // sel0
		SelectionText: "#3d2b5a", // fg1

		Border: "#aab0ad", // bg4

		Text:    "#3d2b5a", // fg1
		Muted:   "#837a72", // comment
		Faint:   "#824d5b", // fg3
		Accent:  "#2848a9", // blue
		Success: "#396847", // green
		Warning: "#ac5402", // yellow
		Danger:  "#a5222f", // red
	}
}

// Appearance is the live display attribute the theme resolver drives. It is
// shared between the resolver and the running program.
type Appearance struct {
	mu    sync.RWMutex
	value theme.Value
}

// NewAppearance starts dark until a resolver applies something else.
func NewAppearance() *Appearance {
	return &Appearance{value: theme.Dark}
}

// Apply implements theme.Display.
func (a *Appearance) Apply(v theme.Value) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.value = v
}

// Current returns the applied theme.
func (a *Appearance) Current() theme.Value {
	if a == nil {
		return theme.Dark
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.value
}

// Theme returns the palette for the applied theme.
func (a *Appearance) Theme() Theme {
	return GetTheme(a.Current())
}
