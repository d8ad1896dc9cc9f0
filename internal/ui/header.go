package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/wsltune/internal/bytesize"
)

// renderHeader renders the status bar: file, sizes and save state.
func (m Model) renderHeader() string {
	th := m.currentTheme()
	styles := th.Styles().WithBackground(th.Surface)
	bg := NewBgStyle(th.Surface)

	snap := m.facade.Snapshot()
	compact := m.width < 100

	parts := []string{bg.Render("wsltune", styles.Logo)}

	pathLimit := 50
	if compact {
		pathLimit = 24
	}
	parts = append(parts, bg.Render(truncateMiddle(snap.Path, pathLimit), styles.MutedText))

	s := snap.Settings
	gauges := []struct {
		label string
		gb    int
	}{
		{"Memory:", s.MemoryLimit},
		{"Swap:", s.Swap},
		{"VHD:", s.DefaultVhdSize},
	}
	for _, g := range gauges {
		parts = append(parts,
			bg.Render(g.label, styles.MutedText)+bg.Spaces(1)+
				bg.Render(formatGB(g.gb), styles.Text),
		)
	}
	parts = append(parts,
		bg.Render("CPUs:", styles.MutedText)+bg.Spaces(1)+
			bg.Render(fmt.Sprintf("%d", s.ProcessorCount), styles.Text),
	)

	switch {
	case snap.LastError != nil:
		maxErr := 60
		if compact {
			maxErr = 30
		}
		parts = append(parts,
			bg.Render("ERROR", styles.DangerText)+bg.Spaces(1)+
				bg.Render(truncate(snap.LastError.Error(), maxErr), styles.DangerText),
		)
	case snap.Dirty:
		parts = append(parts, bg.Render("● modified", styles.WarningText))
	case !snap.LastSaved.IsZero():
		parts = append(parts, bg.Render("● saved "+snap.LastSaved.Format("15:04:05"), styles.SuccessText))
	}

	return bg.FillLine(styles.Header.Render(bg.Join(parts, "  ")), m.width)
}

// formatGB renders a whole-gigabyte setting through the byte formatter.
func formatGB(gb int) string {
	return bytesize.FormatSize(float64(gb) * bytesize.GiB)
}

// renderCommandBar renders the footer: key hints, then the last status.
func (m Model) renderCommandBar() string {
	th := m.currentTheme()
	styles := th.Styles().WithBackground(th.Surface)
	bg := NewBgStyle(th.Surface)

	var bindings []key.Binding
	switch m.mode {
	case modeEdit:
		bindings = []key.Binding{m.keys.Apply, m.keys.Cancel}
	case modeExport:
		bindings = []key.Binding{m.keys.Save, m.keys.Cancel}
	default:
		bindings = m.keys.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, bg.Render(h.Key, styles.AccentText)+bg.Spaces(1)+bg.Render(h.Desc, styles.MutedText))
	}
	content := bg.Join(hints, "  ")

	if m.status != "" {
		statusStyle := styles.Text
		if m.statusErr {
			statusStyle = styles.DangerText
		}
		content += bg.Spaces(3) + bg.Render(truncate(m.status, maxInt(m.width-60, 20)), statusStyle)
	}

	return bg.FillLine(styles.Footer.Render(content), m.width)
}

// renderSettings lists every field grouped under its section heading,
// scrolled so the selection stays visible.
func (m Model) renderSettings(height int) string {
	th := m.currentTheme()
	styles := th.Styles()
	current := m.facade.GetConfig()

	keyWidth := 0
	for _, r := range m.rows {
		keyWidth = maxInt(keyWidth, len(r.key))
	}
	keyWidth += 2

	var lines []string
	selectedLine := 0
	section := ""
	for i, r := range m.rows {
		if r.section != section {
			section = r.section
			lines = append(lines, styles.Section.Width(m.width).Render("["+section+"]"))
		}

		marker := "  "
		if r.modified(current) {
			marker = "* "
		}
		label := marker + padRight(r.key, keyWidth)

		var line string
		switch {
		case i == m.selected && m.mode == modeEdit:
			line = styles.AccentText.Render(label) + m.input.View()
		case i == m.selected:
			line = styles.Selected.Width(m.width).Render(label + r.display(current))
		case r.modified(current):
			line = styles.WarningText.Render(label) + styles.Text.Render(r.display(current))
		default:
			line = styles.MutedText.Render(label) + styles.Text.Render(r.display(current))
		}
		if i == m.selected {
			selectedLine = len(lines)
		}
		lines = append(lines, line)
	}

	start := 0
	if selectedLine >= height {
		start = selectedLine - height + 1
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}
	visible := lines[start:end]
	for len(visible) < height {
		visible = append(visible, "")
	}
	return strings.Join(visible, "\n")
}

// renderExport shows the .wslconfig text that Save would write.
func (m Model) renderExport() string {
	th := m.currentTheme()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(th.Border)).
		Foreground(lipgloss.Color(th.Text))
	return box.Render(m.preview.View())
}
