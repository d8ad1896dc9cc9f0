package theme

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// TerminalSignal reads the terminal background through lipgloss. It is
// unavailable when Out is not a terminal, since the background query needs
// one to answer.
type TerminalSignal struct {
	Out *os.File
}

// PrefersDark implements Signal.
func (s TerminalSignal) PrefersDark() (bool, bool) {
	out := s.Out
	if out == nil {
		out = os.Stdout
	}
	fd := out.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false, false
	}
	return lipgloss.HasDarkBackground(), true
}
