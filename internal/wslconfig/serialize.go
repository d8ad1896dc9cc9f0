package wslconfig

import (
	"strings"

	"github.com/five82/wsltune/internal/settings"
)

// Serialize renders s as .wslconfig text. Values are written verbatim;
// strings containing newlines or brackets produce a file the host cannot
// read.
func Serialize(s settings.Settings) string {
	var b strings.Builder
	for i, sec := range layout {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("[" + sec.Name + "]\n")
		for _, e := range sec.Entries {
			writeEntry(&b, e, s)
		}
	}
	if s.IgnoredPorts != "" {
		writeEntry(&b, ignoredPorts, s)
	}
	return b.String()
}

func writeEntry(b *strings.Builder, e Entry, s settings.Settings) {
	f := mustField(e.Field)
	b.WriteString(e.Key)
	b.WriteString("=")
	b.WriteString(f.Value(s))
	if f.Kind == settings.KindSize {
		b.WriteString("GB")
	}
	b.WriteString("\n")
}
