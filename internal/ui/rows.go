package ui

import (
	"github.com/five82/wsltune/internal/settings"
	"github.com/five82/wsltune/internal/wslconfig"
)

// row is one editable setting, listed in file order.
type row struct {
	section string
	key     string // .wslconfig key
	field   settings.Field
}

func buildRows() []row {
	var rows []row
	for _, sec := range wslconfig.Sections() {
		for _, e := range sec.Entries {
			f, ok := settings.Lookup(e.Field)
			if !ok {
				continue
			}
			rows = append(rows, row{section: sec.Name, key: e.Key, field: f})
		}
	}
	return rows
}

// display renders the field's value the way it appears in the file.
func (r row) display(s settings.Settings) string {
	v := r.field.Value(s)
	switch r.field.Kind {
	case settings.KindSize:
		return v + "GB"
	case settings.KindString:
		if v == "" {
			return "(unset)"
		}
	}
	return v
}

func (r row) modified(s settings.Settings) bool {
	return r.field.Value(s) != r.field.Value(settings.Defaults())
}
