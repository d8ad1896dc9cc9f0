// Package bytesize formats used/total byte pairs for disk and memory gauges.
package bytesize

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

const (
	MiB = 1024 * 1024
	GiB = 1024 * MiB
)

// Usage is a rendered "used / total" pair.
type Usage struct {
	Text    string
	Percent int
}

var (
	missing = Usage{Text: "N/A", Percent: 0}
	empty   = Usage{Text: "0 B / 0 B", Percent: 0}
)

// Format renders used against total. Inputs may be any numeric type or a
// numeric string. A nil input yields "N/A"; a non-numeric input or a zero
// total yields "0 B / 0 B". The percentage is rounded and capped at 100.
func Format(used, total any) Usage {
	if isMissing(used) || isMissing(total) {
		return missing
	}

	u, okU := toNumber(used)
	t, okT := toNumber(total)
	if !okU || !okT || t == 0 {
		return empty
	}

	percent := int(math.Min(math.Round(u/t*100), 100))
	return Usage{
		Text:    FormatSize(u) + " / " + FormatSize(t),
		Percent: percent,
	}
}

// FormatSize renders a single byte count: one decimal in GB from 1 GiB up,
// whole MB below that, and "0 B" for zero. Halves round up.
func FormatSize(bytes float64) string {
	switch {
	case bytes == 0:
		return "0 B"
	case bytes >= GiB:
		return fmt.Sprintf("%.1f GB", math.Floor(bytes/GiB*10+0.5)/10)
	default:
		return fmt.Sprintf("%.0f MB", math.Round(bytes/MiB))
	}
}

func isMissing(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func toNumber(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		v = rv.Elem().Interface()
	}
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	n, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}
