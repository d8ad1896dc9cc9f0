package bytesize

import (
	"encoding/json"
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	var nilCount *int64
	cases := []struct {
		name        string
		used, total any
		want        Usage
	}{
		{"nil_used", nil, 100, Usage{"N/A", 0}},
		{"nil_total", 100, nil, Usage{"N/A", 0}},
		{"nil_pointer", nilCount, 100, Usage{"N/A", 0}},
		{"nil_wins_over_garbage", "garbage", nil, Usage{"N/A", 0}},
		{"not_a_number", "abc", 100, Usage{"0 B / 0 B", 0}},
		{"nan", math.NaN(), 100, Usage{"0 B / 0 B", 0}},
		{"zero_total", 100, 0, Usage{"0 B / 0 B", 0}},
		{"zero_used", 0, 100, Usage{"0 B / 0 MB", 0}},
		{"megabytes", 500 * MiB, 800 * MiB, Usage{"500 MB / 800 MB", 63}},
		{"gigabytes", 120.3 * GiB, 500 * GiB, Usage{"120.3 GB / 500.0 GB", 24}},
		{"mixed_units", 500 * MiB, 2 * GiB, Usage{"500 MB / 2.0 GB", 24}},
		{"capped_percent", 3 * GiB, 1 * GiB, Usage{"3.0 GB / 1.0 GB", 100}},
		{"numeric_strings", "1073741824", "2147483648", Usage{"1.0 GB / 2.0 GB", 50}},
		{"padded_strings", " 524288000 ", "\t838860800\n", Usage{"500 MB / 800 MB", 63}},
		{"json_number", json.Number("524288000"), json.Number("1048576000"), Usage{"500 MB / 1000 MB", 50}},
		{"pointer_values", ptr(int64(GiB)), ptr(int64(4 * GiB)), Usage{"1.0 GB / 4.0 GB", 25}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Format(tc.used, tc.total)
			if got != tc.want {
				t.Fatalf("Format(%v, %v) = %+v, want %+v", tc.used, tc.total, got, tc.want)
			}
		})
	}
}

func TestFormatSize(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0 B"},
		{100, "0 MB"},
		{MiB / 2, "1 MB"},
		{1023 * MiB, "1023 MB"},
		{GiB, "1.0 GB"},
		{1.5 * GiB, "1.5 GB"},
		{1.25 * GiB, "1.3 GB"},
		{3.25 * GiB, "3.3 GB"},
		{5.25 * GiB, "5.3 GB"},
		{1024 * GiB, "1024.0 GB"},
	}
	for _, tc := range cases {
		if got := FormatSize(tc.in); got != tc.want {
			t.Fatalf("FormatSize(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func ptr[T any](v T) *T { return &v }
