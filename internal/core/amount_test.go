package core

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out float64
		ok  bool
	}{
		{"5000", 5000, true},
		{"۵۰۰۰", 5000, true},
		{"1,250,000", 1250000, true},
		{"۱٬۲۵۰", 1250, true},
		{" 300 ", 300, true},
		{"12.5", 125, true}, // tomans carry no subunit; separators are stripped
		{"0", 0, false},
		{"۰", 0, false},
		{"", 0, false},
		{"abc", 0, false},
		{"---", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("ParseAmount(%q) = %v (err=%v), want %v", tc.in, got, err, tc.out)
			}
		} else if err == nil {
			t.Fatalf("ParseAmount(%q) expected error, got %v", tc.in, got)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{0, "0"},
		{500, "500"},
		{5000, "5,000"},
		{1250000, "1,250,000"},
		{250.5, "250.5"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.out {
			t.Fatalf("FormatAmount(%v) = %q, want %q", tc.in, got, tc.out)
		}
	}
}
