package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/devicedetector/pkg/pattern"
)

func TestCaptures_Expand(t *testing.T) {
	caps := pattern.Captures{"whole", "Galaxy", "S21", ""}

	tests := []struct {
		template string
		want     string
	}{
		{"$1", "Galaxy"},
		{"$1 $2", "Galaxy S21"},
		{"$1 $3", "Galaxy"},
		{"Pixel", "Pixel"},
		{"  Pixel ", "Pixel"},
		{"$9", ""},
		{"$", "$"},
		{"US$1", "USGalaxy"},
	}
	for _, tc := range tests {
		t.Run(tc.template, func(t *testing.T) {
			assert.Equal(t, tc.want, caps.Expand(tc.template))
		})
	}
}

func TestVersion(t *testing.T) {
	tests := []struct {
		name     string
		template string
		caps     pattern.Captures
		want     string
	}{
		{"plain", "$1", pattern.Captures{"", "91.0.4472.124"}, "91.0.4472.124"},
		{"trailing zeros", "$1", pattern.Captures{"", "14.0.0"}, "14"},
		{"underscores", "$1", pattern.Captures{"", "10_15_7"}, "10.15.7"},
		{"composed", "$1.$2", pattern.Captures{"", "8", "1"}, "8.1"},
		{"missing minor", "$1.$2", pattern.Captures{"", "8"}, "8"},
		{"static", "10", nil, "10"},
		{"empty", "$1", pattern.Captures{""}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pattern.Version(tc.template, tc.caps))
		})
	}
}

func TestTrimVersion(t *testing.T) {
	tests := map[string]string{
		"14.0.0":  "14",
		"10.0":    "10",
		"0":       "0",
		"0.0":     "0",
		"1.10":    "1.10",
		"2.0.1":   "2.0.1",
		"5.0.0.0": "5",
		"":        "",
	}
	for in, want := range tests {
		assert.Equal(t, want, pattern.TrimVersion(in), in)
	}
}
