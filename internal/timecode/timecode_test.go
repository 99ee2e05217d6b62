// ABOUTME: Tests for time string parsing and formatting
// ABOUTME: Includes the parse/format round-trip property for whole seconds

package timecode

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"bare seconds", "90", 90},
		{"decimal seconds", "90.5", 90.5},
		{"minutes and seconds", "2:30", 150},
		{"hours minutes seconds", "1:02:03", 3723},
		{"zero", "0", 0},
		{"zero padded", "00:10", 10},
		{"with whitespace", " 1:00 ", 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"whitespace only", "   "},
		{"non-numeric", "abc"},
		{"non-numeric component", "1:xx:03"},
		{"too many components", "1:02:03:04"},
		{"trailing colon", "1:02:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error", tt.input)
			}
			if !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidFormat", tt.input, err)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "0:00:00"},
		{"under a minute", 45, "0:00:45"},
		{"minutes", 150, "0:02:30"},
		{"hours", 3723, "1:02:03"},
		{"subsecond truncated", 61.9, "0:01:01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.seconds); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

// Parse(Format(s)) == floor(s) must hold for all non-negative whole seconds.
func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []float64{0, 1, 59, 60, 61, 3599, 3600, 3661, 86399, 360000} {
		got, err := Parse(Format(s))
		if err != nil {
			t.Fatalf("round trip of %v: %v", s, err)
		}
		if got != s {
			t.Errorf("Parse(Format(%v)) = %v", s, got)
		}
	}
}
