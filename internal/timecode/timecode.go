// ABOUTME: Conversion between human time strings and numeric seconds
// ABOUTME: Accepts H:M:S, M:S, or bare seconds; formats back as H:MM:SS
package timecode

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFormat is returned when a time string is not H:M:S, M:S, or a
// bare number of seconds.
var ErrInvalidFormat = errors.New("invalid time format")

// Parse converts a time string to seconds. Accepted shapes are "H:M:S",
// "M:S", and a bare integer or decimal number of seconds.
func Parse(timeStr string) (float64, error) {
	s := strings.TrimSpace(timeStr)
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrInvalidFormat)
	}

	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		secs, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, timeStr)
		}
		return secs, nil
	case 2:
		m, err1 := strconv.Atoi(parts[0])
		sec, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, timeStr)
		}
		return float64(m*60 + sec), nil
	case 3:
		h, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		sec, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, timeStr)
		}
		return float64(h*3600 + m*60 + sec), nil
	default:
		return 0, fmt.Errorf("%w: %q has too many components", ErrInvalidFormat, timeStr)
	}
}

// Format renders seconds as H:MM:SS, truncating sub-second precision.
// Callers guarantee non-negative input.
func Format(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
