// ABOUTME: Tests for the retry backoff helper
// ABOUTME: Validates growth, the 30s cap, and jitter bounds
package util

import (
	"testing"
	"time"
)

func TestBackoff_ZeroAndNegativeAttempts(t *testing.T) {
	for _, attempt := range []int{0, -1, -50} {
		if got := Backoff(time.Second, attempt); got != 0 {
			t.Errorf("Backoff(1s, %d) = %v, want 0", attempt, got)
		}
	}
}

func TestBackoff_ExponentialGrowth(t *testing.T) {
	base := 100 * time.Millisecond

	for attempt := 1; attempt <= 5; attempt++ {
		expected := base * time.Duration(1<<uint(attempt))
		lo := expected * 3 / 4
		hi := expected * 5 / 4

		got := Backoff(base, attempt)
		if got < lo || got > hi {
			t.Errorf("attempt %d: Backoff = %v, want within [%v, %v]", attempt, got, lo, hi)
		}
	}
}

func TestBackoff_CapsAt30Seconds(t *testing.T) {
	// 2^10 * 1s would be 1024s without the cap; jitter adds at most 25%.
	maxAllowed := 37500 * time.Millisecond

	for _, attempt := range []int{10, 30, 100} {
		got := Backoff(time.Second, attempt)
		if got > maxAllowed {
			t.Errorf("attempt %d: Backoff = %v, want <= %v", attempt, got, maxAllowed)
		}
		if got < 0 {
			t.Errorf("attempt %d: negative backoff %v", attempt, got)
		}
	}
}

func TestBackoff_JitterVaries(t *testing.T) {
	base := time.Second
	first := Backoff(base, 2)
	varied := false
	for i := 0; i < 100; i++ {
		if Backoff(base, 2) != first {
			varied = true
			break
		}
	}
	if !varied {
		t.Error("100 samples produced no jitter variation")
	}
}
