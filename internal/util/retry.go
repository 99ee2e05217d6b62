// ABOUTME: Retry backoff helper for transcription API calls
// ABOUTME: Exponential growth with jitter, capped at 30 seconds
package util

import (
	"math/rand/v2"
	"time"
)

const maxBackoff = 30 * time.Second

// Backoff returns the delay before the given retry attempt: base * 2^attempt
// with +/-25% jitter, capped at 30s. Attempt 0 (the first try) waits nothing.
func Backoff(baseDelay time.Duration, attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	if attempt > 30 {
		attempt = 30 // avoid overflow in the shift
	}
	backoff := baseDelay * time.Duration(1<<uint(attempt))
	if backoff > maxBackoff || backoff <= 0 {
		backoff = maxBackoff
	}
	jitter := time.Duration(rand.Int64N(int64(backoff)/2)) - backoff/4
	return backoff + jitter
}
