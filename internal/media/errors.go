// ABOUTME: Sentinel errors for the media layer
// ABOUTME: Source errors are fatal to a run; extraction errors are per-clip
package media

import "errors"

var (
	// ErrSourceUnavailable means the input video could not be reached:
	// the local path is missing or the remote download failed.
	ErrSourceUnavailable = errors.New("media source unavailable")

	// ErrExtractionFailed means ffmpeg could not produce the requested
	// byte range. Recoverable per clip: log and continue.
	ErrExtractionFailed = errors.New("clip extraction failed")
)
