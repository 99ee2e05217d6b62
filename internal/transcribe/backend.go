// ABOUTME: Transcriber contract between the pipeline and speech-to-text
// ABOUTME: Implementations return ordered fragments with chunk-local times
package transcribe

import (
	"context"
	"errors"

	"github.com/TheOneTrueGuy/G-video-clipper/internal/models"
)

// ErrTranscriptionFailed wraps any speech-to-text failure. The pipeline
// treats it as per-chunk recoverable: log, skip the chunk, keep going.
var ErrTranscriptionFailed = errors.New("transcription failed")

// Backend converts one media file into ordered transcript fragments.
// Timestamps are relative to the start of the given file. Results for the
// same input may legitimately differ between calls; callers must not assume
// byte-identical re-transcription.
type Backend interface {
	Transcribe(ctx context.Context, mediaPath string) ([]models.TranscriptFragment, error)
}
