// ABOUTME: Chunker partitions a media duration into fixed transcription windows
// ABOUTME: Windows bound per-call transcription cost; the last one may be short
package core

import (
	"errors"
	"fmt"

	"github.com/TheOneTrueGuy/G-video-clipper/internal/models"
)

// DefaultWindowSeconds is the default transcription window size. Two minutes
// keeps each transcription call small without fragmenting speech too much; a
// keyword or sentence spanning a window boundary may be split across chunks,
// which is a documented limitation rather than something the pipeline
// stitches back together.
const DefaultWindowSeconds = 120

// ErrInvalidDuration is returned when the media duration is not positive.
var ErrInvalidDuration = errors.New("invalid media duration")

// PlanChunks divides totalDuration into contiguous, non-overlapping windows
// of windowSeconds each. The final chunk covers whatever remains and may be
// shorter than the window.
func PlanChunks(totalDuration, windowSeconds float64) ([]models.Chunk, error) {
	if totalDuration <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, totalDuration)
	}
	if windowSeconds <= 0 {
		return nil, fmt.Errorf("%w: window size %v", ErrInvalidDuration, windowSeconds)
	}

	var chunks []models.Chunk
	for i := 0; ; i++ {
		offset := float64(i) * windowSeconds
		if offset >= totalDuration {
			break
		}
		dur := windowSeconds
		if offset+dur > totalDuration {
			dur = totalDuration - offset
		}
		chunks = append(chunks, models.Chunk{
			Index:       i,
			StartOffset: offset,
			Duration:    dur,
		})
	}
	return chunks, nil
}
