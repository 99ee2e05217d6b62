// ABOUTME: Chunk is one fixed-size transcription window of the source media
// ABOUTME: Chunks are contiguous, non-overlapping, and discarded after use
package models

// Chunk describes one transcription window. StartOffset is always
// Index * window size; the last chunk of a video may be shorter than the
// window.
type Chunk struct {
	Index       int     `json:"index"`
	StartOffset float64 `json:"start_offset"`
	Duration    float64 `json:"duration"`
}

// End returns the chunk's end offset on the video timeline.
func (c Chunk) End() float64 {
	return c.StartOffset + c.Duration
}
