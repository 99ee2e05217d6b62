// ABOUTME: TranscriptFragment is one timed piece of transcribed speech
// ABOUTME: Timestamps are chunk-local until rebased onto the video timeline
package models

// TranscriptFragment is a single timed span of transcribed text. Fragments
// come out of the transcriber with timestamps relative to the chunk they were
// transcribed from; rebasing shifts them onto the whole-video timeline.
type TranscriptFragment struct {
	ID    int     `json:"id,omitempty"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Duration returns the fragment length in seconds.
func (f TranscriptFragment) Duration() float64 {
	return f.End - f.Start
}
