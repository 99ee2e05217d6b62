// ABOUTME: KeywordHit records one keyword occurrence on the global timeline
// ABOUTME: Timestamp is always whole-video seconds, never chunk-local
package models

// KeywordHit is one occurrence of a keyword in the transcript. Timestamp is
// the start of the fragment the keyword was found in, already rebased onto
// the whole-video timeline.
type KeywordHit struct {
	Keyword   string  `json:"keyword"`
	Timestamp float64 `json:"timestamp"`
	Text      string  `json:"text"`
}

// TimeWindow restricts a keyword search to [Begin, End] in global seconds.
// Only fragments fully inside the window are considered.
type TimeWindow struct {
	Begin float64 `json:"begin"`
	End   float64 `json:"end"`
}

// Contains reports whether the fragment lies entirely within the window.
// Fragments that only partially overlap the window are excluded; this is the
// boundary policy of the search, not an accident.
func (w TimeWindow) Contains(f TranscriptFragment) bool {
	return f.Start >= w.Begin && f.End <= w.End
}
