// ABOUTME: MergedSpan is a caption-sized run of consecutive transcript text
// ABOUTME: Produced by the greedy merger, consumed by the clip planner
package models

// MergedSpan is a run of consecutive transcript fragments coalesced into one
// clip-sized unit. Spans in a merge run are in increasing time order and do
// not overlap. A span may exceed the merge target when a single source
// fragment alone was already longer than the target.
type MergedSpan struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Duration returns the span length in seconds.
func (s MergedSpan) Duration() float64 {
	return s.End - s.Start
}
