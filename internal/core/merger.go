// ABOUTME: Merger greedily coalesces transcript fragments into clip-sized spans
// ABOUTME: Two-state machine: Empty, or Accumulating a running span
package core

import "github.com/TheOneTrueGuy/G-video-clipper/internal/models"

// DefaultTargetSeconds is the default merged-span duration target.
const DefaultTargetSeconds = 30

type mergeState int

const (
	mergeEmpty mergeState = iota
	mergeAccumulating
)

// Merger coalesces consecutive fragments into spans whose accumulated
// fragment time does not exceed the target. It is a left-to-right greedy
// pass, not bin packing: when an incoming fragment would push the running
// total past the target, the running span is closed as-is (ending at the
// previous fragment's end) and the incoming fragment starts the next span.
// A single fragment longer than the target is therefore emitted alone; the
// overflow check only fires when a running span already exists.
//
// Feed fragments in increasing start order; Flush when the stream ends.
type Merger struct {
	target      float64
	state       mergeState
	current     models.MergedSpan
	accumulated float64
	spans       []models.MergedSpan
}

// NewMerger creates a Merger with the given target duration in seconds.
// Non-positive targets fall back to the default.
func NewMerger(targetSeconds float64) *Merger {
	if targetSeconds <= 0 {
		targetSeconds = DefaultTargetSeconds
	}
	return &Merger{target: targetSeconds}
}

// Feed advances the state machine by one fragment.
func (m *Merger) Feed(f models.TranscriptFragment) {
	d := f.Duration()

	switch m.state {
	case mergeEmpty:
		m.current = models.MergedSpan{Start: f.Start, End: f.End, Text: f.Text}
		m.accumulated = d
		m.state = mergeAccumulating

	case mergeAccumulating:
		if m.accumulated+d > m.target {
			m.spans = append(m.spans, m.current)
			m.current = models.MergedSpan{Start: f.Start, End: f.End, Text: f.Text}
			m.accumulated = d
			return
		}
		m.current.End = f.End
		m.current.Text += " " + f.Text
		m.accumulated += d
	}
}

// Flush closes the running span, if any, and returns all spans emitted so
// far in time order. The Merger is reset and can be reused.
func (m *Merger) Flush() []models.MergedSpan {
	if m.state == mergeAccumulating {
		m.spans = append(m.spans, m.current)
	}
	spans := m.spans
	m.spans = nil
	m.state = mergeEmpty
	m.accumulated = 0
	return spans
}

// Merge runs the whole greedy pass over an ordered fragment slice.
// Empty input yields empty output.
func Merge(frags []models.TranscriptFragment, targetSeconds float64) []models.MergedSpan {
	m := NewMerger(targetSeconds)
	for _, f := range frags {
		m.Feed(f)
	}
	return m.Flush()
}
