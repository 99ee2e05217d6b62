// ABOUTME: Rebase maps chunk-local fragment timestamps onto the video timeline
// ABOUTME: Pure value transformation, applied once per fragment per chunk
package core

import "github.com/TheOneTrueGuy/G-video-clipper/internal/models"

// Rebase returns a copy of the fragment shifted by the chunk's start offset.
// Every fragment the transcriber emits must pass through here before it
// re-enters the global timeline; for chunk 0 the shift is a no-op.
func Rebase(f models.TranscriptFragment, c models.Chunk) models.TranscriptFragment {
	return models.TranscriptFragment{
		ID:    f.ID,
		Start: f.Start + c.StartOffset,
		End:   f.End + c.StartOffset,
		Text:  f.Text,
	}
}

// RebaseAll rebases a whole chunk's worth of fragments, preserving order.
func RebaseAll(frags []models.TranscriptFragment, c models.Chunk) []models.TranscriptFragment {
	out := make([]models.TranscriptFragment, len(frags))
	for i, f := range frags {
		out[i] = Rebase(f, c)
	}
	return out
}
