// ABOUTME: ClipBoundaryPlanner turns merged spans into numbered cut points
// ABOUTME: Only decides where to cut; extraction belongs to the media layer
package core

import "github.com/TheOneTrueGuy/G-video-clipper/internal/models"

// PlanBoundaries projects merged spans onto an ordered list of cut points
// numbered 1..N. The numbering names output artifacts (clip_001.mp4 etc).
func PlanBoundaries(spans []models.MergedSpan) []models.ClipBoundary {
	boundaries := make([]models.ClipBoundary, len(spans))
	for i, s := range spans {
		boundaries[i] = models.ClipBoundary{
			Number: i + 1,
			Start:  s.Start,
			End:    s.End,
		}
	}
	return boundaries
}
