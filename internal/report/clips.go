// ABOUTME: Writes clip-mode artifacts: transcript.json and manifest.json
// ABOUTME: Transcript holds the merged spans; manifest lists produced clips
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/TheOneTrueGuy/G-video-clipper/internal/core"
	"github.com/TheOneTrueGuy/G-video-clipper/internal/models"
)

// Manifest summarizes one clip-splitting run.
type Manifest struct {
	Input string         `json:"input"`
	Clips []ManifestClip `json:"clips"`
}

// ManifestClip is one produced (or skipped) clip.
type ManifestClip struct {
	Number   int     `json:"number"`
	StartSec float64 `json:"start_sec"`
	EndSec   float64 `json:"end_sec"`
	Text     string  `json:"text"`
	File     string  `json:"file,omitempty"`
	Skipped  bool    `json:"skipped,omitempty"`
}

// SaveTranscript writes the merged spans as pretty JSON to
// <outDir>/transcript.json.
func SaveTranscript(outDir string, spans []models.MergedSpan) error {
	data, err := json.MarshalIndent(spans, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling transcript: %w", err)
	}
	return writeFile(filepath.Join(outDir, "transcript.json"), data)
}

// BuildManifest assembles the run manifest from clip results, keeping
// clip paths exactly as recorded.
func BuildManifest(input string, results []core.ClipResult) Manifest {
	m := Manifest{Input: input, Clips: make([]ManifestClip, 0, len(results))}
	for _, r := range results {
		m.Clips = append(m.Clips, ManifestClip{
			Number:   r.Boundary.Number,
			StartSec: r.Boundary.Start,
			EndSec:   r.Boundary.End,
			Text:     r.Text,
			File:     r.File,
			Skipped:  r.Skipped,
		})
	}
	return m
}

// SaveManifest writes the run manifest to <outDir>/manifest.json. Clip
// paths are reduced to base names since the manifest sits beside the clips.
func SaveManifest(outDir, input string, results []core.ClipResult) error {
	m := BuildManifest(input, results)
	for i, clip := range m.Clips {
		if clip.File != "" {
			m.Clips[i].File = filepath.Base(clip.File)
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return writeFile(filepath.Join(outDir, "manifest.json"), data)
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}
