// ABOUTME: Pipeline drives the chunk → transcribe → rebase → aggregate flow
// ABOUTME: Sequential, one resident chunk file at a time, skip-and-log on faults
package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/TheOneTrueGuy/G-video-clipper/internal/models"
	"github.com/TheOneTrueGuy/G-video-clipper/internal/timecode"
)

// ChunkCutter produces a playable media file for one chunk of the source.
type ChunkCutter interface {
	CutChunk(ctx context.Context, source string, chunk models.Chunk, dir string) (string, error)
}

// Transcriber converts one chunk media file into ordered transcript
// fragments with chunk-local timestamps. Re-transcription of the same chunk
// may legitimately produce different fragments; the pipeline never assumes
// byte-identical results.
type Transcriber interface {
	Transcribe(ctx context.Context, mediaPath string) ([]models.TranscriptFragment, error)
}

// ClipExtractor writes the [start, end] range of the source to outPath.
type ClipExtractor interface {
	Extract(ctx context.Context, source string, start, end float64, outPath string) error
}

// Pipeline holds the collaborators and tuning for one processing run.
// It carries its own logger and working directory instead of relying on
// process-wide state, so multiple pipelines can run side by side.
type Pipeline struct {
	Cutter        ChunkCutter
	Transcriber   Transcriber
	WindowSeconds float64
	TargetSeconds float64
	WorkDir       string
	Log           zerolog.Logger
}

// ClipResult describes one planned clip and whether it was extracted.
type ClipResult struct {
	Boundary models.ClipBoundary `json:"boundary"`
	Text     string              `json:"text"`
	File     string              `json:"file"`
	Skipped  bool                `json:"skipped,omitempty"`
}

// walkChunks runs the sequential chunk loop: cut, transcribe, rebase, hand
// the rebased fragments to absorb, then delete the chunk file before the
// next chunk begins. Chunks whose transcription fails are logged and
// skipped. Cancellation is honored between chunks, never mid-transcription.
func (p *Pipeline) walkChunks(ctx context.Context, source string, duration float64, absorb func(frags []models.TranscriptFragment)) error {
	window := p.WindowSeconds
	if window <= 0 {
		window = DefaultWindowSeconds
	}

	chunks, err := PlanChunks(duration, window)
	if err != nil {
		return err
	}
	p.Log.Info().
		Int("chunks", len(chunks)).
		Float64("window_seconds", window).
		Float64("duration", duration).
		Msg("planned transcription windows")

	for _, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("canceled before chunk %d: %w", chunk.Index, err)
		}

		p.Log.Info().
			Int("chunk", chunk.Index+1).
			Int("of", len(chunks)).
			Str("starts_at", timecode.Format(chunk.StartOffset)).
			Msg("processing chunk")

		if err := p.processChunk(ctx, source, chunk, absorb); err != nil {
			p.Log.Error().Err(err).Int("chunk", chunk.Index).Msg("chunk skipped")
		}
	}
	return nil
}

// processChunk handles a single chunk and guarantees its temp file is gone
// on every exit path.
func (p *Pipeline) processChunk(ctx context.Context, source string, chunk models.Chunk, absorb func([]models.TranscriptFragment)) error {
	chunkPath, err := p.Cutter.CutChunk(ctx, source, chunk, p.WorkDir)
	if err != nil {
		return fmt.Errorf("cutting chunk %d: %w", chunk.Index, err)
	}
	defer func() {
		if err := os.Remove(chunkPath); err != nil && !os.IsNotExist(err) {
			p.Log.Warn().Err(err).Str("path", chunkPath).Msg("could not remove chunk file")
		}
	}()

	frags, err := p.Transcriber.Transcribe(ctx, chunkPath)
	if err != nil {
		return fmt.Errorf("transcribing chunk %d: %w", chunk.Index, err)
	}

	absorb(RebaseAll(frags, chunk))
	return nil
}

// FindKeywords transcribes the source chunk by chunk and scans for the
// given keywords, optionally restricted to a global time window. The result
// maps every usable keyword to its hits in first-found order.
func (p *Pipeline) FindKeywords(ctx context.Context, source string, duration float64, keywords []string, window *models.TimeWindow) (map[string][]models.KeywordHit, error) {
	scanner, err := NewKeywordScanner(keywords, window)
	if err != nil {
		return nil, err
	}

	if err := p.walkChunks(ctx, source, duration, func(frags []models.TranscriptFragment) {
		before := scanner.TotalHits()
		scanner.Scan(frags)
		if found := scanner.TotalHits() - before; found > 0 {
			p.Log.Info().Int("hits", found).Msg("keyword hits in chunk")
		}
	}); err != nil {
		return nil, err
	}

	return scanner.Results(), nil
}

// CollectSpans transcribes the source chunk by chunk and greedily merges
// the fragments into clip-sized spans.
func (p *Pipeline) CollectSpans(ctx context.Context, source string, duration float64) ([]models.MergedSpan, error) {
	merger := NewMerger(p.TargetSeconds)

	if err := p.walkChunks(ctx, source, duration, func(frags []models.TranscriptFragment) {
		for _, f := range frags {
			merger.Feed(f)
		}
	}); err != nil {
		return nil, err
	}

	return merger.Flush(), nil
}

// SplitClips runs the clip-splitting use case end to end: collect spans,
// plan boundaries, and extract one clip per boundary into outDir. A failed
// extraction is logged and the clip skipped; it never aborts the run.
func (p *Pipeline) SplitClips(ctx context.Context, source string, duration float64, extractor ClipExtractor, outDir string) ([]models.MergedSpan, []ClipResult, error) {
	spans, err := p.CollectSpans(ctx, source, duration)
	if err != nil {
		return nil, nil, err
	}

	boundaries := PlanBoundaries(spans)
	results := make([]ClipResult, 0, len(boundaries))
	for i, b := range boundaries {
		if err := ctx.Err(); err != nil {
			return spans, results, fmt.Errorf("canceled before clip %d: %w", b.Number, err)
		}

		outPath := filepath.Join(outDir, fmt.Sprintf("clip_%03d.mp4", b.Number))
		result := ClipResult{Boundary: b, Text: spans[i].Text, File: outPath}

		if err := extractor.Extract(ctx, source, b.Start, b.End, outPath); err != nil {
			p.Log.Error().Err(err).Int("clip", b.Number).Msg("clip extraction skipped")
			result.Skipped = true
			result.File = ""
		} else {
			p.Log.Info().
				Int("clip", b.Number).
				Str("start", timecode.Format(b.Start)).
				Str("end", timecode.Format(b.End)).
				Msg("clip written")
		}
		results = append(results, result)
	}

	return spans, results, nil
}
