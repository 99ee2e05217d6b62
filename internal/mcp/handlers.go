// ABOUTME: MCP tool handler implementations for the clipper server
// ABOUTME: Each handler wires a full pipeline run and returns JSON results
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"

	"github.com/TheOneTrueGuy/G-video-clipper/internal/config"
	"github.com/TheOneTrueGuy/G-video-clipper/internal/core"
	"github.com/TheOneTrueGuy/G-video-clipper/internal/media"
	"github.com/TheOneTrueGuy/G-video-clipper/internal/models"
	"github.com/TheOneTrueGuy/G-video-clipper/internal/report"
	"github.com/TheOneTrueGuy/G-video-clipper/internal/timecode"
	"github.com/TheOneTrueGuy/G-video-clipper/internal/transcribe"
)

// Handlers contains the handler functions for both MCP tools
type Handlers struct {
	cfg *config.Config
	log zerolog.Logger
}

// preparedRun is a resolved source plus the pipeline built around it.
// Each run owns a private work dir so concurrent tool calls never share
// chunk or download files.
type preparedRun struct {
	source   *media.ResolvedSource
	duration float64
	pipeline *core.Pipeline
	workDir  string
	log      zerolog.Logger
}

// cleanup releases the run's on-disk state: the downloaded source (if any)
// and the whole work dir.
func (r *preparedRun) cleanup() {
	r.source.Cleanup()
	if err := os.RemoveAll(r.workDir); err != nil {
		r.log.Warn().Err(err).Str("path", r.workDir).Msg("could not remove work dir")
	}
}

func (h *Handlers) prepare(ctx context.Context, video string) (*preparedRun, error) {
	if h.cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	backend, err := transcribe.NewOpenAIBackend(&transcribe.ClientConfig{
		APIKey:     h.cfg.OpenAIKey,
		Model:      h.cfg.WhisperModel,
		Timeout:    h.cfg.Timeout,
		MaxRetries: h.cfg.MaxRetries,
		RetryDelay: h.cfg.RetryDelay,
	})
	if err != nil {
		return nil, err
	}

	workDir, err := media.NewRunDir(h.cfg.TmpDir)
	if err != nil {
		return nil, err
	}

	resolver := &media.Resolver{TmpDir: workDir, Log: h.log}
	source, err := resolver.Resolve(ctx, video)
	if err != nil {
		os.RemoveAll(workDir)
		return nil, err
	}

	duration, err := media.Duration(ctx, source.Path)
	if err != nil {
		source.Cleanup()
		os.RemoveAll(workDir)
		return nil, err
	}

	return &preparedRun{
		source:   source,
		duration: duration,
		workDir:  workDir,
		log:      h.log,
		pipeline: &core.Pipeline{
			Cutter:        media.Cutter{},
			Transcriber:   backend,
			WindowSeconds: h.cfg.WindowSeconds,
			TargetSeconds: h.cfg.TargetSeconds,
			WorkDir:       workDir,
			Log:           h.log,
		},
	}, nil
}

// buildWindow turns optional begin/end strings into a search window over
// [0, duration]. An explicit end of 0 is an error, not "unset".
func buildWindow(beginStr, endStr string, duration float64) (*models.TimeWindow, error) {
	if beginStr == "" && endStr == "" {
		return nil, nil
	}

	w := &models.TimeWindow{Begin: 0, End: duration}
	var err error
	if beginStr != "" {
		if w.Begin, err = timecode.Parse(beginStr); err != nil {
			return nil, fmt.Errorf("bad begin time: %w", err)
		}
	}
	if endStr != "" {
		if w.End, err = timecode.Parse(endStr); err != nil {
			return nil, fmt.Errorf("bad end time: %w", err)
		}
	}
	if w.End > duration {
		w.End = duration
	}
	if w.Begin >= w.End {
		return nil, fmt.Errorf("end time must be greater than begin time")
	}
	return w, nil
}

// FindKeywords handles the find_keywords tool
func (h *Handlers) FindKeywords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	video, err := request.RequireString("video")
	if err != nil {
		return mcp.NewToolResultError("video argument is required and must be a string"), nil
	}
	keywordArg, err := request.RequireString("keywords")
	if err != nil {
		return mcp.NewToolResultError("keywords argument is required and must be a string"), nil
	}
	keywords := strings.Split(keywordArg, ",")

	run, err := h.prepare(ctx, video)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("preparing run: %v", err)), nil
	}
	defer run.cleanup()

	window, err := buildWindow(request.GetString("begin", ""), request.GetString("end", ""), run.duration)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	hits, err := run.pipeline.FindKeywords(ctx, run.source.Path, run.duration, keywords, window)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("keyword search failed: %v", err)), nil
	}

	data, err := json.MarshalIndent(hits, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshaling results: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// SplitClips handles the split_clips tool
func (h *Handlers) SplitClips(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	video, err := request.RequireString("video")
	if err != nil {
		return mcp.NewToolResultError("video argument is required and must be a string"), nil
	}
	baseDir := request.GetString("output_dir", ".")
	target := request.GetFloat("target_seconds", 0)

	run, err := h.prepare(ctx, video)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("preparing run: %v", err)), nil
	}
	defer run.cleanup()
	if target > 0 {
		run.pipeline.TargetSeconds = target
	}

	outDir := filepath.Join(baseDir,
		fmt.Sprintf("run_%s_%s", time.Now().Format("200601021504"), uuid.New().String()[:8]))
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("creating output dir: %v", err)), nil
	}

	spans, results, err := run.pipeline.SplitClips(ctx, run.source.Path, run.duration, media.Extractor{}, outDir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("clip splitting failed: %v", err)), nil
	}

	if err := report.SaveTranscript(outDir, spans); err != nil {
		h.log.Warn().Err(err).Msg("could not save transcript.json")
	}
	if err := report.SaveManifest(outDir, video, results); err != nil {
		h.log.Warn().Err(err).Msg("could not save manifest.json")
	}

	// Agents get full clip paths; the on-disk manifest.json keeps base names.
	data, err := json.MarshalIndent(report.BuildManifest(video, results), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshaling manifest: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
