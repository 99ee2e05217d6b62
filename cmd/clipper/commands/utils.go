// ABOUTME: Shared helpers for CLI commands
// ABOUTME: Run setup (config, logging, source, pipeline) and small utilities
package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/TheOneTrueGuy/G-video-clipper/internal/config"
	"github.com/TheOneTrueGuy/G-video-clipper/internal/core"
	"github.com/TheOneTrueGuy/G-video-clipper/internal/logging"
	"github.com/TheOneTrueGuy/G-video-clipper/internal/media"
	"github.com/TheOneTrueGuy/G-video-clipper/internal/models"
	"github.com/TheOneTrueGuy/G-video-clipper/internal/timecode"
	"github.com/TheOneTrueGuy/G-video-clipper/internal/transcribe"
)

// runContext is everything a command needs for one pipeline run.
type runContext struct {
	cfg      *config.Config
	log      zerolog.Logger
	source   *media.ResolvedSource
	duration float64
	pipeline *core.Pipeline
	closers  []func()
}

// close releases the run's resources in reverse order.
func (rc *runContext) close() {
	for i := len(rc.closers) - 1; i >= 0; i-- {
		rc.closers[i]()
	}
}

// setupRun loads config and logging, resolves the video, probes its
// duration, and builds the pipeline. Configuration failures here are fatal
// to the run; nothing has been chunked yet.
func setupRun(ctx context.Context, video string) (*runContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set (put it in the environment or a .env file)")
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log, closeLog, err := logging.New(logging.Options{
		Level:   level,
		LogFile: cfg.LogFile,
		Quiet:   quiet,
	})
	if err != nil {
		return nil, fmt.Errorf("setting up logging: %w", err)
	}

	rc := &runContext{cfg: cfg, log: log}
	rc.closers = append(rc.closers, closeLog)

	workDir, err := media.NewRunDir(cfg.TmpDir)
	if err != nil {
		rc.close()
		return nil, err
	}
	rc.closers = append(rc.closers, func() {
		if err := os.RemoveAll(workDir); err != nil {
			log.Warn().Err(err).Str("path", workDir).Msg("could not remove work dir")
		}
	})

	backend, err := transcribe.NewOpenAIBackend(&transcribe.ClientConfig{
		APIKey:     cfg.OpenAIKey,
		Model:      cfg.WhisperModel,
		Timeout:    cfg.Timeout,
		MaxRetries: cfg.MaxRetries,
		RetryDelay: cfg.RetryDelay,
	})
	if err != nil {
		rc.close()
		return nil, err
	}

	resolver := &media.Resolver{TmpDir: workDir, Log: log}
	source, err := resolver.Resolve(ctx, video)
	if err != nil {
		rc.close()
		return nil, err
	}
	rc.source = source
	rc.closers = append(rc.closers, source.Cleanup)

	duration, err := media.Duration(ctx, source.Path)
	if err != nil {
		rc.close()
		return nil, fmt.Errorf("probing duration: %w", err)
	}
	rc.duration = duration
	log.Info().Str("video", video).Str("duration", timecode.Format(duration)).Msg("source resolved")

	rc.pipeline = &core.Pipeline{
		Cutter:        media.Cutter{},
		Transcriber:   backend,
		WindowSeconds: cfg.WindowSeconds,
		TargetSeconds: cfg.TargetSeconds,
		WorkDir:       workDir,
		Log:           log,
	}
	return rc, nil
}

// parseWindow builds the optional search window from --begin/--end values.
// Malformed times are fatal configuration errors.
func parseWindow(beginStr, endStr string, duration float64) (*models.TimeWindow, error) {
	if beginStr == "" && endStr == "" {
		return nil, nil
	}

	w := &models.TimeWindow{Begin: 0, End: duration}
	var err error
	if beginStr != "" {
		if w.Begin, err = timecode.Parse(beginStr); err != nil {
			return nil, fmt.Errorf("bad --begin: %w", err)
		}
	}
	if endStr != "" {
		if w.End, err = timecode.Parse(endStr); err != nil {
			return nil, fmt.Errorf("bad --end: %w", err)
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

// runDirName names a per-run output directory: timestamp plus a uuid
// suffix so concurrent runs never collide.
func runDirName() string {
	return fmt.Sprintf("run_%s_%s", time.Now().Format("200601021504"), uuid.New().String()[:8])
}

// countExtracted counts the clips that were actually written to disk.
func countExtracted(results []core.ClipResult) int {
	n := 0
	for _, r := range results {
		if !r.Skipped {
			n++
		}
	}
	return n
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}
