// ABOUTME: Resolves a video identifier (local path or URL) to a local file
// ABOUTME: Remote sources are fetched with yt-dlp into the working directory
package media

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"

	"github.com/rs/zerolog"
)

// youtubeRe matches the YouTube URL shapes the tool accepts.
var youtubeRe = regexp.MustCompile(
	`(https?://)?(www\.)?(youtube|youtu|youtube-nocookie)\.(com|be)/(watch\?v=|embed/|v/|.+\?v=)?([^&=%?]{11})`)

// IsYouTubeURL reports whether the identifier looks like a YouTube URL.
func IsYouTubeURL(s string) bool {
	return youtubeRe.MatchString(s)
}

// IsRemote reports whether the identifier is a URL rather than a local path.
func IsRemote(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// ResolvedSource is a locally readable video plus what we know about it.
type ResolvedSource struct {
	Path      string
	Temporary bool // downloaded artifact, removed by Cleanup
	log       zerolog.Logger
}

// Cleanup removes a downloaded temp file. Failures are logged, never
// escalated; local (non-temporary) sources are left untouched.
func (r *ResolvedSource) Cleanup() {
	if r == nil || !r.Temporary {
		return
	}
	if err := os.Remove(r.Path); err != nil && !os.IsNotExist(err) {
		r.log.Warn().Err(err).Str("path", r.Path).Msg("could not remove downloaded video")
	}
}

// Resolver turns an identifier into a ResolvedSource.
type Resolver struct {
	TmpDir string
	Log    zerolog.Logger
}

// Resolve returns a local file for the identifier. Local paths are stat
// checked; URLs are downloaded with yt-dlp. Either failure maps to
// ErrSourceUnavailable, which aborts the run before any chunking begins.
func (r *Resolver) Resolve(ctx context.Context, identifier string) (*ResolvedSource, error) {
	if IsRemote(identifier) {
		path, err := r.download(ctx, identifier)
		if err != nil {
			return nil, fmt.Errorf("%w: downloading %s: %v", ErrSourceUnavailable, identifier, err)
		}
		return &ResolvedSource{Path: path, Temporary: true, log: r.Log}, nil
	}

	if _, err := os.Stat(identifier); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, identifier, err)
	}
	return &ResolvedSource{Path: identifier, log: r.Log}, nil
}

// download fetches the video with yt-dlp as a single mp4.
func (r *Resolver) download(ctx context.Context, videoURL string) (string, error) {
	out := filepath.Join(r.TmpDir, "download.mp4")
	r.Log.Info().Str("url", videoURL).Msg("downloading video")

	cmd := exec.CommandContext(ctx, "yt-dlp",
		"--format", "best[ext=mp4]",
		"--output", out,
		"--socket-timeout", "30",
		"--no-progress",
		videoURL,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("yt-dlp: %w: %s", err, output)
	}

	info, err := os.Stat(out)
	if err != nil {
		return "", fmt.Errorf("download finished but file missing: %w", err)
	}
	r.Log.Info().Int64("bytes", info.Size()).Msg("download complete")
	return out, nil
}
