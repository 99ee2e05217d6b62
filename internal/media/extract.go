// ABOUTME: Extracts one clip range from the source video with ffmpeg
// ABOUTME: Re-encodes (h264/aac) so clips start cleanly on non-keyframes
package media

import (
	"context"
	"fmt"
	"os/exec"
)

// Extractor writes clip byte ranges. Satisfies the pipeline's ClipExtractor.
type Extractor struct{}

// Extract writes the [start, end] range of source to outPath. Failures map
// to ErrExtractionFailed so callers can treat them as per-clip recoverable.
func (Extractor) Extract(ctx context.Context, source string, start, end float64, outPath string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y",
		"-i", source,
		"-ss", formatSeconds(start),
		"-to", formatSeconds(end),
		"-c:v", "libx264",
		"-c:a", "aac",
		outPath,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%w: range [%s, %s]: %v: %s",
			ErrExtractionFailed, formatSeconds(start), formatSeconds(end), err, output)
	}
	return nil
}
