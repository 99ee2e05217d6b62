// ABOUTME: Probes media duration with ffprobe
// ABOUTME: Single format=duration query, parsed as float seconds
package media

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Duration returns the media duration in seconds using ffprobe.
func Duration(ctx context.Context, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed for %s: %w", path, err)
	}
	return parseProbeDuration(output)
}

func parseProbeDuration(output []byte) (float64, error) {
	s := strings.TrimSpace(string(output))
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected ffprobe output %q: %w", s, err)
	}
	return d, nil
}
