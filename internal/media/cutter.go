// ABOUTME: Cuts one transcription chunk from the source with ffmpeg
// ABOUTME: Stream copy, no re-encode; one chunk file resident at a time
package media

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"

	"github.com/TheOneTrueGuy/G-video-clipper/internal/models"
)

// Cutter produces chunk media files on demand. Cutting per chunk (instead
// of segmenting the whole file upfront) keeps at most one chunk file on
// disk; the pipeline deletes it before asking for the next.
type Cutter struct{}

// CutChunk writes the chunk's time range of source into dir using stream
// copy and returns the chunk file path.
func (Cutter) CutChunk(ctx context.Context, source string, chunk models.Chunk, dir string) (string, error) {
	out := filepath.Join(dir, ChunkFileName(chunk))

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-y",
		"-ss", formatSeconds(chunk.StartOffset),
		"-i", source,
		"-t", formatSeconds(chunk.Duration),
		"-c", "copy",
		"-avoid_negative_ts", "make_zero",
		out,
	)
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("ffmpeg chunk %d: %w: %s", chunk.Index, err, output)
	}
	return out, nil
}

// ChunkFileName names a chunk file by its index.
func ChunkFileName(chunk models.Chunk) string {
	return fmt.Sprintf("chunk_%03d.mp4", chunk.Index)
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', 3, 64)
}
