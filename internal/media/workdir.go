// ABOUTME: Per-run working directory creation
// ABOUTME: Unique names keep concurrent runs' chunk and download files apart
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// NewRunDir creates a uniquely named working directory under base and
// returns its path. Chunk files are named by index and downloads always
// land as download.mp4, so every run must get its own directory; two runs
// sharing one would overwrite and delete each other's files.
func NewRunDir(base string) (string, error) {
	dir := filepath.Join(base, fmt.Sprintf("run_%s_%s",
		time.Now().Format("200601021504"), uuid.New().String()[:8]))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating run dir: %w", err)
	}
	return dir, nil
}
