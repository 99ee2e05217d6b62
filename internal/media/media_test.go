// ABOUTME: Tests for the non-exec parts of the media layer
// ABOUTME: URL detection, probe output parsing, naming, and local resolution

package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/TheOneTrueGuy/G-video-clipper/internal/models"
)

func TestIsYouTubeURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"http://youtu.be/dQw4w9WgXcQ", true},
		{"youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ", true},
		{"https://example.com/video.mp4", false},
		{"/home/user/video.mp4", false},
		{"video.mp4", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsYouTubeURL(tt.input); got != tt.want {
				t.Errorf("IsYouTubeURL(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsRemote(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", true},
		{"http://example.com/talk.mp4", true},
		{"/videos/talk.mp4", false},
		{"talk.mp4", false},
		{"ftp://example.com/talk.mp4", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsRemote(tt.input); got != tt.want {
				t.Errorf("IsRemote(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseProbeDuration(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    float64
		wantErr bool
	}{
		{"plain", "634.117000\n", 634.117, false},
		{"no newline", "12.5", 12.5, false},
		{"garbage", "N/A\n", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProbeDuration([]byte(tt.output))
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseProbeDuration = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "video.mp4")
	if err := os.WriteFile(path, []byte("fake"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := &Resolver{TmpDir: t.TempDir(), Log: zerolog.Nop()}
	src, err := r.Resolve(context.Background(), path)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if src.Path != path {
		t.Errorf("Path = %q, want %q", src.Path, path)
	}
	if src.Temporary {
		t.Error("local source should not be temporary")
	}

	// Cleanup must not delete a local source.
	src.Cleanup()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("local source removed by Cleanup: %v", err)
	}
}

func TestResolve_MissingLocalFile(t *testing.T) {
	r := &Resolver{TmpDir: t.TempDir(), Log: zerolog.Nop()}
	_, err := r.Resolve(context.Background(), "/no/such/video.mp4")
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("error = %v, want ErrSourceUnavailable", err)
	}
}

func TestResolvedSource_CleanupRemovesTempFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "download.mp4")
	if err := os.WriteFile(path, []byte("fake"), 0o644); err != nil {
		t.Fatal(err)
	}

	src := &ResolvedSource{Path: path, Temporary: true, log: zerolog.Nop()}
	src.Cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("temporary source not removed")
	}

	// Second cleanup of an already-removed file must be silent.
	src.Cleanup()
}

func TestChunkFileName(t *testing.T) {
	c := models.Chunk{Index: 7, StartOffset: 840, Duration: 120}
	if got := ChunkFileName(c); got != "chunk_007.mp4" {
		t.Errorf("ChunkFileName = %q, want chunk_007.mp4", got)
	}
}

func TestFormatSeconds(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.000"},
		{120, "120.000"},
		{10.5, "10.500"},
	}
	for _, tt := range tests {
		if got := formatSeconds(tt.in); got != tt.want {
			t.Errorf("formatSeconds(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewRunDir(t *testing.T) {
	base := t.TempDir()

	first, err := NewRunDir(base)
	if err != nil {
		t.Fatalf("NewRunDir() error = %v", err)
	}
	second, err := NewRunDir(base)
	if err != nil {
		t.Fatalf("NewRunDir() error = %v", err)
	}

	if first == second {
		t.Fatalf("consecutive run dirs should differ, both %q", first)
	}
	for _, dir := range []string{first, second} {
		if filepath.Dir(dir) != base {
			t.Errorf("run dir %q not directly under %q", dir, base)
		}
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("run dir %q not created: %v", dir, err)
		}
		if !info.IsDir() {
			t.Errorf("run dir %q is not a directory", dir)
		}
	}
}
