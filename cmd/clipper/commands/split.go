// ABOUTME: CLI command to split a video into topic-sized clips
// ABOUTME: Merges transcript spans greedily and extracts one clip per span
package commands

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/TheOneTrueGuy/G-video-clipper/internal/media"
	"github.com/TheOneTrueGuy/G-video-clipper/internal/report"
	"github.com/TheOneTrueGuy/G-video-clipper/internal/timecode"
	"github.com/joho/godotenv"
)

var (
	splitOutDir string
	splitTarget float64
)

// NewSplitCmd creates the split command
func NewSplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split <video>",
		Short: "Split a video into clips along speech boundaries",
		Long: `Split a video into clips sized by its transcribed speech.

Consecutive transcript fragments are merged greedily up to the target
duration (default 30s) and one clip is cut per merged span. A per-run
folder receives the clips plus transcript.json and manifest.json.

Examples:
  clipper split talk.mp4
  clipper split talk.mp4 --outdir ./clips --target 45`,
		Args: cobra.ExactArgs(1),
		RunE: runSplit,
	}

	cmd.Flags().StringVarP(&splitOutDir, "outdir", "d", ".", "Directory to create the per-run clip folder in")
	cmd.Flags().Float64VarP(&splitTarget, "target", "t", 0, "Target clip duration in seconds (default from config)")

	return cmd
}

func runSplit(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rc, err := setupRun(ctx, args[0])
	if err != nil {
		return err
	}
	defer rc.close()

	if splitTarget > 0 {
		rc.pipeline.TargetSeconds = splitTarget
	}

	outDir := filepath.Join(splitOutDir, runDirName())
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	spans, results, err := rc.pipeline.SplitClips(ctx, rc.source.Path, rc.duration, media.Extractor{}, outDir)
	if err != nil {
		return fmt.Errorf("splitting clips: %w", err)
	}

	if err := report.SaveTranscript(outDir, spans); err != nil {
		return fmt.Errorf("writing transcript: %w", err)
	}
	if err := report.SaveManifest(outDir, args[0], results); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	if !quiet {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "CLIP\tSTART\tEND\tTEXT\tFILE\n")
		for _, r := range results {
			status := filepath.Base(r.File)
			if r.Skipped {
				status = "(skipped)"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				r.Boundary.Number,
				timecode.Format(r.Boundary.Start),
				timecode.Format(r.Boundary.End),
				truncate(r.Text, 50),
				status)
		}
		w.Flush()
		fmt.Fprintf(cmd.OutOrStdout(), "\nWrote %d clip(s) to %s\n", countExtracted(results), outDir)
	}
	return nil
}
