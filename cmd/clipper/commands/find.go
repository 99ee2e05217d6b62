// ABOUTME: CLI command to find spoken keywords in a video
// ABOUTME: Transcribes chunk by chunk and writes the timestamp report
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/TheOneTrueGuy/G-video-clipper/internal/report"
	"github.com/joho/godotenv"
)

var (
	findKeywords string
	findBegin    string
	findEnd      string
	findOutput   string
)

// NewFindCmd creates the find command
func NewFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <video>",
		Short: "Find keyword timestamps in a video",
		Long: `Find every spoken occurrence of the given keywords in a video.

The video is transcribed in bounded windows, timestamps are mapped back
onto the whole-video timeline, and each hit is reported with its text.
Matching is case-insensitive substring containment.

Examples:
  clipper find talk.mp4 --keywords budget,deadline
  clipper find talk.mp4 --keywords demo --begin 5:00 --end 20:00
  clipper find https://www.youtube.com/watch?v=VIDEO_ID --keywords launch`,
		Args: cobra.ExactArgs(1),
		RunE: runFind,
	}

	cmd.Flags().StringVarP(&findKeywords, "keywords", "k", "", "Comma-separated keywords to find (required)")
	cmd.Flags().StringVarP(&findBegin, "begin", "b", "", "Window start (H:M:S, M:S, or seconds)")
	cmd.Flags().StringVarP(&findEnd, "end", "e", "", "Window end (H:M:S, M:S, or seconds)")
	cmd.Flags().StringVarP(&findOutput, "output", "o", "timestamps.txt", "Report file path")
	_ = cmd.MarkFlagRequired("keywords")

	return cmd
}

func runFind(cmd *cobra.Command, args []string) error {
	// Load .env for API keys
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rc, err := setupRun(ctx, args[0])
	if err != nil {
		return err
	}
	defer rc.close()

	window, err := parseWindow(findBegin, findEnd, rc.duration)
	if err != nil {
		return err
	}

	keywords := strings.Split(findKeywords, ",")
	hits, err := rc.pipeline.FindKeywords(ctx, rc.source.Path, rc.duration, keywords, window)
	if err != nil {
		return fmt.Errorf("keyword search: %w", err)
	}

	rep := &report.KeywordReport{
		Source:   args[0],
		Keywords: orderedKeywords(keywords),
		Window:   window,
		Hits:     hits,
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(hits, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
	}

	if err := report.SaveKeywordReport(findOutput, rep); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Results written to %s\n", findOutput)
		if rep.TotalMatches() == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Warning: No matches found for any keywords")
		}
	}
	return nil
}

// orderedKeywords trims the raw comma-separated values into presentation
// order, dropping blanks, mirroring what the scanner keeps.
func orderedKeywords(raw []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, kw := range raw {
		kw = strings.TrimSpace(kw)
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
	}
	return out
}
