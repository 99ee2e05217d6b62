// ABOUTME: Writes the human-readable keyword timestamp report
// ABOUTME: Summary header, then per-keyword sections with [H:MM:SS] lines
package report

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/TheOneTrueGuy/G-video-clipper/internal/models"
	"github.com/TheOneTrueGuy/G-video-clipper/internal/timecode"
)

// KeywordReport bundles everything the keyword report needs: the original
// query parameters plus the hits grouped per keyword.
type KeywordReport struct {
	Source   string
	Keywords []string // presentation order
	Window   *models.TimeWindow
	Hits     map[string][]models.KeywordHit
}

// TotalMatches counts hits across all keywords.
func (r *KeywordReport) TotalMatches() int {
	n := 0
	for _, hs := range r.Hits {
		n += len(hs)
	}
	return n
}

// WriteKeywordReport renders the report to w.
func WriteKeywordReport(w io.Writer, r *KeywordReport) error {
	begin, end := "start", "end"
	if r.Window != nil {
		begin = timecode.Format(r.Window.Begin)
		end = timecode.Format(r.Window.End)
	}

	total := r.TotalMatches()
	fmt.Fprintf(w, "Keyword Timestamps for: %s\n", r.Source)
	fmt.Fprintf(w, "Time range: %s to %s\n", begin, end)
	fmt.Fprintf(w, "Total matches found: %d\n\n", total)

	if total == 0 {
		fmt.Fprintln(w, "No matches found for any keywords.")
	}

	for _, kw := range r.Keywords {
		fmt.Fprintf(w, "\nKeyword: %s\n", kw)
		fmt.Fprintln(w, strings.Repeat("-", 40))
		hits := r.Hits[kw]
		if len(hits) == 0 {
			fmt.Fprintln(w, "No matches found")
		}
		for _, h := range hits {
			fmt.Fprintf(w, "[%s] %s\n", timecode.Format(h.Timestamp), h.Text)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// SaveKeywordReport writes the report to a file.
func SaveKeywordReport(path string, r *KeywordReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := WriteKeywordReport(f, r); err != nil {
		return err
	}
	return f.Close()
}
