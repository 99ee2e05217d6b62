// ABOUTME: Tests for keyword scanning over transcript fragments
// ABOUTME: Covers case folding, substring hits, windows, and empty keyword sets

package core

import (
	"errors"
	"testing"

	"github.com/TheOneTrueGuy/G-video-clipper/internal/models"
)

func TestKeywordScanner_BasicMatch(t *testing.T) {
	s, err := NewKeywordScanner([]string{"quick", "missing"}, nil)
	if err != nil {
		t.Fatalf("NewKeywordScanner() error = %v", err)
	}

	s.Scan([]models.TranscriptFragment{{Start: 0, End: 5, Text: "the quick fox"}})
	results := s.Results()

	hits := results["quick"]
	if len(hits) != 1 {
		t.Fatalf("quick hits = %d, want 1", len(hits))
	}
	if hits[0].Timestamp != 0 || hits[0].Text != "the quick fox" {
		t.Errorf("hit = %+v", hits[0])
	}

	// Unmatched keywords are still keyed, with an empty slice.
	missing, ok := results["missing"]
	if !ok {
		t.Fatal("missing keyword absent from results")
	}
	if len(missing) != 0 {
		t.Errorf("missing hits = %d, want 0", len(missing))
	}
}

func TestKeywordScanner_CaseInsensitive(t *testing.T) {
	s, err := NewKeywordScanner([]string{"Fox"}, nil)
	if err != nil {
		t.Fatalf("NewKeywordScanner() error = %v", err)
	}
	s.Scan([]models.TranscriptFragment{{Start: 3, End: 6, Text: "a fox ran"}})
	if len(s.Results()["Fox"]) != 1 {
		t.Error("keyword Fox should match text 'a fox ran'")
	}
}

// Raw substring containment: a keyword inside a longer word still matches.
func TestKeywordScanner_SubstringOfLongerWord(t *testing.T) {
	s, _ := NewKeywordScanner([]string{"cat"}, nil)
	s.Scan([]models.TranscriptFragment{{Start: 0, End: 2, Text: "a catalog of things"}})
	if len(s.Results()["cat"]) != 1 {
		t.Error("substring containment should match 'cat' in 'catalog'")
	}
}

func TestKeywordScanner_Window(t *testing.T) {
	frag := models.TranscriptFragment{Start: 5, End: 15, Text: "target word here"}

	tests := []struct {
		name   string
		window models.TimeWindow
		want   int
	}{
		{"fragment inside window", models.TimeWindow{Begin: 0, End: 20}, 1},
		{"partial overlap excluded", models.TimeWindow{Begin: 0, End: 10}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewKeywordScanner([]string{"target"}, &tt.window)
			if err != nil {
				t.Fatalf("NewKeywordScanner() error = %v", err)
			}
			s.Scan([]models.TranscriptFragment{frag})
			if got := len(s.Results()["target"]); got != tt.want {
				t.Errorf("hits = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestKeywordScanner_EmptyKeywordSet(t *testing.T) {
	tests := []struct {
		name     string
		keywords []string
	}{
		{"nil", nil},
		{"empty slice", []string{}},
		{"blanks only", []string{"", "  ", "\t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewKeywordScanner(tt.keywords, nil)
			if !errors.Is(err, ErrEmptyKeywordSet) {
				t.Errorf("error = %v, want ErrEmptyKeywordSet", err)
			}
		})
	}
}

func TestKeywordScanner_TrimsAndDedupes(t *testing.T) {
	s, err := NewKeywordScanner([]string{" fox ", "fox", "", "dog"}, nil)
	if err != nil {
		t.Fatalf("NewKeywordScanner() error = %v", err)
	}
	kws := s.Keywords()
	if len(kws) != 2 || kws[0] != "fox" || kws[1] != "dog" {
		t.Errorf("Keywords() = %v, want [fox dog]", kws)
	}
}

func TestKeywordScanner_AccumulatesAcrossBatches(t *testing.T) {
	s, _ := NewKeywordScanner([]string{"go"}, nil)
	s.Scan([]models.TranscriptFragment{{Start: 10, End: 12, Text: "go left"}})
	s.Scan([]models.TranscriptFragment{{Start: 130, End: 133, Text: "then go right"}})

	hits := s.Results()["go"]
	if len(hits) != 2 {
		t.Fatalf("hits = %d, want 2", len(hits))
	}
	// First-found order is preserved.
	if hits[0].Timestamp != 10 || hits[1].Timestamp != 130 {
		t.Errorf("hits out of order: %+v", hits)
	}
	if s.TotalHits() != 2 {
		t.Errorf("TotalHits() = %d, want 2", s.TotalHits())
	}
}
