// ABOUTME: KeywordScanner finds case-insensitive keyword occurrences in fragments
// ABOUTME: Accumulates hits across chunks; every keyword is always keyed
package core

import (
	"errors"
	"strings"

	"github.com/TheOneTrueGuy/G-video-clipper/internal/models"
)

// ErrEmptyKeywordSet is returned when no usable keyword remains after
// trimming and discarding blank entries.
var ErrEmptyKeywordSet = errors.New("no usable keywords provided")

// KeywordScanner scans transcript fragments for keyword occurrences.
// Matching is case-insensitive substring containment against the fragment's
// full text, so a keyword that is a substring of a longer word still matches.
// That imprecision is intentional: switching to word-boundary matching would
// change which timestamps get reported.
//
// Fragments must be rebased to the global timeline before scanning. When a
// time window is set, only fragments fully inside it are considered.
type KeywordScanner struct {
	keywords []string // trimmed, original case, first-seen order
	lowered  []string
	window   *models.TimeWindow
	hits     map[string][]models.KeywordHit
}

// NewKeywordScanner builds a scanner for the given keyword set and optional
// window. Keywords are trimmed and blanks dropped; duplicates (after
// trimming) collapse to one entry.
func NewKeywordScanner(keywords []string, window *models.TimeWindow) (*KeywordScanner, error) {
	s := &KeywordScanner{
		window: window,
		hits:   make(map[string][]models.KeywordHit),
	}
	seen := make(map[string]bool)
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		s.keywords = append(s.keywords, kw)
		s.lowered = append(s.lowered, strings.ToLower(kw))
		s.hits[kw] = []models.KeywordHit{}
	}
	if len(s.keywords) == 0 {
		return nil, ErrEmptyKeywordSet
	}
	return s, nil
}

// Keywords returns the usable keywords in first-seen order.
func (s *KeywordScanner) Keywords() []string {
	return s.keywords
}

// Scan records hits for every keyword found in the given fragments.
// Fragments may arrive in multiple batches (one per chunk).
func (s *KeywordScanner) Scan(frags []models.TranscriptFragment) {
	for _, f := range frags {
		if s.window != nil && !s.window.Contains(f) {
			continue
		}
		text := strings.ToLower(f.Text)
		for i, low := range s.lowered {
			if strings.Contains(text, low) {
				kw := s.keywords[i]
				s.hits[kw] = append(s.hits[kw], models.KeywordHit{
					Keyword:   kw,
					Timestamp: f.Start,
					Text:      f.Text,
				})
			}
		}
	}
}

// Results returns the keyword → hits mapping. Every keyword in the set is
// present, with an empty slice when nothing matched, so reporting can print
// a "no matches" line per keyword.
func (s *KeywordScanner) Results() map[string][]models.KeywordHit {
	return s.hits
}

// TotalHits counts hits across all keywords.
func (s *KeywordScanner) TotalHits() int {
	n := 0
	for _, hs := range s.hits {
		n += len(hs)
	}
	return n
}
