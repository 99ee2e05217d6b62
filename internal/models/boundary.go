// ABOUTME: ClipBoundary is one planned cut point handed to the extractor
// ABOUTME: Numbered 1..N so output artifacts can be named deterministically
package models

// ClipBoundary is one (start, end) cut the extractor should perform.
// Number runs 1..N in time order and names the output artifact.
type ClipBoundary struct {
	Number int     `json:"number"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
}
