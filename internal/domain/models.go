// Package domain defines the catalog model shared by the store, services,
// and HTTP layers. The Perfume struct mirrors the persisted snapshot schema
// field for field, so the JSON tags here are also the on-disk representation.
package domain

import "math"

// Perfume is one recommendable catalog entry with descriptive fields and
// aggregated like/dislike feedback.
//
// Fields:
//   - ID: unique integer, assigned monotonically at creation and never
//     reused after deletion.
//   - Name / Description / Profile: free-text descriptive fields.
//   - Notes: ordered fragrance notes; duplicates allowed.
//   - ImageURL: optional reference (path or URL) to an image resource.
//   - Hidden: hidden entries are excluded from recommendations but stay
//     visible in administration.
//   - LikeCount / DislikeCount: non-negative feedback tallies.
//   - LikePercent / DislikePercent: derived from the counts, never set
//     independently; both 0 while no feedback exists.
type Perfume struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Notes          []string `json:"notes"`
	Profile        string   `json:"profile"`
	ImageURL       string   `json:"image_url"`
	Hidden         bool     `json:"hidden"`
	LikeCount      int      `json:"like_count"`
	DislikeCount   int      `json:"dislike_count"`
	LikePercent    int      `json:"like_percent"`
	DislikePercent int      `json:"dislike_percent"`
}

// RecomputePercents rederives LikePercent and DislikePercent from the
// current counters. Each percentage is rounded independently, so the pair
// may not sum to exactly 100; that is accepted, not corrected.
func (p *Perfume) RecomputePercents() {
	total := p.LikeCount + p.DislikeCount
	if total == 0 {
		p.LikePercent, p.DislikePercent = 0, 0
		return
	}
	p.LikePercent = int(math.Round(float64(p.LikeCount) / float64(total) * 100))
	p.DislikePercent = int(math.Round(float64(p.DislikeCount) / float64(total) * 100))
}

// Clone returns a deep copy, including the Notes slice. The store hands out
// clones so callers can never alias its internal collection.
func (p Perfume) Clone() Perfume {
	cp := p
	if p.Notes != nil {
		cp.Notes = append([]string(nil), p.Notes...)
	}
	return cp
}

// ClonePerfumes deep-copies a slice of perfumes.
func ClonePerfumes(items []Perfume) []Perfume {
	if items == nil {
		return nil
	}
	out := make([]Perfume, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	return out
}
