// Package services – RatingService
//
// This file implements the rating aggregator: it tallies like/dislike
// feedback on catalog entries and rederives the displayed percentages from
// the counters on every vote. Repeated votes accumulate on purpose; this
// is feedback tallying, not a toggle, and nothing deduplicates callers.
package services

import (
	"context"
	"errors"

	"github.com/Dhayou05/Karim-perfume/internal/domain"
	"github.com/Dhayou05/Karim-perfume/internal/store"
)

// Feedback actions accepted by RatingService.Apply, as submitted on the
// wire by the rating endpoint.
const (
	ActionLike    = "like"
	ActionDislike = "dislike"
)

// RatingResult carries the percentages after a vote has been applied and
// persisted.
type RatingResult struct {
	LikePercent    int `json:"like_percent"`
	DislikePercent int `json:"dislike_percent"`
}

// RatingService applies feedback events to the catalog. The catalog's own
// lock serializes the read-modify-write-persist sequence, so concurrent
// votes on the same perfume never compute off stale counters.
type RatingService struct {
	// Catalog is the authoritative store mutated by every vote.
	Catalog *store.Catalog
}

// Apply records one like or dislike for the perfume with the given id.
//
// Semantics:
//   - action must be exactly "like" or "dislike"; otherwise ErrInvalidAction.
//   - id must exist; otherwise ErrPerfumeNotFound.
//   - On success the matching counter increases by exactly 1, both
//     percentages are recomputed from the current counters only, the
//     catalog is persisted, and the fresh percentages are returned.
//
// A *store.PersistenceError means the vote is not durably saved and was
// rolled back in memory.
func (s *RatingService) Apply(ctx context.Context, id int, action string) (RatingResult, error) {
	if action != ActionLike && action != ActionDislike {
		return RatingResult{}, ErrInvalidAction
	}

	updated, err := s.Catalog.Update(ctx, id, func(p *domain.Perfume) {
		if action == ActionLike {
			p.LikeCount++
		} else {
			p.DislikeCount++
		}
		p.RecomputePercents()
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RatingResult{}, ErrPerfumeNotFound
		}
		return RatingResult{}, err
	}
	return RatingResult{
		LikePercent:    updated.LikePercent,
		DislikePercent: updated.DislikePercent,
	}, nil
}
