// Package services – RecommendService
//
// This file maps a completed quiz answer set to a bounded selection of
// visible catalog entries. The selection is an intentionally simple
// deterministic pseudo-hash over the quiz score, not a similarity model:
// the same score against the same catalog always yields the same result,
// and the stride of 2 spreads picks across the pool.
package services

import (
	"github.com/Dhayou05/Karim-perfume/internal/domain"
	"github.com/Dhayou05/Karim-perfume/internal/quiz"
	"github.com/Dhayou05/Karim-perfume/internal/store"
	"github.com/Dhayou05/Karim-perfume/internal/utils"
)

// defaultMaxRecommendations bounds how many perfumes one quiz run yields.
const defaultMaxRecommendations = 3

// RecommendService selects perfumes for a completed answer set.
type RecommendService struct {
	// Catalog supplies the eligible pool (non-hidden entries in catalog order).
	Catalog *store.Catalog
	// MaxResults overrides the default cap of 3 when positive.
	MaxResults int
}

// Score sums every answer value that parses as an integer. Unparseable
// answers contribute 0 by design: free-text or option-label answers are
// skipped, not rejected.
func Score(answers quiz.AnswerSet) int {
	score := 0
	for _, v := range answers {
		score += utils.AtoiDefault(v, 0)
	}
	return score
}

// Recommend returns up to MaxResults distinct visible perfumes for the
// given answers, or an empty slice when nothing is visible.
//
// Selection rule: with pool size n, candidate index for pick k is
// (score + 2k) mod n. When a candidate index is already taken, the
// selection probes forward (wrapping) to the next unused index, so a pool
// smaller than the cap is always exhausted in finitely many steps. Items
// are returned in the order their indices were first assigned, which is
// not necessarily catalog order.
func (s *RecommendService) Recommend(answers quiz.AnswerSet) []domain.Perfume {
	pool := s.Catalog.Visible()
	n := len(pool)
	if n == 0 {
		return []domain.Perfume{}
	}

	max := s.MaxResults
	if max <= 0 {
		max = defaultMaxRecommendations
	}

	score := Score(answers)
	used := make(map[int]bool, max)
	out := make([]domain.Perfume, 0, max)
	for k := 0; len(out) < max && len(out) < n; k++ {
		// Normalize: Go's remainder is negative for negative scores.
		idx := ((score+2*k)%n + n) % n
		for used[idx] {
			idx = (idx + 1) % n
		}
		used[idx] = true
		out = append(out, pool[idx])
	}
	return out
}
