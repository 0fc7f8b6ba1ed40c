package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Dhayou05/Karim-perfume/internal/domain"
)

func TestRating_Apply_InvalidAction(t *testing.T) {
	c, _ := newTestCatalog(t, domain.Perfume{ID: 1})
	svc := &RatingService{Catalog: c}

	for _, action := range []string{"", "LIKE", "love", "toggle"} {
		if _, err := svc.Apply(context.Background(), 1, action); !errors.Is(err, ErrInvalidAction) {
			t.Fatalf("action %q: expected ErrInvalidAction, got %v", action, err)
		}
	}
}

func TestRating_Apply_NotFound(t *testing.T) {
	c, _ := newTestCatalog(t)
	svc := &RatingService{Catalog: c}

	if _, err := svc.Apply(context.Background(), 99, ActionLike); !errors.Is(err, ErrPerfumeNotFound) {
		t.Fatalf("expected ErrPerfumeNotFound, got %v", err)
	}
}

func TestRating_Apply_AccumulatesPerCall(t *testing.T) {
	c, b := newTestCatalog(t, domain.Perfume{ID: 1, Name: "Musk"})
	svc := &RatingService{Catalog: c}

	// Repeated likes are tallied, never deduplicated.
	for i := 1; i <= 3; i++ {
		res, err := svc.Apply(context.Background(), 1, ActionLike)
		if err != nil {
			t.Fatalf("like %d: %v", i, err)
		}
		if res.LikePercent != 100 || res.DislikePercent != 0 {
			t.Fatalf("like %d: got %d/%d, want 100/0", i, res.LikePercent, res.DislikePercent)
		}
	}

	res, err := svc.Apply(context.Background(), 1, ActionDislike)
	if err != nil {
		t.Fatalf("dislike: %v", err)
	}
	if res.LikePercent != 75 || res.DislikePercent != 25 {
		t.Fatalf("after 3 likes + 1 dislike: got %d/%d, want 75/25", res.LikePercent, res.DislikePercent)
	}

	p, err := c.FindByID(1)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if p.LikeCount != 3 || p.DislikeCount != 1 {
		t.Fatalf("counters: got %d/%d, want 3/1", p.LikeCount, p.DislikeCount)
	}
	if b.saves != 4 {
		t.Fatalf("each vote must persist: got %d saves, want 4", b.saves)
	}
}

func TestRating_Apply_RecomputesFromCurrentCountsOnly(t *testing.T) {
	// Seed stale percentages; the first vote must rederive from counters.
	c, _ := newTestCatalog(t, domain.Perfume{ID: 1, LikeCount: 1, DislikeCount: 1, LikePercent: 90, DislikePercent: 10})
	svc := &RatingService{Catalog: c}

	res, err := svc.Apply(context.Background(), 1, ActionDislike)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if res.LikePercent != 33 || res.DislikePercent != 67 {
		t.Fatalf("got %d/%d, want 33/67", res.LikePercent, res.DislikePercent)
	}
}
