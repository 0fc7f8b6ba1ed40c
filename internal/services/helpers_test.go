package services

import (
	"context"
	"testing"

	"github.com/Dhayou05/Karim-perfume/internal/domain"
	"github.com/Dhayou05/Karim-perfume/internal/store"
)

// stubBackend is an in-memory store.Backend recording every save.
type stubBackend struct {
	items []domain.Perfume
	saves int
}

func (b *stubBackend) Load(context.Context) ([]domain.Perfume, error) {
	return domain.ClonePerfumes(b.items), nil
}

func (b *stubBackend) Save(_ context.Context, items []domain.Perfume) error {
	b.items = domain.ClonePerfumes(items)
	b.saves++
	return nil
}

func newTestCatalog(t *testing.T, seed ...domain.Perfume) (*store.Catalog, *stubBackend) {
	t.Helper()
	b := &stubBackend{items: domain.ClonePerfumes(seed)}
	c := store.NewCatalog(b)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c, b
}

func ids(items []domain.Perfume) []int {
	out := make([]int, len(items))
	for i, p := range items {
		out[i] = p.ID
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
