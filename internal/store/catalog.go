// Package store owns the authoritative perfume catalog. A single Catalog
// instance holds the in-memory collection, serializes every
// read-modify-write-persist sequence behind one mutex, and writes the whole
// collection through a pluggable Backend after each mutation.
//
// Persistence contract: every mutating operation persists synchronously
// before returning success, so a crash immediately after a successful call
// loses no acknowledged mutation. Backend write failures surface as
// *PersistenceError; the in-memory state is rolled back so memory and disk
// never diverge.
package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Dhayou05/Karim-perfume/internal/domain"
)

// ErrNotFound is returned when no perfume with the requested id exists.
var ErrNotFound = errors.New("perfume not found")

// PersistenceError wraps a backend write failure. Callers must treat the
// mutation as not durably saved.
type PersistenceError struct {
	Err error
}

// Error implements the error interface.
func (e *PersistenceError) Error() string {
	return fmt.Sprintf("catalog persist failed: %v", e.Err)
}

// Unwrap exposes the underlying backend error.
func (e *PersistenceError) Unwrap() error { return e.Err }

// Backend loads and saves the catalog wholesale. Save must replace the
// persisted snapshot atomically: no concurrent reader may observe a
// half-written collection.
type Backend interface {
	Load(ctx context.Context) ([]domain.Perfume, error)
	Save(ctx context.Context, items []domain.Perfume) error
}

// Catalog is the single source of truth for perfumes. All access goes
// through its methods; the internal slice is never handed out directly.
// Safe for concurrent use.
type Catalog struct {
	mu      sync.Mutex
	items   []domain.Perfume
	backend Backend
}

// NewCatalog returns an empty catalog bound to the given backend.
// Call Load before serving requests.
func NewCatalog(b Backend) *Catalog {
	return &Catalog{backend: b}
}

// Load replaces the in-memory collection with the persisted snapshot.
// A missing snapshot yields an empty catalog, not an error.
func (c *Catalog) Load(ctx context.Context) error {
	items, err := c.backend.Load(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	return nil
}

// persistLocked writes the whole collection. Caller holds c.mu.
func (c *Catalog) persistLocked(ctx context.Context) error {
	if err := c.backend.Save(ctx, c.items); err != nil {
		return &PersistenceError{Err: err}
	}
	return nil
}

// nextIDLocked returns 1 for an empty catalog, otherwise max(id)+1.
// Gaps left by deletions are never refilled. Caller holds c.mu.
func (c *Catalog) nextIDLocked() int {
	next := 1
	for i := range c.items {
		if c.items[i].ID >= next {
			next = c.items[i].ID + 1
		}
	}
	return next
}

// NextID returns the id the next created perfume would receive.
func (c *Catalog) NextID() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nextIDLocked()
}

// Add assigns the next id to p, appends it, and persists. The stored
// perfume (with its id) is returned.
func (c *Catalog) Add(ctx context.Context, p domain.Perfume) (domain.Perfume, error) {
	added, err := c.AddAll(ctx, []domain.Perfume{p})
	if err != nil {
		return domain.Perfume{}, err
	}
	return added[0], nil
}

// AddAll appends every perfume in order, assigning ids sequentially, and
// persists once. Used by bulk import so a batch gets one id per record and
// a single snapshot write. On persistence failure nothing is added.
func (c *Catalog) AddAll(ctx context.Context, ps []domain.Perfume) ([]domain.Perfume, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := len(c.items)
	for _, p := range ps {
		p.ID = c.nextIDLocked()
		c.items = append(c.items, p.Clone())
	}
	if err := c.persistLocked(ctx); err != nil {
		c.items = c.items[:prev]
		return nil, err
	}
	return domain.ClonePerfumes(c.items[prev:]), nil
}

// Remove deletes the perfume with the given id and persists. An absent id
// is a successful no-op; the snapshot is still rewritten.
func (c *Catalog) Remove(ctx context.Context, id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.items
	kept := make([]domain.Perfume, 0, len(c.items))
	for i := range c.items {
		if c.items[i].ID != id {
			kept = append(kept, c.items[i])
		}
	}
	c.items = kept
	if err := c.persistLocked(ctx); err != nil {
		c.items = prev
		return err
	}
	return nil
}

// FindByID returns a copy of the perfume with the given id, or ErrNotFound.
func (c *Catalog) FindByID(id int) (domain.Perfume, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			return c.items[i].Clone(), nil
		}
	}
	return domain.Perfume{}, ErrNotFound
}

// Update applies fn to the perfume with the given id and persists, all
// under one lock hold. fn sees the live item and may mutate any field
// except the id. Returns the updated copy, ErrNotFound for an unknown id,
// or *PersistenceError (with the mutation rolled back) if the write fails.
func (c *Catalog) Update(ctx context.Context, id int, fn func(*domain.Perfume)) (domain.Perfume, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID != id {
			continue
		}
		before := c.items[i].Clone()
		fn(&c.items[i])
		c.items[i].ID = id
		if err := c.persistLocked(ctx); err != nil {
			c.items[i] = before
			return domain.Perfume{}, err
		}
		return c.items[i].Clone(), nil
	}
	return domain.Perfume{}, ErrNotFound
}

// Items returns a deep copy of the full catalog in catalog order.
func (c *Catalog) Items() []domain.Perfume {
	c.mu.Lock()
	defer c.mu.Unlock()
	return domain.ClonePerfumes(c.items)
}

// Visible returns a deep copy of the non-hidden items in catalog order.
// This is the eligible pool for recommendation selection.
func (c *Catalog) Visible() []domain.Perfume {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Perfume, 0, len(c.items))
	for i := range c.items {
		if !c.items[i].Hidden {
			out = append(out, c.items[i].Clone())
		}
	}
	return out
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}
