// Package services – CatalogService
//
// This file implements the admin curation surface: create, edit, hide,
// and delete catalog entries. Content edits never touch the feedback
// counters, and toggling visibility is a distinct, reversible state, not
// a soft delete.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Dhayou05/Karim-perfume/internal/domain"
	"github.com/Dhayou05/Karim-perfume/internal/store"
)

// PerfumeInput carries the admin-editable content fields. Notes arrive as
// one comma-separated string, exactly as the admin form submits them.
type PerfumeInput struct {
	Name        string
	Description string
	Notes       string
	Profile     string
	ImageURL    string
}

// CatalogService performs admin mutations on the catalog. Every operation
// persists synchronously through the store before returning.
type CatalogService struct {
	Catalog *store.Catalog
}

// SplitNotes splits a comma-separated notes string into the ordered notes
// sequence: fragments are trimmed and empty ones discarded.
func SplitNotes(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Add creates a new catalog entry from in. The id is assigned by the
// store; counters start at zero and the entry starts visible.
func (s *CatalogService) Add(ctx context.Context, in PerfumeInput) (domain.Perfume, error) {
	return s.Catalog.Add(ctx, domain.Perfume{
		Name:        in.Name,
		Description: in.Description,
		Notes:       SplitNotes(in.Notes),
		Profile:     in.Profile,
		ImageURL:    in.ImageURL,
	})
}

// Update replaces the content fields of an existing entry. The image
// reference is only replaced when in.ImageURL is non-empty, so edits
// without a new upload keep the current image. Counters, percentages, and
// the hidden flag are untouched.
func (s *CatalogService) Update(ctx context.Context, id int, in PerfumeInput) (domain.Perfume, error) {
	updated, err := s.Catalog.Update(ctx, id, func(p *domain.Perfume) {
		p.Name = in.Name
		p.Description = in.Description
		p.Notes = SplitNotes(in.Notes)
		p.Profile = in.Profile
		if in.ImageURL != "" {
			p.ImageURL = in.ImageURL
		}
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.Perfume{}, ErrPerfumeNotFound
	}
	return updated, err
}

// Remove deletes an entry outright. An unknown id is a successful no-op.
func (s *CatalogService) Remove(ctx context.Context, id int) error {
	return s.Catalog.Remove(ctx, id)
}

// ToggleHidden flips an entry's visibility and returns the updated entry.
func (s *CatalogService) ToggleHidden(ctx context.Context, id int) (domain.Perfume, error) {
	updated, err := s.Catalog.Update(ctx, id, func(p *domain.Perfume) {
		p.Hidden = !p.Hidden
	})
	if errors.Is(err, store.ErrNotFound) {
		return domain.Perfume{}, ErrPerfumeNotFound
	}
	return updated, err
}
