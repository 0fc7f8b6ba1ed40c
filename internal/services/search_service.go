// Package services – SearchService
//
// This file implements the admin catalog search. Matching is a literal,
// case-sensitive substring test over names; the admin view is unfiltered
// by visibility. When nothing matches, a small set of near-miss
// suggestions is produced by a case-insensitive per-word comparison. This
// is a convenience fallback, not ranked search: no scoring, catalog order
// only.
package services

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/Dhayou05/Karim-perfume/internal/domain"
	"github.com/Dhayou05/Karim-perfume/internal/store"
)

// maxSuggestions caps the near-miss fallback list.
const maxSuggestions = 5

// SearchService filters the catalog by name.
type SearchService struct {
	Catalog *store.Catalog
}

// Search returns the entries whose name contains query as a literal
// substring (case-sensitive), in catalog order, hidden entries included.
//
// An empty query returns the full catalog and no suggestions. A non-empty
// query with no matches falls back to suggestions: the first 5 entries (in
// catalog order) whose case-folded name contains any case-folded
// whitespace-separated word of the query.
func (s *SearchService) Search(query string) (matches, suggestions []domain.Perfume) {
	items := s.Catalog.Items()
	if query == "" {
		return items, nil
	}

	for _, p := range items {
		if strings.Contains(p.Name, query) {
			matches = append(matches, p)
		}
	}
	if len(matches) > 0 {
		return matches, nil
	}

	// Unicode case folding rather than ASCII lowercasing; perfume names
	// routinely carry accents.
	fold := cases.Fold()
	words := strings.Fields(query)
	for i := range words {
		words[i] = fold.String(words[i])
	}
	for _, p := range items {
		name := fold.String(p.Name)
		for _, w := range words {
			if strings.Contains(name, w) {
				suggestions = append(suggestions, p)
				break
			}
		}
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return nil, suggestions
}
