package services

import (
	"testing"

	"github.com/Dhayou05/Karim-perfume/internal/domain"
)

func roseCatalog(t *testing.T) *SearchService {
	t.Helper()
	c, _ := newTestCatalog(t,
		domain.Perfume{ID: 1, Name: "Rose Garden"},
		domain.Perfume{ID: 2, Name: "Wild Rose", Hidden: true},
		domain.Perfume{ID: 3, Name: "Cedar Trail"},
	)
	return &SearchService{Catalog: c}
}

func TestSearch_EmptyQueryReturnsFullCatalog(t *testing.T) {
	svc := roseCatalog(t)
	matches, suggestions := svc.Search("")
	if len(matches) != 3 {
		t.Fatalf("empty query: got %d matches, want full catalog of 3", len(matches))
	}
	if len(suggestions) != 0 {
		t.Fatalf("empty query must yield no suggestions, got %d", len(suggestions))
	}
}

func TestSearch_CaseSensitiveSubstringIncludesHidden(t *testing.T) {
	svc := roseCatalog(t)
	matches, suggestions := svc.Search("Rose")
	if want := []int{1, 2}; !equalInts(ids(matches), want) {
		t.Fatalf("matches = %v, want %v (hidden entries included, catalog order)", ids(matches), want)
	}
	if len(suggestions) != 0 {
		t.Fatalf("matches found, suggestions must be empty, got %d", len(suggestions))
	}
}

func TestSearch_NoMatchFallsBackToCaseInsensitiveSuggestions(t *testing.T) {
	svc := roseCatalog(t)
	matches, suggestions := svc.Search("rose")
	if len(matches) != 0 {
		t.Fatalf("lowercase query must not literal-match, got %v", ids(matches))
	}
	if want := []int{1, 2}; !equalInts(ids(suggestions), want) {
		t.Fatalf("suggestions = %v, want %v", ids(suggestions), want)
	}
}

func TestSearch_SuggestionsMatchAnyWord(t *testing.T) {
	svc := roseCatalog(t)
	_, suggestions := svc.Search("cedar rose")
	if want := []int{1, 2, 3}; !equalInts(ids(suggestions), want) {
		t.Fatalf("suggestions = %v, want %v", ids(suggestions), want)
	}
}

func TestSearch_SuggestionsCappedAtFive(t *testing.T) {
	items := make([]domain.Perfume, 7)
	for i := range items {
		items[i] = domain.Perfume{ID: i + 1, Name: "Rose Variant"}
	}
	c, _ := newTestCatalog(t, items...)
	svc := &SearchService{Catalog: c}

	_, suggestions := svc.Search("rose")
	if want := []int{1, 2, 3, 4, 5}; !equalInts(ids(suggestions), want) {
		t.Fatalf("suggestions = %v, want first five in catalog order", ids(suggestions))
	}
}

func TestSearch_NoMatchNoSuggestionWords(t *testing.T) {
	svc := roseCatalog(t)
	matches, suggestions := svc.Search("oud")
	if len(matches) != 0 || len(suggestions) != 0 {
		t.Fatalf("unrelated query: got %d matches, %d suggestions", len(matches), len(suggestions))
	}
}
