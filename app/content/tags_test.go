package content

import (
	"path/filepath"
	"testing"
)

func newTestIndex(t *testing.T, mode Mode) *Index {
	t.Helper()
	contentDir := t.TempDir()
	notesDir := filepath.Join(contentDir, "notes")
	articlesDir := filepath.Join(contentDir, "articles")

	writeContentFile(t, notesDir, "go-note", `title: "A Go Note"
date: "2024-05-01"
tags:
  - go
  - AI
`, "Note body.")
	writeContentFile(t, notesDir, "design-note", `title: "A Design Note"
date: "2025-01-10"
tags:
  - design
`, "Another note.")
	writeContentFile(t, articlesDir, "go-article", `title: "A Go Article"
date: "2024-09-01"
tags:
  - Go
  - web
`, "Article body.")

	notes := NewNotesRepository(contentDir, mode)
	articles := NewArticlesRepository(contentDir, mode, nil)
	return NewIndex(notes, articles)
}

func TestIndex_AllTags_DedupedAndSorted(t *testing.T) {
	ix := newTestIndex(t, ModeDevelopment)

	tags, err := ix.AllTags()
	if err != nil {
		t.Fatalf("AllTags failed: %v", err)
	}

	// "go" and "Go" collapse to the first-seen casing
	expected := []string{"AI", "design", "go", "web"}
	if len(tags) != len(expected) {
		t.Fatalf("Expected %d tags, got %d: %v", len(expected), len(tags), tags)
	}
	for i, tag := range expected {
		if tags[i] != tag {
			t.Errorf("Expected tag '%s' at position %d, got '%s'", tag, i, tags[i])
		}
	}
}

func TestIndex_ByTag_CaseInsensitive(t *testing.T) {
	ix := newTestIndex(t, ModeDevelopment)

	upper, err := ix.NotesByTag("AI")
	if err != nil {
		t.Fatalf("NotesByTag failed: %v", err)
	}
	lower, err := ix.NotesByTag("ai")
	if err != nil {
		t.Fatalf("NotesByTag failed: %v", err)
	}
	if len(upper) != 1 || len(lower) != 1 {
		t.Fatalf("Expected 1 match for both casings, got %d and %d", len(upper), len(lower))
	}
	if upper[0].Slug != lower[0].Slug {
		t.Errorf("Casings returned different items: %s vs %s", upper[0].Slug, lower[0].Slug)
	}
}

func TestIndex_ByTag_NoMatches(t *testing.T) {
	ix := newTestIndex(t, ModeDevelopment)

	articles, err := ix.ArticlesByTag("nonexistent")
	if err != nil {
		t.Fatalf("ArticlesByTag failed: %v", err)
	}
	if len(articles) != 0 {
		t.Errorf("Expected empty result for unmatched tag, got %d items", len(articles))
	}
}

func TestIndex_ItemsByTag_CombinedSortedByDate(t *testing.T) {
	ix := newTestIndex(t, ModeDevelopment)

	items, err := ix.ItemsByTag("go")
	if err != nil {
		t.Fatalf("ItemsByTag failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items across collections, got %d", len(items))
	}
	// go-article (2024-09) is newer than go-note (2024-05)
	if items[0].Kind != KindArticle || items[0].Item.Slug != "go-article" {
		t.Errorf("Expected go-article first, got %s %s", items[0].Kind, items[0].Item.Slug)
	}
	if items[1].Kind != KindNote || items[1].Item.Slug != "go-note" {
		t.Errorf("Expected go-note second, got %s %s", items[1].Kind, items[1].Item.Slug)
	}
}
