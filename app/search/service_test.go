package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/skonczal/homepage/app/content"
)

func writeFixture(t *testing.T, dir, slug, data string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, slug+".mdx"), []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	contentDir := t.TempDir()

	writeFixture(t, filepath.Join(contentDir, "notes"), "learning-javascript", `---
title: "Learning JavaScript"
date: "2024-03-01"
tags:
  - javascript
  - learning
---
Some notes on JavaScript.
`)
	writeFixture(t, filepath.Join(contentDir, "notes"), "coffee-brewing", `---
title: "Coffee Brewing"
date: "2024-04-01"
tags:
  - coffee
---
On pour-over.
`)
	writeFixture(t, filepath.Join(contentDir, "articles"), "go-concurrency", `---
title: "Concurrency Patterns in Go"
date: "2024-05-01"
tags:
  - go
---
Channels and goroutines.
`)

	projectsFile := filepath.Join(contentDir, "projects.json")
	projectsJSON := `[{"title": "JS Playground", "description": "A JavaScript sandbox", "tags": ["javascript"]},
		{"title": "Homepage", "description": "This website", "tags": ["go", "web"]}]`
	if err := os.WriteFile(projectsFile, []byte(projectsJSON), 0o644); err != nil {
		t.Fatalf("Failed to write projects: %v", err)
	}

	notes := content.NewNotesRepository(contentDir, content.ModeDevelopment)
	articles := content.NewArticlesRepository(contentDir, content.ModeDevelopment, nil)
	index := content.NewIndex(notes, articles)
	return NewService(notes, articles, index, projectsFile)
}

func TestMatches(t *testing.T) {
	if !Matches("Learning JavaScript", "javascript") {
		t.Error("Expected case-insensitive substring match")
	}
	if !Matches("Learning JavaScript", "learn script") {
		t.Error("Expected all terms matched as independent substrings")
	}
	if Matches("Learning JavaScript", "javascript rust") {
		t.Error("Expected conjunctive match to fail when one term is absent")
	}
	if Matches("anything", "") {
		t.Error("Expected blank query to match nothing")
	}
	if Matches("anything", "   ") {
		t.Error("Expected whitespace-only query to match nothing")
	}
}

func TestService_Run_EmptyQuery(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Run("   ")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(result.Notes) != 0 || len(result.Articles) != 0 || len(result.Tags) != 0 ||
		result.About != nil || len(result.Projects) != 0 {
		t.Errorf("Expected all-empty result for blank query, got %+v", result)
	}
	if result.Notes == nil || result.Tags == nil {
		t.Error("Expected empty groups to be non-nil slices for JSON serialization")
	}
}

func TestService_Run_MatchesTitleAndTags(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Run("javascript")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(result.Notes) != 1 || result.Notes[0].Slug != "learning-javascript" {
		t.Errorf("Expected learning-javascript note, got %+v", result.Notes)
	}
	if result.Notes[0].Href != "/note/learning-javascript" {
		t.Errorf("Expected note href, got '%s'", result.Notes[0].Href)
	}
	if len(result.Tags) != 1 || result.Tags[0] != "javascript" {
		t.Errorf("Expected javascript tag match, got %v", result.Tags)
	}
	if len(result.Projects) != 1 || result.Projects[0].Title != "JS Playground" {
		t.Errorf("Expected JS Playground project, got %+v", result.Projects)
	}
}

func TestService_Run_TagsCheckedIndividually(t *testing.T) {
	svc := newTestService(t)

	// "coffee learning" spans two different fields on different items; no
	// single title or single tag contains both terms
	result, err := svc.Run("coffee learning")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(result.Notes) != 0 {
		t.Errorf("Expected no matches for terms split across fields, got %+v", result.Notes)
	}
}

func TestService_Run_ArticleAndDescriptionMatch(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Run("concurrency go")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(result.Articles) != 1 || result.Articles[0].Href != "/articles/go-concurrency" {
		t.Errorf("Expected go-concurrency article, got %+v", result.Articles)
	}

	// Project descriptions are searchable
	result, err = svc.Run("sandbox")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(result.Projects) != 1 {
		t.Errorf("Expected description match for project, got %+v", result.Projects)
	}
}

func TestService_Run_About(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Run("about")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.About == nil {
		t.Fatal("Expected about match")
	}
	if result.About.Href != "/about" {
		t.Errorf("Expected /about href, got '%s'", result.About.Href)
	}

	result, err = svc.Run("zzz-no-such-term")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.About != nil {
		t.Errorf("Expected no about match, got %+v", result.About)
	}
}
