package content

import (
	"errors"
	"strings"
	"testing"
)

func TestParseFrontmatter_Valid(t *testing.T) {
	data := []byte(`---
title: "Hello World"
date: "2024-04-01"
tags:
  - go
featuredImage: "/images/hello.png"
---

Body text here.
`)

	fm, body, err := ParseFrontmatter(data)
	if err != nil {
		t.Fatalf("ParseFrontmatter failed: %v", err)
	}
	if fm.Title != "Hello World" {
		t.Errorf("Expected title 'Hello World', got '%s'", fm.Title)
	}
	if fm.Status != StatusPublished {
		t.Errorf("Expected default status PUBLISHED, got '%s'", fm.Status)
	}
	if len(fm.Tags) != 1 || fm.Tags[0] != "go" {
		t.Errorf("Expected tags [go], got %v", fm.Tags)
	}
	if fm.FeaturedImage != "/images/hello.png" {
		t.Errorf("Expected featured image, got '%s'", fm.FeaturedImage)
	}
	if !strings.Contains(body, "Body text here.") {
		t.Errorf("Expected body to contain content, got '%s'", body)
	}
}

func TestParseFrontmatter_MissingTitle(t *testing.T) {
	data := []byte(`---
date: "2024-04-01"
---
Body.
`)

	_, _, err := ParseFrontmatter(data)
	if err == nil {
		t.Fatal("Expected error for missing title")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *ValidationError, got %T", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Field != "title" {
		t.Errorf("Expected a single title field error, got %+v", verr.Fields)
	}
}

func TestParseFrontmatter_InvalidDate(t *testing.T) {
	data := []byte(`---
title: "Bad Date"
date: "not-a-date"
---
Body.
`)

	_, _, err := ParseFrontmatter(data)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected *ValidationError for invalid date, got %v", err)
	}
	if verr.Fields[0].Field != "date" {
		t.Errorf("Expected date field error, got %+v", verr.Fields)
	}
}

func TestParseFrontmatter_EmptyDate(t *testing.T) {
	data := []byte(`---
title: "No Date"
---
Body.
`)

	if _, _, err := ParseFrontmatter(data); err == nil {
		t.Error("Expected error for empty date")
	}
}

func TestParseFrontmatter_InvalidStatus(t *testing.T) {
	data := []byte(`---
title: "Weird Status"
date: "2024-04-01"
status: PENDING
---
Body.
`)

	if _, _, err := ParseFrontmatter(data); err == nil {
		t.Error("Expected error for unknown status value")
	}
}

func TestParseFrontmatter_DefaultsTagsToEmpty(t *testing.T) {
	data := []byte(`---
title: "No Tags"
date: "2024-04-01"
---
Body.
`)

	fm, _, err := ParseFrontmatter(data)
	if err != nil {
		t.Fatalf("ParseFrontmatter failed: %v", err)
	}
	if fm.Tags == nil {
		t.Error("Expected tags to default to an empty slice, got nil")
	}
	if len(fm.Tags) != 0 {
		t.Errorf("Expected no tags, got %v", fm.Tags)
	}
}

func TestParseDate_Layouts(t *testing.T) {
	for _, value := range []string{"2024-04-01", "2024-04-01T10:30:00Z", "2024-04-01 10:30:00"} {
		if _, err := ParseDate(value); err != nil {
			t.Errorf("Expected '%s' to parse, got %v", value, err)
		}
	}
	if _, err := ParseDate("April the first"); err == nil {
		t.Error("Expected unparseable date to fail")
	}
}
