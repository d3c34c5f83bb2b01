package render

import (
	"strings"
	"testing"
)

func TestRenderer_Run(t *testing.T) {
	r := NewRenderer()

	html, err := r.Run("# Title\n\nSome **bold** text and a [link](https://example.com).")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	out := string(html)
	if !strings.Contains(out, "<h1") || !strings.Contains(out, "Title") {
		t.Errorf("Expected rendered heading, got '%s'", out)
	}
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("Expected bold text, got '%s'", out)
	}
	if !strings.Contains(out, `href="https://example.com"`) {
		t.Errorf("Expected link, got '%s'", out)
	}
}

func TestRenderer_Run_GFMTable(t *testing.T) {
	r := NewRenderer()

	html, err := r.Run("| a | b |\n|---|---|\n| 1 | 2 |")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(string(html), "<table>") {
		t.Errorf("Expected GFM table rendering, got '%s'", html)
	}
}

func TestRenderer_Run_AllowsRawHTML(t *testing.T) {
	r := NewRenderer()

	html, err := r.Run(`Text with <figure class="wide">inline html</figure>.`)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(string(html), "<figure") {
		t.Errorf("Expected raw HTML preserved, got '%s'", html)
	}
}
