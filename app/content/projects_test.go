package content

import (
	"os"
	"path/filepath"
	"testing"
)

func writeProjectsFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "projects.json")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write projects file: %v", err)
	}
	return path
}

func TestLoadProjects_Array(t *testing.T) {
	path := writeProjectsFile(t, `[
		{"title": "Homepage", "description": "This site", "tags": ["go", "web"],
		 "links": {"github": "https://github.com/example/homepage"}},
		{"title": "CLI Tool", "description": "A small tool"}
	]`)

	projects, err := LoadProjects(path)
	if err != nil {
		t.Fatalf("LoadProjects failed: %v", err)
	}
	if len(projects) != 2 {
		t.Fatalf("Expected 2 projects, got %d", len(projects))
	}
	if projects[0].Title != "Homepage" {
		t.Errorf("Expected title 'Homepage', got '%s'", projects[0].Title)
	}
	if projects[0].Links == nil || projects[0].Links.Github == "" {
		t.Error("Expected github link to be parsed")
	}
	if projects[1].Links != nil {
		t.Error("Expected absent links to stay nil")
	}
}

func TestLoadProjects_WrappedObject(t *testing.T) {
	path := writeProjectsFile(t, `{"projects": [{"title": "Wrapped", "description": "In an object"}]}`)

	projects, err := LoadProjects(path)
	if err != nil {
		t.Fatalf("LoadProjects failed: %v", err)
	}
	if len(projects) != 1 || projects[0].Title != "Wrapped" {
		t.Errorf("Expected single wrapped project, got %+v", projects)
	}
}

func TestLoadProjects_MissingFile(t *testing.T) {
	projects, err := LoadProjects(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if len(projects) != 0 {
		t.Errorf("Expected empty result for missing file, got %d", len(projects))
	}
}

func TestLoadProjects_InvalidJSON(t *testing.T) {
	path := writeProjectsFile(t, `{"projects": [}`)
	if _, err := LoadProjects(path); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestLoadProjects_MissingRequiredFields(t *testing.T) {
	path := writeProjectsFile(t, `[{"title": "", "description": "No title"}]`)
	if _, err := LoadProjects(path); err == nil {
		t.Error("Expected error for project without title")
	}
}
