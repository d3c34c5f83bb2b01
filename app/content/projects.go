package content

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// LoadProjects reads the projects file, which holds either a bare array of
// project objects or an object with a "projects" array. A missing file
// yields an empty slice.
func LoadProjects(path string) ([]Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Project{}, nil
		}
		return nil, fmt.Errorf("failed to read projects file %s: %w", path, err)
	}

	var projects []Project
	if err := json.Unmarshal(data, &projects); err == nil {
		return validateProjects(path, projects)
	}

	var wrapper struct {
		Projects []Project `json:"projects"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to parse projects file %s: %w", path, err)
	}
	if wrapper.Projects == nil {
		return []Project{}, nil
	}
	return validateProjects(path, wrapper.Projects)
}

func validateProjects(path string, projects []Project) ([]Project, error) {
	for i, p := range projects {
		if strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("invalid project at index %d in %s: title is required", i, path)
		}
		if strings.TrimSpace(p.Description) == "" {
			return nil, fmt.Errorf("invalid project at index %d in %s: description is required", i, path)
		}
	}
	return projects, nil
}
