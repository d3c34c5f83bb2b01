package content

import (
	"fmt"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// yamlFormat decodes the front matter payload with the same YAML library
// used everywhere else in the codebase.
var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// FieldError describes a single front matter schema violation.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates all field-level violations of a single file.
// Malformed content must not silently render with missing fields, so loaders
// propagate this instead of skipping the file.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Error())
	}
	return "invalid front matter: " + strings.Join(msgs, "; ")
}

// ParseFrontmatter splits a content file into validated front matter and the
// raw markdown body. The returned error is a *ValidationError for schema
// violations.
func ParseFrontmatter(data []byte) (Frontmatter, string, error) {
	var fm Frontmatter
	body, err := frontmatter.Parse(strings.NewReader(string(data)), &fm, yamlFormat)
	if err != nil {
		return Frontmatter{}, "", fmt.Errorf("failed to parse front matter: %w", err)
	}

	if err := validateFrontmatter(&fm); err != nil {
		return Frontmatter{}, "", err
	}

	return fm, string(body), nil
}

func validateFrontmatter(fm *Frontmatter) error {
	var fields []FieldError

	if strings.TrimSpace(fm.Title) == "" {
		fields = append(fields, FieldError{Field: "title", Message: "is required"})
	}

	if strings.TrimSpace(fm.Date) == "" {
		fields = append(fields, FieldError{Field: "date", Message: "is required"})
	} else if _, err := ParseDate(fm.Date); err != nil {
		fields = append(fields, FieldError{Field: "date", Message: fmt.Sprintf("invalid date format: %s", fm.Date)})
	}

	if fm.Tags == nil {
		fm.Tags = []string{}
	}

	switch fm.Status {
	case "":
		fm.Status = StatusPublished
	case StatusDraft, StatusPublished:
	default:
		fields = append(fields, FieldError{Field: "status", Message: fmt.Sprintf("must be DRAFT or PUBLISHED, got %s", fm.Status)})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// ParseDate parses a front matter date string.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %s", value)
}
