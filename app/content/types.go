package content

import (
	"time"
)

// Status gates content visibility. DRAFT items are invisible in production,
// both in listings and in direct slug lookup.
type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusPublished Status = "PUBLISHED"
)

// Mode is the runtime visibility mode, injected into repositories at
// construction instead of being read from the process environment.
type Mode int

const (
	ModeDevelopment Mode = iota
	ModeProduction
)

// Frontmatter is the metadata block at the top of a content file.
type Frontmatter struct {
	Title         string   `yaml:"title"`
	Date          string   `yaml:"date"`
	Tags          []string `yaml:"tags"`
	FeaturedImage string   `yaml:"featuredImage"`
	Status        Status   `yaml:"status"`
}

// Item is a single note or article. HasCustomComponent is only meaningful
// for articles; it reports whether a slug-specific rendering override is
// registered by the presentation layer.
type Item struct {
	Slug               string
	Frontmatter        Frontmatter
	Content            string
	ReadingTime        int
	Date               time.Time
	HasCustomComponent bool
}

// ProjectLinks holds optional outbound links for a project.
type ProjectLinks struct {
	Website string `json:"website,omitempty"`
	Github  string `json:"github,omitempty"`
	Demo    string `json:"demo,omitempty"`
}

// Project is a portfolio entry. Projects carry no date, status or slug and
// are identified only by list position.
type Project struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Image       string        `json:"image,omitempty"`
	Logo        string        `json:"logo,omitempty"`
	Links       *ProjectLinks `json:"links,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
}

// ComponentRegistry is supplied by the presentation layer at startup and
// answers whether an article slug has a custom rendering component.
type ComponentRegistry interface {
	Has(slug string) bool
}

// StaticRegistry is a fixed slug set satisfying ComponentRegistry.
type StaticRegistry map[string]struct{}

func NewStaticRegistry(slugs ...string) StaticRegistry {
	r := make(StaticRegistry, len(slugs))
	for _, slug := range slugs {
		r[slug] = struct{}{}
	}
	return r
}

func (r StaticRegistry) Has(slug string) bool {
	_, ok := r[slug]
	return ok
}
