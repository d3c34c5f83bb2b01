package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const contentExtension = ".mdx"

// Repository loads one collection of content files from disk. There is no
// cache: every call re-reads and re-validates, which is safe because the
// dataset is small and read-only at runtime.
type Repository struct {
	dir      string
	mode     Mode
	registry ComponentRegistry
}

// NewNotesRepository returns the repository for the notes collection.
func NewNotesRepository(contentDir string, mode Mode) *Repository {
	return &Repository{dir: filepath.Join(contentDir, "notes"), mode: mode}
}

// NewArticlesRepository returns the repository for the articles collection.
// The registry marks slugs with custom rendering components; nil means no
// article has one.
func NewArticlesRepository(contentDir string, mode Mode, registry ComponentRegistry) *Repository {
	return &Repository{dir: filepath.Join(contentDir, "articles"), mode: mode, registry: registry}
}

// GetAll returns every visible item sorted newest-first. A missing collection
// directory yields an empty slice, not an error; a schema-violating file
// fails the whole call.
func (r *Repository) GetAll() ([]Item, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Item{}, nil
		}
		return nil, fmt.Errorf("failed to read content directory %s: %w", r.dir, err)
	}

	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), contentExtension) {
			continue
		}

		slug := strings.TrimSuffix(entry.Name(), contentExtension)
		item, err := r.load(slug)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	// Stable keeps directory enumeration order for equal dates
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})

	return r.filterByStatus(items), nil
}

// GetBySlug looks up a single item by exact slug. It returns nil both for a
// missing file and, in production mode, for a DRAFT item, so drafts cannot
// be reached through guessable URLs.
func (r *Repository) GetBySlug(slug string) (*Item, error) {
	path := filepath.Join(r.dir, slug+contentExtension)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	item, err := r.load(slug)
	if err != nil {
		return nil, err
	}

	if r.mode == ModeProduction && item.Frontmatter.Status == StatusDraft {
		return nil, nil
	}

	return item, nil
}

// GetLatest returns the first n items of GetAll. n may exceed the available
// count.
func (r *Repository) GetLatest(n int) ([]Item, error) {
	items, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n], nil
}

// GetAllSlugs returns the slugs of GetAll, so that draft filtering stays
// consistent with the list path.
func (r *Repository) GetAllSlugs() ([]string, error) {
	items, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(items))
	for _, item := range items {
		slugs = append(slugs, item.Slug)
	}
	return slugs, nil
}

func (r *Repository) load(slug string) (*Item, error) {
	path := filepath.Join(r.dir, slug+contentExtension)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	fm, body, err := ParseFrontmatter(data)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}

	date, err := ParseDate(fm.Date)
	if err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}

	item := &Item{
		Slug:        slug,
		Frontmatter: fm,
		Content:     body,
		ReadingTime: ReadingTime(body),
		Date:        date,
	}
	if r.registry != nil {
		item.HasCustomComponent = r.registry.Has(slug)
	}
	return item, nil
}

func (r *Repository) filterByStatus(items []Item) []Item {
	if r.mode != ModeProduction {
		return items
	}
	visible := make([]Item, 0, len(items))
	for _, item := range items {
		if item.Frontmatter.Status == StatusPublished {
			visible = append(visible, item)
		}
	}
	return visible
}
