package content

import (
	"sort"
	"strings"
)

// ItemKind distinguishes the source collection in combined tag views.
type ItemKind string

const (
	KindNote    ItemKind = "note"
	KindArticle ItemKind = "article"
)

// TaggedItem is one entry of a combined tag page.
type TaggedItem struct {
	Kind ItemKind
	Item Item
}

// Index answers tag queries across the notes and articles collections.
type Index struct {
	notes    *Repository
	articles *Repository
}

func NewIndex(notes, articles *Repository) *Index {
	return &Index{notes: notes, articles: articles}
}

// AllTags returns every tag across both collections. Tags are deduplicated
// case-insensitively keeping the first-seen casing, and sorted
// case-insensitively, matching the case-insensitive tag matching used
// everywhere else.
func (ix *Index) AllTags() ([]string, error) {
	notes, err := ix.notes.GetAll()
	if err != nil {
		return nil, err
	}
	articles, err := ix.articles.GetAll()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]string)
	for _, item := range append(notes, articles...) {
		for _, tag := range item.Frontmatter.Tags {
			key := strings.ToLower(tag)
			if _, ok := seen[key]; !ok {
				seen[key] = tag
			}
		}
	}

	tags := make([]string, 0, len(seen))
	for _, tag := range seen {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		a, b := strings.ToLower(tags[i]), strings.ToLower(tags[j])
		if a != b {
			return a < b
		}
		return tags[i] < tags[j]
	})
	return tags, nil
}

// NotesByTag returns notes carrying the tag, case-insensitively. A tag with
// no matches yields an empty slice, not an error.
func (ix *Index) NotesByTag(tag string) ([]Item, error) {
	notes, err := ix.notes.GetAll()
	if err != nil {
		return nil, err
	}
	return filterByTag(notes, tag), nil
}

// ArticlesByTag returns articles carrying the tag, case-insensitively.
func (ix *Index) ArticlesByTag(tag string) ([]Item, error) {
	articles, err := ix.articles.GetAll()
	if err != nil {
		return nil, err
	}
	return filterByTag(articles, tag), nil
}

// ItemsByTag merges both collections' matches and re-sorts by date
// descending, independent of the per-collection ordering.
func (ix *Index) ItemsByTag(tag string) ([]TaggedItem, error) {
	notes, err := ix.NotesByTag(tag)
	if err != nil {
		return nil, err
	}
	articles, err := ix.ArticlesByTag(tag)
	if err != nil {
		return nil, err
	}

	items := make([]TaggedItem, 0, len(notes)+len(articles))
	for _, n := range notes {
		items = append(items, TaggedItem{Kind: KindNote, Item: n})
	}
	for _, a := range articles {
		items = append(items, TaggedItem{Kind: KindArticle, Item: a})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Item.Date.After(items[j].Item.Date)
	})
	return items, nil
}

func filterByTag(items []Item, tag string) []Item {
	matched := make([]Item, 0, len(items))
	for _, item := range items {
		for _, t := range item.Frontmatter.Tags {
			if strings.EqualFold(t, tag) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}
