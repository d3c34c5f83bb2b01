package search

import (
	"strings"

	"github.com/skonczal/homepage/app/content"
)

// aboutSearchable is the static searchable text of the About page.
const aboutSearchable = "About developer writer creator homepage notes articles projects web development design"

type Service struct {
	notes        *content.Repository
	articles     *content.Repository
	index        *content.Index
	projectsFile string
}

func NewService(notes, articles *content.Repository, index *content.Index, projectsFile string) *Service {
	return &Service{
		notes:        notes,
		articles:     articles,
		index:        index,
		projectsFile: projectsFile,
	}
}

// Matches reports whether every whitespace-separated term of query is a
// substring of text, case-insensitively. A blank query matches nothing.
func Matches(text, query string) bool {
	if strings.TrimSpace(query) == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, term := range strings.Fields(strings.ToLower(query)) {
		if !strings.Contains(lower, term) {
			return false
		}
	}
	return true
}

// Run matches a free-text query against all collections. There is no
// ranking, stemming or fuzziness; each field is checked independently with
// the all-terms substring rule.
func (s *Service) Run(query string) (Result, error) {
	query = strings.TrimSpace(query)
	result := EmptyResult()
	if query == "" {
		return result, nil
	}

	notes, err := s.notes.GetAll()
	if err != nil {
		return result, err
	}
	for _, n := range notes {
		if matchesItem(n, query) {
			result.Notes = append(result.Notes, ItemRef{
				Slug:  n.Slug,
				Title: n.Frontmatter.Title,
				Tags:  n.Frontmatter.Tags,
				Href:  "/note/" + n.Slug,
			})
		}
	}

	articles, err := s.articles.GetAll()
	if err != nil {
		return result, err
	}
	for _, a := range articles {
		if matchesItem(a, query) {
			result.Articles = append(result.Articles, ItemRef{
				Slug:  a.Slug,
				Title: a.Frontmatter.Title,
				Tags:  a.Frontmatter.Tags,
				Href:  "/articles/" + a.Slug,
			})
		}
	}

	tags, err := s.index.AllTags()
	if err != nil {
		return result, err
	}
	for _, tag := range tags {
		if Matches(tag, query) {
			result.Tags = append(result.Tags, tag)
		}
	}

	if Matches("About "+aboutSearchable, query) {
		result.About = &AboutRef{Title: "About", Href: "/about"}
	}

	projects, err := content.LoadProjects(s.projectsFile)
	if err != nil {
		return result, err
	}
	for _, p := range projects {
		if matchesProject(p, query) {
			result.Projects = append(result.Projects, ProjectRef{Title: p.Title, Href: "/projects"})
		}
	}

	return result, nil
}

// Tags are checked individually, not concatenated: a multi-term query must
// fit entirely within the title or within one tag.
func matchesItem(item content.Item, query string) bool {
	if Matches(item.Frontmatter.Title, query) {
		return true
	}
	for _, tag := range item.Frontmatter.Tags {
		if Matches(tag, query) {
			return true
		}
	}
	return false
}

func matchesProject(p content.Project, query string) bool {
	if Matches(p.Title, query) || Matches(p.Description, query) {
		return true
	}
	for _, tag := range p.Tags {
		if Matches(tag, query) {
			return true
		}
	}
	return false
}
