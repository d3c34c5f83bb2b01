package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/skonczal/homepage/app/cfg"
	"github.com/skonczal/homepage/app/content"
)

var titleCaser = cases.Title(language.English)

// itemView is the template-facing shape of a note or article.
type itemView struct {
	Slug        string
	Title       string
	Href        string
	Date        string
	Tags        []string
	ReadingTime int
	Excerpt     string
	Kind        string
}

type paginationView struct {
	Current  int
	Total    int
	PrevHref string
	NextHref string
}

func noteView(item content.Item) itemView {
	return newItemView(item, "/note/"+item.Slug, string(content.KindNote))
}

func articleView(item content.Item) itemView {
	return newItemView(item, "/articles/"+item.Slug, string(content.KindArticle))
}

func newItemView(item content.Item, href, kind string) itemView {
	return itemView{
		Slug:        item.Slug,
		Title:       item.Frontmatter.Title,
		Href:        href,
		Date:        item.Date.Format("January 2, 2006"),
		Tags:        item.Frontmatter.Tags,
		ReadingTime: item.ReadingTime,
		Excerpt:     content.Excerpt(item.Content, content.DefaultExcerptLength),
		Kind:        kind,
	}
}

func (h *Handler) basePageData(title, description string) gin.H {
	return gin.H{
		"Site":        cfg.Get().SiteTitle,
		"Title":       title,
		"Description": description,
	}
}

// paginate slices items down to the requested page and produces pager links.
func paginate[T any](items []T, page, perPage int, basePath, extraQuery string) ([]T, paginationView) {
	if page < 1 {
		page = 1
	}
	totalPages := (len(items) + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * perPage
	if start > len(items) {
		start = len(items)
	}
	end := start + perPage
	if end > len(items) {
		end = len(items)
	}

	pager := paginationView{Current: page, Total: totalPages}
	pageHref := func(p int) string {
		href := fmt.Sprintf("%s?page=%d", basePath, p)
		if extraQuery != "" {
			href += "&" + extraQuery
		}
		return href
	}
	if page > 1 {
		pager.PrevHref = pageHref(page - 1)
	}
	if page < totalPages {
		pager.NextHref = pageHref(page + 1)
	}

	return items[start:end], pager
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (h *Handler) GetHome(c *gin.Context) {
	notes, err := h.notes.GetLatest(5)
	if err != nil {
		h.renderError(c, err)
		return
	}
	articles, err := h.articles.GetLatest(3)
	if err != nil {
		h.renderError(c, err)
		return
	}

	data := h.basePageData(cfg.Get().SiteTitle, cfg.Get().SiteDescription)
	data["Notes"] = toViews(notes, noteView)
	data["Articles"] = toViews(articles, articleView)
	c.HTML(http.StatusOK, "home.html", data)
}

func (h *Handler) GetAbout(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", h.basePageData("About", "About this site and its author."))
}

func (h *Handler) GetNotes(c *gin.Context) {
	notes, err := h.notes.GetAll()
	if err != nil {
		h.renderError(c, err)
		return
	}

	views := toViews(notes, noteView)
	pageViews, pager := paginate(views, pageParam(c), cfg.Get().ItemsPerPage, "/note", "")

	data := h.basePageData("Notes", "Short, frequent posts: quick ideas, tips, links, and learnings.")
	data["Notes"] = pageViews
	data["Pagination"] = pager
	c.HTML(http.StatusOK, "notes.html", data)
}

func (h *Handler) GetNote(c *gin.Context) {
	item, err := h.notes.GetBySlug(c.Param("slug"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	if item == nil {
		h.renderNotFound(c)
		return
	}
	h.renderItem(c, "note.html", *item, noteView(*item))
}

func (h *Handler) GetArticles(c *gin.Context) {
	articles, err := h.articles.GetAll()
	if err != nil {
		h.renderError(c, err)
		return
	}

	views := toViews(articles, articleView)
	pageViews, pager := paginate(views, pageParam(c), cfg.Get().ItemsPerPage, "/articles", "")

	data := h.basePageData("Articles", "Long-form writing on software and design.")
	data["Articles"] = pageViews
	data["Pagination"] = pager
	c.HTML(http.StatusOK, "articles.html", data)
}

func (h *Handler) GetArticle(c *gin.Context) {
	item, err := h.articles.GetBySlug(c.Param("slug"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	if item == nil {
		h.renderNotFound(c)
		return
	}
	h.renderItem(c, "article.html", *item, articleView(*item))
}

func (h *Handler) GetProjects(c *gin.Context) {
	projects, err := content.LoadProjects(h.projectsFile)
	if err != nil {
		h.renderError(c, err)
		return
	}

	data := h.basePageData("Projects", "Selected projects and experiments.")
	data["Projects"] = projects
	c.HTML(http.StatusOK, "projects.html", data)
}

func (h *Handler) GetTags(c *gin.Context) {
	tags, err := h.index.AllTags()
	if err != nil {
		h.renderError(c, err)
		return
	}

	data := h.basePageData("Tags", "Browse notes and articles by tag.")
	data["Tags"] = tags
	c.HTML(http.StatusOK, "tags.html", data)
}

func (h *Handler) GetTag(c *gin.Context) {
	tag := c.Param("tag")
	kind := c.DefaultQuery("type", "all")

	var views []itemView
	var err error
	switch kind {
	case "notes":
		var notes []content.Item
		notes, err = h.index.NotesByTag(tag)
		views = toViews(notes, noteView)
	case "articles":
		var articles []content.Item
		articles, err = h.index.ArticlesByTag(tag)
		views = toViews(articles, articleView)
	default:
		kind = "all"
		var items []content.TaggedItem
		items, err = h.index.ItemsByTag(tag)
		for _, it := range items {
			if it.Kind == content.KindNote {
				views = append(views, noteView(it.Item))
			} else {
				views = append(views, articleView(it.Item))
			}
		}
	}
	if err != nil {
		h.renderError(c, err)
		return
	}
	if len(views) == 0 {
		h.renderNotFound(c)
		return
	}

	extraQuery := ""
	if kind != "all" {
		extraQuery = "type=" + kind
	}
	pageViews, pager := paginate(views, pageParam(c), cfg.Get().ItemsPerPage, "/tags/"+tag, extraQuery)

	data := h.basePageData("Tag: "+titleCaser.String(tag), fmt.Sprintf("%d items tagged with %q.", len(views), tag))
	data["Tag"] = tag
	data["Type"] = kind
	data["Count"] = len(views)
	data["Items"] = pageViews
	data["Pagination"] = pager
	c.HTML(http.StatusOK, "tag.html", data)
}

func (h *Handler) renderItem(c *gin.Context, tmpl string, item content.Item, view itemView) {
	body, err := h.renderer.Run(item.Content)
	if err != nil {
		h.renderError(c, err)
		return
	}

	data := h.basePageData(view.Title, view.Excerpt)
	data["Item"] = view
	data["Body"] = body
	data["Draft"] = item.Frontmatter.Status == content.StatusDraft
	data["FeaturedImage"] = item.Frontmatter.FeaturedImage
	data["HasCustomComponent"] = item.HasCustomComponent
	c.HTML(http.StatusOK, tmpl, data)
}

func (h *Handler) renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", h.basePageData("Not Found", ""))
}

func (h *Handler) renderError(c *gin.Context, err error) {
	slog.Error("Page rendering failed", "path", c.Request.URL.Path, "error", err)
	c.String(http.StatusInternalServerError, "Internal Server Error")
}

func toViews(items []content.Item, view func(content.Item) itemView) []itemView {
	views := make([]itemView, 0, len(items))
	for _, item := range items {
		views = append(views, view(item))
	}
	return views
}
