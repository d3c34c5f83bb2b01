package feed

import (
	"bytes"
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"github.com/skonczal/homepage/app/cfg"
	"github.com/skonczal/homepage/app/content"
	"github.com/skonczal/homepage/app/render"
)

const descriptionLength = 300

// Generator produces the site-wide RSS 2.0 feed over notes and articles.
type Generator struct {
	renderer *render.Renderer
}

func NewGenerator(renderer *render.Renderer) *Generator {
	return &Generator{renderer: renderer}
}

type feedEntry struct {
	item content.Item
	path string
}

func (g *Generator) Run(notes, articles []content.Item) (string, error) {
	c := cfg.Get()

	entries := make([]feedEntry, 0, len(notes)+len(articles))
	for _, n := range notes {
		entries = append(entries, feedEntry{item: n, path: "/note/" + n.Slug})
	}
	for _, a := range articles {
		entries = append(entries, feedEntry{item: a, path: "/articles/" + a.Slug})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].item.Date.After(entries[j].item.Date)
	})

	var buf bytes.Buffer

	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/" xmlns:atom="http://www.w3.org/2005/Atom">`)
	buf.WriteString("\n  <channel>\n")

	g.writeElement(&buf, "title", c.SiteTitle, 4)
	g.writeElement(&buf, "link", AbsoluteURL("/"), 4)
	g.writeElement(&buf, "description", c.SiteDescription, 4)
	buf.WriteString(fmt.Sprintf("    <atom:link href=\"%s\" rel=\"self\" type=\"application/rss+xml\" />\n",
		html.EscapeString(AbsoluteURL("/feed.xml"))))

	lastBuildDate := time.Now().In(time.Local)
	if len(entries) > 0 {
		lastBuildDate = entries[0].item.Date
	}
	g.writeElement(&buf, "lastBuildDate", lastBuildDate.Format(time.RFC1123Z), 4)
	g.writeElement(&buf, "generator", fmt.Sprintf("homepage/%s", c.Version), 4)

	for _, entry := range entries {
		if err := g.writeItem(&buf, entry); err != nil {
			return "", err
		}
	}

	buf.WriteString("  </channel>\n</rss>")

	return buf.String(), nil
}

func (g *Generator) writeItem(buf *bytes.Buffer, entry feedEntry) error {
	link := AbsoluteURL(entry.path)

	buf.WriteString("    <item>\n")
	g.writeElement(buf, "title", entry.item.Frontmatter.Title, 6)
	g.writeElement(buf, "link", link, 6)
	buf.WriteString(fmt.Sprintf("      <guid isPermaLink=\"true\">%s</guid>\n", html.EscapeString(link)))
	g.writeElement(buf, "pubDate", entry.item.Date.Format(time.RFC1123Z), 6)

	if excerpt := content.Excerpt(entry.item.Content, descriptionLength); excerpt != "" {
		g.writeElement(buf, "description", excerpt, 6)
	}

	rendered, err := g.renderer.Run(entry.item.Content)
	if err != nil {
		return fmt.Errorf("failed to render feed item %s: %w", entry.item.Slug, err)
	}
	buf.WriteString("      <content:encoded><![CDATA[")
	buf.WriteString(string(rendered))
	buf.WriteString("]]></content:encoded>\n")

	for _, tag := range entry.item.Frontmatter.Tags {
		g.writeElement(buf, "category", tag, 6)
	}

	buf.WriteString("    </item>\n")
	return nil
}

func (g *Generator) writeElement(buf *bytes.Buffer, name, value string, indent int) {
	if value == "" {
		return
	}
	buf.WriteString(fmt.Sprintf("%s<%s>%s</%s>\n",
		strings.Repeat(" ", indent), name, html.EscapeString(value), name))
}

// AbsoluteURL builds an absolute link from a site path using the configured
// base URL, falling back to localhost for local runs.
func AbsoluteURL(path string) string {
	c := cfg.Get()
	base := strings.TrimSuffix(c.BaseUrl, "/")
	if base == "" {
		base = "http://localhost:" + c.Port
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
