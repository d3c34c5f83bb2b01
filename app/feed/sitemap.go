package feed

import (
	"bytes"
	"fmt"
	"html"
	"net/url"
	"time"

	"github.com/skonczal/homepage/app/content"
)

// Sitemap produces sitemap.xml over the static pages, both content
// collections and the tag pages.
type Sitemap struct{}

func NewSitemap() *Sitemap {
	return &Sitemap{}
}

type sitemapEntry struct {
	path       string
	lastMod    time.Time
	changeFreq string
	priority   string
}

func (s *Sitemap) Run(notes, articles []content.Item, tags []string) string {
	now := time.Now()

	entries := []sitemapEntry{
		{path: "/", lastMod: now, changeFreq: "weekly", priority: "1.0"},
		{path: "/about", lastMod: now, changeFreq: "monthly", priority: "0.8"},
		{path: "/articles", lastMod: now, changeFreq: "weekly", priority: "0.9"},
		{path: "/note", lastMod: now, changeFreq: "weekly", priority: "0.9"},
		{path: "/projects", lastMod: now, changeFreq: "monthly", priority: "0.8"},
		{path: "/tags", lastMod: now, changeFreq: "weekly", priority: "0.8"},
	}

	for _, a := range articles {
		entries = append(entries, sitemapEntry{
			path: "/articles/" + a.Slug, lastMod: a.Date, changeFreq: "monthly", priority: "0.7",
		})
	}
	for _, n := range notes {
		entries = append(entries, sitemapEntry{
			path: "/note/" + n.Slug, lastMod: n.Date, changeFreq: "weekly", priority: "0.6",
		})
	}
	for _, tag := range tags {
		entries = append(entries, sitemapEntry{
			path: "/tags/" + url.PathEscape(tag), lastMod: now, changeFreq: "weekly", priority: "0.5",
		})
	}

	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	buf.WriteString("\n")
	buf.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	buf.WriteString("\n")

	for _, entry := range entries {
		buf.WriteString("  <url>\n")
		buf.WriteString(fmt.Sprintf("    <loc>%s</loc>\n", html.EscapeString(AbsoluteURL(entry.path))))
		buf.WriteString(fmt.Sprintf("    <lastmod>%s</lastmod>\n", entry.lastMod.Format("2006-01-02")))
		buf.WriteString(fmt.Sprintf("    <changefreq>%s</changefreq>\n", entry.changeFreq))
		buf.WriteString(fmt.Sprintf("    <priority>%s</priority>\n", entry.priority))
		buf.WriteString("  </url>\n")
	}

	buf.WriteString("</urlset>")
	return buf.String()
}
