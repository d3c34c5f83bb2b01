package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skonczal/homepage/app/cfg"
	"github.com/skonczal/homepage/app/newsletter"
)

const maxSubscribeBody = 1 << 20

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp":   time.Now().In(time.Local).Format(time.RFC3339),
		"version":     cfg.Get().Version,
		"environment": cfg.Get().Environment,
	}

	if notes, err := h.notes.GetAll(); err == nil {
		health["notes"] = len(notes)
	}
	if articles, err := h.articles.GetAll(); err == nil {
		health["articles"] = len(articles)
	}
	if h.subscriptions != nil {
		if count, err := h.subscriptions.Count(); err == nil {
			health["subscriptions"] = count
		}
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetSearch(c *gin.Context) {
	result, err := h.searcher.Run(c.Query("q"))
	if err != nil {
		slog.Error("Search failed", "query", c.Query("q"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search is temporarily unavailable."})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) PostSubscribe(c *gin.Context) {
	if !h.subscriber.Configured() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Newsletter signup is not configured."})
		return
	}

	var req newsletter.SubscribeRequest
	body := http.MaxBytesReader(c.Writer, c.Request.Body, maxSubscribeBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body."})
		return
	}

	err := h.subscriber.Subscribe(c.Request.Context(), req)

	var verr *newsletter.ValidationError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"ok": true})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
	case errors.Is(err, newsletter.ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not subscribe. Please try again later."})
	case errors.Is(err, newsletter.ErrNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Newsletter signup is not configured."})
	default:
		slog.Error("Subscribe failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not subscribe. Please try again later."})
	}
}

func (h *Handler) GetFeed(c *gin.Context) {
	notes, err := h.notes.GetAll()
	if err != nil {
		slog.Error("Failed to load notes for feed", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	articles, err := h.articles.GetAll()
	if err != nil {
		slog.Error("Failed to load articles for feed", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	rss, err := h.generator.Run(notes, articles)
	if err != nil {
		slog.Error("Feed generation failed", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.String(http.StatusOK, rss)
}

func (h *Handler) GetSitemap(c *gin.Context) {
	notes, err := h.notes.GetAll()
	if err != nil {
		slog.Error("Failed to load notes for sitemap", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	articles, err := h.articles.GetAll()
	if err != nil {
		slog.Error("Failed to load articles for sitemap", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}
	tags, err := h.index.AllTags()
	if err != nil {
		slog.Error("Failed to load tags for sitemap", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.String(http.StatusOK, h.sitemap.Run(notes, articles, tags))
}
