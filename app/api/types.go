package api

import (
	"github.com/skonczal/homepage/app/content"
	"github.com/skonczal/homepage/app/feed"
	"github.com/skonczal/homepage/app/newsletter"
	"github.com/skonczal/homepage/app/render"
	"github.com/skonczal/homepage/app/search"
)

// SubscriptionCounter exposes the subscription log size for the health
// endpoint; nil when no durable store is configured.
type SubscriptionCounter interface {
	Count() (int, error)
}

type Handler struct {
	notes         *content.Repository
	articles      *content.Repository
	index         *content.Index
	projectsFile  string
	searcher      *search.Service
	subscriber    *newsletter.Service
	renderer      *render.Renderer
	generator     *feed.Generator
	sitemap       *feed.Sitemap
	subscriptions SubscriptionCounter
}

func NewHandler(notes, articles *content.Repository, index *content.Index,
	projectsFile string, searcher *search.Service, subscriber *newsletter.Service,
	renderer *render.Renderer, generator *feed.Generator, sitemap *feed.Sitemap,
	subscriptions SubscriptionCounter) *Handler {
	return &Handler{
		notes:         notes,
		articles:      articles,
		index:         index,
		projectsFile:  projectsFile,
		searcher:      searcher,
		subscriber:    subscriber,
		renderer:      renderer,
		generator:     generator,
		sitemap:       sitemap,
		subscriptions: subscriptions,
	}
}
