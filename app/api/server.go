package api

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// NewServer creates the HTTP server with all routes configured
func NewServer(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS for the JSON endpoints used by the search overlay and the
	// newsletter form
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.html")))

	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(fmt.Sprintf("static assets missing from binary: %v", err))
	}
	r.StaticFS("/static", http.FS(staticSub))

	setupRoutes(r, handler)

	return r
}

// setupRoutes configures all the application routes
func setupRoutes(r *gin.Engine, handler *Handler) {
	// Pages
	r.GET("/", handler.GetHome)
	r.GET("/about", handler.GetAbout)
	r.GET("/note", handler.GetNotes)
	r.GET("/note/:slug", handler.GetNote)
	r.GET("/articles", handler.GetArticles)
	r.GET("/articles/:slug", handler.GetArticle)
	r.GET("/projects", handler.GetProjects)
	r.GET("/tags", handler.GetTags)
	r.GET("/tags/:tag", handler.GetTag)

	// JSON API
	r.GET("/api/search", handler.GetSearch)
	r.POST("/api/subscribe", handler.PostSubscribe)
	r.GET("/health", handler.GetHealth)

	// Syndication
	r.GET("/feed.xml", handler.GetFeed)
	r.GET("/sitemap.xml", handler.GetSitemap)

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})

	r.NoRoute(handler.renderNotFound)
}
