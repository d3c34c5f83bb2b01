package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/skonczal/homepage/app/api"
	"github.com/skonczal/homepage/app/cfg"
	"github.com/skonczal/homepage/app/content"
	"github.com/skonczal/homepage/app/database"
	"github.com/skonczal/homepage/app/feed"
	"github.com/skonczal/homepage/app/newsletter"
	"github.com/skonczal/homepage/app/render"
	"github.com/skonczal/homepage/app/search"
)

func main() {
	// .env is optional, real deployments set the environment directly
	godotenv.Load()

	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	slog.Info("Starting homepage server", "version", appCfg.Version, "environment", appCfg.Environment)

	mode := content.ModeDevelopment
	if appCfg.IsProduction() {
		mode = content.ModeProduction
	}

	// Article slugs with interactive components rendered by the frontend are
	// registered here; the server falls back to plain markdown for them.
	registry := content.NewStaticRegistry()

	notes := content.NewNotesRepository(appCfg.ContentDir, mode)
	articles := content.NewArticlesRepository(appCfg.ContentDir, mode, registry)
	index := content.NewIndex(notes, articles)
	searcher := search.NewService(notes, articles, index, appCfg.ProjectsFile)

	// The recent-subscribe window lives in memory by default; configuring
	// SUBSCRIBERS_DB upgrades it to a durable sqlite-backed log that survives
	// restarts and feeds the health endpoint.
	var recent newsletter.RecentStore
	var subscriptionLog newsletter.SubscriptionLog
	var counter api.SubscriptionCounter

	if appCfg.SubscribersDB != "" {
		slog.Info("Opening subscribers database", "path", appCfg.SubscribersDB)
		db, err := database.NewConnection(appCfg.SubscribersDB)
		if err != nil {
			slog.Error("Failed to open subscribers database", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		version, dirty, err := database.RunMigrations(db)
		if err != nil {
			slog.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Subscribers database ready", "version", version, "dirty", dirty)

		repo := database.NewSubscriptionRepository(db, newsletter.RecentWindow)
		recent = repo
		subscriptionLog = repo
		counter = repo
	} else {
		recent = newsletter.NewMemoryRecentStore(newsletter.RecentWindow)
	}

	subscriber := newsletter.NewService(appCfg.PlunkBaseUrl, appCfg.PlunkAPIKey,
		"homepage", recent, subscriptionLog)
	if !subscriber.Configured() {
		slog.Warn("PLUNK_API_KEY not set, newsletter signup disabled")
	}

	renderer := render.NewRenderer()
	generator := feed.NewGenerator(renderer)
	sitemap := feed.NewSitemap()

	handler := api.NewHandler(notes, articles, index, appCfg.ProjectsFile,
		searcher, subscriber, renderer, generator, sitemap, counter)
	server := api.NewServer(handler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	slog.Info("Shutdown complete")
}
