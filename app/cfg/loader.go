package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Content locations
	ContentDir   string `long:"content-dir" env:"CONTENT_DIR" default:"./content" description:"Directory containing notes/ and articles/ collections"`
	ProjectsFile string `long:"projects-file" env:"PROJECTS_FILE" description:"Path to projects.json (defaults to <content-dir>/projects.json)"`

	// Application configuration
	Port         string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	BaseUrl      string `long:"base-url" env:"BASE_URL" description:"Public base URL for absolute links (e.g., https://example.com)"`
	Environment  string `long:"environment" env:"APP_ENV" default:"development" description:"Runtime environment (production hides DRAFT content)"`
	ItemsPerPage int    `long:"items-per-page" env:"ITEMS_PER_PAGE" default:"10" description:"Items per page on list and tag pages"`

	// Newsletter (Plunk) configuration
	PlunkAPIKey   string `long:"plunk-api-key" env:"PLUNK_API_KEY" description:"Plunk API key (subscribe endpoint is disabled when empty)"`
	PlunkBaseUrl  string `long:"plunk-base-url" env:"PLUNK_BASE_URL" default:"https://api.useplunk.com/v1" description:"Plunk API base URL"`
	SubscribersDB string `long:"subscribers-db" env:"SUBSCRIBERS_DB" description:"SQLite database path for the subscription log (in-memory idempotency when empty)"`

	// Application metadata
	SiteTitle       string `long:"site-title" env:"SITE_TITLE" default:"Szymon Konczal" description:"Site title used in pages and feeds"`
	SiteDescription string `long:"site-description" env:"SITE_DESCRIPTION" default:"Notes, articles and projects on software and design" description:"Site description used in pages and feeds"`
	Timezone        string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, Europe/Warsaw)"`
	Debug           bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		ContentDir:      raw.ContentDir,
		ProjectsFile:    cmp.Or(raw.ProjectsFile, raw.ContentDir+"/projects.json"),
		Port:            raw.Port,
		BaseUrl:         raw.BaseUrl,
		Environment:     raw.Environment,
		ItemsPerPage:    raw.ItemsPerPage,
		PlunkAPIKey:     raw.PlunkAPIKey,
		PlunkBaseUrl:    raw.PlunkBaseUrl,
		SubscribersDB:   raw.SubscribersDB,
		SiteTitle:       raw.SiteTitle,
		SiteDescription: raw.SiteDescription,
		Timezone:        raw.Timezone,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
