package cfg

type Cfg struct {
	// Content locations
	ContentDir   string
	ProjectsFile string

	// Application configuration
	Port         string
	BaseUrl      string
	Environment  string
	ItemsPerPage int

	// Newsletter (Plunk) configuration
	PlunkAPIKey   string
	PlunkBaseUrl  string
	SubscribersDB string

	// Application metadata
	SiteTitle       string
	SiteDescription string
	Timezone        string
	Debug           bool
	Version         string
}

// IsProduction reports whether DRAFT content must be suppressed.
func (c *Cfg) IsProduction() bool {
	return c.Environment == "production"
}
