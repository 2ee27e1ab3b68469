package types

// Engine identifies the Markdown rendering backend.
type Engine string

const (
	// EngineNative uses the built-in restricted dialect converter.
	EngineNative Engine = "native"
	// EngineGoldmark uses the goldmark CommonMark renderer.
	EngineGoldmark Engine = "goldmark"
)

// SiteConfig holds settings for a site build.
type SiteConfig struct {
	// ContentDir is the root of the Markdown sources (default "content").
	ContentDir string `json:"content_dir" yaml:"content_dir" mapstructure:"content_dir"`

	// StaticDir holds assets copied verbatim into PublicDir (default "static").
	StaticDir string `json:"static_dir" yaml:"static_dir" mapstructure:"static_dir"`

	// PublicDir receives the generated site (default "public").
	PublicDir string `json:"public_dir" yaml:"public_dir" mapstructure:"public_dir"`

	// TemplatePath is the HTML template containing {{ Title }} and {{ Content }}.
	TemplatePath string `json:"template" yaml:"template" mapstructure:"template"`

	// Engine selects the Markdown backend: native or goldmark.
	Engine Engine `json:"engine" yaml:"engine" mapstructure:"engine"`

	// Clean removes PublicDir before building. When false, pages whose
	// source and template are unchanged since the last build are skipped.
	Clean bool `json:"clean" yaml:"clean" mapstructure:"clean"`

	// StateDir holds the build manifest database (default ".site-engine").
	StateDir string `json:"state_dir" yaml:"state_dir" mapstructure:"state_dir"`
}

// DefaultSiteConfig returns the configuration used when nothing is set.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		ContentDir:   "content",
		StaticDir:    "static",
		PublicDir:    "public",
		TemplatePath: "template.html",
		Engine:       EngineNative,
		Clean:        true,
		StateDir:     ".site-engine",
	}
}
