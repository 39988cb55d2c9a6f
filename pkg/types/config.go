package types

// Defaults applied when configuration leaves a setting empty.
const (
	DefaultContentDir   = "content"
	DefaultRedirectFile = "nginx_redirects.conf"
	DefaultBaseURL      = "https://example.com"
	DefaultLegacyPrefix = "/blog"
)

// MigrationConfig holds settings for one export-to-Hugo migration run.
type MigrationConfig struct {
	// ExportPath is the Movable Type export file to read.
	ExportPath string `json:"export_path" yaml:"export_path"`

	// Section names the Hugo content section (e.g. "tech"). It is used both
	// as the content subdirectory and in legacy and new URLs.
	Section string `json:"section" yaml:"section"`

	// OutputHint is the third positional argument. It is accepted for
	// compatibility but not used to build output paths.
	OutputHint string `json:"output_hint,omitempty" yaml:"output_hint,omitempty"`

	// ContentDir is the Hugo content root (default "content"). Posts are
	// written under ContentDir/Section.
	ContentDir string `json:"content_dir" yaml:"content_dir"`

	// RedirectFile is the nginx rules output path (default "nginx_redirects.conf").
	RedirectFile string `json:"redirect_file" yaml:"redirect_file"`

	// BaseURL is the scheme and host of the new site (default "https://example.com").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// LegacyPrefix is the path prefix of the old blog URLs (default "/blog").
	LegacyPrefix string `json:"legacy_prefix" yaml:"legacy_prefix"`
}

// WithDefaults returns a copy of c with empty settings filled in.
func (c MigrationConfig) WithDefaults() MigrationConfig {
	if c.ContentDir == "" {
		c.ContentDir = DefaultContentDir
	}
	if c.RedirectFile == "" {
		c.RedirectFile = DefaultRedirectFile
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.LegacyPrefix == "" {
		c.LegacyPrefix = DefaultLegacyPrefix
	}
	return c
}
