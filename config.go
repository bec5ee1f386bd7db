package docmirror

import (
	"path/filepath"
	"time"
)

// Default configuration values.
const (
	DefaultRoot       = "docs"
	DefaultSources    = "sources.txt"
	DefaultPagesDir   = "pages"
	DefaultChangesDir = "changes"
	DefaultIndexFile  = "index.md"
	DefaultIndexTitle = "Índice"
	DefaultUserAgent  = "Mozilla/5.0 (compatible; DocMirror/1.0)"
	DefaultTimeout    = 45 * time.Second
	DefaultDelay      = 1 * time.Second
)

// Config describes where the archive lives and how pages are fetched.
// Relative paths resolve against Root.
type Config struct {
	Root        string `yaml:"root"`
	SourcesFile string `yaml:"sources"`
	PagesDir    string `yaml:"pages"`
	ChangesDir  string `yaml:"changes"`
	IndexFile   string `yaml:"index"`
	IndexTitle  string `yaml:"index_title"`

	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
	Delay     time.Duration `yaml:"delay"`

	// RespectRobots gates every fetch on the target site's robots.txt,
	// skipping the URL when the rules disallow it or cannot be read.
	RespectRobots bool `yaml:"respect_robots"`

	// StripNoscript drops <noscript> content along with the other boilerplate.
	StripNoscript bool `yaml:"strip_noscript"`

	// Markdown renders page bodies as Markdown instead of flattened text.
	Markdown bool `yaml:"markdown"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Root:          DefaultRoot,
		SourcesFile:   DefaultSources,
		PagesDir:      DefaultPagesDir,
		ChangesDir:    DefaultChangesDir,
		IndexFile:     DefaultIndexFile,
		IndexTitle:    DefaultIndexTitle,
		UserAgent:     DefaultUserAgent,
		Timeout:       DefaultTimeout,
		Delay:         DefaultDelay,
		StripNoscript: true,
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	switch {
	case c.Root == "":
		return Errorf(EINVALID, "archive root required")
	case c.SourcesFile == "":
		return Errorf(EINVALID, "sources file required")
	case c.PagesDir == "":
		return Errorf(EINVALID, "pages directory required")
	case c.ChangesDir == "":
		return Errorf(EINVALID, "changes directory required")
	case c.IndexFile == "":
		return Errorf(EINVALID, "index file required")
	case filepath.IsAbs(c.PagesDir), filepath.IsAbs(c.ChangesDir), filepath.IsAbs(c.IndexFile):
		return Errorf(EINVALID, "archive paths must be relative to the archive root")
	case c.Timeout <= 0:
		return Errorf(EINVALID, "timeout must be positive")
	case c.Delay < 0:
		return Errorf(EINVALID, "delay must not be negative")
	}
	return nil
}

// SourcesPath returns the location of the URL list.
func (c *Config) SourcesPath() string {
	if filepath.IsAbs(c.SourcesFile) {
		return c.SourcesFile
	}
	return filepath.Join(c.Root, c.SourcesFile)
}

// PagesPath returns the directory holding page files.
func (c *Config) PagesPath() string {
	return filepath.Join(c.Root, c.PagesDir)
}

// ChangesPath returns the directory holding changelog files.
func (c *Config) ChangesPath() string {
	return filepath.Join(c.Root, c.ChangesDir)
}

// IndexPath returns the location of the index document.
func (c *Config) IndexPath() string {
	return filepath.Join(c.Root, c.IndexFile)
}
