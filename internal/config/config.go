package config

import (
	"os"
	"strings"
)

type Repository struct {
	Name    string `yaml:"repo_name,omitempty"`
	URL     string `yaml:"repo_url,omitempty"`
	EditURI string `yaml:"edit_uri,omitempty"`
}

type SiteConfig struct {
	Name        string     `yaml:"site_name"`
	Description string     `yaml:"site_description,omitempty"`
	Author      string     `yaml:"site_author,omitempty"`
	URL         string     `yaml:"site_url,omitempty"`
	Repo        Repository `yaml:",inline"`
	Copyright   string     `yaml:"copyright,omitempty"`
}

type Palette struct {
	Primary string `yaml:"primary,omitempty"`
	Accent  string `yaml:"accent,omitempty"`
}

type Font struct {
	Text string `yaml:"text,omitempty"`
	Code string `yaml:"code,omitempty"`
}

type ThemeConfig struct {
	Name     string   `yaml:"name"`
	Logo     string   `yaml:"logo,omitempty"`
	Favicon  string   `yaml:"favicon,omitempty"`
	Palette  Palette  `yaml:"palette,omitempty"`
	Font     Font     `yaml:"font,omitempty"`
	Features []string `yaml:"features,omitempty"`
}

// Extension is one entry of markdown_extensions. Params is nil when the
// extension was listed by name only.
type Extension struct {
	Name   string
	Params map[string]any
}

// Extensions keeps declaration order, which the renderer uses as precedence.
type Extensions []Extension

// NavEntry is a navigation item as written in the document. A group has at
// least one child; a leaf has a Path. Label is empty for bare-path leaves.
type NavEntry struct {
	Label    string
	Path     string
	Children []NavEntry
}

// IsGroup reports whether the entry holds children rather than a path.
func (e NavEntry) IsGroup() bool {
	return len(e.Children) > 0
}

type Config struct {
	Site             SiteConfig  `yaml:",inline"`
	DocsDir          string      `yaml:"docs_dir"`
	UseDirectoryURLs bool        `yaml:"use_directory_urls"`
	Theme            ThemeConfig `yaml:"theme"`
	Extensions       Extensions  `yaml:"markdown_extensions,omitempty"`
	Nav              []NavEntry  `yaml:"nav,omitempty"`
}

// Load reads a YAML config file and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Extension returns the named extension, if declared.
func (c *Config) Extension(name string) (Extension, bool) {
	if i := c.ExtensionIndex(name); i >= 0 {
		return c.Extensions[i], true
	}
	return Extension{}, false
}

// ExtensionIndex returns the index of the named extension, or -1 if not found.
func (c *Config) ExtensionIndex(name string) int {
	for i, e := range c.Extensions {
		if e.Name == name {
			return i
		}
	}
	return -1
}

// EditURL returns the link to the source of page in the repository, or "" when
// no repository or edit URI is configured.
func (s SiteConfig) EditURL(page string) string {
	if s.Repo.URL == "" || s.Repo.EditURI == "" {
		return ""
	}
	base := s.Repo.URL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	uri := strings.TrimPrefix(s.Repo.EditURI, "/")
	if !strings.HasSuffix(uri, "/") {
		uri += "/"
	}
	return base + uri + strings.TrimPrefix(page, "/")
}
