package config

import (
	"fmt"
	"net/url"
	"path"
	"strings"
)

const (
	DefaultDocsDir   = "docs"
	DefaultTheme     = "mkdocs"
	DefaultColor     = "indigo"
	DefaultTextFont  = "Roboto"
	DefaultCodeFont  = "Roboto Mono"
	defaultEditStyle = "edit/master/"
)

// knownHosts maps repository hosts to the repo_name and edit_uri prefix used
// when the config leaves them out.
var knownHosts = map[string]struct{ name, edit string }{
	"github.com":    {"GitHub", defaultEditStyle},
	"gitlab.com":    {"GitLab", defaultEditStyle},
	"bitbucket.org": {"Bitbucket", "src/default/"},
}

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Site.Name) == "" {
		return invalid("site_name", "is required")
	}
	if err := checkURL("site_url", cfg.Site.URL); err != nil {
		return err
	}
	if err := checkURL("repo_url", cfg.Site.Repo.URL); err != nil {
		return err
	}

	if cfg.DocsDir == "" {
		cfg.DocsDir = DefaultDocsDir
	}
	deriveRepo(&cfg.Site.Repo, cfg.DocsDir)

	t := &cfg.Theme
	if t.Name == "" {
		t.Name = DefaultTheme
	}
	if t.Palette.Primary == "" {
		t.Palette.Primary = DefaultColor
	}
	if t.Palette.Accent == "" {
		t.Palette.Accent = DefaultColor
	}
	if t.Font.Text == "" {
		t.Font.Text = DefaultTextFont
	}
	if t.Font.Code == "" {
		t.Font.Code = DefaultCodeFont
	}
	if len(t.Features) == 0 {
		t.Features = nil
	}

	for i, e := range cfg.Extensions {
		if strings.TrimSpace(e.Name) == "" {
			return invalid(fmt.Sprintf("markdown_extensions[%d]", i), "extension name must be a non-empty string")
		}
		if len(e.Params) == 0 {
			cfg.Extensions[i].Params = nil
		}
	}
	cfg.Extensions = dedupeExtensions(cfg.Extensions)

	if len(cfg.Nav) == 0 {
		cfg.Nav = nil
	}
	return validateNav(cfg.Nav, "nav")
}

func checkURL(field, raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return invalid(field, "%q is not a well-formed URL: %v", raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return invalid(field, "%q is not an absolute http(s) URL", raw)
	}
	return nil
}

func deriveRepo(r *Repository, docsDir string) {
	if r.URL == "" {
		return
	}
	u, err := url.Parse(r.URL)
	if err != nil {
		return
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	known, ok := knownHosts[host]
	if r.Name == "" {
		if ok {
			r.Name = known.name
		} else if first, _, _ := strings.Cut(host, "."); first != "" {
			r.Name = strings.ToUpper(first[:1]) + first[1:]
		}
	}
	if r.EditURI == "" && ok {
		r.EditURI = known.edit + strings.Trim(path.Clean(docsDir), "/") + "/"
	}
}

// dedupeExtensions keeps the last declaration of each extension, at the
// position of that last declaration.
func dedupeExtensions(exts Extensions) Extensions {
	if len(exts) == 0 {
		return nil
	}
	last := make(map[string]int, len(exts))
	for i, e := range exts {
		last[e.Name] = i
	}
	out := make(Extensions, 0, len(last))
	for i, e := range exts {
		if last[e.Name] == i {
			out = append(out, e)
		}
	}
	return out
}

func validateNav(entries []NavEntry, field string) error {
	for i, e := range entries {
		f := fmt.Sprintf("%s[%d]", field, i)
		switch {
		case e.IsGroup() && e.Path != "":
			return invalid(f, "entry %q has both a path and children", e.Label)
		case e.IsGroup() && e.Label == "":
			return invalid(f, "group must have a label")
		case e.IsGroup():
			if err := validateNav(e.Children, f+"."+e.Label); err != nil {
				return err
			}
		case e.Path == "":
			return invalid(f, "entry %q has neither a path nor children", e.Label)
		}
	}
	return nil
}
