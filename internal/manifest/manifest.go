// Package manifest turns a loaded configuration and its resolved navigation
// into the read-only document handed to the site renderer.
package manifest

import (
	"encoding/json"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jorge-barreto/docnav/internal/atomicfile"
	"github.com/jorge-barreto/docnav/internal/config"
	"github.com/jorge-barreto/docnav/internal/nav"
)

type Site struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	URL         string `json:"url,omitempty"`
	RepoName    string `json:"repo_name,omitempty"`
	RepoURL     string `json:"repo_url,omitempty"`
	EditURI     string `json:"edit_uri,omitempty"`
	Copyright   string `json:"copyright,omitempty"`
}

type Theme struct {
	Name     string   `json:"name"`
	Logo     string   `json:"logo,omitempty"`
	Favicon  string   `json:"favicon,omitempty"`
	Primary  string   `json:"primary"`
	Accent   string   `json:"accent"`
	TextFont string   `json:"text_font"`
	CodeFont string   `json:"code_font"`
	Features []string `json:"features,omitempty"`
}

type Extension struct {
	Name   string         `json:"name"`
	Params map[string]any `json:"params,omitempty"`
}

// Item is one navigation entry. Sections have Children and no Path.
type Item struct {
	Title    string `json:"title"`
	Path     string `json:"path,omitempty"`
	URL      string `json:"url,omitempty"`
	Children []Item `json:"children,omitempty"`
}

type Page struct {
	Path         string   `json:"path"`
	Title        string   `json:"title"`
	URL          string   `json:"url"`
	CanonicalURL string   `json:"canonical_url,omitempty"`
	EditURL      string   `json:"edit_url,omitempty"`
	Previous     string   `json:"previous,omitempty"`
	Next         string   `json:"next,omitempty"`
	Breadcrumbs  []string `json:"breadcrumbs,omitempty"`
}

type Manifest struct {
	BuildID    string      `json:"build_id"`
	Generated  time.Time   `json:"generated"`
	Site       Site        `json:"site"`
	Theme      Theme       `json:"theme"`
	Extensions []Extension `json:"markdown_extensions"`
	Nav        []Item      `json:"nav"`
	Pages      []Page      `json:"pages"`
}

// Build assembles the manifest for cfg and its resolved tree.
func Build(cfg *config.Config, tree *nav.Tree) *Manifest {
	s := cfg.Site
	m := &Manifest{
		BuildID:   uuid.NewString(),
		Generated: time.Now().UTC(),
		Site: Site{
			Name:        s.Name,
			Description: s.Description,
			Author:      s.Author,
			URL:         s.URL,
			RepoName:    s.Repo.Name,
			RepoURL:     s.Repo.URL,
			EditURI:     s.Repo.EditURI,
			Copyright:   s.Copyright,
		},
		Theme: Theme{
			Name:     cfg.Theme.Name,
			Logo:     cfg.Theme.Logo,
			Favicon:  cfg.Theme.Favicon,
			Primary:  cfg.Theme.Palette.Primary,
			Accent:   cfg.Theme.Palette.Accent,
			TextFont: cfg.Theme.Font.Text,
			CodeFont: cfg.Theme.Font.Code,
			Features: cfg.Theme.Features,
		},
		Extensions: make([]Extension, 0, len(cfg.Extensions)),
		Pages:      make([]Page, 0, tree.LeafCount()),
	}
	for _, e := range cfg.Extensions {
		m.Extensions = append(m.Extensions, Extension{Name: e.Name, Params: e.Params})
	}

	urlFor := func(p string) string { return PageURL(p, cfg.UseDirectoryURLs) }
	m.Nav = items(tree.Root(), urlFor)
	if m.Nav == nil {
		m.Nav = []Item{}
	}

	for _, l := range tree.Leaves() {
		pg := Page{
			Path:        l.Path(),
			Title:       l.Label(),
			URL:         urlFor(l.Path()),
			EditURL:     s.EditURL(l.Path()),
			Breadcrumbs: tree.Breadcrumbs(l.Path()),
		}
		if s.URL != "" {
			pg.CanonicalURL = strings.TrimSuffix(s.URL, "/") + "/" + strings.TrimPrefix(pg.URL, "./")
		}
		prev, next := tree.Neighbors(l.Path())
		if prev != nil {
			pg.Previous = urlFor(prev.Path())
		}
		if next != nil {
			pg.Next = urlFor(next.Path())
		}
		m.Pages = append(m.Pages, pg)
	}
	return m
}

func items(g *nav.Group, urlFor func(string) string) []Item {
	var out []Item
	for _, n := range g.Children() {
		switch n := n.(type) {
		case *nav.Leaf:
			out = append(out, Item{Title: n.Label(), Path: n.Path(), URL: urlFor(n.Path())})
		case *nav.Group:
			out = append(out, Item{Title: n.Label(), Children: items(n, urlFor)})
		}
	}
	return out
}

// PageURL returns the site-relative URL of a content page. With directory
// URLs, "guide/install.md" becomes "guide/install/" and index pages map to
// their directory ("./" at the top); otherwise the page becomes an .html file.
func PageURL(p string, directoryURLs bool) string {
	p = nav.Clean(p)
	dir, base := path.Split(p)
	stem := strings.TrimSuffix(base, path.Ext(base))
	isIndex := strings.EqualFold(stem, "index") || strings.EqualFold(stem, "readme")

	switch {
	case isIndex && directoryURLs && dir == "":
		return "./"
	case isIndex && directoryURLs:
		return dir
	case isIndex:
		return dir + "index.html"
	case directoryURLs:
		return dir + stem + "/"
	default:
		return dir + stem + ".html"
	}
}

// Encode writes the manifest as indented JSON.
func (m *Manifest) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

// Write stores the manifest at file atomically.
func (m *Manifest) Write(file string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return atomicfile.Write(file, append(data, '\n'), 0644)
}
