// Package content enumerates the documentation source files of a site.
package content

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Extensions lists the file suffixes treated as markdown pages.
var Extensions = []string{".md", ".markdown", ".mdown", ".mkdn", ".mkd"}

// Set is an in-memory set of content paths.
type Set map[string]struct{}

func NewSet(paths ...string) Set {
	s := make(Set, len(paths))
	for _, p := range paths {
		s[p] = struct{}{}
	}
	return s
}

func (s Set) Has(p string) bool {
	_, ok := s[p]
	return ok
}

// Paths returns the members in sorted order.
func (s Set) Paths() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Store is the set of markdown pages under a docs directory. Titles are read
// on demand and cached; a Store is meant for a single goroutine.
type Store struct {
	fsys   fs.FS
	set    Set
	titles map[string]string
}

// Scan walks fsys for markdown pages. Dot-files and dot-directories are
// skipped, and a README is dropped when its directory also has an index page.
func Scan(fsys fs.FS) (*Store, error) {
	set := make(Set)
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != "." && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && IsMarkdown(p) {
			set[p] = struct{}{}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning docs: %w", err)
	}

	for p := range set {
		if !isReadme(p) {
			continue
		}
		dir := path.Dir(p)
		for _, ext := range Extensions {
			if set.Has(path.Join(dir, "index"+ext)) {
				delete(set, p)
				break
			}
		}
	}
	return &Store{fsys: fsys, set: set, titles: make(map[string]string)}, nil
}

func (s *Store) Has(p string) bool {
	return s.set.Has(p)
}

func (s *Store) Paths() []string {
	return s.set.Paths()
}

func (s *Store) Len() int {
	return len(s.set)
}

// Title returns the page's front-matter title, or else the text of its first
// level-one heading.
func (s *Store) Title(p string) (string, bool) {
	if !s.set.Has(p) {
		return "", false
	}
	if t, ok := s.titles[p]; ok {
		return t, t != ""
	}
	data, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return "", false
	}
	t := ReadTitle(data)
	s.titles[p] = t
	return t, t != ""
}

// ReadTitle extracts a title from page source, or "" if it has none.
func ReadTitle(data []byte) string {
	var meta struct {
		Title string `yaml:"title" toml:"title" json:"title"`
	}
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		body = data
	}
	if t := strings.TrimSpace(meta.Title); t != "" {
		return t
	}
	return firstHeading(body)
}

func firstHeading(src []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			title = strings.TrimSpace(plainText(h, src))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

func plainText(n ast.Node, src []byte) string {
	var buf strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.WriteString(plainText(c, src))
		}
	}
	return buf.String()
}

// IsMarkdown reports whether p has a markdown suffix.
func IsMarkdown(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func isReadme(p string) bool {
	base := path.Base(p)
	return strings.EqualFold(strings.TrimSuffix(base, path.Ext(base)), "readme")
}
