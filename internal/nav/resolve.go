package nav

import (
	"fmt"
	"path"
	"strings"

	"github.com/jorge-barreto/docnav/internal/config"
)

type resolver struct {
	files  ContentSet
	seen   map[string]string
	leaves []*Leaf
}

// Resolve builds the navigation tree for entries. Entries are visited in
// document order; the first duplicate or dangling path aborts resolution and
// no tree is returned. An entry with neither a path nor children fails with
// *config.InvalidFieldError. The root is an unlabeled group holding the
// top-level entries.
func Resolve(entries []config.NavEntry, files ContentSet) (*Tree, error) {
	if files == nil {
		files = emptySet{}
	}
	r := &resolver{files: files, seen: make(map[string]string)}
	children, err := r.group(entries, nil, "nav")
	if err != nil {
		return nil, err
	}

	t := &Tree{
		root:   &Group{children: children},
		leaves: r.leaves,
		index:  make(map[string]int, len(r.leaves)),
	}
	for i, l := range r.leaves {
		t.index[l.path] = i
	}
	return t, nil
}

func (r *resolver) group(entries []config.NavEntry, trail []string, field string) ([]Node, error) {
	nodes := make([]Node, 0, len(entries))
	for i, e := range entries {
		at := fmt.Sprintf("%s[%d]", field, i)
		if !e.IsGroup() {
			if e.Path == "" {
				return nil, &config.InvalidFieldError{Field: at, Reason: "entry has neither a path nor children"}
			}
			l, err := r.leaf(e, trail)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, l)
			continue
		}

		sub := append(trail[:len(trail):len(trail)], e.Label)
		children, err := r.group(e.Children, sub, at+"."+e.Label)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, &Group{label: e.Label, children: children})
	}
	return nodes, nil
}

func (r *resolver) leaf(e config.NavEntry, trail []string) (*Leaf, error) {
	p := Clean(e.Path)
	shown := e.Label
	if shown == "" {
		shown = p
	}
	if first, ok := r.seen[p]; ok {
		return nil, &DuplicatePathError{Path: p, First: first, Second: shown}
	}
	if !r.files.Has(p) {
		return nil, &DanglingReferenceError{Path: p, Label: e.Label}
	}
	r.seen[p] = shown

	label := e.Label
	if label == "" {
		label = r.title(p)
	}
	l := &Leaf{label: label, path: p, trail: trail}
	r.leaves = append(r.leaves, l)
	return l, nil
}

func (r *resolver) title(p string) string {
	if t, ok := r.files.(Titler); ok {
		if title, ok := t.Title(p); ok && title != "" {
			return title
		}
	}
	return LabelFromPath(p)
}

// Clean normalizes a content path: forward slashes, no "." or ".."
// segments where they can be folded, no leading slash.
func Clean(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean(p)
	return strings.TrimPrefix(p, "/")
}

type emptySet struct{}

func (emptySet) Has(string) bool { return false }
