package nav

import (
	"sort"
	"strings"

	"github.com/jorge-barreto/docnav/internal/config"
)

// Auto builds nav entries from content paths, for sites that declare
// no nav. Within each directory the index page comes first, then entries in
// name order; subdirectories become groups. Pages are bare paths, so their
// labels come from the content itself when resolved.
func Auto(paths []string) []config.NavEntry {
	sorted := make([]string, 0, len(paths))
	for _, p := range paths {
		sorted = append(sorted, Clean(p))
	}
	sort.Slice(sorted, func(i, j int) bool {
		return lessPath(sorted[i], sorted[j])
	})

	root := &autoDir{}
	for _, p := range sorted {
		d := root
		dirs := strings.Split(p, "/")
		for _, name := range dirs[:len(dirs)-1] {
			d = d.sub(name)
		}
		d.items = append(d.items, autoItem{path: p})
	}
	return root.entries()
}

type autoItem struct {
	path string
	dir  *autoDir
}

type autoDir struct {
	name  string
	items []autoItem
	dirs  map[string]*autoDir
}

func (d *autoDir) sub(name string) *autoDir {
	if s, ok := d.dirs[name]; ok {
		return s
	}
	if d.dirs == nil {
		d.dirs = make(map[string]*autoDir)
	}
	s := &autoDir{name: name}
	d.dirs[name] = s
	d.items = append(d.items, autoItem{dir: s})
	return s
}

func (d *autoDir) entries() []config.NavEntry {
	var out []config.NavEntry
	for _, it := range d.items {
		if it.dir == nil {
			out = append(out, config.NavEntry{Path: it.path})
			continue
		}
		label := humanize(it.dir.name)
		if label == "" {
			label = it.dir.name
		}
		out = append(out, config.NavEntry{Label: label, Children: it.dir.entries()})
	}
	return out
}

// lessPath orders paths segment by segment, putting index pages ahead of
// their siblings.
func lessPath(a, b string) bool {
	as, bs := strings.Split(a, "/"), strings.Split(b, "/")
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] == bs[i] {
			continue
		}
		aLast, bLast := i == len(as)-1, i == len(bs)-1
		aIdx, bIdx := aLast && isIndex(as[i]), bLast && isIndex(bs[i])
		if aIdx != bIdx {
			return aIdx
		}
		return strings.ToLower(as[i]) < strings.ToLower(bs[i]) ||
			(strings.EqualFold(as[i], bs[i]) && as[i] < bs[i])
	}
	return len(as) < len(bs)
}
