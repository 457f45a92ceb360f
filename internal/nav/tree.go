package nav

import "sort"

// Tree is a resolved navigation tree. It is never modified after Resolve
// returns and is safe to share between readers.
type Tree struct {
	root   *Group
	leaves []*Leaf
	index  map[string]int
}

// Root returns the synthetic top-level group.
func (t *Tree) Root() *Group {
	return t.root
}

// Leaves returns every page in navigation order.
func (t *Tree) Leaves() []*Leaf {
	out := make([]*Leaf, len(t.leaves))
	copy(out, t.leaves)
	return out
}

func (t *Tree) LeafCount() int {
	return len(t.leaves)
}

// Lookup finds the leaf for a content path.
func (t *Tree) Lookup(p string) (*Leaf, bool) {
	i, ok := t.index[Clean(p)]
	if !ok {
		return nil, false
	}
	return t.leaves[i], true
}

// Walk visits every node below the root depth-first in declaration order.
// Top-level entries have depth 0. A non-nil error from fn stops the walk.
func (t *Tree) Walk(fn func(n Node, depth int) error) error {
	return walk(t.root, 0, fn)
}

func walk(g *Group, depth int, fn func(Node, int) error) error {
	for _, n := range g.children {
		if err := fn(n, depth); err != nil {
			return err
		}
		if sub, ok := n.(*Group); ok {
			if err := walk(sub, depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Neighbors returns the pages before and after p in reading order. Either
// may be nil.
func (t *Tree) Neighbors(p string) (prev, next *Leaf) {
	i, ok := t.index[Clean(p)]
	if !ok {
		return nil, nil
	}
	if i > 0 {
		prev = t.leaves[i-1]
	}
	if i+1 < len(t.leaves) {
		next = t.leaves[i+1]
	}
	return prev, next
}

// Breadcrumbs returns the labels of the groups enclosing p, outermost first.
func (t *Tree) Breadcrumbs(p string) []string {
	l, ok := t.Lookup(p)
	if !ok || len(l.trail) == 0 {
		return nil
	}
	out := make([]string, len(l.trail))
	copy(out, l.trail)
	return out
}

// Unlisted returns the paths that no leaf references, sorted.
func (t *Tree) Unlisted(paths []string) []string {
	var out []string
	for _, p := range paths {
		if _, ok := t.index[Clean(p)]; !ok {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}
