// Package nav resolves a site's declared navigation into an immutable tree of
// pages and sections, checked against the set of content files.
package nav

// ContentSet answers whether a content file exists. Paths are slash
// separated and relative to the docs directory.
type ContentSet interface {
	Has(path string) bool
}

// Titler is implemented by content sets that can read a page's own title.
// It labels navigation entries declared as a bare path.
type Titler interface {
	Title(path string) (string, bool)
}

// Node is either a *Leaf or a *Group.
type Node interface {
	Label() string
	isNode()
}

// Leaf points at one content file.
type Leaf struct {
	label string
	path  string
	trail []string
}

func (l *Leaf) Label() string { return l.label }

// Path is the cleaned content path.
func (l *Leaf) Path() string { return l.path }

func (*Leaf) isNode() {}

// Group holds an ordered sequence of children.
type Group struct {
	label    string
	children []Node
}

func (g *Group) Label() string { return g.label }

// Children returns a copy of the group's children in declaration order.
func (g *Group) Children() []Node {
	out := make([]Node, len(g.children))
	copy(out, g.children)
	return out
}

func (g *Group) Len() int { return len(g.children) }

func (g *Group) Child(i int) Node { return g.children[i] }

func (*Group) isNode() {}
