package ux

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/jorge-barreto/docnav/internal/nav"
)

var (
	treeRootStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
	treeGroupStyle = lipgloss.NewStyle().Bold(true)
	treePathStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	treeEnumStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingRight(1)
)

// NavTree renders a resolved nav as an indented tree under title. Leaves
// show their label followed by the page path.
func NavTree(title string, root *nav.Group) string {
	t := tree.Root(treeRootStyle.Render(title)).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(treeEnumStyle)
	addNavChildren(t, root)
	return t.String()
}

func addNavChildren(t *tree.Tree, g *nav.Group) {
	for _, n := range g.Children() {
		switch n := n.(type) {
		case *nav.Leaf:
			t.Child(n.Label() + " " + treePathStyle.Render(n.Path()))
		case *nav.Group:
			sub := tree.Root(treeGroupStyle.Render(n.Label())).
				Enumerator(tree.RoundedEnumerator).
				EnumeratorStyle(treeEnumStyle)
			addNavChildren(sub, n)
			t.Child(sub)
		}
	}
}

// PageCount formats the footer printed under a nav tree.
func PageCount(n int) string {
	return strconv.Itoa(n) + " " + plural(n, "page")
}
