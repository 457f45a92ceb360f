package nav

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge-barreto/docnav/internal/config"
)

type fileSet map[string]bool

func (s fileSet) Has(p string) bool { return s[p] }

func setOf(paths ...string) fileSet {
	s := make(fileSet, len(paths))
	for _, p := range paths {
		s[p] = true
	}
	return s
}

type titledSet struct {
	fileSet
	titles map[string]string
}

func (s titledSet) Title(p string) (string, bool) {
	t, ok := s.titles[p]
	return t, ok
}

func leaf(label, path string) config.NavEntry {
	return config.NavEntry{Label: label, Path: path}
}

func group(label string, children ...config.NavEntry) config.NavEntry {
	return config.NavEntry{Label: label, Children: children}
}

func introSpec() []config.NavEntry {
	return []config.NavEntry{
		group("Intro",
			leaf("Getting started", "index.md"),
			leaf("FAQ", "faq.md"),
		),
	}
}

func TestResolve_IntroScenario(t *testing.T) {
	tree, err := Resolve(introSpec(), setOf("index.md", "faq.md"))
	require.NoError(t, err)

	root := tree.Root()
	assert.Equal(t, "", root.Label())
	require.Equal(t, 1, root.Len())

	intro, ok := root.Child(0).(*Group)
	require.True(t, ok, "first child should be a group")
	assert.Equal(t, "Intro", intro.Label())
	require.Equal(t, 2, intro.Len())

	first := intro.Child(0).(*Leaf)
	second := intro.Child(1).(*Leaf)
	assert.Equal(t, "Getting started", first.Label())
	assert.Equal(t, "index.md", first.Path())
	assert.Equal(t, "FAQ", second.Label())
	assert.Equal(t, "faq.md", second.Path())
}

func TestResolve_IntroScenarioMissingFAQ(t *testing.T) {
	tree, err := Resolve(introSpec(), setOf("index.md"))
	assert.Nil(t, tree)

	var dangling *DanglingReferenceError
	require.True(t, errors.As(err, &dangling), "got %v", err)
	assert.Equal(t, "faq.md", dangling.Path)
	assert.Equal(t, "FAQ", dangling.Label)
	assert.Contains(t, err.Error(), `"faq.md"`)
}

func TestResolve_DuplicatePath(t *testing.T) {
	entries := []config.NavEntry{
		leaf("Home", "index.md"),
		group("Guide",
			leaf("Install", "install.md"),
			leaf("Start here", "./index.md"),
		),
		leaf("Install again", "install.md"),
	}
	tree, err := Resolve(entries, setOf("index.md", "install.md"))
	assert.Nil(t, tree)

	var dup *DuplicatePathError
	require.True(t, errors.As(err, &dup), "got %v", err)
	assert.Equal(t, "index.md", dup.Path)
	assert.Equal(t, "Home", dup.First)
	assert.Equal(t, "Start here", dup.Second)
}

func TestResolve_DuplicateReportedBeforeLaterDangling(t *testing.T) {
	entries := []config.NavEntry{
		leaf("A", "a.md"),
		leaf("A again", "a.md"),
		leaf("Missing", "missing.md"),
	}
	_, err := Resolve(entries, setOf("a.md"))
	var dup *DuplicatePathError
	assert.True(t, errors.As(err, &dup), "got %v", err)
}

func TestResolve_DanglingReportedBeforeLaterDuplicate(t *testing.T) {
	entries := []config.NavEntry{
		leaf("Missing", "missing.md"),
		leaf("A", "a.md"),
		leaf("A again", "a.md"),
	}
	_, err := Resolve(entries, setOf("a.md"))
	var dangling *DanglingReferenceError
	require.True(t, errors.As(err, &dangling), "got %v", err)
	assert.Equal(t, "missing.md", dangling.Path)
}

func TestResolve_LeafCountMatchesSpec(t *testing.T) {
	for _, size := range []int{0, 1, 7, 40} {
		t.Run(fmt.Sprint(size), func(t *testing.T) {
			var entries []config.NavEntry
			files := setOf()
			var current *config.NavEntry
			for i := 0; i < size; i++ {
				p := fmt.Sprintf("page-%02d.md", i)
				files[p] = true
				if i%3 == 0 {
					entries = append(entries, group(fmt.Sprintf("Section %d", i)))
					current = &entries[len(entries)-1]
				}
				current.Children = append(current.Children, leaf(fmt.Sprintf("Page %d", i), p))
			}

			tree, err := Resolve(entries, files)
			require.NoError(t, err)
			assert.Equal(t, size, tree.LeafCount())
			assert.Len(t, tree.Leaves(), size)
		})
	}
}

func TestResolve_PreservesOrderAtEveryLevel(t *testing.T) {
	entries := []config.NavEntry{
		leaf("C", "c.md"),
		leaf("A", "a.md"),
		group("Nested",
			leaf("Z", "n/z.md"),
			group("Deeper", leaf("Y", "n/d/y.md"), leaf("X", "n/d/x.md")),
			leaf("W", "n/w.md"),
		),
		leaf("B", "b.md"),
	}
	tree, err := Resolve(entries, setOf("a.md", "b.md", "c.md", "n/z.md", "n/w.md", "n/d/x.md", "n/d/y.md"))
	require.NoError(t, err)

	var labels []string
	for _, n := range tree.Root().Children() {
		labels = append(labels, n.Label())
	}
	assert.Equal(t, []string{"C", "A", "Nested", "B"}, labels)

	nested := tree.Root().Child(2).(*Group)
	labels = labels[:0]
	for _, n := range nested.Children() {
		labels = append(labels, n.Label())
	}
	assert.Equal(t, []string{"Z", "Deeper", "W"}, labels)

	var pages []string
	for _, l := range tree.Leaves() {
		pages = append(pages, l.Path())
	}
	assert.Equal(t, []string{"c.md", "a.md", "n/z.md", "n/d/y.md", "n/d/x.md", "n/w.md", "b.md"}, pages)
}

func TestResolve_CleansPaths(t *testing.T) {
	entries := []config.NavEntry{leaf("Guide", "./guide/../guide/install.md"), leaf("Home", "/index.md")}
	tree, err := Resolve(entries, setOf("guide/install.md", "index.md"))
	require.NoError(t, err)
	assert.Equal(t, "guide/install.md", tree.Leaves()[0].Path())
	assert.Equal(t, "index.md", tree.Leaves()[1].Path())
}

func TestResolve_BarePathUsesTitler(t *testing.T) {
	files := titledSet{
		fileSet: setOf("index.md", "getting-started.md"),
		titles:  map[string]string{"index.md": "Welcome to Acme"},
	}
	entries := []config.NavEntry{{Path: "index.md"}, {Path: "getting-started.md"}}
	tree, err := Resolve(entries, files)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Acme", tree.Leaves()[0].Label())
	assert.Equal(t, "Getting started", tree.Leaves()[1].Label())
}

func TestResolve_BarePathWithoutTitler(t *testing.T) {
	tree, err := Resolve([]config.NavEntry{{Path: "user_guide/writing-your-docs.md"}}, setOf("user_guide/writing-your-docs.md"))
	require.NoError(t, err)
	assert.Equal(t, "Writing your docs", tree.Leaves()[0].Label())
}

func TestResolve_NilContentSet(t *testing.T) {
	_, err := Resolve([]config.NavEntry{leaf("Home", "index.md")}, nil)
	var dangling *DanglingReferenceError
	assert.True(t, errors.As(err, &dangling), "got %v", err)

	tree, err := Resolve(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, tree.LeafCount())
}

func TestResolve_ChildrenAreCopies(t *testing.T) {
	tree, err := Resolve(introSpec(), setOf("index.md", "faq.md"))
	require.NoError(t, err)

	kids := tree.Root().Children()
	kids[0] = nil
	assert.NotNil(t, tree.Root().Child(0))

	leaves := tree.Leaves()
	leaves[0] = nil
	assert.NotNil(t, tree.Leaves()[0])
}

func TestResolve_FromParsedConfig(t *testing.T) {
	cfg, err := config.Parse([]byte(`site_name: x
nav: {"Intro": [{"Getting started": "index.md"}, {"FAQ": "faq.md"}]}
`))
	require.NoError(t, err)

	tree, err := Resolve(cfg.Nav, setOf("index.md", "faq.md"))
	require.NoError(t, err)
	assert.Equal(t, 2, tree.LeafCount())
	assert.Equal(t, "Intro", tree.Root().Child(0).Label())
}

func TestResolve_EntryWithoutPathOrChildren(t *testing.T) {
	entries := []config.NavEntry{
		leaf("Home", "index.md"),
		group("Guide", leaf("Install", "install.md"), config.NavEntry{Label: "Empty", Children: []config.NavEntry{}}),
	}
	_, err := Resolve(entries, setOf("index.md", "install.md"))

	var inv *config.InvalidFieldError
	require.True(t, errors.As(err, &inv), "got %v", err)
	assert.Equal(t, "nav[1].Guide[1]", inv.Field)

	var dangling *DanglingReferenceError
	assert.False(t, errors.As(err, &dangling))
}

func TestResolve_EntryWithEmptyPath(t *testing.T) {
	_, err := Resolve([]config.NavEntry{{Label: "Blank"}}, setOf("index.md"))
	var inv *config.InvalidFieldError
	require.True(t, errors.As(err, &inv), "got %v", err)
	assert.Equal(t, "nav[0]", inv.Field)
}
