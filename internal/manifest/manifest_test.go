package manifest

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge-barreto/docnav/internal/config"
	"github.com/jorge-barreto/docnav/internal/content"
	"github.com/jorge-barreto/docnav/internal/nav"
)

const siteDoc = `site_name: Acme Docs
site_url: https://docs.acme.dev/
repo_url: https://github.com/acme/acme
theme:
  name: material
  features: [navigation.tabs]
markdown_extensions:
  - admonition
  - toc:
      permalink: true
nav:
  - Home: index.md
  - Guide:
      - Install: guide/install.md
      - Advanced:
          - Plugins: guide/plugins.md
  - About: about.md
`

func buildSample(t *testing.T, doc string) *Manifest {
	t.Helper()
	cfg, err := config.Parse([]byte(doc))
	require.NoError(t, err)
	files := content.NewSet("index.md", "guide/install.md", "guide/plugins.md", "about.md")
	tree, err := nav.Resolve(cfg.Nav, files)
	require.NoError(t, err)
	return Build(cfg, tree)
}

func TestBuild_SiteAndTheme(t *testing.T) {
	m := buildSample(t, siteDoc)

	_, err := uuid.Parse(m.BuildID)
	assert.NoError(t, err, "build id should be a uuid")
	assert.False(t, m.Generated.IsZero())

	assert.Equal(t, "Acme Docs", m.Site.Name)
	assert.Equal(t, "GitHub", m.Site.RepoName)
	assert.Equal(t, "material", m.Theme.Name)
	assert.Equal(t, "indigo", m.Theme.Primary)
	assert.Equal(t, []string{"navigation.tabs"}, m.Theme.Features)

	require.Len(t, m.Extensions, 2)
	assert.Equal(t, "admonition", m.Extensions[0].Name)
	assert.Nil(t, m.Extensions[0].Params)
	assert.Equal(t, true, m.Extensions[1].Params["permalink"])
}

func TestBuild_NavItems(t *testing.T) {
	m := buildSample(t, siteDoc)

	want := []Item{
		{Title: "Home", Path: "index.md", URL: "./"},
		{Title: "Guide", Children: []Item{
			{Title: "Install", Path: "guide/install.md", URL: "guide/install/"},
			{Title: "Advanced", Children: []Item{
				{Title: "Plugins", Path: "guide/plugins.md", URL: "guide/plugins/"},
			}},
		}},
		{Title: "About", Path: "about.md", URL: "about/"},
	}
	assert.Equal(t, want, m.Nav)
}

func TestBuild_Pages(t *testing.T) {
	m := buildSample(t, siteDoc)
	require.Len(t, m.Pages, 4)

	home := m.Pages[0]
	assert.Equal(t, "./", home.URL)
	assert.Equal(t, "https://docs.acme.dev/", home.CanonicalURL)
	assert.Empty(t, home.Previous)
	assert.Equal(t, "guide/install/", home.Next)
	assert.Equal(t, "https://github.com/acme/acme/edit/master/docs/index.md", home.EditURL)

	plugins := m.Pages[2]
	assert.Equal(t, "Plugins", plugins.Title)
	assert.Equal(t, []string{"Guide", "Advanced"}, plugins.Breadcrumbs)
	assert.Equal(t, "guide/install/", plugins.Previous)
	assert.Equal(t, "about/", plugins.Next)
	assert.Equal(t, "https://docs.acme.dev/guide/plugins/", plugins.CanonicalURL)

	assert.Empty(t, m.Pages[3].Next)
}

func TestBuild_EmptyNav(t *testing.T) {
	cfg, err := config.Parse([]byte("site_name: Empty\n"))
	require.NoError(t, err)
	tree, err := nav.Resolve(cfg.Nav, content.NewSet())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Build(cfg, tree).Encode(&buf))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, []any{}, raw["nav"])
	assert.Equal(t, []any{}, raw["pages"])
	assert.Equal(t, []any{}, raw["markdown_extensions"])
}

func TestPageURL(t *testing.T) {
	cases := []struct {
		path    string
		dirURLs bool
		want    string
	}{
		{"index.md", true, "./"},
		{"index.md", false, "index.html"},
		{"README.md", true, "./"},
		{"guide/index.md", true, "guide/"},
		{"guide/index.md", false, "guide/index.html"},
		{"guide/install.md", true, "guide/install/"},
		{"guide/install.md", false, "guide/install.html"},
		{"./notes.markdown", true, "notes/"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PageURL(tc.path, tc.dirURLs), "%s dir=%v", tc.path, tc.dirURLs)
	}
}

func TestBuild_FileURLs(t *testing.T) {
	m := buildSample(t, "use_directory_urls: false\n"+siteDoc)
	assert.Equal(t, "index.html", m.Pages[0].URL)
	assert.Equal(t, "guide/install.html", m.Pages[0].Next)
}

func TestManifest_WriteRoundTrip(t *testing.T) {
	m := buildSample(t, siteDoc)
	path := filepath.Join(t.TempDir(), "site.json")
	require.NoError(t, m.Write(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var back Manifest
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, m.BuildID, back.BuildID)
	assert.Equal(t, m.Nav, back.Nav)
	assert.Equal(t, m.Pages, back.Pages)
}
