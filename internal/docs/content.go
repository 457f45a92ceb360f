package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with docnav",
		Content: topicQuickstart,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "mkdocs.yml site fields, defaults, and repository settings",
		Content: topicConfig,
	},
	{
		Name:    "theme",
		Title:   "Theme Settings",
		Summary: "Theme name, palette, fonts, and features",
		Content: topicTheme,
	},
	{
		Name:    "extensions",
		Title:   "Markdown Extensions",
		Summary: "Extension list syntax, parameters, and repeated names",
		Content: topicExtensions,
	},
	{
		Name:    "nav",
		Title:   "Navigation",
		Summary: "Nav entry forms, derived nav, titles, and page URLs",
		Content: topicNav,
	},
	{
		Name:    "errors",
		Title:   "Error Reference",
		Summary: "What each error kind means and how to fix it",
		Content: topicErrors,
	},
}

const topicQuickstart = `Quick Start
===========

1. Create a site:

    cd your-project
    docnav init

   This creates mkdocs.yml and docs/index.md.

2. Add pages under docs/ and list them in the nav section of
   mkdocs.yml. Without a nav section, one is derived from the files.

3. Check the site:

    docnav check

   The check loads the config, resolves the nav against docs/, and
   lists any pages the nav leaves out. Add --watch to re-check on
   every save.

4. Inspect the result:

    docnav nav                    Print the resolved nav as a tree
    docnav manifest               Print the site manifest as JSON
    docnav manifest --out F       Write the manifest to F

5. Normalize the config file:

    docnav fmt --diff             Show what formatting would change
    docnav fmt --write            Rewrite mkdocs.yml in canonical form

Global Flags
------------

  --config, -f FILE     Config file (default: nearest mkdocs.yml above
                        the current directory)
  --verbose, -v         Debug logging on stderr
`

const topicConfig = `Configuration Reference
=======================

docnav reads mkdocs.yml (or mkdocs.yaml). Unknown top-level keys are
ignored so the same file can carry settings for other tools.

Site
----

  site_name          Required. Non-empty string.
  site_description   Optional.
  site_author        Optional.
  site_url           Optional. Absolute http or https URL. Used to build
                     canonical page URLs in the manifest.
  copyright          Optional.

Repository
----------

  repo_url           Optional. Absolute http or https URL.
  repo_name          Display name. Defaults to GitHub, GitLab, or
                     Bitbucket when repo_url points at one of them.
  edit_uri           Path from repo_url to the docs sources. Defaults to
                     edit/master/<docs_dir>/ on GitHub,
                     -/edit/master/<docs_dir>/ on GitLab, and
                     src/default/<docs_dir>/ on Bitbucket.

Build
-----

  docs_dir             Directory holding the pages, relative to the
                       config file. Default: docs
  use_directory_urls   true maps guide/install.md to guide/install/;
                       false maps it to guide/install.html.
                       Default: true

Other sections: theme (see 'docnav docs theme'), markdown_extensions
(see 'docnav docs extensions'), nav (see 'docnav docs nav').
`

const topicTheme = `Theme Settings
==============

The theme key takes either a name:

    theme: material

or a mapping:

    theme:
      name: material
      logo: assets/logo.png
      favicon: assets/favicon.ico
      palette:
        primary: teal
        accent: amber
      font:
        text: Inter
        code: JetBrains Mono
      features:
        - navigation.tabs
        - search.highlight

Defaults
--------

  name              mkdocs
  palette.primary   indigo
  palette.accent    indigo
  font.text         Roboto
  font.code         Roboto Mono

palette and font must be mappings; features must be a list of strings.
`

const topicExtensions = `Markdown Extensions
===================

markdown_extensions is an ordered list. Each item is either a bare name
or a single-key mapping from the name to its parameters:

    markdown_extensions:
      - admonition
      - toc:
          permalink: true
          toc_depth: 3
      - footnotes

A mapping of names to parameters is also accepted:

    markdown_extensions:
      admonition: {}
      toc:
        permalink: true

Order is preserved. When a name appears more than once, the last
declaration wins: its parameters are used and the extension takes the
position of that last declaration.
`

const topicNav = `Navigation
==========

Each nav entry is one of:

  Label: path.md          A page with an explicit label
  path.md                 A page; the label comes from the page
  Label:                  A section holding more entries
    - ...

Example:

    nav:
      - Home: index.md
      - Guide:
          - Install: guide/install.md
          - guide/configure.md
      - About: about.md

Paths are relative to docs_dir and are cleaned before comparison, so
./guide/../about.md and about.md name the same page. A page may appear
only once in the nav, and every path must exist under docs_dir.
Sections must hold at least one entry. Paths must be strings: quote a
name such as "404" that YAML would otherwise read as a number.

Page Titles
-----------

A bare path takes its label from the page's front matter title, then
from its first level-one heading, then from its file name
(getting-started.md becomes "Getting started").

Derived Nav
-----------

When mkdocs.yml has no nav, docnav builds one from docs_dir: files are
sorted, index.md or README.md comes first in each directory, and each
subdirectory becomes a section named after it.

Page URLs
---------

  use_directory_urls: true     index.md        -> ./
                               guide/index.md  -> guide/
                               guide/setup.md  -> guide/setup/
  use_directory_urls: false    guide/setup.md  -> guide/setup.html
`

const topicErrors = `Error Reference
===============

Every failure stops the command and prints one line of the form

    error: <kind>: <detail>

malformed document
  mkdocs.yml is not valid YAML, or its top level is not a mapping.

invalid field
  A field has the wrong shape or value. The detail names the field with
  a path such as theme.palette or nav[0].Guide[1]. Common causes: a
  missing site_name, a site_url without http:// or https://, a palette
  given as a single string, a section with no entries.

duplicate path
  The same page appears twice in the nav. The detail names the path and
  the labels of both entries.

dangling reference
  A nav entry points at a file that does not exist under docs_dir.
`
