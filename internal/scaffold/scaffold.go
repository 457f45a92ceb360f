package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jorge-barreto/docnav/internal/ux"
)

const configTemplate = `site_name: %s
# site_url: https://example.com/
# repo_url: https://github.com/you/your-project

theme:
  name: mkdocs
  palette:
    primary: indigo
    accent: indigo

markdown_extensions:
  - admonition
  - toc:
      permalink: true

nav:
  - Home: index.md
  - Getting started: getting-started.md
`

const indexTemplate = `# %s

Welcome. Edit docs/index.md to change this page.
`

const gettingStartedTemplate = `---
title: Getting started
---

Describe how to install and use the project here.
`

// Init writes a starter mkdocs.yml and docs/ pages into targetDir. Pages
// that already exist are left alone; an existing config is an error.
func Init(targetDir, siteName string) error {
	for _, name := range []string{"mkdocs.yml", "mkdocs.yaml"} {
		if _, err := os.Stat(filepath.Join(targetDir, name)); err == nil {
			return fmt.Errorf("%s already exists in %s", name, targetDir)
		}
	}
	if strings.TrimSpace(siteName) == "" {
		siteName = filepath.Base(targetDir)
	}

	docsDir := filepath.Join(targetDir, "docs")
	if err := os.MkdirAll(docsDir, 0755); err != nil {
		return fmt.Errorf("creating docs/: %w", err)
	}

	configPath := filepath.Join(targetDir, "mkdocs.yml")
	if err := os.WriteFile(configPath, []byte(fmt.Sprintf(configTemplate, strconv.Quote(siteName))), 0644); err != nil {
		return fmt.Errorf("writing mkdocs.yml: %w", err)
	}

	pages := []struct{ name, body string }{
		{"index.md", fmt.Sprintf(indexTemplate, siteName)},
		{"getting-started.md", gettingStartedTemplate},
	}
	var created []string
	for _, p := range pages {
		ok, err := writeNew(filepath.Join(docsDir, p.name), p.body)
		if err != nil {
			return fmt.Errorf("writing docs/%s: %w", p.name, err)
		}
		if ok {
			created = append(created, "docs/"+p.name)
		}
	}

	fmt.Printf("\n%s%s✓ Initialized %s%s\n\n", ux.Bold, ux.Green, siteName, ux.Reset)
	fmt.Printf("  Created:\n")
	fmt.Printf("    %smkdocs.yml%s\n", ux.Cyan, ux.Reset)
	for _, c := range created {
		fmt.Printf("    %s%s%s\n", ux.Cyan, c, ux.Reset)
	}
	fmt.Printf("\n  Next steps:\n")
	fmt.Printf("    1. Add pages under %sdocs/%s and list them in %snav%s\n", ux.Cyan, ux.Reset, ux.Cyan, ux.Reset)
	fmt.Printf("    2. Run %sdocnav check%s to validate the site\n\n", ux.Cyan, ux.Reset)

	return nil
}

// writeNew creates name with body unless it already exists.
func writeNew(name, body string) (bool, error) {
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if _, err := f.WriteString(body); err != nil {
		f.Close()
		return false, err
	}
	return true, f.Close()
}
