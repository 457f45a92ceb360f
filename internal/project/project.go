// Package project loads a site from disk: the config file, the pages under
// its docs directory, and the navigation resolved against them.
package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/docnav/internal/config"
	"github.com/jorge-barreto/docnav/internal/content"
	"github.com/jorge-barreto/docnav/internal/nav"
)

// ConfigNames are the file names searched for when no config path is given.
var ConfigNames = []string{"mkdocs.yml", "mkdocs.yaml"}

type Project struct {
	ConfigPath string
	Root       string
	DocsDir    string
	Config     *config.Config
	Content    *content.Store
	Tree       *nav.Tree
	// AutoNav is set when the config declares no nav and one was derived
	// from the docs directory.
	AutoNav bool
}

// Open loads the config at configPath and resolves its navigation.
func Open(configPath string) (*Project, error) {
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(abs)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", filepath.Base(abs), err)
	}

	p := &Project{
		ConfigPath: abs,
		Root:       filepath.Dir(abs),
		Config:     cfg,
	}
	p.DocsDir = cfg.DocsDir
	if !filepath.IsAbs(p.DocsDir) {
		p.DocsDir = filepath.Join(p.Root, filepath.FromSlash(p.DocsDir))
	}
	info, err := os.Stat(p.DocsDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("docs_dir %q: %w", cfg.DocsDir, ErrNoDocsDir)
	}

	p.Content, err = content.Scan(os.DirFS(p.DocsDir))
	if err != nil {
		return nil, err
	}

	entries := cfg.Nav
	if len(entries) == 0 {
		entries = nav.Auto(p.Content.Paths())
		p.AutoNav = true
	}
	p.Tree, err = nav.Resolve(entries, p.Content)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Unlisted returns the pages in the docs directory that the nav leaves out.
func (p *Project) Unlisted() []string {
	return p.Tree.Unlisted(p.Content.Paths())
}

// ErrNoDocsDir is returned when the configured docs directory is missing.
var ErrNoDocsDir = errors.New("docs directory not found")

// FindConfig walks up from dir looking for a config file.
func FindConfig(dir string) (string, error) {
	for {
		for _, name := range ConfigNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			} else if !errors.Is(err, fs.ErrNotExist) {
				return "", err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no mkdocs.yml found (searched from %s to root)", dir)
		}
		dir = parent
	}
}
