package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jorge-barreto/docnav/internal/config"
	"github.com/jorge-barreto/docnav/internal/nav"
)

func TestErrorKind(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{&config.MalformedDocumentError{Err: fmt.Errorf("bad")}, "malformed document"},
		{fmt.Errorf("loading mkdocs.yml: %w", &config.InvalidFieldError{Field: "site_name", Reason: "required"}), "invalid field"},
		{&nav.DuplicatePathError{Path: "a.md", First: "A", Second: "B"}, "duplicate path"},
		{fmt.Errorf("wrapped: %w", &nav.DanglingReferenceError{Path: "faq.md", Label: "FAQ"}), "dangling reference"},
		{fmt.Errorf("permission denied"), ""},
	}
	for _, tc := range cases {
		if got := errorKind(tc.err); got != tc.want {
			t.Errorf("errorKind(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	err := &nav.DanglingReferenceError{Path: "faq.md", Label: "FAQ"}
	got := describe(err)
	if !strings.HasPrefix(got, "dangling reference: ") || !strings.Contains(got, "faq.md") {
		t.Fatalf("describe = %q", got)
	}
	if got := describe(fmt.Errorf("plain")); got != "plain" {
		t.Fatalf("describe = %q", got)
	}
}

func TestWatchPaths(t *testing.T) {
	root := t.TempDir()
	cfg := filepath.Join(root, "mkdocs.yml")
	if err := os.WriteFile(cfg, []byte("site_name: Acme\ndocs_dir: src\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := watchPaths(cfg); len(got) != 1 || got[0] != cfg {
		t.Fatalf("without docs dir: %v", got)
	}

	if err := os.Mkdir(filepath.Join(root, "src"), 0755); err != nil {
		t.Fatal(err)
	}
	got := watchPaths(cfg)
	if len(got) != 2 || got[1] != filepath.Join(root, "src") {
		t.Fatalf("with docs dir: %v", got)
	}
}

func TestRewatch_FollowsDocsDir(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"a", "b"} {
		if err := os.Mkdir(filepath.Join(root, dir), 0755); err != nil {
			t.Fatal(err)
		}
	}
	cfg := filepath.Join(root, "mkdocs.yml")
	if err := os.WriteFile(cfg, []byte("site_name: Acme\ndocs_dir: a\n"), 0644); err != nil {
		t.Fatal(err)
	}
	current := watchPaths(cfg)

	page := filepath.Join(root, "a", "index.md")
	if _, moved := rewatch(cfg, []string{page}, current); moved {
		t.Fatal("a page change should not move the watch")
	}
	if _, moved := rewatch(cfg, []string{cfg}, current); moved {
		t.Fatal("an unchanged docs_dir should not move the watch")
	}

	if err := os.WriteFile(cfg, []byte("site_name: Acme\ndocs_dir: b\n"), 0644); err != nil {
		t.Fatal(err)
	}
	next, moved := rewatch(cfg, []string{page, cfg}, current)
	if !moved {
		t.Fatal("expected the watch to move")
	}
	if len(next) != 2 || next[1] != filepath.Join(root, "b") {
		t.Fatalf("next = %v", next)
	}
}
