package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"

	log "github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v3"

	"github.com/jorge-barreto/docnav/internal/atomicfile"
	"github.com/jorge-barreto/docnav/internal/config"
	"github.com/jorge-barreto/docnav/internal/docs"
	"github.com/jorge-barreto/docnav/internal/manifest"
	"github.com/jorge-barreto/docnav/internal/nav"
	"github.com/jorge-barreto/docnav/internal/project"
	"github.com/jorge-barreto/docnav/internal/scaffold"
	"github.com/jorge-barreto/docnav/internal/ux"
	"github.com/jorge-barreto/docnav/internal/watch"
)

func main() {
	app := &cli.Command{
		Name:        "docnav",
		Usage:       "Validate documentation site config and navigation",
		Description: "Run 'docnav docs' for documentation on config syntax, nav entries, and errors.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"f"}, Usage: "Path to mkdocs.yml (default: nearest one above the current directory)"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Debug logging on stderr"},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			log.SetOutput(os.Stderr)
			log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
			if cmd.Bool("verbose") {
				log.SetLevel(log.DebugLevel)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			initCmd(),
			checkCmd(),
			navCmd(),
			manifestCmd(),
			fmtCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %s\n", ux.Red, ux.Reset, describe(err))
		os.Exit(1)
	}
}

// describe prefixes err with its kind when it is one of the load or
// resolve failures.
func describe(err error) string {
	if kind := errorKind(err); kind != "" {
		return kind + ": " + err.Error()
	}
	return err.Error()
}

func errorKind(err error) string {
	var (
		malformed *config.MalformedDocumentError
		invalid   *config.InvalidFieldError
		dup       *nav.DuplicatePathError
		dangling  *nav.DanglingReferenceError
	)
	switch {
	case errors.As(err, &malformed):
		return "malformed document"
	case errors.As(err, &invalid):
		return "invalid field"
	case errors.As(err, &dup):
		return "duplicate path"
	case errors.As(err, &dangling):
		return "dangling reference"
	}
	return ""
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a starter mkdocs.yml and docs/ directory",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Usage: "Site name (default: the directory name)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir, cmd.String("name"))
		},
	}
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:        "check",
		Usage:       "Load the config and resolve the nav against the docs directory",
		Description: "With --watch, the config file and docs_dir are watched; editing docs_dir in the config moves the watch to the new directory.",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "watch", Aliases: []string{"w"}, Usage: "Re-check whenever the config or a page changes"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			configPath, err := configFile(cmd)
			if err != nil {
				return err
			}
			if !cmd.Bool("watch") {
				return runCheck(configPath)
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := runCheck(configPath); err != nil {
				ux.CheckFail(describeErr(err))
			}
			return watchSite(ctx, configPath)
		},
	}
}

// watchSite re-checks the site on every change until ctx is cancelled. When
// an edit to the config moves docs_dir, the watch restarts on the new paths.
func watchSite(ctx context.Context, configPath string) error {
	paths := watchPaths(configPath)
	for {
		ux.Watching(paths)
		wctx, cancel := context.WithCancel(ctx)
		var next []string
		w := &watch.Watcher{
			Paths: paths,
			OnChange: func(changed []string) {
				ux.Rechecking(changed)
				if err := runCheck(configPath); err != nil {
					ux.CheckFail(describeErr(err))
				}
				if p, moved := rewatch(configPath, changed, paths); moved {
					next = p
					cancel()
				}
			},
		}
		err := w.Run(wctx)
		cancel()
		if err != nil || next == nil || ctx.Err() != nil {
			return err
		}
		log.WithFields(log.Fields{"paths": next}).Debug("Watch paths changed")
		paths = next
	}
}

// rewatch returns the paths to watch after changed, and whether they differ
// from current. Only a change to the config file can move them.
func rewatch(configPath string, changed, current []string) ([]string, bool) {
	if !slices.Contains(changed, configPath) {
		return current, false
	}
	next := watchPaths(configPath)
	return next, !slices.Equal(next, current)
}

func runCheck(configPath string) error {
	p, err := project.Open(configPath)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"config":   p.ConfigPath,
		"docs_dir": p.DocsDir,
		"files":    p.Content.Len(),
	}).Debug("Site loaded")
	ux.CheckOK(p.Config.Site.Name, p.Tree.LeafCount(), p.AutoNav)
	ux.Unlisted(p.Unlisted())
	return nil
}

func describeErr(err error) error {
	return errors.New(describe(err))
}

// watchPaths returns the config file and its docs directory. The docs
// directory is read from the config when it loads, else the default is used.
func watchPaths(configPath string) []string {
	docsDir := config.DefaultDocsDir
	if cfg, err := config.Load(configPath); err == nil {
		docsDir = cfg.DocsDir
	}
	if !filepath.IsAbs(docsDir) {
		docsDir = filepath.Join(filepath.Dir(configPath), filepath.FromSlash(docsDir))
	}
	paths := []string{configPath}
	if info, err := os.Stat(docsDir); err == nil && info.IsDir() {
		paths = append(paths, docsDir)
	} else {
		log.WithFields(log.Fields{"docs_dir": docsDir}).Warn("Docs directory missing, watching config only")
	}
	return paths
}

func navCmd() *cli.Command {
	return &cli.Command{
		Name:  "nav",
		Usage: "Print the resolved navigation tree",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			configPath, err := configFile(cmd)
			if err != nil {
				return err
			}
			p, err := project.Open(configPath)
			if err != nil {
				return err
			}
			fmt.Println(ux.NavTree(p.Config.Site.Name, p.Tree.Root()))
			footer := ux.PageCount(p.Tree.LeafCount())
			if p.AutoNav {
				footer += fmt.Sprintf(" (derived from %s/)", p.Config.DocsDir)
			}
			fmt.Printf("\n%s%s%s\n", ux.Dim, footer, ux.Reset)
			ux.Unlisted(p.Unlisted())
			return nil
		},
	}
}

func manifestCmd() *cli.Command {
	return &cli.Command{
		Name:  "manifest",
		Usage: "Print the site manifest as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Write the manifest to a file instead of stdout"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			configPath, err := configFile(cmd)
			if err != nil {
				return err
			}
			p, err := project.Open(configPath)
			if err != nil {
				return err
			}
			m := manifest.Build(p.Config, p.Tree)
			log.WithFields(log.Fields{"build_id": m.BuildID, "pages": len(m.Pages)}).Debug("Manifest built")

			out := cmd.String("out")
			if out == "" {
				return m.Encode(os.Stdout)
			}
			if err := m.Write(out); err != nil {
				return fmt.Errorf("writing manifest: %w", err)
			}
			ux.Wrote(out)
			return nil
		},
	}
}

func fmtCmd() *cli.Command {
	return &cli.Command{
		Name:        "fmt",
		Usage:       "Rewrite the config file in canonical form",
		Description: "Prints the formatted config to stdout unless --diff or --write is given. Comments are not preserved.",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "diff", Aliases: []string{"d"}, Usage: "Show a unified diff instead of the formatted file"},
			&cli.BoolFlag{Name: "write", Aliases: []string{"w"}, Usage: "Write the result back to the config file"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			configPath, err := configFile(cmd)
			if err != nil {
				return err
			}
			before, err := os.ReadFile(configPath)
			if err != nil {
				return err
			}
			after, err := config.Format(before)
			if err != nil {
				return fmt.Errorf("formatting %s: %w", filepath.Base(configPath), err)
			}

			showDiff, write := cmd.Bool("diff"), cmd.Bool("write")
			if !showDiff && !write {
				_, err := os.Stdout.Write(after)
				return err
			}
			if bytes.Equal(before, after) {
				ux.Unchanged(configPath)
				return nil
			}
			if showDiff {
				text, err := ux.Diff(filepath.Base(configPath), before, after)
				if err != nil {
					return fmt.Errorf("diffing %s: %w", filepath.Base(configPath), err)
				}
				fmt.Print(ux.ColorDiff(text))
			}
			if write {
				perm := os.FileMode(0644)
				if info, err := os.Stat(configPath); err == nil {
					perm = info.Mode().Perm()
				}
				if err := atomicfile.Write(configPath, after, perm); err != nil {
					return fmt.Errorf("writing %s: %w", filepath.Base(configPath), err)
				}
				ux.Wrote(configPath)
			}
			return nil
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-14s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'docnav docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}

// configFile returns the --config path, or the nearest config file above
// the working directory.
func configFile(cmd *cli.Command) (string, error) {
	if p := cmd.String("config"); p != "" {
		return filepath.Abs(p)
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return project.FindConfig(dir)
}
