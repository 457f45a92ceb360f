// Package watch re-runs a callback when files under a set of paths change.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// DefaultDebounce is how long the watcher waits for a burst of events to
// settle before calling back.
const DefaultDebounce = 300 * time.Millisecond

type Watcher struct {
	Paths    []string
	Debounce time.Duration
	// OnChange runs on the watcher goroutine, once per settled burst of
	// events, with the names of the files that changed.
	OnChange func(changed []string)
}

// Run blocks until ctx is cancelled or the underlying watcher fails.
// Directories are watched recursively; directories created while running
// are added as they appear.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	sc := &scope{files: make(map[string]bool)}
	for _, p := range w.Paths {
		p = filepath.Clean(p)
		isDir, err := addTree(fw, p)
		if err != nil {
			return err
		}
		if isDir {
			sc.dirs = append(sc.dirs, p)
		} else {
			sc.files[p] = true
		}
	}

	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !relevant(ev) || !sc.contains(ev.Name) {
				continue
			}
			log.WithFields(log.Fields{"file": ev.Name, "op": ev.Op.String()}).Debug("Change detected")
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if _, err := addTree(fw, ev.Name); err != nil {
						log.WithFields(log.Fields{"dir": ev.Name, "err": err}).Warn("Could not watch new directory")
					}
				}
			}
			pending[ev.Name] = true
			timer.Reset(debounce)

		case <-timer.C:
			changed := make([]string, 0, len(pending))
			for name := range pending {
				changed = append(changed, name)
			}
			pending = make(map[string]bool)
			if w.OnChange != nil {
				w.OnChange(changed)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.WithFields(log.Fields{"err": err}).Warn("Watcher error")
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	if strings.HasPrefix(filepath.Base(ev.Name), ".") {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
		ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename)
}

// scope limits events to the watched files and directory trees; a plain
// file is watched through its parent, which also reports its siblings.
type scope struct {
	files map[string]bool
	dirs  []string
}

func (s *scope) contains(name string) bool {
	name = filepath.Clean(name)
	if s.files[name] {
		return true
	}
	for _, d := range s.dirs {
		if name == d || strings.HasPrefix(name, d+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// addTree watches p, and every directory below it when p is a directory.
// A plain file is watched through its parent so that editors which replace
// the file on save keep being seen.
func addTree(fw *fsnotify.Watcher, p string) (isDir bool, err error) {
	info, err := os.Stat(p)
	if err != nil {
		return false, err
	}
	if !info.IsDir() {
		return false, fw.Add(filepath.Dir(p))
	}
	return true, filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != p && strings.HasPrefix(d.Name(), ".") {
			return fs.SkipDir
		}
		return fw.Add(path)
	})
}
