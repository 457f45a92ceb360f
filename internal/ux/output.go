package ux

import (
	"fmt"
	"strings"
	"time"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

func timestamp() string {
	return time.Now().Format("15:04:05")
}

// CheckOK prints the summary line for a site that loaded and resolved.
func CheckOK(site string, pages int, autoNav bool) {
	source := "declared nav"
	if autoNav {
		source = "derived nav"
	}
	fmt.Printf("%s✓%s %s%s%s: %d %s (%s)\n",
		Green, Reset, Bold, site, Reset, pages, plural(pages, "page"), source)
}

// CheckFail prints a failed check without exiting, for watch mode.
func CheckFail(err error) {
	fmt.Printf("%s✗ %v%s\n", Red, err, Reset)
}

// Unlisted prints the pages the nav leaves out.
func Unlisted(paths []string) {
	if len(paths) == 0 {
		return
	}
	fmt.Printf("%s⚠ %d %s not in nav:%s\n", Yellow, len(paths), plural(len(paths), "page"), Reset)
	for _, p := range paths {
		fmt.Printf("  %s- %s%s\n", Dim, p, Reset)
	}
}

// Watching prints the watch banner.
func Watching(paths []string) {
	fmt.Printf("\n%sWatching%s %s %s(Ctrl-C to stop)%s\n",
		Cyan, Reset, strings.Join(paths, ", "), Dim, Reset)
}

// Rechecking prints a timestamped header before a watch-triggered check.
func Rechecking(changed []string) {
	what := fmt.Sprintf("%d files", len(changed))
	if len(changed) == 1 {
		what = changed[0]
	}
	fmt.Printf("\n%s[%s]%s %s↺ %s changed%s\n", Dim, timestamp(), Reset, Cyan, what, Reset)
}

// Wrote prints a file-written confirmation.
func Wrote(path string) {
	fmt.Printf("%s✓%s wrote %s\n", Green, Reset, path)
}

// Unchanged prints that a file already matched its formatted form.
func Unchanged(path string) {
	fmt.Printf("%s%s already formatted%s\n", Dim, path, Reset)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
