package ux

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns a unified diff turning before into after, or "" when the
// two are identical.
func Diff(name string, before, after []byte) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: name,
		ToFile:   name + " (formatted)",
		Context:  3,
	})
}

// ColorDiff adds ANSI colors to a unified diff.
func ColorDiff(text string) string {
	lines := strings.SplitAfter(text, "\n")
	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		nl := line[len(body):]
		switch {
		case strings.HasPrefix(body, "---"), strings.HasPrefix(body, "+++"):
			b.WriteString(Bold + body + Reset + nl)
		case strings.HasPrefix(body, "@@"):
			b.WriteString(Cyan + body + Reset + nl)
		case strings.HasPrefix(body, "+"):
			b.WriteString(Green + body + Reset + nl)
		case strings.HasPrefix(body, "-"):
			b.WriteString(Red + body + Reset + nl)
		default:
			b.WriteString(line)
		}
	}
	return b.String()
}
