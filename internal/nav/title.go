package nav

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var separators = strings.NewReplacer("-", " ", "_", " ")

// LabelFromPath derives a label from a file or directory name:
// "guide/getting-started.md" gives "Getting started". Index pages take the
// name of their directory, and the top-level index is "Home".
func LabelFromPath(p string) string {
	p = Clean(p)
	name := strings.TrimSuffix(path.Base(p), path.Ext(p))
	if isIndex(path.Base(p)) {
		dir := path.Dir(p)
		if dir == "." || dir == "/" {
			return "Home"
		}
		name = path.Base(dir)
	}
	if label := humanize(name); label != "" {
		return label
	}
	return p
}

// humanize turns a file-name stem into a label, capitalizing the first word.
func humanize(name string) string {
	name = strings.Join(strings.Fields(separators.Replace(name)), " ")
	if name == "" {
		return ""
	}

	first, rest, _ := strings.Cut(name, " ")
	first = cases.Title(language.English, cases.NoLower).String(first)
	if rest == "" {
		return first
	}
	return first + " " + rest
}

func isIndex(base string) bool {
	stem := strings.ToLower(strings.TrimSuffix(base, path.Ext(base)))
	return stem == "index" || stem == "readme"
}
