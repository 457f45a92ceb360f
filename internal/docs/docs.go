package docs

import "fmt"

// Topic is one help page shown by 'docnav docs <name>'.
type Topic struct {
	Name    string // short slug used as CLI argument
	Title   string // human-readable title
	Summary string // one-line description for topic listing
	Content string // full article text (plain text, no ANSI)
}

// All lists the help pages in the order 'docnav docs' prints them. Callers
// must not modify the returned slice.
func All() []Topic {
	return topics
}

// Get returns the help page called name. An unknown name yields an error
// that points at the topic listing.
func Get(name string) (Topic, error) {
	for _, t := range topics {
		if t.Name == name {
			return t, nil
		}
	}
	return Topic{}, fmt.Errorf("unknown topic %q (run 'docnav docs' to list available topics)", name)
}
