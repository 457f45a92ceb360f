package nav

import "fmt"

// DuplicatePathError reports a content path referenced by two leaves. First
// and Second are the labels of the two entries, in document order.
type DuplicatePathError struct {
	Path   string
	First  string
	Second string
}

func (e *DuplicatePathError) Error() string {
	return fmt.Sprintf("nav: duplicate path %q (entries %q and %q)", e.Path, e.First, e.Second)
}

// DanglingReferenceError reports a leaf whose path is not a known content file.
type DanglingReferenceError struct {
	Path  string
	Label string
}

func (e *DanglingReferenceError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("nav: dangling reference %q: no such content file", e.Path)
	}
	return fmt.Sprintf("nav: dangling reference %q (entry %q): no such content file", e.Path, e.Label)
}
