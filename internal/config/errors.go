package config

import "fmt"

// MalformedDocumentError reports input that is not a YAML mapping document.
type MalformedDocumentError struct {
	Err error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("config: malformed document: %v", e.Err)
}

func (e *MalformedDocumentError) Unwrap() error {
	return e.Err
}

// InvalidFieldError reports a field with the wrong shape or an invalid value.
// Field is a dotted path such as "theme.palette" or "nav[0].Intro[1]".
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("config: invalid field %q: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return &InvalidFieldError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
