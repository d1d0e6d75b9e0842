package report

import "fmt"

// FileAccessError reports an unreadable input file or an unwritable output
// file. The wrapped error carries the underlying cause.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("accessing %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a result row that lacks one of the required
// columns. Generation aborts; no partial report is written.
type MissingFieldError struct {
	Path  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("result row in %s missing required column %q", e.Path, e.Field)
}

// TemplateError reports a missing template file or a parse/render failure.
type TemplateError struct {
	Name string
	Err  error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %s: %v", e.Name, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}
