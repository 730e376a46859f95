package snap

import "fmt"

// ImportError describes an @import directive whose file could not be read.
// The compile continues with a comment line in place of the directive.
type ImportError struct {
	Path string
	Line int
	Err  error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("line %d: failed to import %q: %v", e.Line, e.Path, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }

// SyntaxError is a non-fatal problem found in a source line, such as a
// definition block that is never closed.
type SyntaxError struct {
	Filename string
	Line     int
	Column   int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Msg)
}
