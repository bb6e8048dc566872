package tabular

import "fmt"

// ReadError wraps a failure to open or iterate a spreadsheet source.
type ReadError struct {
	// Source is the file path, or empty when reading from a stream.
	Source string
	// Op names the failed operation: "read", "sheet-count", "sheet-names".
	Op string
	// Err is the underlying cause.
	Err error
}

func (e *ReadError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Op, e.Source, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a new ReadError.
func NewReadError(source, op string, err error) *ReadError {
	return &ReadError{Source: source, Op: op, Err: err}
}
