package mimetypes

import (
	"errors"
	"fmt"
)

var ErrIsDirectory = errors.New("path is a directory")

// LineError is returned when reading a mime.types file stops before the end of the input.
// Mappings read before the failing line remain in the table.
type LineError struct {
	// Line is the 1-based number of the line that could not be read.
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("failed reading line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
