package table

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat matches every *FormatError via errors.Is.
	ErrFormat = errors.New("table: format error")

	// ErrNotFound matches every *NotFoundError via errors.Is.
	ErrNotFound = errors.New("table: not found")

	// ErrEmptySource is the cause of a FormatError when the source contains
	// no non-empty lines.
	ErrEmptySource = errors.New("no data in source")

	// ErrTooManyColumns is the cause of a FormatError when a line has more
	// fields than the header is wide.
	ErrTooManyColumns = errors.New("corrupted data (too many columns)")
)

// FormatError reports source text that cannot be turned into a table.
// It is fatal to the load that produced it.
type FormatError struct {
	// Line is the 1-based line number in the source text, or 0 when the
	// error is not tied to a line (for example an empty source).
	Line int

	// Err is the cause, usually ErrEmptySource or ErrTooManyColumns.
	Err error
}

// Error formats the message with the line number when one is known.
func (e *FormatError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("table: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("table: %v", e.Err)
}

// Unwrap returns the cause so errors.Is(err, ErrTooManyColumns) works.
func (e *FormatError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports true for ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// NotFoundError reports a row, column or column name that does not exist.
type NotFoundError struct {
	// Kind is what was looked up: "row", "column" or "column name".
	Kind string

	// Key is the index or name that was requested.
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("table: %s %s does not exist", e.Kind, e.Key)
}

// Is reports true for ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func rowNotFound(i int) error {
	return &NotFoundError{Kind: "row", Key: fmt.Sprint(i)}
}

func columnNotFound(i int) error {
	return &NotFoundError{Kind: "column", Key: fmt.Sprint(i)}
}

func nameNotFound(name string) error {
	return &NotFoundError{Kind: "column name", Key: fmt.Sprintf("%q", name)}
}
