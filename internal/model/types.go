package model

import (
	"fmt"
	"strings"
)

// MinPrereqs is the number of non-empty prerequisites a catalog row must
// carry for its course to be kept.
const MinPrereqs = 2

// Course is a single catalog entry.
type Course struct {
	// ID is the course number (e.g., "CSCI200"). Sorting and searching
	// use plain byte-wise string comparison on this field.
	ID string `json:"id" yaml:"id"`

	// Title is the human-readable course name. It is stored exactly as it
	// appeared in the file, including any quote characters.
	Title string `json:"title" yaml:"title"`

	// Prereqs lists the prerequisite course numbers in file order.
	// Only non-empty values are kept, so the slice holds 0..2 entries.
	Prereqs []string `json:"prereqs" yaml:"prereqs"`
}

// NewCourse builds a Course, dropping empty prerequisites.
func NewCourse(id, title string, prereqs ...string) Course {
	c := Course{ID: id, Title: title}
	for _, p := range prereqs {
		if p != "" {
			c.Prereqs = append(c.Prereqs, p)
		}
	}
	return c
}

// HasRequiredPrereqs reports whether the course satisfies the
// "at least MinPrereqs prerequisites" rule.
func (c Course) HasRequiredPrereqs() bool {
	return len(c.Prereqs) >= MinPrereqs
}

// Validate checks a course entered by a user before it is added to the
// catalog.
func (c Course) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return fmt.Errorf("course number must not be empty")
	}
	if !c.HasRequiredPrereqs() {
		return fmt.Errorf("course %s: %d prerequisite(s) given, at least %d required", c.ID, len(c.Prereqs), MinPrereqs)
	}
	return nil
}

// Fields returns the course as the four columns of a catalog row:
// id, title, prereq1, prereq2. Missing prerequisites become empty fields.
func (c Course) Fields() []string {
	fields := []string{c.ID, c.Title, "", ""}
	for i := 0; i < len(c.Prereqs) && i < 2; i++ {
		fields[2+i] = c.Prereqs[i]
	}
	return fields
}

// Diagnostic describes a catalog row that was skipped during a load.
// Skipping is a recoverable outcome, so a Diagnostic is not an error.
type Diagnostic struct {
	// Row is the 0-based position of the row in the table.
	Row int `json:"row"`

	// CourseID is the id read from the skipped row. It may be empty.
	CourseID string `json:"courseId"`

	// Message is the one-line text shown to the user.
	Message string `json:"message"`
}

// String returns the user-facing message.
func (d Diagnostic) String() string {
	return d.Message
}

// ExitCode defines the CLI process exit codes.
// Scripts can rely on these to tell failure modes apart.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitFileNotFound indicates the catalog file could not be opened or
	// written.
	ExitFileNotFound ExitCode = 2

	// ExitFormatError indicates the catalog file is malformed (empty, or a
	// row with too many columns).
	ExitFormatError ExitCode = 3

	// ExitCourseNotFound indicates a searched course number does not exist.
	ExitCourseNotFound ExitCode = 4

	// ExitInvalidConfig indicates the configuration file or flags are invalid.
	ExitInvalidConfig ExitCode = 5

	// ExitConfigNotFound indicates no configuration file was found. The CLI
	// falls back to defaults, so this code only surfaces from an explicit
	// --config path.
	ExitConfigNotFound ExitCode = 6

	// ExitInvalidCourse indicates a course given to "add" breaks a catalog
	// rule (missing prerequisites, duplicate number).
	ExitInvalidCourse ExitCode = 7
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
