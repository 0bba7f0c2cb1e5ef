package catalog

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/mmr-tortoise/courseplanner/internal/model"
	"github.com/mmr-tortoise/courseplanner/internal/table"
)

var (
	// ErrDuplicateCourse is returned by AddCourse when the course number is
	// already in the working set.
	ErrDuplicateCourse = errors.New("course already exists")

	// ErrNothingToSave is returned by Save before any table exists.
	ErrNothingToSave = errors.New("no catalog loaded")
)

// LoadResult summarizes a successful load.
type LoadResult struct {
	// Path is the file that was read.
	Path string

	// Loaded is the number of courses kept.
	Loaded int

	// Skipped lists the rows dropped by the prerequisite rule, in row order.
	Skipped []model.Diagnostic
}

// Session owns the working set of courses for one CLI process, together
// with the table they were mapped from so edits can be written back.
//
// A Session is not safe for concurrent use.
type Session struct {
	path    string
	sep     rune
	logger  *slog.Logger
	table   *table.Table
	courses []model.Course
}

// NewSession returns an empty session that reads catalog files from path,
// splitting fields on sep. A nil logger discards log output.
func NewSession(path string, sep rune, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{path: path, sep: sep, logger: logger}
}

// Path returns the current catalog file path.
func (s *Session) Path() string {
	return s.path
}

// SetPath changes the file used by later loads and saves. The working set
// is left untouched until the next Load.
func (s *Session) SetPath(path string) {
	s.path = path
}

// Load reads and parses the catalog at path, maps its rows into courses,
// and replaces the working set. An empty path means the current one.
//
// Loading is all-or-nothing: if the file cannot be read or parsed, the
// error is returned and the previous courses and table are kept. Rows
// skipped by the prerequisite rule do not fail the load; they are returned
// in LoadResult.Skipped.
func (s *Session) Load(path string) (LoadResult, error) {
	if path == "" {
		path = s.path
	}
	s.logger.Debug("loading catalog", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to open %s: %w", path, err)
	}

	t, err := table.Parse(string(data), s.sep)
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	courses, skipped := MapCourses(t)
	for _, d := range skipped {
		attrs := []any{"path", path, "row", d.Row, "course", d.CourseID}
		if row, err := t.Row(d.Row); err == nil {
			attrs = append(attrs, "fields", row.String())
		}
		s.logger.Info("course skipped", attrs...)
	}

	s.path = path
	s.table = t
	s.courses = courses

	s.logger.Debug("catalog loaded", "path", path, "rows", t.RowCount(), "courses", len(courses), "skipped", len(skipped))

	return LoadResult{Path: path, Loaded: len(courses), Skipped: skipped}, nil
}

// Sort orders the working set by course number.
func (s *Session) Sort() {
	SortByIDAscending(s.courses)
}

// Find looks a course up by its exact number in the current order.
func (s *Session) Find(key string) (model.Course, bool) {
	return FindByID(s.courses, key)
}

// Courses returns a copy of the working set in its current order.
func (s *Session) Courses() []model.Course {
	return slices.Clone(s.courses)
}

// Len returns the number of courses in the working set.
func (s *Session) Len() int {
	return len(s.courses)
}

// Table returns the table behind the working set, or nil before the first
// load or add.
func (s *Session) Table() *table.Table {
	return s.table
}

// AddCourse validates c, appends it to the working set, and appends its
// row to the backing table so a later Save writes it out. Without a loaded
// table a new empty one is started.
//
// Fields holding the separator, a quote or a line break are rejected with
// table.ErrReservedCharacter, since the saved file would not load back.
func (s *Session) AddCourse(c model.Course) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if _, ok := s.Find(c.ID); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCourse, c.ID)
	}

	t := s.table
	if t == nil {
		var err error
		t, err = table.New(table.PlaceholderHeader(table.CourseWidth), s.sep)
		if err != nil {
			return err
		}
	}

	fields := c.Fields()
	if err := t.CheckValues(fields); err != nil {
		return fmt.Errorf("course %s: %w", c.ID, err)
	}
	if !t.InsertRow(t.RowCount(), fields) {
		return fmt.Errorf("failed to add row for course %s", c.ID)
	}
	s.table = t
	s.courses = append(s.courses, c)

	s.logger.Debug("course added", "course", c.ID, "rows", s.table.RowCount())
	return nil
}

// Save writes the backing table to path (the current path when empty),
// creating missing parent directories.
func (s *Session) Save(path string) error {
	if s.table == nil {
		return ErrNothingToSave
	}
	if path == "" {
		path = s.path
	}

	if err := writeFile(path, []byte(s.table.Serialize())); err != nil {
		return err
	}

	s.logger.Debug("catalog saved", "path", path, "rows", s.table.RowCount())
	return nil
}

// writeFile writes data to path with 0644 permissions, creating the parent
// directory tree first.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
