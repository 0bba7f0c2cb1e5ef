package table

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultSeparator is used when a zero separator is passed to Parse.
	DefaultSeparator = ','

	quote = '"'
)

// ErrInvalidSeparator is returned when the separator cannot delimit fields:
// the quote character, a line break, or an invalid rune.
var ErrInvalidSeparator = errors.New("table: invalid separator")

// ErrReservedCharacter is returned by CheckValues for a value that would not
// read back as the same single field once serialized.
var ErrReservedCharacter = errors.New("table: value contains a reserved character")

// Table owns a Header and the ordered rows parsed from (or added to) a
// delimited text source. Row identity is its position; inserting or deleting
// a row shifts the positions of every row after it.
type Table struct {
	header Header
	rows   []*Row
	sep    rune
}

// New returns an empty table with the given header and separator.
func New(header Header, sep rune) (*Table, error) {
	sep, err := checkSeparator(sep)
	if err != nil {
		return nil, err
	}
	return &Table{header: header, sep: sep}, nil
}

// Parse builds a table from course catalog text. The format has no header
// row, so the table gets a placeholder header CourseWidth columns wide and
// every non-empty line becomes a data row.
func Parse(src string, sep rune) (*Table, error) {
	return ParseWithHeader(src, sep, PlaceholderHeader(CourseWidth))
}

// ParseWithHeader is Parse with a caller-chosen header. Every line is data;
// the header is never read from the source.
//
// Rows shorter than the header are padded with empty fields. A row wider
// than the header fails the whole parse with a FormatError naming its line.
func ParseWithHeader(src string, sep rune, header Header) (*Table, error) {
	t, err := New(header, sep)
	if err != nil {
		return nil, err
	}

	lines := splitLines(src)
	if len(lines) == 0 {
		return nil, &FormatError{Err: ErrEmptySource}
	}

	for _, l := range lines {
		row := t.splitRow(l.text)

		for row.Len() < header.Width() {
			row.Push("")
		}
		if row.Len() > header.Width() {
			return nil, &FormatError{Line: l.number, Err: ErrTooManyColumns}
		}

		t.rows = append(t.rows, row)
	}

	return t, nil
}

type sourceLine struct {
	number int
	text   string
}

// splitLines returns the non-empty lines of src with their 1-based line
// numbers. A trailing carriage return is removed so CRLF files parse the
// same as LF files.
func splitLines(src string) []sourceLine {
	var lines []sourceLine
	for i, text := range strings.Split(src, "\n") {
		text = strings.TrimSuffix(text, "\r")
		if text == "" {
			continue
		}
		lines = append(lines, sourceLine{number: i + 1, text: text})
	}
	return lines
}

// splitRow scans line rune by rune. Each quote flips the quoted state; the
// separator ends a field only outside quotes. The last field runs to the end
// of the line. Quotes stay in the field text.
func (t *Table) splitRow(line string) *Row {
	row := NewRow(t.header)
	quoted := false
	start := 0
	sepLen := utf8.RuneLen(t.sep)

	for i, c := range line {
		switch {
		case c == quote:
			quoted = !quoted
		case c == t.sep && !quoted:
			row.Push(line[start:i])
			start = i + sepLen
		}
	}
	row.Push(line[start:])

	return row
}

func checkSeparator(sep rune) (rune, error) {
	if sep == 0 {
		return DefaultSeparator, nil
	}
	if sep == quote || sep == '\n' || sep == '\r' || !utf8.ValidRune(sep) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeparator, sep)
	}
	return sep, nil
}

// Header returns a copy of the table header.
func (t *Table) Header() Header {
	return NewHeader(t.header...)
}

// Separator returns the field separator.
func (t *Table) Separator() rune {
	return t.sep
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColumnCount returns the header width.
func (t *Table) ColumnCount() int {
	return t.header.Width()
}

// Row returns the row at position i.
func (t *Table) Row(i int) (*Row, error) {
	if i < 0 || i >= len(t.rows) {
		return nil, rowNotFound(i)
	}
	return t.rows[i], nil
}

// Field returns the field at (row, col).
func (t *Table) Field(row, col int) (Field, error) {
	r, err := t.Row(row)
	if err != nil {
		return "", err
	}
	return r.Field(col)
}

// FieldByName returns the field of row in the column called name.
func (t *Table) FieldByName(row int, name string) (Field, error) {
	r, err := t.Row(row)
	if err != nil {
		return "", err
	}
	return r.FieldByName(name)
}

// SetField overwrites the field of row in the column called name. It
// returns false if the row or the column does not exist.
func (t *Table) SetField(row int, name, value string) bool {
	r, err := t.Row(row)
	if err != nil {
		return false
	}
	return r.Set(name, value)
}

// InsertRow inserts a row built from values at position pos, shifting later
// rows down by one. Values are stored as given; padding and width checks are
// the caller's job. It returns false if pos is past the end of the table.
func (t *Table) InsertRow(pos int, values []string) bool {
	if pos < 0 || pos > len(t.rows) {
		return false
	}

	row := NewRow(t.header)
	for _, v := range values {
		row.Push(v)
	}

	t.rows = append(t.rows, nil)
	copy(t.rows[pos+1:], t.rows[pos:])
	t.rows[pos] = row
	return true
}

// DeleteRow removes the row at position pos, shifting later rows up by one.
// It returns false if pos is out of range.
func (t *Table) DeleteRow(pos int) bool {
	if pos < 0 || pos >= len(t.rows) {
		return false
	}
	copy(t.rows[pos:], t.rows[pos+1:])
	t.rows[len(t.rows)-1] = nil
	t.rows = t.rows[:len(t.rows)-1]
	return true
}

// Serialize renders the table as text: the header names joined by the
// separator on the first line, then one line per row. The header uses the
// table separator too, so a ';' table with a placeholder header starts
// with ";;;". Every line ends with
// a newline. Fields are written verbatim, without quoting.
func (t *Table) Serialize() string {
	var b strings.Builder
	b.WriteString(strings.Join(t.header, string(t.sep)))
	b.WriteByte('\n')
	for _, r := range t.rows {
		b.WriteString(r.join(t.sep))
		b.WriteByte('\n')
	}
	return b.String()
}

// CheckValues reports the first value holding the separator, a quote or a
// line break. Serialize writes fields verbatim, so such a value does not
// read back as one field.
func (t *Table) CheckValues(values []string) error {
	for _, v := range values {
		for _, c := range v {
			if c == t.sep || c == quote || c == '\n' || c == '\r' {
				return fmt.Errorf("%w: %q contains %q", ErrReservedCharacter, v, c)
			}
		}
	}
	return nil
}

// WriteTo writes the Serialize output to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, t.Serialize())
	return int64(n), err
}
