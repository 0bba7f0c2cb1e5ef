package table

import "strings"

// Row is an ordered list of fields. It keeps the Header of the table it was
// created for so fields can be addressed by column name as well as by
// position.
type Row struct {
	header Header
	values []string
}

// NewRow returns an empty row bound to header.
func NewRow(header Header) *Row {
	return &Row{
		header: header,
		values: make([]string, 0, header.Width()),
	}
}

// Len returns the number of fields currently in the row.
func (r *Row) Len() int {
	return len(r.values)
}

// Push appends a field to the end of the row.
func (r *Row) Push(value string) {
	r.values = append(r.values, value)
}

// Field returns the field at position i.
func (r *Row) Field(i int) (Field, error) {
	if i < 0 || i >= len(r.values) {
		return "", columnNotFound(i)
	}
	return Field(r.values[i]), nil
}

// FieldByName returns the field in the column called name.
func (r *Row) FieldByName(name string) (Field, error) {
	i := r.header.Index(name)
	if i < 0 {
		return "", nameNotFound(name)
	}
	return r.Field(i)
}

// Set overwrites the field in the column called name. It returns false when
// the header has no such column or the row is too short to hold it.
func (r *Row) Set(name, value string) bool {
	i := r.header.Index(name)
	if i < 0 || i >= len(r.values) {
		return false
	}
	r.values[i] = value
	return true
}

// Values returns a copy of the row's fields.
func (r *Row) Values() []string {
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

// String renders the row for display, each field followed by " | ".
func (r *Row) String() string {
	var b strings.Builder
	for _, v := range r.values {
		b.WriteString(v)
		b.WriteString(" | ")
	}
	return b.String()
}

// join renders the row for serialization.
func (r *Row) join(sep rune) string {
	return strings.Join(r.values, string(sep))
}
