package table

// CourseWidth is the number of columns in a course catalog file:
// id, title, first prerequisite, second prerequisite.
const CourseWidth = 4

// Header is the ordered list of column names of a Table. Its length is the
// table width. Names may be empty placeholders when the source format has
// no header row.
type Header []string

// NewHeader returns a header with the given column names.
func NewHeader(names ...string) Header {
	h := make(Header, len(names))
	copy(h, names)
	return h
}

// PlaceholderHeader returns a header of the given width whose names are
// all empty.
func PlaceholderHeader(width int) Header {
	if width < 0 {
		width = 0
	}
	return make(Header, width)
}

// Width returns the number of columns.
func (h Header) Width() int {
	return len(h)
}

// Index returns the position of the first column called name, or -1.
// An empty name never matches: placeholder columns are unnamed, and
// matching "" would silently address column 0.
func (h Header) Index(name string) int {
	if name == "" {
		return -1
	}
	for i, n := range h {
		if n == name {
			return i
		}
	}
	return -1
}
