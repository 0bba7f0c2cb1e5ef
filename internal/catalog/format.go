package catalog

import (
	"strings"

	"github.com/mmr-tortoise/courseplanner/internal/model"
)

// DisplayCourse formats a course as "id: title | prereq1 | prereq2".
//
// Loaded courses always carry two prerequisites. A course with fewer is
// rendered with only the prerequisites it has rather than failing.
func DisplayCourse(c model.Course) string {
	var b strings.Builder
	b.WriteString(c.ID)
	b.WriteString(": ")
	b.WriteString(c.Title)
	for _, p := range c.Prereqs {
		b.WriteString(" | ")
		b.WriteString(p)
	}
	return b.String()
}
