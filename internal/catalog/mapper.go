package catalog

import (
	"fmt"

	"github.com/mmr-tortoise/courseplanner/internal/model"
	"github.com/mmr-tortoise/courseplanner/internal/table"
)

// Column positions in a catalog row.
const (
	colID = iota
	colTitle
	colPrereq1
	colPrereq2
)

// MapCourses converts table rows into courses, in row order.
//
// A row whose prerequisite columns hold fewer than model.MinPrereqs
// non-empty values is skipped and reported as a Diagnostic. Rows shorter
// than four fields (possible after Table.InsertRow) read the missing
// columns as empty. MapCourses never fails; structural problems are
// reported by table.Parse before mapping starts.
func MapCourses(t *table.Table) ([]model.Course, []model.Diagnostic) {
	var (
		courses []model.Course
		skipped []model.Diagnostic
	)

	for i := 0; i < t.RowCount(); i++ {
		row, err := t.Row(i)
		if err != nil {
			continue
		}

		course := model.NewCourse(
			field(row, colID),
			field(row, colTitle),
			field(row, colPrereq1),
			field(row, colPrereq2),
		)

		if !course.HasRequiredPrereqs() {
			skipped = append(skipped, model.Diagnostic{
				Row:      i,
				CourseID: course.ID,
				Message:  fmt.Sprintf("%s does not have %d or more prerequisites", course.ID, model.MinPrereqs),
			})
			continue
		}

		courses = append(courses, course)
	}

	return courses, skipped
}

func field(row *table.Row, i int) string {
	f, err := row.Field(i)
	if err != nil {
		return ""
	}
	return f.String()
}
