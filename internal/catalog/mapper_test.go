package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/courseplanner/internal/model"
	"github.com/mmr-tortoise/courseplanner/internal/table"
)

func mustParse(t *testing.T, src string) *table.Table {
	t.Helper()

	tbl, err := table.Parse(src, table.DefaultSeparator)
	require.NoError(t, err)
	return tbl
}

// TestMapCourses_SkipsShortPrereqs walks the two-row scenario: CS101 has a
// single prerequisite and is skipped, CS200 has two and is kept.
func TestMapCourses_SkipsShortPrereqs(t *testing.T) {
	tbl := mustParse(t, "CS101,Intro,CS100,\nCS200,DataStructures,CS101,CS102\n")

	courses, skipped := MapCourses(tbl)

	require.Len(t, courses, 1)
	assert.Equal(t, model.Course{ID: "CS200", Title: "DataStructures", Prereqs: []string{"CS101", "CS102"}}, courses[0])

	require.Len(t, skipped, 1)
	assert.Equal(t, 0, skipped[0].Row)
	assert.Equal(t, "CS101", skipped[0].CourseID)
	assert.Equal(t, "CS101 does not have 2 or more prerequisites", skipped[0].Message)
}

func TestMapCourses_SkipCount(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantKept    []string
		wantSkipped int
	}{
		{
			name:        "no prerequisites",
			input:       "A,a\nB,b,,\n",
			wantSkipped: 2,
		},
		{
			name:        "only the second prerequisite",
			input:       "A,a,,X\n",
			wantSkipped: 1,
		},
		{
			name:        "mixed",
			input:       "A,a,X,Y\nB,b,X\nC,c,X,Y\nD,d\n",
			wantKept:    []string{"A", "C"},
			wantSkipped: 2,
		},
		{
			name:     "row order is kept",
			input:    "Z,z,X,Y\nA,a,X,Y\nM,m,X,Y\n",
			wantKept: []string{"Z", "A", "M"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			courses, skipped := MapCourses(mustParse(t, tt.input))

			var ids []string
			for _, c := range courses {
				assert.GreaterOrEqual(t, len(c.Prereqs), model.MinPrereqs)
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.wantKept, ids)
			assert.Len(t, skipped, tt.wantSkipped)
		})
	}
}

// TestMapCourses_ShortInsertedRow checks that rows added without padding
// are read as if the missing columns were empty.
func TestMapCourses_ShortInsertedRow(t *testing.T) {
	tbl := mustParse(t, "A,a,X,Y\n")
	require.True(t, tbl.InsertRow(1, []string{"B"}))
	require.True(t, tbl.InsertRow(2, nil))

	courses, skipped := MapCourses(tbl)
	require.Len(t, courses, 1)
	require.Len(t, skipped, 2)
	assert.Equal(t, "B", skipped[0].CourseID)
	assert.Equal(t, "", skipped[1].CourseID)
	assert.Equal(t, 2, skipped[1].Row)
}

func TestMapCourses_QuotedTitle(t *testing.T) {
	courses, skipped := MapCourses(mustParse(t, `CS300,"Topics, Advanced",CS101,CS200`))
	assert.Empty(t, skipped)
	require.Len(t, courses, 1)
	assert.Equal(t, `"Topics, Advanced"`, courses[0].Title)
	assert.Equal(t, []string{"CS101", "CS200"}, courses[0].Prereqs)
}
