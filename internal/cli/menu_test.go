package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/courseplanner/internal/catalog"
	"github.com/mmr-tortoise/courseplanner/internal/logging"
	"github.com/mmr-tortoise/courseplanner/internal/table"
)

// runMenuScript feeds input to a menu over a session reading path.
func runMenuScript(t *testing.T, path, input string) (string, *catalog.Session) {
	t.Helper()

	var out bytes.Buffer
	s := catalog.NewSession(path, table.DefaultSeparator, logging.Discard())
	require.NoError(t, runMenu(strings.NewReader(input), &out, s))
	return out.String(), s
}

func TestMenu_LoadDisplaySearch(t *testing.T) {
	out, s := runMenuScript(t, catalogFixture(t, "courses.csv"), "1\n2\n3\nCSCI300\n3\nCSCI999\n9\n")

	assert.Contains(t, out, "Loading CSV file ")
	assert.Contains(t, out, "CSCI101 does not have 2 or more prerequisites\n")
	assert.Contains(t, out, "5 courses read and sorted\n")
	assert.Contains(t, out, "time: ")
	assert.Contains(t, out, sortedFixture)
	assert.Contains(t, out, "Enter course number:\nCSCI300: Introduction to Algorithms | CSCI200 | MATH201\n")
	assert.Contains(t, out, "Enter course number:\nCourse not found\n")
	assert.True(t, strings.HasSuffix(out, "Good bye.\n"))
	assert.Equal(t, 5, s.Len())
}

func TestMenu_DisplayBeforeLoad(t *testing.T) {
	out, _ := runMenuScript(t, catalogFixture(t, "courses.csv"), "2\n9\n")
	assert.NotContains(t, out, "CSCI")
}

func TestMenu_InvalidChoices(t *testing.T) {
	out, _ := runMenuScript(t, catalogFixture(t, "courses.csv"), "abc\n7\n\n9\n")

	assert.Contains(t, out, `"abc" is not a valid option.`)
	assert.Contains(t, out, "7 is not a valid option.")
	assert.Contains(t, out, `"" is not a valid option.`)
	assert.Equal(t, 4, strings.Count(out, "Enter choice: "))
}

// TestMenu_EndOfInput verifies that running out of input exits cleanly,
// including in the middle of a prompt.
func TestMenu_EndOfInput(t *testing.T) {
	for _, input := range []string{"", "1\n", "3\n", "5\nCSCI500\n"} {
		out, _ := runMenuScript(t, catalogFixture(t, "courses.csv"), input)
		assert.True(t, strings.HasSuffix(out, "Good bye.\n"), "input %q", input)
	}
}

func TestMenu_ChangeFile(t *testing.T) {
	semicolon := catalogFixture(t, "semicolon.csv")
	missing := filepath.Join(t.TempDir(), "missing file.csv")

	input := "1\n4\n" + missing + "\n1\n2\n9\n"
	out, s := runMenuScript(t, catalogFixture(t, "courses.csv"), input)

	assert.Equal(t, missing, s.Path())
	assert.Contains(t, out, "Current file: "+missing+"\n")
	assert.Contains(t, out, "Error: failed to load catalog")
	// The failed load keeps the previous courses.
	assert.Equal(t, 5, s.Len())
	assert.Contains(t, out, sortedFixture)

	_, s = runMenuScript(t, semicolon, "4\n\n9\n")
	assert.Equal(t, semicolon, s.Path(), "empty answer keeps the file")
}

func TestMenu_AddAndSave(t *testing.T) {
	path := copyFixture(t, "courses.csv")

	input := strings.Join([]string{
		"1",
		"5", "CSCI500", "Compiler Construction", "CSCI300", "CSCI350",
		"5", "CSCI501", "Incomplete", "CSCI300", "",
		"6",
		"3", "CSCI500",
		"9",
	}, "\n") + "\n"
	out, s := runMenuScript(t, path, input)

	assert.Contains(t, out, "Enter Id: Enter title: Enter first prereq: Enter second prereq: ")
	assert.Contains(t, out, "Added CSCI500: Compiler Construction | CSCI300 | CSCI350\n")
	assert.Contains(t, out, "Error: course CSCI501")
	assert.Contains(t, out, "Saved 9 row(s) to "+path)
	assert.Contains(t, out, "Enter course number:\nCSCI500: Compiler Construction | CSCI300 | CSCI350\n")
	assert.Equal(t, 6, s.Len())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "CSCI500,Compiler Construction,CSCI300,CSCI350\n"))
}

// TestMenu_AddKeepsOrder verifies that a course added from the menu is
// listed in course-number order right away.
func TestMenu_AddKeepsOrder(t *testing.T) {
	input := strings.Join([]string{
		"1",
		"5", "CSCI250", "Software Testing", "CSCI200", "MATH201",
		"2",
		"9",
	}, "\n") + "\n"
	out, s := runMenuScript(t, catalogFixture(t, "courses.csv"), input)

	ids := make([]string, 0, s.Len())
	for _, c := range s.Courses() {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"CSCI200", "CSCI250", "CSCI300", "CSCI310", "CSCI350", "CSCI400"}, ids)
	assert.Contains(t, out, "CSCI200: Data Structures | CSCI101 | MATH201\n"+
		"CSCI250: Software Testing | CSCI200 | MATH201\n"+
		"CSCI300: Introduction to Algorithms | CSCI200 | MATH201\n")
}

func TestMenu_SaveBeforeLoad(t *testing.T) {
	out, _ := runMenuScript(t, filepath.Join(t.TempDir(), "x.csv"), "6\n9\n")
	assert.Contains(t, out, "Error: no catalog loaded")
}

func TestRootCommand_RunsMenu(t *testing.T) {
	stdout, _, err := executeCommand(t, "1\n9\n", catalogFixture(t, "courses.csv"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "5 courses read and sorted")
	assert.Contains(t, stdout, "Good bye.")
}
