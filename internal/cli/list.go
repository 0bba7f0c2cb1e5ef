package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/courseplanner/internal/catalog"
	"github.com/mmr-tortoise/courseplanner/internal/model"
)

// NewListCommand creates the "list" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all courses in the catalog",
		Long: `Load the catalog, sort it by course number and print every course.

Rows skipped for having fewer than two prerequisites are reported on
stderr (or under "skipped" with --json).

Examples:
  courseplanner list
  courseplanner list --file catalog.csv
  courseplanner list --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.OutOrStdout(), cmd.ErrOrStderr(), newSession())
		},
	}
}

// runList loads and sorts the catalog and prints it in the selected format.
func runList(out, errOut io.Writer, s *catalog.Session) error {
	res, err := loadCatalog(s)
	if err != nil {
		return err
	}

	if IsJSONOutput() {
		return printListResultJSON(out, res, s.Courses())
	}

	printDiagnostics(errOut, res.Skipped)
	printListResultText(out, s.Courses())
	return nil
}

// listResultJSON is the JSON output structure of the list command.
type listResultJSON struct {
	Source  string             `json:"source"`
	Count   int                `json:"count"`
	Courses []model.Course     `json:"courses"`
	Skipped []model.Diagnostic `json:"skipped"`
}

// printListResultJSON outputs the course list as structured JSON.
func printListResultJSON(w io.Writer, res catalog.LoadResult, courses []model.Course) error {
	result := listResultJSON{
		Source: res.Path,
		Count:  len(courses),
		// Use empty slices instead of nil so the output shows [] instead
		// of null.
		Courses: make([]model.Course, 0, len(courses)),
		Skipped: make([]model.Diagnostic, 0, len(res.Skipped)),
	}
	result.Courses = append(result.Courses, courses...)
	result.Skipped = append(result.Skipped, res.Skipped...)

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize course list: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// printListResultText outputs one "id: title | prereq1 | prereq2" line per
// course.
func printListResultText(w io.Writer, courses []model.Course) {
	if len(courses) == 0 {
		fmt.Fprintln(w, "No courses found.")
		return
	}

	for _, c := range courses {
		fmt.Fprintln(w, catalog.DisplayCourse(c))
	}
}
