package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/courseplanner/internal/catalog"
	"github.com/mmr-tortoise/courseplanner/internal/model"
)

// NewSearchCommand creates the "search" cobra command.
func NewSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <course-number>",
		Short: "Show one course and its prerequisites",
		Long: `Load the catalog and print the course with the given number.

The match is exact and case-sensitive. A missing course exits with
status 4.

Examples:
  courseplanner search CSCI300
  courseplanner search CSCI300 --json`,

		Args: cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.OutOrStdout(), newSession(), args[0])
		},
	}
}

// runSearch loads the catalog and prints the course numbered key.
func runSearch(out io.Writer, s *catalog.Session, key string) error {
	if _, err := loadCatalog(s); err != nil {
		return err
	}

	course, ok := s.Find(key)
	if !ok {
		return model.NewCLIError(model.ExitCourseNotFound,
			fmt.Sprintf("course %s not found in %s", key, s.Path()))
	}
	VerboseLog("Found course %s", course.ID)

	if IsJSONOutput() {
		data, err := json.MarshalIndent(course, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize course: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintln(out, catalog.DisplayCourse(course))
	return nil
}
