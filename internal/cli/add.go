package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/courseplanner/internal/catalog"
	"github.com/mmr-tortoise/courseplanner/internal/model"
)

// addFlags holds the flag values for the add command.
type addFlags struct {
	// out is the file the updated catalog is written to. Empty means the
	// catalog file that was read.
	out string

	// create starts a new catalog when the catalog file does not exist.
	create bool
}

// NewAddCommand creates the "add" cobra command.
func NewAddCommand() *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add <course-number> <title> <prereq1> <prereq2>",
		Short: "Add a course to the catalog file",
		Long: `Append a course to the catalog and write the catalog back.

Both prerequisites are required and the course number must not already
be in the catalog. The catalog is rewritten in full, including rows that
were skipped on load.

Examples:
  courseplanner add CSCI500 "Compilers" CSCI300 CSCI350
  courseplanner add CSCI500 "Compilers" CSCI300 CSCI350 --out updated.csv
  courseplanner add CSCI100 "Intro" MATH100 MATH101 --file new.csv --create`,

		Args: cobra.ExactArgs(4),

		RunE: func(cmd *cobra.Command, args []string) error {
			course := model.NewCourse(args[0], args[1], args[2], args[3])
			return runAdd(cmd.OutOrStdout(), cmd.ErrOrStderr(), newSession(), course, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Write the updated catalog here instead of the catalog file")
	cmd.Flags().BoolVar(&flags.create, "create", false, "Start a new catalog if the catalog file does not exist")

	return cmd
}

// runAdd loads the catalog, appends course and saves the result.
func runAdd(out, errOut io.Writer, s *catalog.Session, course model.Course, flags *addFlags) error {
	res, err := s.Load("")
	switch {
	case err == nil:
		printDiagnostics(errOut, res.Skipped)
	case flags.create && errors.Is(err, fs.ErrNotExist):
		VerboseLog("Catalog %s does not exist, starting a new one", s.Path())
	default:
		return loadError(err)
	}

	if err := s.AddCourse(course); err != nil {
		return model.WrapCLIError(model.ExitInvalidCourse,
			fmt.Sprintf("cannot add course %s", course.ID), err)
	}

	target := flags.out
	if target == "" {
		target = s.Path()
	}
	if err := s.Save(target); err != nil {
		return model.WrapCLIError(model.ExitFileNotFound, "failed to save catalog", err)
	}
	VerboseLog("Wrote %d row(s) to %s", s.Table().RowCount(), target)

	if IsJSONOutput() {
		result := struct {
			Course model.Course `json:"course"`
			Path   string       `json:"path"`
			Count  int          `json:"count"`
		}{course, target, s.Len()}

		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize result: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Added %s to %s\n", catalog.DisplayCourse(course), target)
	return nil
}
