package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/courseplanner/internal/catalog"
	"github.com/mmr-tortoise/courseplanner/internal/model"
)

// exportFlags holds the flag values for the export command.
type exportFlags struct {
	// format is csv, json or yaml.
	format string

	// out is the destination file. Empty means stdout.
	out string
}

// NewExportCommand creates the "export" cobra command.
func NewExportCommand() *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog as CSV, JSON or YAML",
		Long: `Load the catalog and write it out in another format.

csv writes every row of the catalog table, skipped rows included.
json and yaml write the loaded courses sorted by course number.

Examples:
  courseplanner export --format json
  courseplanner export --format yaml --out catalog.yaml`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.OutOrStdout(), cmd.ErrOrStderr(), newSession(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "csv", "Output format: csv, json, yaml")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Output file (default: stdout)")

	return cmd
}

// runExport loads the catalog and writes it in the requested format.
func runExport(out, errOut io.Writer, s *catalog.Session, flags *exportFlags) (err error) {
	format, err := catalog.ParseFormat(flags.format)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid --format", err)
	}

	res, err := loadCatalog(s)
	if err != nil {
		return err
	}
	printDiagnostics(errOut, res.Skipped)

	w := out
	if flags.out != "" {
		f, createErr := os.Create(flags.out)
		if createErr != nil {
			return model.WrapCLIError(model.ExitFileNotFound,
				fmt.Sprintf("failed to create %s", flags.out), createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = model.WrapCLIError(model.ExitFileNotFound,
					fmt.Sprintf("failed to write %s", flags.out), cerr)
			}
		}()
		w = f
	}

	if err := catalog.Export(w, s, format); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "export failed", err)
	}
	VerboseLog("Exported %d course(s) as %s", s.Len(), format)
	return nil
}
