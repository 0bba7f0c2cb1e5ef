// Package cli implements the cobra-based CLI commands for courseplanner.
//
// Each subcommand (list, search, add, export) is defined in its own file
// within this package. This file defines the root command, which runs the
// interactive advising menu when invoked without a subcommand, and the
// global flags and configuration shared by every command.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/courseplanner/internal/catalog"
	"github.com/mmr-tortoise/courseplanner/internal/config"
	"github.com/mmr-tortoise/courseplanner/internal/logging"
	"github.com/mmr-tortoise/courseplanner/internal/model"
	"github.com/mmr-tortoise/courseplanner/internal/table"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	jsonOutput bool

	// verbose enables [verbose] trace lines on stderr.
	verbose bool

	// configPath is an explicit config file. When empty, the working
	// directory is searched with config.FindConfigFile.
	configPath string

	// dataFile, separator, logLevel and logFormat override the matching
	// config keys when their flags are set.
	dataFile  string
	separator string
	logLevel  string
	logFormat string
)

// Resolved state, filled in by the root command's PersistentPreRunE before
// any RunE executes.
var (
	cfg    = config.Default()
	logger = logging.Discard()
)

// Version, Commit and Date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// Without a subcommand the root command starts the interactive menu. An
// optional positional argument names the catalog file, overriding both the
// config file and --file.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "courseplanner [catalog-file]",
		Short: "Course catalog advising tool",
		Long: `courseplanner loads a course catalog from a delimited text file and lets
advisors list, search and extend it.

Each catalog row holds a course number, a title and two prerequisite
course numbers. Rows with fewer than two prerequisites are reported and
skipped.

Run without a subcommand to start the interactive menu.`,

		Args: cobra.MaximumNArgs(1),

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return resolveConfig(cmd)
		},

		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.DataFile = args[0]
			}
			return runMenu(cmd.InOrStdin(), cmd.OutOrStdout(), newSession())
		},
	}

	// PersistentFlags are inherited by all subcommands.
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: .courseplanner.{yaml,yml,json,jsonc} in the working directory)")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "file", "f", "", "Catalog file to read")
	rootCmd.PersistentFlags().StringVar(&separator, "separator", "", "Field separator of the catalog file (default \",\")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: text, json")

	rootCmd.AddCommand(NewListCommand())
	rootCmd.AddCommand(NewSearchCommand())
	rootCmd.AddCommand(NewAddCommand())
	rootCmd.AddCommand(NewExportCommand())

	return rootCmd
}

// resolveConfig builds the effective configuration (defaults < config file
// < flags), validates it, and sets up logging on the command's stderr.
func resolveConfig(cmd *cobra.Command) error {
	resolved, err := loadConfigFile()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		resolved.DataFile = dataFile
	}
	if flags.Changed("separator") {
		resolved.Separator = separator
	}
	if flags.Changed("log-level") {
		resolved.Log.Level = logLevel
	}
	if flags.Changed("log-format") {
		resolved.Log.Format = logFormat
	}

	if errs := config.Validate(resolved); len(errs) > 0 {
		return model.NewCLIError(model.ExitInvalidConfig, config.JoinErrors(errs))
	}

	cfg = resolved
	logger = logging.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	logger.Debug("configuration resolved",
		"dataFile", cfg.DataFile, "separator", cfg.Separator, "level", cfg.Log.Level)
	return nil
}

// loadConfigFile reads the config file named by --config, or the first one
// found in the working directory. No config file at all means defaults.
func loadConfigFile() (*config.Config, error) {
	if configPath != "" {
		VerboseLog("Using config file %s", configPath)
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			var cliErr *model.CLIError
			if errors.As(err, &cliErr) {
				return nil, err
			}
			return nil, model.WrapCLIError(model.ExitInvalidConfig,
				fmt.Sprintf("failed to load config file %s", configPath), err)
		}
		return loaded, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return config.Default(), nil
	}

	path, err := config.FindConfigFile(wd)
	if err != nil {
		VerboseLog("No config file found, using defaults")
		return config.Default(), nil
	}

	VerboseLog("Using config file %s", path)
	loaded, err := config.LoadConfig(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitInvalidConfig,
			fmt.Sprintf("failed to load config file %s", path), err)
	}
	return loaded, nil
}

// newSession returns a catalog session for the resolved configuration.
func newSession() *catalog.Session {
	return catalog.NewSession(cfg.DataFile, cfg.SeparatorRune(), logger)
}

// loadCatalog loads and sorts the session's catalog, translating load
// failures into CLIErrors with the matching exit code.
func loadCatalog(s *catalog.Session) (catalog.LoadResult, error) {
	res, err := s.Load("")
	if err != nil {
		return res, loadError(err)
	}
	s.Sort()
	VerboseLog("Loaded %d course(s) from %s, skipped %d", res.Loaded, res.Path, len(res.Skipped))
	return res, nil
}

// loadError maps an error from Session.Load to a CLIError.
func loadError(err error) error {
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, table.ErrFormat):
		return model.WrapCLIError(model.ExitFormatError, "failed to load catalog", err)
	case errors.Is(err, fs.ErrNotExist), errors.As(err, &pathErr):
		return model.WrapCLIError(model.ExitFileNotFound, "failed to load catalog", err)
	default:
		return model.WrapCLIError(model.ExitGeneralError, "failed to load catalog", err)
	}
}

// printDiagnostics writes one line per skipped row.
func printDiagnostics(w io.Writer, diags []model.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(w, d.String())
	}
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes. CLIError types carry their own
// exit codes; other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(os.Stderr, cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(os.Stderr, err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(w io.Writer, message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// Errors go to stderr even in JSON mode, because stdout is reserved
		// for successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(w, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
