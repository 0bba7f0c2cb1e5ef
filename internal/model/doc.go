// Package model defines the domain types and value objects for the
// courseplanner CLI.
//
// This package contains pure data structures with no external dependencies.
// Course values are transient representations rebuilt from the catalog
// file on every load.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
