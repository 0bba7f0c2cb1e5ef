package config

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mmr-tortoise/courseplanner/internal/logging"
)

// ValidationError represents a specific invalid setting.
type ValidationError struct {
	// Field is the config key that failed validation (e.g., "log.level").
	Field string

	// Message describes what's wrong with the value.
	Message string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation error: %s: %s", e.Field, e.Message)
}

// Validate checks cfg and returns every problem found (empty = valid).
//
// Checks performed:
//   - dataFile must not be empty
//   - separator must be exactly one character, and not a quote or line break
//   - log.level must be debug, info, warn or error
//   - log.format must be text or json
func Validate(cfg *Config) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(cfg.DataFile) == "" {
		errs = append(errs, ValidationError{
			Field:   "dataFile",
			Message: "catalog file path must not be empty",
		})
	}

	switch {
	case utf8.RuneCountInString(cfg.Separator) != 1:
		errs = append(errs, ValidationError{
			Field:   "separator",
			Message: fmt.Sprintf("must be exactly one character, got %q", cfg.Separator),
		})
	case cfg.Separator == `"` || cfg.Separator == "\n" || cfg.Separator == "\r":
		errs = append(errs, ValidationError{
			Field:   "separator",
			Message: fmt.Sprintf("%q cannot be used as a separator", cfg.Separator),
		})
	}

	if !logging.ValidLevel(cfg.Log.Level) {
		errs = append(errs, ValidationError{
			Field:   "log.level",
			Message: fmt.Sprintf("invalid level %q (valid: debug, info, warn, error)", cfg.Log.Level),
		})
	}

	switch strings.ToLower(cfg.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, ValidationError{
			Field:   "log.format",
			Message: fmt.Sprintf("invalid format %q (valid: text, json)", cfg.Log.Format),
		})
	}

	return errs
}

// JoinErrors renders validation errors as a single message, one per line.
func JoinErrors(errs []ValidationError) string {
	lines := make([]string, 0, len(errs))
	for i := range errs {
		lines = append(lines, errs[i].Error())
	}
	return strings.Join(lines, "\n")
}
