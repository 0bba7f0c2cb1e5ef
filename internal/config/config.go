package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/courseplanner/internal/model"
)

const (
	// DefaultDataFile is the catalog read when neither a flag nor a config
	// file names one.
	DefaultDataFile = "CS 300 ABCU_Advising_Program_Input.csv"

	// DefaultSeparator is the field separator of the catalog file.
	DefaultSeparator = ","
)

// configFileNames lists the file names FindConfigFile looks for, in
// priority order.
var configFileNames = []string{
	".courseplanner.yaml",
	".courseplanner.yml",
	".courseplanner.json",
	".courseplanner.jsonc",
}

// Config holds every setting the CLI reads from a file.
type Config struct {
	// DataFile is the path of the course catalog.
	DataFile string `json:"dataFile" yaml:"dataFile"`

	// Separator is the single character that splits catalog fields.
	Separator string `json:"separator" yaml:"separator"`

	// Log controls structured logging on stderr.
	Log LogConfig `json:"log" yaml:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level" yaml:"level"`

	// Format is text or json.
	Format string `json:"format" yaml:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataFile:  DefaultDataFile,
		Separator: DefaultSeparator,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// SeparatorRune returns the separator as a rune, or 0 when it is not
// exactly one character. Validate reports the latter case.
func (c *Config) SeparatorRune() rune {
	if utf8.RuneCountInString(c.Separator) != 1 {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(c.Separator)
	return r
}

// LoadConfig reads the config file at path on top of the defaults.
// Keys missing from the file keep their default values.
//
// The syntax is chosen by extension: .yaml/.yml is YAML, anything else is
// treated as JSONC (JSON with // and /* */ comments and trailing commas).
//
// Returns a CLIError with ExitConfigNotFound if the file does not exist.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitConfigNotFound,
				fmt.Sprintf("config file not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
		}
	default:
		// Strip comments and trailing commas before handing the bytes to
		// encoding/json.
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
		}
	}

	return cfg, nil
}

// FindConfigFile searches dir for a config file.
//
// The search order is .courseplanner.yaml, .courseplanner.yml,
// .courseplanner.json, .courseplanner.jsonc. Returns the path of the first
// one found, or a CLIError with ExitConfigNotFound.
func FindConfigFile(dir string) (string, error) {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", model.NewCLIError(
		model.ExitConfigNotFound,
		fmt.Sprintf("no config file found in %s (searched %s)", dir, strings.Join(configFileNames, ", ")),
	)
}
