package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/courseplanner/internal/model"
)

// Format selects the output format of Export.
type Format string

const (
	// FormatCSV writes the backing table, exactly as Save would.
	FormatCSV Format = "csv"

	// FormatJSON writes the working set as indented JSON.
	FormatJSON Format = "json"

	// FormatYAML writes the working set as YAML.
	FormatYAML Format = "yaml"
)

// String returns the format name.
func (f Format) String() string {
	return string(f)
}

// ParseFormat converts a flag value to a Format. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid export format: %q (valid: csv, json, yaml)", s)
	}
}

// exportDocument is the JSON/YAML shape of an exported catalog.
type exportDocument struct {
	Source  string         `json:"source" yaml:"source"`
	Count   int            `json:"count" yaml:"count"`
	Courses []model.Course `json:"courses" yaml:"courses"`
}

// Export writes the session's catalog to w in the given format.
func Export(w io.Writer, s *Session, f Format) error {
	switch f {
	case FormatCSV:
		t := s.Table()
		if t == nil {
			return ErrNothingToSave
		}
		_, err := t.WriteTo(w)
		return err

	case FormatJSON:
		data, err := json.MarshalIndent(newExportDocument(s), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize catalog JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err

	case FormatYAML:
		data, err := yaml.Marshal(newExportDocument(s))
		if err != nil {
			return fmt.Errorf("failed to serialize catalog YAML: %w", err)
		}
		header := fmt.Sprintf("# Exported by courseplanner from %q\n", s.Path())
		_, err = io.WriteString(w, header+string(data))
		return err

	default:
		return fmt.Errorf("invalid export format: %q", f)
	}
}

func newExportDocument(s *Session) exportDocument {
	courses := s.Courses()
	if courses == nil {
		// Empty slice so JSON shows [] instead of null.
		courses = make([]model.Course, 0)
	}
	return exportDocument{
		Source:  s.Path(),
		Count:   len(courses),
		Courses: courses,
	}
}
