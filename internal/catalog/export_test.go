package catalog

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/courseplanner/internal/table"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		hasError bool
	}{
		{"csv", FormatCSV, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"JSON", FormatJSON, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func loadedSession(t *testing.T) *Session {
	t.Helper()

	s := NewSession("", table.DefaultSeparator, nil)
	_, err := s.Load(writeCatalog(t, "CS300,Algorithms,CS200,MATH201\nCS100,Intro,,\nCS200,DS,CS101,CS102\n"))
	require.NoError(t, err)
	s.Sort()
	return s
}

func TestExport_CSV(t *testing.T) {
	s := loadedSession(t)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, s, FormatCSV))
	assert.Equal(t, ",,,\nCS300,Algorithms,CS200,MATH201\nCS100,Intro,,\nCS200,DS,CS101,CS102\n", buf.String())
}

func TestExport_JSON(t *testing.T) {
	s := loadedSession(t)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, s, FormatJSON))

	var doc exportDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, s.Path(), doc.Source)
	assert.Equal(t, 2, doc.Count)
	assert.Equal(t, []string{"CS200", "CS300"}, idsOf(doc.Courses))
	assert.Equal(t, []string{"CS101", "CS102"}, doc.Courses[0].Prereqs)
}

func TestExport_YAML(t *testing.T) {
	s := loadedSession(t)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, s, FormatYAML))
	assert.Contains(t, buf.String(), "# Exported by courseplanner from")

	var doc exportDocument
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 2, doc.Count)
	assert.Equal(t, "CS300", doc.Courses[1].ID)
	assert.Equal(t, "Algorithms", doc.Courses[1].Title)
}

func TestExport_EmptySession(t *testing.T) {
	s := NewSession("none.csv", table.DefaultSeparator, nil)

	var buf bytes.Buffer
	require.NoError(t, Export(&buf, s, FormatJSON))
	assert.Contains(t, buf.String(), `"courses": []`)

	assert.ErrorIs(t, Export(&buf, s, FormatCSV), ErrNothingToSave)
	assert.Error(t, Export(&buf, s, Format("xml")))
}
