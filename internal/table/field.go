package table

import (
	"fmt"

	"github.com/spf13/cast"
)

// Field is a single cell value. Values are stored as text exactly as they
// appeared in the source; the typed accessors convert on demand and report
// a conversion failure instead of returning a zero value.
type Field string

// String returns the raw text of the field.
func (f Field) String() string {
	return string(f)
}

// IsEmpty reports whether the field holds no text.
func (f Field) IsEmpty() bool {
	return f == ""
}

// Int parses the field as an integer.
func (f Field) Int() (int, error) {
	v, err := cast.ToIntE(string(f))
	if err != nil {
		return 0, fmt.Errorf("field %q is not an integer: %w", string(f), err)
	}
	return v, nil
}

// Float parses the field as a floating point number.
func (f Field) Float() (float64, error) {
	v, err := cast.ToFloat64E(string(f))
	if err != nil {
		return 0, fmt.Errorf("field %q is not a number: %w", string(f), err)
	}
	return v, nil
}

// Bool parses the field as a boolean ("true", "false", "1", "0", ...).
func (f Field) Bool() (bool, error) {
	v, err := cast.ToBoolE(string(f))
	if err != nil {
		return false, fmt.Errorf("field %q is not a boolean: %w", string(f), err)
	}
	return v, nil
}
