package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pivolan/worklife_dashboard/domain/models"
)

// ErrNoRecords is returned when a source holds no data rows.
var ErrNoRecords = errors.New("dataset has no records")

// MissingColumnsError lists required columns absent from the header.
type MissingColumnsError struct {
	Columns []models.Column
}

func (e *MissingColumnsError) Error() string {
	names := make([]string, len(e.Columns))
	for i, c := range e.Columns {
		names[i] = string(c)
	}
	return "missing columns: " + strings.Join(names, ", ")
}

// ParseError reports a value that could not be converted to its column type.
type ParseError struct {
	Line   int
	Column models.Column
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %s: cannot parse %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
