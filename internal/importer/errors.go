package importer

import "fmt"

// ParseError reports malformed delimited text.
type ParseError struct {
	Line int // 0 when the reader could not tell
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parsing CSV line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("parsing CSV: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// DataError reports a field that could not be converted, or a required
// column that is missing. Record is the 1-based data record, header excluded.
type DataError struct {
	Record int
	Column string
	Value  string
	Err    error
}

func (e *DataError) Error() string {
	if e.Record == 0 {
		return fmt.Sprintf("column %q: %v", e.Column, e.Err)
	}
	return fmt.Sprintf("record %d: parsing %s %q: %v", e.Record, e.Column, e.Value, e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }
