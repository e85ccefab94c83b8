package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/balances/internal/model"
)

const utf8BOM = "\ufeff"

// ReadRows reads delimited text using the first row as headers and returns
// one Row per remaining record. Short records are padded with empty values
// and empty trailing fields past the header are dropped.
func ReadRows(r io.Reader) ([]model.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // validated below
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, &ParseError{Line: lineOf(err), Err: err}
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(h, utf8BOM))
	}

	var rows []model.Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Line: lineOf(err), Err: err}
		}
		line, _ := cr.FieldPos(0)
		if len(rec) > len(header) && !isBlank(rec[len(header):]) {
			return nil, &ParseError{Line: line, Err: fmt.Errorf("expected at most %d fields, got %d", len(header), len(rec))}
		}
		if isBlank(rec) {
			continue
		}
		row := make(model.Row, len(header))
		for i, h := range header {
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// lineOf extracts the line number from a csv error, or 0 when unknown.
func lineOf(err error) int {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return perr.Line
	}
	return 0
}
