package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/cleared-dev/balances/internal/model"
)

// DetectFormat guesses the export format from its header row.
func DetectFormat(header []string) (model.Format, error) {
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.TrimSpace(strings.TrimPrefix(h, utf8BOM))
	}
	switch {
	case slices.Contains(cols, directDateColumn) && slices.Contains(cols, directBalanceColumn):
		return model.FormatDirectBalance, nil
	case slices.Contains(cols, chaseDateColumn) && slices.Contains(cols, chaseAmountColumn):
		return model.FormatCumulative, nil
	default:
		return "", fmt.Errorf("unrecognized header %q", strings.Join(cols, ","))
	}
}

// SniffFile reads the header of the CSV at path and detects its format.
func SniffFile(path string) (model.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return sniff(f)
}

func sniff(r io.Reader) (model.Format, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return "", &ParseError{Line: lineOf(err), Err: err}
	}
	return DetectFormat(header)
}
