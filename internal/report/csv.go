// Package report writes aligned daily balances as CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/balances/internal/day"
	"github.com/cleared-dev/balances/internal/model"
	"github.com/cleared-dev/balances/internal/timeline"
)

// DateColumn is the first header cell of a daily report.
const DateColumn = "date"

// WriteDaily writes one row per timeline day with a column per series.
// A series without a point on some day repeats its previous value, or
// zero before its first point.
func WriteDaily(w io.Writer, tl timeline.Timeline, series ...model.Series) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := make([]string, 0, len(series)+1)
	header = append(header, DateColumn)
	for _, s := range series {
		header = append(header, s.Label)
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	byDay := make([]map[day.Day]decimal.Decimal, len(series))
	for i, s := range series {
		byDay[i] = make(map[day.Day]decimal.Decimal, len(s.Points))
		for _, p := range s.Points {
			byDay[i][p.Day] = p.Balance
		}
	}

	carry := make([]decimal.Decimal, len(series))
	row := make([]string, len(series)+1)
	n := 2
	for d := range tl.Days() {
		row[0] = d.String()
		for i := range series {
			if v, ok := byDay[i][d]; ok {
				carry[i] = v
			}
			row[i+1] = carry[i].StringFixed(2)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", n, err)
		}
		n++
	}
	cw.Flush()
	return cw.Error()
}
