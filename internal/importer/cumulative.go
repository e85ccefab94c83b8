package importer

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/balances/internal/day"
	"github.com/cleared-dev/balances/internal/model"
)

const (
	chaseDateColumn   = "Post Date"
	chaseAmountColumn = "Amount"
)

// CumulativeParser normalizes newest-first exports that carry only signed
// amounts, such as Chase credit card activity. The balance starts at zero.
type CumulativeParser struct {
	DateColumn   string
	AmountColumn string
}

// NewCumulativeParser returns a parser for the Chase Post Date/Amount layout.
func NewCumulativeParser() *CumulativeParser {
	return &CumulativeParser{DateColumn: chaseDateColumn, AmountColumn: chaseAmountColumn}
}

// Format returns the format this parser handles.
func (p *CumulativeParser) Format() model.Format { return model.FormatCumulative }

// Normalize converts export rows into a chronological Ledger whose balance
// is the running sum of amounts, rounded to cents after every addition.
func (p *CumulativeParser) Normalize(rows []model.Row) (model.Ledger, error) {
	if len(rows) == 0 {
		return model.Ledger{Balances: model.Balances{}}, nil
	}
	if err := requireColumns(rows[0], p.DateColumn, p.AmountColumn); err != nil {
		return model.Ledger{}, err
	}

	entries := make([]entry, 0, len(rows))
	for i, row := range rows {
		d, err := day.Parse(row[p.DateColumn])
		if err != nil {
			return model.Ledger{}, &DataError{Record: i + 1, Column: p.DateColumn, Value: row[p.DateColumn], Err: err}
		}
		amount, err := parseAmount(row[p.AmountColumn])
		if err != nil {
			return model.Ledger{}, &DataError{Record: i + 1, Column: p.AmountColumn, Value: row[p.AmountColumn], Err: err}
		}
		entries = append(entries, entry{day: d, amount: amount})
	}
	chronological(entries)

	b := newLedgerBuilder(entries)
	balance := decimal.Zero
	for _, e := range entries {
		balance = model.Round(balance.Add(e.amount))
		b.add(e.day, balance)
	}
	return b.build(), nil
}
