package importer

import (
	"errors"

	"github.com/cleared-dev/balances/internal/day"
	"github.com/cleared-dev/balances/internal/model"
)

const (
	directDateColumn    = "Date"
	directBalanceColumn = "Balance"
)

// DirectBalanceParser normalizes newest-first exports that carry the
// account balance on every row, such as SDCCU checking and savings.
type DirectBalanceParser struct {
	DateColumn    string
	BalanceColumn string
}

// NewDirectBalanceParser returns a parser for the Date/Balance layout.
func NewDirectBalanceParser() *DirectBalanceParser {
	return &DirectBalanceParser{DateColumn: directDateColumn, BalanceColumn: directBalanceColumn}
}

// Format returns the format this parser handles.
func (p *DirectBalanceParser) Format() model.Format { return model.FormatDirectBalance }

// Normalize converts export rows into a chronological Ledger. Rows with a
// blank balance are pending: they are left out of Points and Balances but
// still count towards the Span. When a day has several rows the latest
// transaction's balance is the day's balance.
func (p *DirectBalanceParser) Normalize(rows []model.Row) (model.Ledger, error) {
	if len(rows) == 0 {
		return model.Ledger{Balances: model.Balances{}}, nil
	}
	if err := requireColumns(rows[0], p.DateColumn, p.BalanceColumn); err != nil {
		return model.Ledger{}, err
	}

	entries := make([]entry, 0, len(rows))
	for i, row := range rows {
		d, err := day.Parse(row[p.DateColumn])
		if err != nil {
			return model.Ledger{}, &DataError{Record: i + 1, Column: p.DateColumn, Value: row[p.DateColumn], Err: err}
		}
		balance, err := parseAmount(row[p.BalanceColumn])
		switch {
		case errors.Is(err, errBlankAmount):
			entries = append(entries, entry{day: d, pending: true})
		case err != nil:
			return model.Ledger{}, &DataError{Record: i + 1, Column: p.BalanceColumn, Value: row[p.BalanceColumn], Err: err}
		default:
			entries = append(entries, entry{day: d, amount: model.Round(balance)})
		}
	}
	chronological(entries)

	b := newLedgerBuilder(entries)
	for _, e := range entries {
		if e.pending {
			continue
		}
		b.add(e.day, e.amount)
	}
	return b.build(), nil
}
