package importer

import (
	"errors"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/balances/internal/day"
	"github.com/cleared-dev/balances/internal/model"
)

var errMissingColumn = errors.New("missing from header")

// entry is one export record after field conversion.
type entry struct {
	day     day.Day
	amount  decimal.Decimal
	pending bool
}

// chronological reverses newest-first entries and stable-sorts them by day.
// Entries sharing a day keep their export order, so the last entry of a day
// is its latest transaction.
func chronological(entries []entry) {
	slices.Reverse(entries)
	slices.SortStableFunc(entries, func(a, b entry) int { return day.Compare(a.day, b.day) })
}

// requireColumns checks that the export header carries every column.
func requireColumns(row model.Row, columns ...string) error {
	for _, c := range columns {
		if _, ok := row[c]; !ok {
			return &DataError{Column: c, Err: errMissingColumn}
		}
	}
	return nil
}

// ledgerBuilder folds chronological balances into a Ledger. Later values
// for a day replace earlier ones.
type ledgerBuilder struct {
	ledger model.Ledger
}

func newLedgerBuilder(entries []entry) *ledgerBuilder {
	b := &ledgerBuilder{ledger: model.Ledger{Balances: model.Balances{}}}
	if len(entries) > 0 {
		b.ledger.Span = day.Range{From: entries[0].day, To: entries[len(entries)-1].day}
	}
	return b
}

func (b *ledgerBuilder) add(d day.Day, balance decimal.Decimal) {
	b.ledger.Points = append(b.ledger.Points, model.Point{Day: d, Balance: balance})
	b.ledger.Balances[d] = balance
}

func (b *ledgerBuilder) build() model.Ledger { return b.ledger }
