package model

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/balances/internal/day"
)

// Row is one parsed CSV record keyed by header name.
type Row map[string]string

// Point is an account balance at the end of a transaction.
type Point struct {
	Day     day.Day
	Balance decimal.Decimal
}

// Balances maps a calendar day to the balance at the end of that day.
// Keys are sparse until gap-filled.
type Balances map[day.Day]decimal.Decimal

// Ledger is the normalized form of one account export.
type Ledger struct {
	Points   []Point   // chronological
	Balances Balances  // one value per day with a known balance
	Span     day.Range // earliest..latest transaction, pending rows included
}

// Round rounds to cents, half away from zero.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
