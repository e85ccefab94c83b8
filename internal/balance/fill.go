// Package balance aligns account balances onto a shared timeline and sums
// them.
package balance

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/balances/internal/model"
	"github.com/cleared-dev/balances/internal/timeline"
)

// Fill makes b dense over tl. A day without a balance takes the previous
// day's balance, or zero before the account's first known balance. b is
// modified in place and returned.
func Fill(b model.Balances, tl timeline.Timeline) model.Balances {
	if b == nil {
		b = model.Balances{}
	}
	carry := decimal.Zero
	for d := range tl.Days() {
		if v, ok := b[d]; ok {
			carry = v
			continue
		}
		b[d] = carry
	}
	return b
}

// Dense returns a series with one point per timeline day, taken from a
// filled balance map.
func Dense(label, color string, b model.Balances, tl timeline.Timeline) model.Series {
	s := model.Series{Label: label, Color: color, Points: make([]model.Point, 0, tl.Len())}
	for d := range tl.Days() {
		s.Points = append(s.Points, model.Point{Day: d, Balance: b[d]})
	}
	return s
}
