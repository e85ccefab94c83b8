package model

import "github.com/shopspring/decimal"

// Series is a labeled, colored list of points, the unit the chart draws.
type Series struct {
	Label  string
	Color  string
	Points []Point
}

// Last returns the final balance of the series, or zero if it is empty.
func (s Series) Last() decimal.Decimal {
	if len(s.Points) == 0 {
		return decimal.Zero
	}
	return s.Points[len(s.Points)-1].Balance
}
