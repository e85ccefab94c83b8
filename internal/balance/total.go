package balance

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/balances/internal/model"
	"github.com/cleared-dev/balances/internal/timeline"
)

// DefaultTotalLabel and DefaultTotalColor style the Total series.
const (
	DefaultTotalLabel = "Total"
	DefaultTotalColor = "purple"
)

// Total fills every account over tl and sums them day by day, rounding
// each daily sum to cents.
func Total(tl timeline.Timeline, label, color string, accounts ...model.Balances) model.Series {
	for i := range accounts {
		accounts[i] = Fill(accounts[i], tl)
	}

	s := model.Series{Label: label, Color: color, Points: make([]model.Point, 0, tl.Len())}
	for d := range tl.Days() {
		sum := decimal.Zero
		for _, b := range accounts {
			sum = sum.Add(b[d])
		}
		s.Points = append(s.Points, model.Point{Day: d, Balance: model.Round(sum)})
	}
	return s
}
