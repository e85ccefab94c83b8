package importer

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/balances/internal/day"
	"github.com/cleared-dev/balances/internal/model"
)

func readTestRows(t *testing.T, name string) []model.Row {
	t.Helper()
	f, err := os.Open("../../testdata/" + name)
	require.NoError(t, err)
	defer f.Close()

	rows, err := ReadRows(f)
	require.NoError(t, err)
	return rows
}

func TestDirectBalanceParser_Normalize(t *testing.T) {
	p := NewDirectBalanceParser()
	ledger, err := p.Normalize(readTestRows(t, "sdccu_checking.csv"))
	require.NoError(t, err)

	// Pending row (blank balance) is excluded from points.
	require.Len(t, ledger.Points, 4)
	assert.Equal(t, "2025-01-02", ledger.Points[0].Day.String())
	assert.Equal(t, "2500.00", ledger.Points[0].Balance.StringFixed(2))
	assert.Equal(t, "2025-01-09", ledger.Points[3].Day.String())
	assert.Equal(t, "3245.50", ledger.Points[3].Balance.StringFixed(2))

	// Chronological order.
	for i := 1; i < len(ledger.Points); i++ {
		assert.False(t, ledger.Points[i].Day.Before(ledger.Points[i-1].Day))
	}

	// Pending row still widens the span.
	assert.Equal(t, "2025-01-02", ledger.Span.From.String())
	assert.Equal(t, "2025-01-10", ledger.Span.To.String())
	_, ok := ledger.Balances[day.MustParse("01/10/2025")]
	assert.False(t, ok)
	assert.Len(t, ledger.Balances, 3)
}

func TestDirectBalanceParser_LatestOfDayWins(t *testing.T) {
	p := NewDirectBalanceParser()
	ledger, err := p.Normalize(readTestRows(t, "sdccu_checking.csv"))
	require.NoError(t, err)

	// Two rows on 01/09; the newest-first export lists the latest one first.
	assert.Equal(t, "3245.50", ledger.Balances[day.MustParse("01/09/2025")].StringFixed(2))
}

func TestDirectBalanceParser_LatestOfDayWins_Unsorted(t *testing.T) {
	// Out-of-order export: days are sorted, same-day rows keep export order.
	rows := []model.Row{
		{"Date": "01/03/2025", "Balance": "30.00"},
		{"Date": "01/05/2025", "Balance": "52.00"},
		{"Date": "01/05/2025", "Balance": "51.00"},
		{"Date": "01/01/2025", "Balance": "10.00"},
	}
	ledger, err := NewDirectBalanceParser().Normalize(rows)
	require.NoError(t, err)

	assert.Equal(t, "52.00", ledger.Balances[day.MustParse("01/05/2025")].StringFixed(2))
	assert.Equal(t, "2025-01-01", ledger.Span.From.String())
	assert.Equal(t, "2025-01-05", ledger.Span.To.String())
	assert.Equal(t, "10.00", ledger.Points[0].Balance.StringFixed(2))
}

func TestDirectBalanceParser_AllPending(t *testing.T) {
	rows := []model.Row{
		{"Date": "01/04/2025", "Balance": ""},
		{"Date": "01/03/2025", "Balance": " "},
	}
	ledger, err := NewDirectBalanceParser().Normalize(rows)
	require.NoError(t, err)
	assert.Empty(t, ledger.Points)
	assert.Empty(t, ledger.Balances)
	assert.Equal(t, "2025-01-03", ledger.Span.From.String())
	assert.Equal(t, "2025-01-04", ledger.Span.To.String())
}

func TestDirectBalanceParser_Empty(t *testing.T) {
	ledger, err := NewDirectBalanceParser().Normalize(nil)
	require.NoError(t, err)
	assert.Empty(t, ledger.Points)
	assert.NotNil(t, ledger.Balances)
	assert.True(t, ledger.Span.IsZero())
}

func TestDirectBalanceParser_BadDate(t *testing.T) {
	rows := []model.Row{
		{"Date": "01/04/2025", "Balance": "1.00"},
		{"Date": "NOTADATE", "Balance": "1.00"},
	}
	_, err := NewDirectBalanceParser().Normalize(rows)
	var derr *DataError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, 2, derr.Record)
	assert.Equal(t, "Date", derr.Column)
	assert.Contains(t, err.Error(), "parsing Date")
}

func TestDirectBalanceParser_BadBalance(t *testing.T) {
	rows := []model.Row{{"Date": "01/04/2025", "Balance": "$12.x0"}}
	_, err := NewDirectBalanceParser().Normalize(rows)
	var derr *DataError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "Balance", derr.Column)
	assert.Equal(t, "$12.x0", derr.Value)
}

func TestDirectBalanceParser_MissingColumn(t *testing.T) {
	rows := []model.Row{{"Date": "01/04/2025", "Amount": "1.00"}}
	_, err := NewDirectBalanceParser().Normalize(rows)
	var derr *DataError
	require.True(t, errors.As(err, &derr))
	assert.ErrorIs(t, err, errMissingColumn)
	assert.Contains(t, err.Error(), `"Balance"`)
}

func TestDirectBalanceParser_Format(t *testing.T) {
	assert.Equal(t, model.FormatDirectBalance, NewDirectBalanceParser().Format())
}
