package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/balances/internal/day"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"direct-balance", FormatDirectBalance, false},
		{"Cumulative", FormatCumulative, false},
		{" cumulative ", FormatCumulative, false},
		{"ofx", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseFormat(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "ParseFormat(%q)", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestRound_HalfAwayFromZero(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"75.005", "75.01"},
		{"-75.005", "-75.01"},
		{"0.004", "0.00"},
		{"1.115", "1.12"},
		{"100", "100.00"},
	}
	for _, tt := range tests {
		got := Round(decimal.RequireFromString(tt.in))
		assert.Equal(t, tt.want, got.StringFixed(2), "Round(%s)", tt.in)
	}
}

func TestSeriesLast(t *testing.T) {
	assert.True(t, Series{}.Last().IsZero())

	s := Series{Points: []Point{
		{Day: day.MustParse("2025-01-01"), Balance: decimal.NewFromInt(10)},
		{Day: day.MustParse("2025-01-02"), Balance: decimal.NewFromInt(25)},
	}}
	assert.Equal(t, "25.00", s.Last().StringFixed(2))
}
