package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/balances/internal/day"
	"github.com/cleared-dev/balances/internal/model"
	"github.com/cleared-dev/balances/internal/timeline"
)

func point(d, v string) model.Point {
	return model.Point{Day: day.MustParse(d), Balance: decimal.RequireFromString(v)}
}

func TestWriteDaily(t *testing.T) {
	tl := timeline.New(day.MustParse("2025-01-01"), day.MustParse("2025-01-04"))
	checking := model.Series{Label: "SDCCU Checking", Points: []model.Point{
		point("2025-01-01", "100"),
		point("2025-01-03", "150.5"),
	}}
	credit := model.Series{Label: "Chase Credit", Points: []model.Point{
		point("2025-01-02", "-30"),
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteDaily(&buf, tl, checking, credit))

	want := strings.Join([]string{
		"date,SDCCU Checking,Chase Credit",
		"2025-01-01,100.00,0.00",
		"2025-01-02,100.00,-30.00",
		"2025-01-03,150.50,-30.00",
		"2025-01-04,150.50,-30.00",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteDaily_QuotesLabels(t *testing.T) {
	tl := timeline.New(day.MustParse("2025-01-01"), day.MustParse("2025-01-01"))
	s := model.Series{Label: "Savings, joint", Points: []model.Point{point("2025-01-01", "1")}}

	var buf bytes.Buffer
	require.NoError(t, WriteDaily(&buf, tl, s))
	assert.Equal(t, "date,\"Savings, joint\"\n2025-01-01,1.00\n", buf.String())
}

func TestWriteDaily_EmptyTimeline(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDaily(&buf, timeline.Timeline{}, model.Series{Label: "Total"}))
	assert.Equal(t, "date,Total\n", buf.String())
}
