// Package chart draws balance series as a time-series line chart.
package chart

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cleared-dev/balances/internal/day"
	"github.com/cleared-dev/balances/internal/model"
)

// Format selects the output encoding.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ErrNoData is returned when every series is empty.
var ErrNoData = errors.New("no data to chart")

const (
	DefaultWidth  = 1500
	DefaultHeight = 1000
)

var printer = message.NewPrinter(language.AmericanEnglish)

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case PNG, SVG:
		return f, nil
	default:
		return "", fmt.Errorf("unknown chart format %q want png or svg", s)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Chart collects series and renders them.
type Chart struct {
	Title  string
	Width  int
	Height int
	series []model.Series
}

// New returns an empty chart. Zero sizes fall back to the defaults.
func New(title string, width, height int) *Chart {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Chart{Title: title, Width: width, Height: height}
}

// Append adds a series to the chart. It is drawn on the next Render.
func (c *Chart) Append(s model.Series) {
	c.series = append(c.series, s)
}

// Series returns the series appended so far.
func (c *Chart) Series() []model.Series { return c.series }

// Render draws every non-empty series as straight, unfilled lines on a
// weekly time axis.
func (c *Chart) Render(w io.Writer, f Format) error {
	var series []gochart.Series
	var b bounds
	for _, s := range c.series {
		if len(s.Points) == 0 {
			continue
		}
		color, err := ParseColor(s.Color)
		if err != nil {
			return fmt.Errorf("series %q: %w", s.Label, err)
		}
		xs := make([]time.Time, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, p := range s.Points {
			xs[i] = p.Day.Time()
			ys[i] = p.Balance.InexactFloat64()
			b.add(p.Day, ys[i])
		}
		series = append(series, gochart.TimeSeries{
			Name:    s.Label,
			XValues: xs,
			YValues: ys,
			Style:   lineStyle(color),
		})
	}
	if len(series) == 0 {
		return ErrNoData
	}

	ch := gochart.Chart{
		Title:      c.Title,
		Width:      c.Width,
		Height:     c.Height,
		Background: gochart.Style{Padding: gochart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      xAxis(b.from, b.to),
		YAxis:      yAxis(b.minY, b.maxY),
		Series:     series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}

	provider := gochart.PNG
	if f == SVG {
		provider = gochart.SVG
	}
	if err := ch.Render(provider, w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

func lineStyle(color drawing.Color) gochart.Style {
	return gochart.Style{
		StrokeColor: color,
		StrokeWidth: 2,
	}
}

// bounds tracks the extent of every plotted point.
type bounds struct {
	from, to   day.Day
	minY, maxY float64
	seen       bool
}

func (b *bounds) add(d day.Day, y float64) {
	if !b.seen {
		b.from, b.to, b.minY, b.maxY, b.seen = d, d, y, y, true
		return
	}
	if d.Before(b.from) {
		b.from = d
	}
	if d.After(b.to) {
		b.to = d
	}
	b.minY = min(b.minY, y)
	b.maxY = max(b.maxY, y)
}

// xAxis spans from..to with a tick on every Monday. A one-day span is
// widened to two days so the axis has a width.
func xAxis(from, to day.Day) gochart.XAxis {
	if !to.After(from) {
		to = from.Add(1)
	}
	return gochart.XAxis{
		Name:  "Date",
		Range: &gochart.ContinuousRange{Min: gochart.TimeToFloat64(from.Time()), Max: gochart.TimeToFloat64(to.Time())},
		Ticks: weeklyTicks(from, to),
	}
}

func weeklyTicks(from, to day.Day) []gochart.Tick {
	var ticks []gochart.Tick
	d := from.Monday()
	if d.Before(from) {
		d = d.Add(7)
	}
	for ; !d.After(to); d = d.Add(7) {
		ticks = append(ticks, tick(d))
	}
	if len(ticks) < 2 {
		// Less than a week of data; label both ends instead.
		ticks = []gochart.Tick{tick(from), tick(to)}
	}
	return ticks
}

func tick(d day.Day) gochart.Tick {
	return gochart.Tick{Value: gochart.TimeToFloat64(d.Time()), Label: d.Format("Jan 2")}
}

// yAxis pads the balance range by 5%, or by 1 when every balance is equal.
func yAxis(minY, maxY float64) gochart.YAxis {
	pad := (maxY - minY) * 0.05
	if pad == 0 {
		pad = 1
	}
	return gochart.YAxis{
		Name:           "Balance",
		Range:          &gochart.ContinuousRange{Min: minY - pad, Max: maxY + pad},
		ValueFormatter: formatCurrency,
	}
}

// formatCurrency renders a float axis value as US dollars.
func formatCurrency(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	if f < 0 {
		return printer.Sprintf("-$%.2f", -f)
	}
	return printer.Sprintf("$%.2f", f)
}
