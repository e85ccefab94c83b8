package chart

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

var hexColor = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

var namedColors = map[string]string{
	"black":  "000000",
	"blue":   "0000ff",
	"gray":   "808080",
	"green":  "008000",
	"orange": "ffa500",
	"purple": "800080",
	"red":    "ff0000",
	"teal":   "008080",
}

// ParseColor resolves a color name or #rrggbb value.
func ParseColor(s string) (drawing.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return drawing.ColorBlack, nil
	}
	if hex, ok := namedColors[s]; ok {
		return drawing.ColorFromHex(hex), nil
	}
	if hexColor.MatchString(s) {
		return drawing.ColorFromHex(strings.TrimPrefix(s, "#")), nil
	}
	return drawing.Color{}, fmt.Errorf("unknown color %q", s)
}
