package model

import (
	"fmt"
	"strings"
)

// Format names how an account export carries its balance.
type Format string

const (
	// FormatDirectBalance exports carry a running balance on every row.
	FormatDirectBalance Format = "direct-balance"
	// FormatCumulative exports carry signed amounts only; the balance is
	// the running sum.
	FormatCumulative Format = "cumulative"
)

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatDirectBalance, FormatCumulative:
		return f, nil
	default:
		return "", fmt.Errorf("unknown account format %q", s)
	}
}

// Account is one input export and how to draw it.
type Account struct {
	Name   string
	Format Format
	File   string // relative to the config directory unless absolute
	Color  string // color name or #rrggbb
}
