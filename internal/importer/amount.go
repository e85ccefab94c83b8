package importer

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var errBlankAmount = errors.New("blank amount")

var amountNoise = strings.NewReplacer("$", "", ",", "", " ", "")

// parseAmount converts a currency-formatted value such as "$1,234.56",
// "-$12.00" or "(12.00)" to a decimal. A blank value returns errBlankAmount.
func parseAmount(s string) (decimal.Decimal, error) {
	s = amountNoise.Replace(strings.TrimSpace(s))
	if s == "" {
		return decimal.Zero, errBlankAmount
	}
	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if negative {
		d = d.Neg()
	}
	return d, nil
}
