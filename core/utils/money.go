package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPrice renders v rounded half away from zero to two decimals.
func FormatPrice(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatMoney renders v as a price followed by the currency code, if any.
func FormatMoney(v float64, currency string) string {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		return FormatPrice(v)
	}
	return FormatPrice(v) + " " + strings.ToUpper(currency)
}

// FormatQuantity renders q with at most three decimals and no trailing zeros.
func FormatQuantity(q float64) string {
	return decimal.NewFromFloat(q).Round(3).String()
}
