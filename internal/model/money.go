package model

import "github.com/shopspring/decimal"

// CurrencySymbol prefixes formatted amounts.
const CurrencySymbol = "₹"

// FormatAmount renders an amount rounded to whole currency units.
func FormatAmount(d decimal.Decimal) string {
	return CurrencySymbol + d.StringFixed(0)
}

// Pct converts a float ratio into a decimal percentage factor, e.g. Pct(0.8).
func Pct(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
