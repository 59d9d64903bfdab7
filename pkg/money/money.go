// Package money holds the monetary conventions shared across the storefront:
// amounts are carried as int64 cents, percentages are applied with decimal
// arithmetic, and display strings are rendered with exactly two decimals.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatCents renders an amount of cents as a US dollar display string,
// e.g. 2499 -> "$24.99", 123456 -> "$1,234.56".
func FormatCents(cents int64) string {
	d := decimal.New(cents, -2)
	f, _ := d.Float64()
	return printer.Sprintf("$%.2f", f)
}

// Percent applies a percentage rate to an amount of cents and rounds the
// result half away from zero to the nearest cent. The rate is expressed as a
// fraction, e.g. decimal 0.10 for 10%.
func Percent(cents int64, rate decimal.Decimal) int64 {
	return rate.Mul(decimal.NewFromInt(cents)).Round(0).IntPart()
}
