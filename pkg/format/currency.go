// Package format renders amounts and measurements for display.
package format

import (
	"strconv"

	"github.com/prasdif/calculator/pkg/constants"
	"github.com/prasdif/calculator/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var displayTag = language.MustParse(constants.DisplayLocale)

// Currency returns an amount with the rupee symbol and locale grouping (e.g., "₹1,05,600").
// Fractions are kept only when present, up to two digits.
func Currency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	p := message.NewPrinter(displayTag)
	return sign + constants.CurrencySymbol + p.Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
}

// Decimal returns a value rounded to two decimals with exactly two fraction digits.
func Decimal(value float64) string {
	return strconv.FormatFloat(mathutil.Round(value), 'f', 2, 64)
}

// Measure returns a value with two decimals followed by its unit symbol (e.g., "3.61 cm").
func Measure(value float64, unit string) string {
	return Decimal(value) + " " + unit
}

// Quantity renders a magnitude the way it was entered, without trailing zeros.
func Quantity(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
