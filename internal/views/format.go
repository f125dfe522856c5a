package views

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money formats a dollar amount with thousands grouping and no cents.
func Money(amount decimal.Decimal) string {
	return printer.Sprintf("$%.0f", amount.Round(0).InexactFloat64())
}

// Millions formats an amount expressed in millions of dollars.
func Millions(amount float64) string {
	return printer.Sprintf("$%.1fM", amount)
}

// Count formats an integer with thousands grouping.
func Count(n int) string {
	return printer.Sprintf("%d", n)
}

// Percent renders a probability fraction as a percentage with four decimals.
func Percent(fraction decimal.Decimal) string {
	return fraction.Shift(2).StringFixed(4) + "%"
}

// ProbabilityPercent is Percent for raw catalog probabilities.
func ProbabilityPercent(p float64) string {
	return Percent(decimal.NewFromFloat(p))
}

// TCA renders a time of closest approach in UTC.
func TCA(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04 UTC")
}
