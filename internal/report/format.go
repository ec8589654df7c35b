package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/bankstat-dev/bankstat/internal/analyze"
)

// undefinedSentinel is printed where a metric has no defined value, such as a
// savings rate over zero income. It is never silently rendered as 0.
const undefinedSentinel = "-"

var printer = message.NewPrinter(language.English)

// money renders an amount with grouping separators and exactly two decimals.
// Rounding happens here, at display time only.
func money(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprint(number.Decimal(f, number.Scale(2)))
}

// pct renders a ratio to one decimal place, or the undefined sentinel.
func pct(r analyze.Ratio) string {
	if !r.Defined {
		return undefinedSentinel
	}
	return r.Value.StringFixed(1) + "%"
}

// signedPct is pct with an explicit plus sign for growth rates.
func signedPct(r analyze.Ratio) string {
	if !r.Defined {
		return undefinedSentinel
	}
	s := r.Value.StringFixed(1)
	if !r.Value.IsNegative() {
		s = "+" + s
	}
	return s + "%"
}

// moneyRatio renders a possibly-undefined amount, such as a mean over an
// empty side.
func moneyRatio(r analyze.Ratio) string {
	if !r.Defined {
		return undefinedSentinel
	}
	return money(r.Value)
}
