// Package analyze computes the aggregate report battery over normalized
// transactions: grouped sums, rates, frequency patterns and rankings.
package analyze

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Ratio is a derived metric that may be undefined, such as a savings rate for
// a bucket with no income or a growth rate against a zero prior period.
// Consumers must check Defined before using Value; renderers print a sentinel
// for undefined metrics instead of a number.
type Ratio struct {
	Value   decimal.Decimal
	Defined bool
}

// Defined wraps a computed metric value.
func Defined(v decimal.Decimal) Ratio {
	return Ratio{Value: v, Defined: true}
}

// percentOf returns part/whole as a percentage, undefined when whole is zero.
func percentOf(part, whole decimal.Decimal) Ratio {
	if whole.IsZero() {
		return Ratio{}
	}
	return Defined(part.Div(whole).Mul(hundred))
}

// growthOf returns the relative change from prev to cur as a percentage,
// undefined when prev is zero.
func growthOf(cur, prev decimal.Decimal) Ratio {
	if prev.IsZero() {
		return Ratio{}
	}
	return Defined(cur.Sub(prev).Div(prev).Mul(hundred))
}
