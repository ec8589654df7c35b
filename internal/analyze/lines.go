package analyze

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/bankstat-dev/bankstat/internal/model"
)

// Side selects which amount column an aggregate runs over.
type Side int

const (
	SideIncome Side = iota
	SideExpense
)

func (s Side) String() string {
	if s == SideIncome {
		return "income"
	}
	return "expense"
}

func (s Side) amount(t model.Transaction) decimal.Decimal {
	if s == SideIncome {
		return t.Income
	}
	return t.Expense
}

func (s Side) sum(b Bucket) decimal.Decimal {
	if s == SideIncome {
		return b.Income
	}
	return b.Expense
}

// Line is one row of a category or counterparty table.
type Line struct {
	Key   string
	Total decimal.Decimal
	Count int
	Mean  decimal.Decimal
	Share Ratio // of the side's grand total
}

// CategorySummary aggregates one amount side by explicit category. Only rows
// where that side is strictly positive contribute; a zero-income row adds
// nothing to an income table. Lines are sorted by total descending, ties kept
// in first-seen group order.
func CategorySummary(txns []model.Transaction, side Side) []Line {
	return sideSummary(txns, side, func(t model.Transaction) string { return t.Category }, 0)
}

// AutoCategorySummary is CategorySummary keyed by the classifier's category.
func AutoCategorySummary(txns []model.Transaction, side Side) []Line {
	return sideSummary(txns, side, func(t model.Transaction) string { return t.AutoCategory }, 0)
}

// CounterpartySummary aggregates one amount side by counterparty and keeps
// the top n. Rows with no counterparty are skipped; an unknown counterparty
// is not a counterparty.
func CounterpartySummary(txns []model.Transaction, side Side, n int) []Line {
	kept := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if t.Counterparty != "" {
			kept = append(kept, t)
		}
	}
	return sideSummary(kept, side, func(t model.Transaction) string { return t.Counterparty }, n)
}

// sideSummary groups one positive amount side by key, computing total, count,
// mean and share of the side's grand total. n > 0 truncates after sorting.
func sideSummary(txns []model.Transaction, side Side, key KeyFunc, n int) []Line {
	positive := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if side.amount(t).IsPositive() {
			positive = append(positive, t)
		}
	}

	buckets := GroupBy(positive, key)

	grand := decimal.Zero
	for _, b := range buckets {
		grand = grand.Add(side.sum(b))
	}

	lines := make([]Line, 0, len(buckets))
	for _, b := range buckets {
		total := side.sum(b)
		lines = append(lines, Line{
			Key:   b.Key,
			Total: total,
			Count: b.Count,
			Mean:  total.Div(decimal.NewFromInt(int64(b.Count))),
			Share: percentOf(total, grand),
		})
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Total.GreaterThan(lines[j].Total)
	})
	if n > 0 && len(lines) > n {
		lines = lines[:n]
	}
	return lines
}

// CountLine is one row of the auto-classification count table.
type CountLine struct {
	Key   string
	Count int
	Share Ratio // of all transactions
}

// AutoCategoryCounts tallies every transaction by auto-category, most
// frequent first, ties in first-seen order.
func AutoCategoryCounts(txns []model.Transaction) []CountLine {
	buckets := GroupBy(txns, func(t model.Transaction) string { return t.AutoCategory })

	total := decimal.NewFromInt(int64(len(txns)))
	lines := make([]CountLine, 0, len(buckets))
	for _, b := range buckets {
		lines = append(lines, CountLine{
			Key:   b.Key,
			Count: b.Count,
			Share: percentOf(decimal.NewFromInt(int64(b.Count)), total),
		})
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Count > lines[j].Count
	})
	return lines
}
