package analyze

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/bankstat-dev/bankstat/internal/model"
)

// Bucket is the aggregate for one group-by key value: exact decimal sums, a
// row count, and derived rates. Buckets are recomputed per run, never stored.
type Bucket struct {
	Key     string
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
	Count   int

	SavingsRate Ratio

	// Growth vs the previous chronological bucket. Only the period
	// summaries set these; elsewhere they stay undefined.
	IncomeGrowth  Ratio
	ExpenseGrowth Ratio
}

// KeyFunc selects the grouping key for a transaction.
type KeyFunc func(model.Transaction) string

// GroupBy sums income, expense and net per distinct key value. Buckets come
// back in first-seen key order, which makes tie-breaks reproducible across
// runs on the same input.
func GroupBy(txns []model.Transaction, key KeyFunc) []Bucket {
	index := make(map[string]int)
	var buckets []Bucket

	for _, t := range txns {
		k := key(t)
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, Bucket{
				Key:     k,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
				Net:     decimal.Zero,
			})
		}
		buckets[i].Income = buckets[i].Income.Add(t.Income)
		buckets[i].Expense = buckets[i].Expense.Add(t.Expense)
		buckets[i].Net = buckets[i].Net.Add(t.Net)
		buckets[i].Count++
	}

	for i := range buckets {
		buckets[i].SavingsRate = percentOf(buckets[i].Net, buckets[i].Income)
	}
	return buckets
}

// sortByKey orders buckets ascending by key. Period keys are built to sort
// chronologically as strings.
func sortByKey(buckets []Bucket) {
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Key < buckets[j].Key
	})
}
