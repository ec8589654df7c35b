package analyze

import (
	"sort"

	"github.com/bankstat-dev/bankstat/internal/model"
)

// TopIncome returns the n largest income transactions, largest first. Ties
// keep original row order. The input collection is never reordered.
func TopIncome(txns []model.Transaction, n int) []model.Transaction {
	return topBySide(txns, SideIncome, n)
}

// TopExpense returns the n largest expense transactions, largest first.
func TopExpense(txns []model.Transaction, n int) []model.Transaction {
	return topBySide(txns, SideExpense, n)
}

func topBySide(txns []model.Transaction, side Side, n int) []model.Transaction {
	// Filter into a fresh slice so sorting cannot disturb the caller's order.
	matched := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if side.amount(t).IsPositive() {
			matched = append(matched, t)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return side.amount(matched[i]).GreaterThan(side.amount(matched[j]))
	})

	if n > 0 && len(matched) > n {
		matched = matched[:n]
	}
	return matched
}
