package analyze

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankstat-dev/bankstat/internal/model"
)

func TestCategorySummary_ExpenseSide(t *testing.T) {
	txns := []model.Transaction{
		withCategory(tx("2024-01-02", "0", "60.00"), "Food"),
		withCategory(tx("2024-01-03", "0", "20.00"), "Transit"),
		withCategory(tx("2024-01-04", "0", "20.00"), "Food"),
		withCategory(tx("2024-01-05", "500.00", "0"), "Salary"), // no expense, excluded
	}

	lines := CategorySummary(txns, SideExpense)

	require.Len(t, lines, 2)
	assert.Equal(t, "Food", lines[0].Key)
	assert.True(t, lines[0].Total.Equal(dec("80.00")))
	assert.Equal(t, 2, lines[0].Count)
	assert.True(t, lines[0].Mean.Equal(dec("40")))
	require.True(t, lines[0].Share.Defined)
	assert.True(t, lines[0].Share.Value.Equal(dec("80")))
	assert.Equal(t, "Transit", lines[1].Key)
	assert.True(t, lines[1].Share.Value.Equal(dec("20")))
}

func TestCategorySummary_PartitionProperty(t *testing.T) {
	txns := []model.Transaction{
		withCategory(tx("2024-01-02", "0", "60.00"), "Food"),
		withCategory(tx("2024-01-03", "0", "20.00"), "Transit"),
		withCategory(tx("2024-01-04", "100.00", "15.50"), "Mixed"),
		withCategory(tx("2024-01-05", "500.00", "0"), "Salary"),
	}

	overall := OverallSummary(txns)

	for _, side := range []Side{SideIncome, SideExpense} {
		sum := decimal.Zero
		for _, line := range CategorySummary(txns, side) {
			sum = sum.Add(line.Total)
		}
		want := overall.TotalExpense
		if side == SideIncome {
			want = overall.TotalIncome
		}
		assert.True(t, sum.Equal(want), "%s category totals must partition the grand total", side)
	}
}

func TestCategorySummary_StableTieOrder(t *testing.T) {
	txns := []model.Transaction{
		withCategory(tx("2024-01-02", "0", "20.00"), "B"),
		withCategory(tx("2024-01-03", "0", "20.00"), "A"),
	}

	lines := CategorySummary(txns, SideExpense)

	require.Len(t, lines, 2)
	// Equal totals keep first-seen group order, reproducible across runs.
	assert.Equal(t, "B", lines[0].Key)
	assert.Equal(t, "A", lines[1].Key)
}

func TestCounterpartySummary_TopN(t *testing.T) {
	txns := []model.Transaction{
		withCounterparty(tx("2024-01-02", "0", "50.00"), "Shop A"),
		withCounterparty(tx("2024-01-03", "0", "80.00"), "Shop B"),
		withCounterparty(tx("2024-01-04", "0", "10.00"), "Shop C"),
		tx("2024-01-05", "0", "999.00"), // no counterparty, skipped
	}

	lines := CounterpartySummary(txns, SideExpense, 2)

	require.Len(t, lines, 2)
	assert.Equal(t, "Shop B", lines[0].Key)
	assert.Equal(t, "Shop A", lines[1].Key)
}

func TestCounterpartySummary_IncomeSide(t *testing.T) {
	txns := []model.Transaction{
		withCounterparty(tx("2024-01-05", "3000.00", "0"), "Employer"),
		withCounterparty(tx("2024-01-06", "0", "50.00"), "Shop"),
	}

	lines := CounterpartySummary(txns, SideIncome, 10)

	require.Len(t, lines, 1)
	assert.Equal(t, "Employer", lines[0].Key)
	assert.Equal(t, 1, lines[0].Count)
}

func TestAutoCategorySummary(t *testing.T) {
	a := tx("2024-01-02", "0", "30.00")
	a.AutoCategory = "Dining"
	b := tx("2024-01-03", "0", "10.00")
	b.AutoCategory = "Dining"
	c := tx("2024-01-04", "0", "60.00")

	lines := AutoCategorySummary([]model.Transaction{a, b, c}, SideExpense)

	require.Len(t, lines, 2)
	assert.Equal(t, model.OtherCategory, lines[0].Key)
	assert.Equal(t, "Dining", lines[1].Key)
	assert.True(t, lines[1].Total.Equal(dec("40.00")))
}

func TestAutoCategoryCounts(t *testing.T) {
	a := tx("2024-01-02", "0", "30.00")
	a.AutoCategory = "Dining"
	b := tx("2024-01-03", "100.00", "0")
	c := tx("2024-01-04", "0", "0")

	lines := AutoCategoryCounts([]model.Transaction{a, b, c})

	require.Len(t, lines, 2)
	assert.Equal(t, model.OtherCategory, lines[0].Key)
	assert.Equal(t, 2, lines[0].Count)
	require.True(t, lines[0].Share.Defined)
	assert.True(t, lines[0].Share.Value.Round(1).Equal(dec("66.7")))
}

func TestAutoCategoryCounts_Empty(t *testing.T) {
	assert.Empty(t, AutoCategoryCounts(nil))
}
