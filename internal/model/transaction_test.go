package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNewTransaction_IncomeRow(t *testing.T) {
	balance := dec("5000.00")
	txn := NewTransaction(2, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), dec("1000.00"), decimal.Zero, &balance)

	assert.True(t, txn.Income.Equal(dec("1000.00")))
	assert.True(t, txn.Expense.IsZero())
	assert.True(t, txn.Net.Equal(dec("1000.00")))
	assert.Equal(t, DirectionIncome, txn.Direction)
	require.NotNil(t, txn.Balance)
	assert.True(t, txn.Balance.Equal(dec("5000.00")))
	assert.Equal(t, 2024, txn.Year)
	assert.Equal(t, 3, txn.Month)
	assert.Equal(t, 1, txn.Quarter)
	assert.Equal(t, "2024-03", txn.YearMonth)
}

func TestNewTransaction_ExpenseRow(t *testing.T) {
	txn := NewTransaction(3, time.Date(2024, 11, 20, 0, 0, 0, 0, time.UTC), decimal.Zero, dec("250.50"), nil)

	assert.Equal(t, DirectionExpense, txn.Direction)
	assert.True(t, txn.Net.Equal(dec("-250.50")))
	assert.Nil(t, txn.Balance)
	assert.Equal(t, 4, txn.Quarter)
}

func TestNewTransaction_DirectionFollowsIncomeFirst(t *testing.T) {
	// Both sides non-zero (a reversal): income wins, regardless of the net sign.
	txn := NewTransaction(1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), dec("10.00"), dec("40.00"), nil)

	assert.Equal(t, DirectionIncome, txn.Direction)
	assert.True(t, txn.Net.Equal(dec("-30.00")))
}

func TestNewTransaction_DirectionUnknown(t *testing.T) {
	txn := NewTransaction(1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), decimal.Zero, decimal.Zero, nil)

	assert.Equal(t, DirectionUnknown, txn.Direction)
	assert.Equal(t, Uncategorized, txn.Category)
	assert.Equal(t, OtherCategory, txn.AutoCategory)
}

func TestNewTransaction_Weekday(t *testing.T) {
	// 2024-03-04 is a Monday, 2024-03-09 is a Saturday.
	mon := NewTransaction(1, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), dec("1"), decimal.Zero, nil)
	sat := NewTransaction(2, time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC), dec("1"), decimal.Zero, nil)
	sun := NewTransaction(3, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), dec("1"), decimal.Zero, nil)

	assert.Equal(t, 0, mon.Weekday)
	assert.True(t, mon.IsWeekday)
	assert.Equal(t, 5, sat.Weekday)
	assert.False(t, sat.IsWeekday)
	assert.Equal(t, 6, sun.Weekday)
	assert.False(t, sun.IsWeekday)
}

func TestNewTransaction_QuarterBoundaries(t *testing.T) {
	for month, want := range map[int]int{1: 1, 3: 1, 4: 2, 6: 2, 7: 3, 9: 3, 10: 4, 12: 4} {
		txn := NewTransaction(1, time.Date(2024, time.Month(month), 15, 0, 0, 0, 0, time.UTC), dec("1"), decimal.Zero, nil)
		assert.Equal(t, want, txn.Quarter, "month %d", month)
	}
}
