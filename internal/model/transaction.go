package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction classifies a transaction by which amount side is non-zero.
type Direction string

const (
	DirectionIncome  Direction = "income"
	DirectionExpense Direction = "expense"
	DirectionUnknown Direction = "unknown"
)

// Uncategorized is the explicit category for rows with a blank summary field.
const Uncategorized = "Uncategorized"

// OtherCategory is the auto-category for rows no keyword rule matched.
const OtherCategory = "Other"

// Transaction is one normalized statement row. It is never modified after
// creation except for AutoCategory, which the rules classifier attaches.
type Transaction struct {
	Row          int // 1-based row number in the source file, used for stable tie-breaks
	Date         time.Time
	Income       decimal.Decimal
	Expense      decimal.Decimal
	Net          decimal.Decimal // Income - Expense
	Direction    Direction
	Category     string // from the statement's summary column
	AutoCategory string // set by the keyword classifier
	Counterparty string
	Detail       string
	Location     string
	Balance      *decimal.Decimal // nil when the balance cell was unparseable

	Year      int
	Month     int    // 1-12
	Quarter   int    // 1-4
	YearMonth string // "YYYY-MM", sorts chronologically
	Weekday   int    // 0=Monday .. 6=Sunday
	IsWeekday bool   // Monday through Friday
}

// NewTransaction derives the net amount, direction and time dimensions from
// the normalized fields. Direction follows which amount side is positive,
// never the sign of the net: a row with both sides non-zero (e.g. a reversal)
// counts as income.
func NewTransaction(row int, date time.Time, income, expense decimal.Decimal, balance *decimal.Decimal) Transaction {
	t := Transaction{
		Row:          row,
		Date:         date,
		Income:       income,
		Expense:      expense,
		Net:          income.Sub(expense),
		Category:     Uncategorized,
		AutoCategory: OtherCategory,
		Balance:      balance,
	}

	switch {
	case income.IsPositive():
		t.Direction = DirectionIncome
	case expense.IsPositive():
		t.Direction = DirectionExpense
	default:
		t.Direction = DirectionUnknown
	}

	t.Year = date.Year()
	t.Month = int(date.Month())
	t.Quarter = (t.Month-1)/3 + 1
	t.YearMonth = date.Format("2006-01")
	t.Weekday = (int(date.Weekday()) + 6) % 7
	t.IsWeekday = t.Weekday < 5

	return t
}
