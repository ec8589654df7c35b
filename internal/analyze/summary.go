package analyze

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/bankstat-dev/bankstat/internal/model"
)

// Overall holds the whole-ledger totals and rates.
type Overall struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetBalance   decimal.Decimal
	Count        int
	IncomeCount  int // rows with income > 0
	ExpenseCount int // rows with expense > 0
	SavingsRate  Ratio
	MeanIncome   Ratio // mean over income rows; undefined when there are none
	MeanExpense  Ratio
}

// OverallSummary computes the whole-ledger totals.
func OverallSummary(txns []model.Transaction) Overall {
	o := Overall{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		Count:        len(txns),
	}
	for _, t := range txns {
		o.TotalIncome = o.TotalIncome.Add(t.Income)
		o.TotalExpense = o.TotalExpense.Add(t.Expense)
		if t.Income.IsPositive() {
			o.IncomeCount++
		}
		if t.Expense.IsPositive() {
			o.ExpenseCount++
		}
	}
	o.NetBalance = o.TotalIncome.Sub(o.TotalExpense)
	o.SavingsRate = percentOf(o.NetBalance, o.TotalIncome)
	if o.IncomeCount > 0 {
		o.MeanIncome = Defined(o.TotalIncome.Div(decimal.NewFromInt(int64(o.IncomeCount))))
	}
	if o.ExpenseCount > 0 {
		o.MeanExpense = Defined(o.TotalExpense.Div(decimal.NewFromInt(int64(o.ExpenseCount))))
	}
	return o
}

// MonthlySummary groups by year-month, oldest first.
func MonthlySummary(txns []model.Transaction) []Bucket {
	buckets := GroupBy(txns, func(t model.Transaction) string { return t.YearMonth })
	sortByKey(buckets)
	return buckets
}

// YearlySummary groups by year, oldest first, and attaches year-over-year
// growth rates. Growth against a zero prior year stays undefined.
func YearlySummary(txns []model.Transaction) []Bucket {
	buckets := GroupBy(txns, func(t model.Transaction) string { return strconv.Itoa(t.Year) })
	sortByKey(buckets)
	for i := 1; i < len(buckets); i++ {
		buckets[i].IncomeGrowth = growthOf(buckets[i].Income, buckets[i-1].Income)
		buckets[i].ExpenseGrowth = growthOf(buckets[i].Expense, buckets[i-1].Expense)
	}
	return buckets
}

// SeasonalSummary groups by year and quarter, oldest first.
func SeasonalSummary(txns []model.Transaction) []Bucket {
	buckets := GroupBy(txns, func(t model.Transaction) string {
		return fmt.Sprintf("%04d-Q%d", t.Year, t.Quarter)
	})
	sortByKey(buckets)
	return buckets
}

// MonthAverages is the cross-year average for one calendar month.
type MonthAverages struct {
	Month       int // 1-12
	Count       int
	MeanIncome  decimal.Decimal
	MeanExpense decimal.Decimal
	MeanNet     decimal.Decimal
}

// MonthOfYearPattern averages income, expense and net per calendar month
// across all years. Means run over every row in the month, zero amounts
// included. Only months present in the data are returned, in calendar order.
func MonthOfYearPattern(txns []model.Transaction) []MonthAverages {
	buckets := GroupBy(txns, func(t model.Transaction) string {
		return fmt.Sprintf("%02d", t.Month)
	})
	sortByKey(buckets)

	out := make([]MonthAverages, 0, len(buckets))
	for _, b := range buckets {
		month, _ := strconv.Atoi(b.Key)
		n := decimal.NewFromInt(int64(b.Count))
		out = append(out, MonthAverages{
			Month:       month,
			Count:       b.Count,
			MeanIncome:  b.Income.Div(n),
			MeanExpense: b.Expense.Div(n),
			MeanNet:     b.Net.Div(n),
		})
	}
	return out
}

// DaySplit aggregates expense over the weekday/weekend divide.
type DaySplit struct {
	Key          string // "weekday" or "weekend"
	ExpenseTotal decimal.Decimal
	ExpenseMean  decimal.Decimal // over all rows in the group, zero expenses included
	Count        int
}

// WeekdayWeekendSummary splits expense totals between Mon-Fri and Sat-Sun.
// A side with no rows at all is omitted.
func WeekdayWeekendSummary(txns []model.Transaction) []DaySplit {
	buckets := GroupBy(txns, func(t model.Transaction) string {
		if t.IsWeekday {
			return "weekday"
		}
		return "weekend"
	})
	// Fixed presentation order, weekday first.
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Key == "weekday" && buckets[j].Key != "weekday"
	})

	out := make([]DaySplit, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, DaySplit{
			Key:          b.Key,
			ExpenseTotal: b.Expense,
			ExpenseMean:  b.Expense.Div(decimal.NewFromInt(int64(b.Count))),
			Count:        b.Count,
		})
	}
	return out
}

// DayCount is the number of transactions on one calendar date.
type DayCount struct {
	Date  string // "YYYY-MM-DD"
	Count int
}

// Frequency describes how often transactions occur per active day.
type Frequency struct {
	DaysActive int
	MeanPerDay decimal.Decimal
	MaxPerDay  int
	MinPerDay  int
	Busiest    []DayCount // up to 5, most transactions first
}

// DailyFrequency counts transactions per calendar date. For an empty ledger
// everything stays zero.
func DailyFrequency(txns []model.Transaction) Frequency {
	buckets := GroupBy(txns, func(t model.Transaction) string {
		return t.Date.Format("2006-01-02")
	})
	if len(buckets) == 0 {
		return Frequency{}
	}

	var f Frequency
	f.DaysActive = len(buckets)
	f.MinPerDay = buckets[0].Count
	for _, b := range buckets {
		if b.Count > f.MaxPerDay {
			f.MaxPerDay = b.Count
		}
		if b.Count < f.MinPerDay {
			f.MinPerDay = b.Count
		}
	}
	f.MeanPerDay = decimal.NewFromInt(int64(len(txns))).Div(decimal.NewFromInt(int64(f.DaysActive)))

	// Busiest days: count descending, earlier date first on ties.
	sort.SliceStable(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Key < buckets[j].Key
	})
	top := len(buckets)
	if top > 5 {
		top = 5
	}
	for _, b := range buckets[:top] {
		f.Busiest = append(f.Busiest, DayCount{Date: b.Key, Count: b.Count})
	}
	return f
}
