// Package report renders the aggregate tables for the console and for text
// and CSV files. The engine's contract ends at the in-memory tables; this
// package is the collaborator that serializes them.
package report

import (
	"github.com/bankstat-dev/bankstat/internal/analyze"
	"github.com/bankstat-dev/bankstat/internal/model"
)

// Tables is the full report battery computed from one normalized ledger.
type Tables struct {
	Overall      analyze.Overall
	Monthly      []analyze.Bucket
	Yearly       []analyze.Bucket
	Seasonal     []analyze.Bucket
	MonthPattern []analyze.MonthAverages
	Frequency    analyze.Frequency
	WeekdaySplit []analyze.DaySplit

	IncomeCategories  []analyze.Line
	ExpenseCategories []analyze.Line
	AutoCounts        []analyze.CountLine
	AutoExpense       []analyze.Line

	TopIncome  []model.Transaction
	TopExpense []model.Transaction

	IncomeCounterparties  []analyze.Line
	ExpenseCounterparties []analyze.Line
}

// BuildTables runs the whole battery. topN bounds the ranking and
// counterparty tables.
func BuildTables(txns []model.Transaction, topN int) Tables {
	return Tables{
		Overall:      analyze.OverallSummary(txns),
		Monthly:      analyze.MonthlySummary(txns),
		Yearly:       analyze.YearlySummary(txns),
		Seasonal:     analyze.SeasonalSummary(txns),
		MonthPattern: analyze.MonthOfYearPattern(txns),
		Frequency:    analyze.DailyFrequency(txns),
		WeekdaySplit: analyze.WeekdayWeekendSummary(txns),

		IncomeCategories:  analyze.CategorySummary(txns, analyze.SideIncome),
		ExpenseCategories: analyze.CategorySummary(txns, analyze.SideExpense),
		AutoCounts:        analyze.AutoCategoryCounts(txns),
		AutoExpense:       analyze.AutoCategorySummary(txns, analyze.SideExpense),

		TopIncome:  analyze.TopIncome(txns, topN),
		TopExpense: analyze.TopExpense(txns, topN),

		IncomeCounterparties:  analyze.CounterpartySummary(txns, analyze.SideIncome, topN),
		ExpenseCounterparties: analyze.CounterpartySummary(txns, analyze.SideExpense, topN),
	}
}
