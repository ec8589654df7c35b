package report

import (
	"fmt"
	"strconv"

	"github.com/bankstat-dev/bankstat/internal/analyze"
	"github.com/bankstat-dev/bankstat/internal/model"
)

// section is one titled block of the report. Console and file rendering share
// the same lines so both outputs stay in step.
type section struct {
	title string
	lines []string
}

func sections(t Tables) []section {
	out := []section{
		overallSection(t.Overall),
		bucketSection("Monthly summary", t.Monthly, false),
		bucketSection("Yearly summary", t.Yearly, true),
		lineSection("Income by category", t.IncomeCategories),
		lineSection("Expense by category", t.ExpenseCategories),
		rankingSection("Top income transactions", t.TopIncome, analyze.SideIncome),
		rankingSection("Top expense transactions", t.TopExpense, analyze.SideExpense),
		autoCountSection(t.AutoCounts),
		lineSection("Expense by auto-category", t.AutoExpense),
		bucketSection("Seasonal summary", t.Seasonal, false),
		monthPatternSection(t.MonthPattern),
		frequencySection(t.Frequency),
		weekdaySection(t.WeekdaySplit),
		lineSection("Top income sources", t.IncomeCounterparties),
		lineSection("Top expense counterparties", t.ExpenseCounterparties),
	}
	return out
}

func overallSection(o analyze.Overall) section {
	return section{
		title: "Overall summary",
		lines: []string{
			fmt.Sprintf("Total income:  %s (%d transactions)", money(o.TotalIncome), o.IncomeCount),
			fmt.Sprintf("Total expense: %s (%d transactions)", money(o.TotalExpense), o.ExpenseCount),
			fmt.Sprintf("Net balance:   %s", money(o.NetBalance)),
			fmt.Sprintf("Savings rate:  %s", pct(o.SavingsRate)),
			fmt.Sprintf("Mean income:   %s", moneyRatio(o.MeanIncome)),
			fmt.Sprintf("Mean expense:  %s", moneyRatio(o.MeanExpense)),
		},
	}
}

func bucketSection(title string, buckets []analyze.Bucket, growth bool) section {
	s := section{title: title}
	s.lines = append(s.lines, fmt.Sprintf("%-10s %16s %16s %16s %10s", "period", "income", "expense", "net", "savings"))
	for _, b := range buckets {
		line := fmt.Sprintf("%-10s %16s %16s %16s %10s",
			b.Key, money(b.Income), money(b.Expense), money(b.Net), pct(b.SavingsRate))
		if growth {
			line += fmt.Sprintf("  income %s, expense %s", signedPct(b.IncomeGrowth), signedPct(b.ExpenseGrowth))
		}
		s.lines = append(s.lines, line)
	}
	return s
}

func lineSection(title string, lines []analyze.Line) section {
	s := section{title: title}
	s.lines = append(s.lines, fmt.Sprintf("%-24s %16s %8s %14s %8s", "group", "total", "count", "mean", "share"))
	for _, l := range lines {
		s.lines = append(s.lines, fmt.Sprintf("%-24s %16s %8d %14s %8s",
			clip(l.Key, 24), money(l.Total), l.Count, money(l.Mean), pct(l.Share)))
	}
	return s
}

func rankingSection(title string, txns []model.Transaction, side analyze.Side) section {
	s := section{title: fmt.Sprintf("%s (top %d)", title, len(txns))}
	for _, t := range txns {
		amount := t.Income
		if side == analyze.SideExpense {
			amount = t.Expense
		}
		s.lines = append(s.lines, fmt.Sprintf("%s | %16s | %-20s | %s",
			t.Date.Format("2006-01-02"), money(amount), clip(t.Category, 20), clip(t.Counterparty, 30)))
	}
	return s
}

func autoCountSection(lines []analyze.CountLine) section {
	s := section{title: "Auto-classification counts"}
	for _, l := range lines {
		s.lines = append(s.lines, fmt.Sprintf("%-24s %8d %8s", clip(l.Key, 24), l.Count, pct(l.Share)))
	}
	return s
}

func monthPatternSection(months []analyze.MonthAverages) section {
	s := section{title: "Monthly pattern across years"}
	s.lines = append(s.lines, fmt.Sprintf("%-6s %16s %16s %16s", "month", "mean income", "mean expense", "mean net"))
	for _, m := range months {
		s.lines = append(s.lines, fmt.Sprintf("%-6s %16s %16s %16s",
			strconv.Itoa(m.Month), money(m.MeanIncome), money(m.MeanExpense), money(m.MeanNet)))
	}
	return s
}

func frequencySection(f analyze.Frequency) section {
	s := section{title: "Transaction frequency"}
	if f.DaysActive == 0 {
		s.lines = append(s.lines, "no dated transactions")
		return s
	}
	s.lines = append(s.lines,
		fmt.Sprintf("Active days:        %d", f.DaysActive),
		fmt.Sprintf("Mean per day:       %s", f.MeanPerDay.StringFixed(1)),
		fmt.Sprintf("Max per day:        %d", f.MaxPerDay),
		fmt.Sprintf("Min per day:        %d", f.MinPerDay),
		"Busiest days:")
	for _, d := range f.Busiest {
		s.lines = append(s.lines, fmt.Sprintf("  %s: %d transactions", d.Date, d.Count))
	}
	return s
}

func weekdaySection(splits []analyze.DaySplit) section {
	s := section{title: "Weekday vs weekend spending"}
	s.lines = append(s.lines, fmt.Sprintf("%-8s %16s %14s %8s", "days", "total expense", "mean", "count"))
	for _, d := range splits {
		s.lines = append(s.lines, fmt.Sprintf("%-8s %16s %14s %8d",
			d.Key, money(d.ExpenseTotal), money(d.ExpenseMean), d.Count))
	}
	return s
}

// clip truncates long free-text values so table columns stay readable.
func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
