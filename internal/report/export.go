package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bankstat-dev/bankstat/internal/model"
)

// ExportHeader is the CSV header for the normalized ledger export.
const ExportHeader = "row,date,income,expense,net,direction,category,auto_category,counterparty,balance,year,month,quarter,year_month,weekday,is_weekday"

const (
	exportFields    = 16
	colRow          = 0
	colDate         = 1
	colIncome       = 2
	colExpense      = 3
	colNet          = 4
	colDirection    = 5
	colCategory     = 6
	colAutoCategory = 7
	colCounterparty = 8
	colBalance      = 9
	colYear         = 10
	colMonth        = 11
	colQuarter      = 12
	colYearMonth    = 13
	colWeekday      = 14
	colIsWeekday    = 15
)

// ExportLedger writes the normalized transactions as a flat CSV, one row per
// transaction in source order.
func ExportLedger(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(ExportHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, t := range txns {
		if err := cw.Write(marshalTransaction(t)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ExportLedgerFile writes the ledger export to a file path.
func ExportLedgerFile(path string, txns []model.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := ExportLedger(f, txns); err != nil {
		return fmt.Errorf("exporting ledger %s: %w", path, err)
	}
	return nil
}

func marshalTransaction(t model.Transaction) []string {
	row := make([]string, exportFields)
	row[colRow] = strconv.Itoa(t.Row)
	row[colDate] = t.Date.Format("2006-01-02")
	row[colIncome] = t.Income.StringFixed(2)
	row[colExpense] = t.Expense.StringFixed(2)
	row[colNet] = t.Net.StringFixed(2)
	row[colDirection] = string(t.Direction)
	row[colCategory] = t.Category
	row[colAutoCategory] = t.AutoCategory
	row[colCounterparty] = t.Counterparty
	if t.Balance != nil {
		row[colBalance] = t.Balance.StringFixed(2)
	}
	row[colYear] = strconv.Itoa(t.Year)
	row[colMonth] = strconv.Itoa(t.Month)
	row[colQuarter] = strconv.Itoa(t.Quarter)
	row[colYearMonth] = t.YearMonth
	row[colWeekday] = strconv.Itoa(t.Weekday)
	row[colIsWeekday] = strconv.FormatBool(t.IsWeekday)
	return row
}
