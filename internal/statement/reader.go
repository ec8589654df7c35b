// Package statement turns a raw bank-statement CSV export into normalized
// transactions: footer and malformed rows are filtered out, then the textual
// date, amount and balance fields are parsed into typed values.
package statement

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bankstat-dev/bankstat/internal/model"
)

// Result is the complete output of one ingestion pass.
type Result struct {
	Transactions []model.Transaction
	Filter       FilterStats

	// Cell-level coercion counts, for the end-of-run diagnostics summary.
	CoercedAmounts  int
	CoercedBalances int
}

// Read parses a statement CSV into normalized transactions. Missing required
// columns and dates that fail strict parsing after filtering are structural
// errors that abort the run; malformed amount and balance cells degrade to
// zero or nil and are counted instead.
func Read(r io.Reader, cols Columns) (Result, error) {
	cr := csv.NewReader(r)
	// Footer rows are often ragged, so field counts vary per record.
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return Result{}, fmt.Errorf("reading statement CSV: %w", err)
	}
	if len(records) == 0 {
		return Result{}, errors.New("statement has no header row")
	}

	hdr := newHeader(records[0])

	dateCol, err := hdr.require(cols.Date)
	if err != nil {
		return Result{}, err
	}
	incomeCol, err := hdr.require(cols.Income)
	if err != nil {
		return Result{}, err
	}
	expenseCol, err := hdr.require(cols.Expense)
	if err != nil {
		return Result{}, err
	}
	balanceCol, err := hdr.require(cols.Balance)
	if err != nil {
		return Result{}, err
	}
	summaryCol, err := hdr.require(cols.Summary)
	if err != nil {
		return Result{}, err
	}

	counterpartyCol := hdr.optional(cols.Counterparty)
	detailCol := hdr.optional(cols.Detail)
	locationCol := hdr.optional(cols.Location)

	var res Result
	res.Filter.Original = len(records) - 1

	for i, rec := range records[1:] {
		rowNum := i + 2 // 1-based, after the header

		if !keepRow(field(rec, dateCol)) {
			res.Filter.Removed++
			continue
		}
		res.Filter.Kept++

		date, err := parseDate(field(rec, dateCol))
		if err != nil {
			// The filter admitted this row, so a parse failure means the
			// filter and the format disagree. That is not a dirty cell.
			return Result{}, fmt.Errorf("row %d: %w", rowNum, err)
		}

		income, coerced := parseAmount(field(rec, incomeCol))
		if coerced {
			res.CoercedAmounts++
		}
		expense, coerced := parseAmount(field(rec, expenseCol))
		if coerced {
			res.CoercedAmounts++
		}
		balance, coerced := parseBalance(field(rec, balanceCol))
		if coerced {
			res.CoercedBalances++
		}

		txn := model.NewTransaction(rowNum, date, income, expense, balance)
		if summary := cleanText(field(rec, summaryCol)); summary != "" {
			txn.Category = summary
		}
		txn.Counterparty = cleanText(field(rec, counterpartyCol))
		txn.Detail = cleanText(field(rec, detailCol))
		txn.Location = cleanText(field(rec, locationCol))

		res.Transactions = append(res.Transactions, txn)
	}

	return res, nil
}

// ReadFile reads and normalizes a statement CSV from disk.
func ReadFile(path string, cols Columns) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("opening statement %s: %w", path, err)
	}
	defer f.Close()

	res, err := Read(f, cols)
	if err != nil {
		return Result{}, fmt.Errorf("statement %s: %w", path, err)
	}
	return res, nil
}
