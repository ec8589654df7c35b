package statement

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateFormat = "2006-01-02"

// separators strips grouping and currency characters before numeric parsing.
var separators = strings.NewReplacer(",", "", "¥", "", "￥", "")

// parseDate strictly parses the leading YYYY-MM-DD of a date field that
// already passed the row filter. The trailing time-of-day suffix some
// exporters add is ignored; anything else is a structural error.
func parseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if len(s) > len(dateFormat) {
		s = s[:len(dateFormat)]
	}
	d, err := time.Parse(dateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", raw, err)
	}
	return d, nil
}

// parseAmount normalizes an income or expense cell. Blank and "nan" cells are
// zero by definition; anything that still fails to parse after separator
// stripping coerces to zero and is flagged so the run can report it.
func parseAmount(raw string) (amount decimal.Decimal, coerced bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "nan") {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(separators.Replace(s))
	if err != nil {
		return decimal.Zero, true
	}
	return d, false
}

// parseBalance normalizes a balance cell. Unlike amounts, an unparseable
// balance becomes nil: zero would claim a balance the statement never stated.
func parseBalance(raw string) (balance *decimal.Decimal, coerced bool) {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "nan") {
		return nil, false
	}
	d, err := decimal.NewFromString(separators.Replace(s))
	if err != nil {
		return nil, true
	}
	return &d, false
}

// cleanText trims a free-text cell, mapping the literal "nan" some exports
// write for empty cells to the empty string.
func cleanText(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.EqualFold(s, "nan") {
		return ""
	}
	return s
}
