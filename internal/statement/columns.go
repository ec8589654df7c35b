package statement

import "fmt"

// Columns maps the statement's source-specific header names onto the roles the
// pipeline needs. Date through Summary are required; the free-text roles are
// optional and read as empty when the column is absent.
type Columns struct {
	Date    string
	Income  string
	Expense string
	Balance string
	Summary string

	// Free-text columns used for counterparty reporting and keyword matching.
	Counterparty string
	Detail       string
	Location     string
}

// DefaultColumns returns the header names used by the bank's own CSV export.
func DefaultColumns() Columns {
	return Columns{
		Date:         "交易日期",
		Income:       "记账金额(收入)",
		Expense:      "记账金额(支出)",
		Balance:      "余额",
		Summary:      "摘要",
		Counterparty: "对方户名",
		Detail:       "交易详情",
		Location:     "交易场所",
	}
}

// header resolves role names to field positions in the source records.
type header struct {
	index map[string]int
}

func newHeader(record []string) header {
	idx := make(map[string]int, len(record))
	for i, name := range record {
		idx[name] = i
	}
	return header{index: idx}
}

// require returns the position of a required column or a structural error
// naming it.
func (h header) require(name string) (int, error) {
	i, ok := h.index[name]
	if !ok {
		return 0, fmt.Errorf("statement is missing required column %q", name)
	}
	return i, nil
}

// optional returns the position of a column, or -1 when absent.
func (h header) optional(name string) int {
	if name == "" {
		return -1
	}
	i, ok := h.index[name]
	if !ok {
		return -1
	}
	return i
}

// field reads position i from a record, tolerating ragged footer rows.
func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}
