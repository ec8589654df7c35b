package statement

import (
	"regexp"
	"strings"
)

// footerMarkers appear in the date column of subtotal and grand-total rows
// that statement exporters append below the real entries.
var footerMarkers = []string{"合计", "总计", "小计"}

// datePrefix matches a calendar date at the start of the field. Exporters
// sometimes append a time of day, which is tolerated here.
var datePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// FilterStats reports how many raw rows survived the row filter.
type FilterStats struct {
	Original int
	Kept     int
	Removed  int
}

// keepRow reports whether a raw date field denotes a genuine dated
// transaction. Footer rows and malformed rows are expected in exports, so
// rejection is silent, never an error.
func keepRow(dateField string) bool {
	if strings.TrimSpace(dateField) == "" {
		return false
	}
	for _, marker := range footerMarkers {
		if strings.Contains(dateField, marker) {
			return false
		}
	}
	return datePrefix.MatchString(dateField)
}
