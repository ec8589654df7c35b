package rules

import (
	"strings"

	"github.com/bankstat-dev/bankstat/internal/model"
)

// Apply sets AutoCategory on every transaction in place. Each transaction
// starts at "Other"; every rule is then evaluated in file order against the
// detail, location and counterparty columns, and each match overwrites the
// previous assignment.
//
// Tie-break policy: the LAST matching rule in evaluation order wins, not the
// first or the most specific. Keeping the overwrite order is required for
// output compatibility; declare more specific categories later in the file.
func (c *Classifier) Apply(txns []model.Transaction) {
	for i := range txns {
		txns[i].AutoCategory = model.OtherCategory
		for _, r := range c.rules {
			if r.matches(txns[i]) {
				txns[i].AutoCategory = r.Name
			}
		}
	}
}

// matches reports whether any keyword occurs in any of the transaction's
// text columns. Empty columns never match.
func (r Rule) matches(t model.Transaction) bool {
	for _, text := range []string{t.Detail, t.Location, t.Counterparty} {
		if text == "" {
			continue
		}
		lower := strings.ToLower(text)
		for _, kw := range r.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return true
			}
		}
	}
	return false
}
