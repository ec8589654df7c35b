package rules

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankstat-dev/bankstat/internal/model"
)

func classifier(t *testing.T, rules ...Rule) *Classifier {
	t.Helper()
	c, err := NewClassifier(rules)
	require.NoError(t, err)
	return c
}

func txn(detail, location, counterparty string) model.Transaction {
	t := model.NewTransaction(1, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), decimal.Zero, decimal.NewFromInt(10), nil)
	t.Detail = detail
	t.Location = location
	t.Counterparty = counterparty
	return t
}

func TestApply_NoMatchIsOther(t *testing.T) {
	c := classifier(t, Rule{Name: "Dining", Keywords: []string{"cafe"}})
	txns := []model.Transaction{txn("hardware store", "", "")}

	c.Apply(txns)

	assert.Equal(t, model.OtherCategory, txns[0].AutoCategory)
}

func TestApply_MatchesAnyTextColumn(t *testing.T) {
	c := classifier(t, Rule{Name: "Dining", Keywords: []string{"cafe"}})
	txns := []model.Transaction{
		txn("cafe latte", "", ""),
		txn("", "downtown cafe", ""),
		txn("", "", "Cafe Ltd"),
	}

	c.Apply(txns)

	for i, got := range txns {
		assert.Equal(t, "Dining", got.AutoCategory, "transaction %d", i)
	}
}

func TestApply_CaseInsensitive(t *testing.T) {
	c := classifier(t, Rule{Name: "Shopping", Keywords: []string{"TaoBao"}})
	txns := []model.Transaction{txn("taobao order 123", "", "")}

	c.Apply(txns)

	assert.Equal(t, "Shopping", txns[0].AutoCategory)
}

func TestApply_LastRuleWins(t *testing.T) {
	// Matches rule A on the detail column and the later rule B on the
	// location column: the later rule must win.
	c := classifier(t,
		Rule{Name: "A", Keywords: []string{"alpha"}},
		Rule{Name: "B", Keywords: []string{"beta"}},
	)
	txns := []model.Transaction{txn("alpha something", "beta place", "")}

	c.Apply(txns)

	assert.Equal(t, "B", txns[0].AutoCategory)
}

func TestApply_LastRuleWinsRegardlessOfColumn(t *testing.T) {
	// The earlier rule matches a later column; evaluation order is still
	// rule order, so the later rule wins.
	c := classifier(t,
		Rule{Name: "A", Keywords: []string{"alpha"}},
		Rule{Name: "B", Keywords: []string{"beta"}},
	)
	txns := []model.Transaction{txn("beta thing", "", "alpha corp")}

	c.Apply(txns)

	assert.Equal(t, "B", txns[0].AutoCategory)
}

func TestApply_ReclassifyResetsPreviousAssignment(t *testing.T) {
	c := classifier(t, Rule{Name: "Dining", Keywords: []string{"cafe"}})
	txns := []model.Transaction{txn("hardware store", "", "")}
	txns[0].AutoCategory = "Stale"

	c.Apply(txns)

	assert.Equal(t, model.OtherCategory, txns[0].AutoCategory)
}

func TestApply_AlwaysAConfiguredNameOrOther(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)

	names := map[string]struct{}{model.OtherCategory: {}}
	for _, r := range c.Rules() {
		names[r.Name] = struct{}{}
	}

	txns := []model.Transaction{
		txn("美团外卖", "", ""),
		txn("", "滴滴出行", ""),
		txn("random", "", ""),
		txn("", "", ""),
	}
	c.Apply(txns)

	for i, got := range txns {
		_, ok := names[got.AutoCategory]
		assert.True(t, ok, "transaction %d has unconfigured category %q", i, got.AutoCategory)
	}
}

func TestLoadEmbedded_DefaultRules(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)

	rs := c.Rules()
	require.Len(t, rs, 10)
	assert.Equal(t, "餐饮", rs[0].Name)
	assert.Equal(t, "服装", rs[9].Name)
}

func TestLoad_RejectsInvalidRules(t *testing.T) {
	cases := map[string]string{
		"empty name":     "rules:\n  - name: \"\"\n    keywords: [a]\n",
		"no keywords":    "rules:\n  - name: X\n    keywords: []\n",
		"blank keyword":  "rules:\n  - name: X\n    keywords: [\" \"]\n",
		"duplicate name": "rules:\n  - name: X\n    keywords: [a]\n  - name: X\n    keywords: [b]\n",
		"malformed yaml": "rules: [a: b\n",
	}
	for name, data := range cases {
		_, err := Load([]byte(data))
		assert.Error(t, err, name)
	}
}
