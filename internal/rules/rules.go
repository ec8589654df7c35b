// Package rules assigns an auto-category to each transaction by matching an
// ordered list of keyword rules against its free-text columns.
package rules

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var embeddedRules []byte

// Rule pairs a category name with the substrings that select it. Keywords are
// matched case-insensitively.
type Rule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// ruleSet is the top-level YAML structure.
type ruleSet struct {
	Rules []Rule `yaml:"rules"`
}

// Classifier evaluates rules in file order. The order is part of the
// contract: later rules overwrite earlier matches (see Apply).
type Classifier struct {
	rules []Rule
}

// NewClassifier validates a rule list and builds a Classifier.
func NewClassifier(rules []Rule) (*Classifier, error) {
	seen := make(map[string]struct{}, len(rules))
	for i, r := range rules {
		if strings.TrimSpace(r.Name) == "" {
			return nil, fmt.Errorf("rule %d: category name cannot be empty", i)
		}
		if _, dup := seen[r.Name]; dup {
			return nil, fmt.Errorf("rule %d: duplicate category %q", i, r.Name)
		}
		seen[r.Name] = struct{}{}

		if len(r.Keywords) == 0 {
			return nil, fmt.Errorf("rule %d (%s): at least one keyword is required", i, r.Name)
		}
		for _, kw := range r.Keywords {
			if strings.TrimSpace(kw) == "" {
				return nil, fmt.Errorf("rule %d (%s): keyword cannot be blank", i, r.Name)
			}
		}
	}
	return &Classifier{rules: rules}, nil
}

// Load parses YAML rule data into a Classifier.
func Load(data []byte) (*Classifier, error) {
	var rs ruleSet
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("parsing rules YAML: %w", err)
	}
	return NewClassifier(rs.Rules)
}

// LoadFile loads rules from a filesystem path.
func LoadFile(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	c, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("rules file %s: %w", path, err)
	}
	return c, nil
}

// LoadEmbedded loads the built-in default rule set.
func LoadEmbedded() (*Classifier, error) {
	c, err := Load(embeddedRules)
	if err != nil {
		return nil, fmt.Errorf("loading embedded rules: %w", err)
	}
	return c, nil
}

// Rules returns a copy of the rule list in evaluation order.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// DefaultTemplate returns the built-in rules file verbatim, for writing a
// starter rules.yaml a user can edit.
func DefaultTemplate() []byte {
	out := make([]byte, len(embeddedRules))
	copy(out, embeddedRules)
	return out
}
