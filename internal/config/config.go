package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bankstat-dev/bankstat/internal/statement"
)

// Config represents the top-level bankstat.yaml configuration.
type Config struct {
	Columns ColumnsConfig `yaml:"columns"`
	Rules   string        `yaml:"rules,omitempty"` // rules file path; empty uses the built-in set
	TopN    int           `yaml:"top_n"`
	Output  OutputConfig  `yaml:"output"`
}

// ColumnsConfig maps the statement's header names onto pipeline roles.
type ColumnsConfig struct {
	Date         string `yaml:"date"`
	Income       string `yaml:"income"`
	Expense      string `yaml:"expense"`
	Balance      string `yaml:"balance"`
	Summary      string `yaml:"summary"`
	Counterparty string `yaml:"counterparty,omitempty"`
	Detail       string `yaml:"detail,omitempty"`
	Location     string `yaml:"location,omitempty"`
}

// OutputConfig controls where report files are written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// Load reads a bankstat.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config matching the bank's own CSV export.
func Default() *Config {
	cols := statement.DefaultColumns()
	return &Config{
		Columns: ColumnsConfig{
			Date:         cols.Date,
			Income:       cols.Income,
			Expense:      cols.Expense,
			Balance:      cols.Balance,
			Summary:      cols.Summary,
			Counterparty: cols.Counterparty,
			Detail:       cols.Detail,
			Location:     cols.Location,
		},
		TopN: 10,
		Output: OutputConfig{
			Dir: "analysis_results",
		},
	}
}

// StatementColumns converts the column mapping to the statement package's
// form.
func (c *Config) StatementColumns() statement.Columns {
	return statement.Columns{
		Date:         c.Columns.Date,
		Income:       c.Columns.Income,
		Expense:      c.Columns.Expense,
		Balance:      c.Columns.Balance,
		Summary:      c.Columns.Summary,
		Counterparty: c.Columns.Counterparty,
		Detail:       c.Columns.Detail,
		Location:     c.Columns.Location,
	}
}
