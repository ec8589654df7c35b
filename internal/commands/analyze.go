package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bankstat-dev/bankstat/internal/config"
	"github.com/bankstat-dev/bankstat/internal/report"
	"github.com/bankstat-dev/bankstat/internal/rules"
	"github.com/bankstat-dev/bankstat/internal/statement"
)

func newAnalyzeCommand() *cobra.Command {
	var (
		configPath string
		rulesPath  string
		topN       int
		outDir     string
		exportPath string
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <statement.csv>",
		Short: "Analyze a bank statement export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if rulesPath == "" {
				rulesPath = cfg.Rules
			}
			if topN <= 0 {
				topN = cfg.TopN
			}
			if outDir == "" {
				outDir = cfg.Output.Dir
			}
			return runAnalyze(args[0], cfg, rulesPath, topN, outDir, exportPath, quiet)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: built-in column mapping)")
	cmd.Flags().StringVar(&rulesPath, "rules", "", "keyword rules file (default: built-in rules)")
	cmd.Flags().IntVar(&topN, "top", 0, "size of top-N rankings (default: from config)")
	cmd.Flags().StringVar(&outDir, "out", "", "directory for the text report (default: from config)")
	cmd.Flags().StringVar(&exportPath, "export", "", "also export the normalized ledger CSV to this path")
	cmd.Flags().BoolVar(&quiet, "quiet", false, "skip the console report, only write files")

	return cmd
}

// loadConfig falls back to defaults when no config file is given. An explicit
// path that cannot be read is an error; silently losing a user's column
// mapping would misread the statement.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadClassifier(path string) (*rules.Classifier, error) {
	if path == "" {
		return rules.LoadEmbedded()
	}
	return rules.LoadFile(path)
}

func runAnalyze(statementPath string, cfg *config.Config, rulesPath string, topN int, outDir, exportPath string, quiet bool) error {
	classifier, err := loadClassifier(rulesPath)
	if err != nil {
		return err
	}

	// Structural problems in the statement abort here, before any report
	// output is produced.
	res, err := statement.ReadFile(statementPath, cfg.StatementColumns())
	if err != nil {
		return err
	}
	if len(res.Transactions) == 0 {
		return errors.New("no valid transactions after filtering")
	}

	classifier.Apply(res.Transactions)

	tables := report.BuildTables(res.Transactions, topN)

	if !quiet {
		report.Print(tables)
	}

	stem := strings.TrimSuffix(filepath.Base(statementPath), filepath.Ext(statementPath))
	reportPath, err := report.Save(outDir, stem, tables)
	if err != nil {
		return err
	}

	if exportPath != "" {
		if err := report.ExportLedgerFile(exportPath, res.Transactions); err != nil {
			return err
		}
	}

	report.PrintDiagnostics(res.Filter.Original, res.Filter.Kept, res.Filter.Removed, res.CoercedAmounts, res.CoercedBalances)
	fmt.Printf("Report written to %s\n", reportPath)
	return nil
}
