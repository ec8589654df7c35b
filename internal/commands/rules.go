package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bankstat-dev/bankstat/internal/rules"
)

func newRulesCommand() *cobra.Command {
	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Keyword rule management",
	}
	rulesCmd.AddCommand(newRulesInitCommand())
	rulesCmd.AddCommand(newRulesListCommand())
	return rulesCmd
}

func newRulesInitCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default rules file as a starting point for editing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(out); err == nil {
				return fmt.Errorf("%s already exists, refusing to overwrite", out)
			}
			if err := os.WriteFile(out, rules.DefaultTemplate(), 0o644); err != nil {
				return fmt.Errorf("writing rules template: %w", err)
			}
			fmt.Printf("Rules template written to %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "rules.yaml", "output path for the rules template")

	return cmd
}

func newRulesListCommand() *cobra.Command {
	var rulesPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the rules in evaluation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			classifier, err := loadClassifier(rulesPath)
			if err != nil {
				return err
			}
			for i, r := range classifier.Rules() {
				fmt.Printf("%2d. %s: %v\n", i+1, r.Name, r.Keywords)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "keyword rules file (default: built-in rules)")

	return cmd
}
