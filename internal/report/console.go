package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	titleColor = color.New(color.FgGreen, color.Bold)
	noteColor  = color.New(color.FgYellow)
)

// Print renders the full report to stdout with colored section headers.
func Print(t Tables) {
	for _, s := range sections(t) {
		titleColor.Printf("\n%s\n", s.title)
		titleColor.Println(strings.Repeat("=", len(s.title)))
		for _, line := range s.lines {
			fmt.Println(line)
		}
	}
}

// PrintDiagnostics summarizes filtering and cell coercion after the report,
// so dirty cells are visible without failing the run.
func PrintDiagnostics(original, kept, removed, coercedAmounts, coercedBalances int) {
	fmt.Println()
	fmt.Printf("Rows: %d read, %d kept, %d filtered\n", original, kept, removed)
	if coercedAmounts > 0 {
		noteColor.Printf("Warning: %d amount cell(s) could not be parsed and were counted as zero\n", coercedAmounts)
	}
	if coercedBalances > 0 {
		noteColor.Printf("Warning: %d balance cell(s) could not be parsed and were left unknown\n", coercedBalances)
	}
}
