package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Write renders the full report as plain text. Identical input produces
// byte-identical output, so reruns can be diffed.
func Write(w io.Writer, t Tables) error {
	bw := bufio.NewWriter(w)
	for _, s := range sections(t) {
		fmt.Fprintf(bw, "\n%s\n", s.title)
		fmt.Fprintln(bw, strings.Repeat("=", len(s.title)))
		for _, line := range s.lines {
			fmt.Fprintln(bw, line)
		}
	}
	return bw.Flush()
}

// Save writes the text report into dir as analysis_report_<stem>.txt and
// returns the path.
func Save(dir, stem string, t Tables) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	path := filepath.Join(dir, "analysis_report_"+stem+".txt")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := Write(f, t); err != nil {
		return "", fmt.Errorf("writing report %s: %w", path, err)
	}
	return path, nil
}
