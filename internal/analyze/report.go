package analyze

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WriteMarkdown renders an analysis as a markdown report: front matter,
// summary, one heading per clause and a table of rule flags.
func WriteMarkdown(w io.Writer, a *DocumentAnalysis) error {
	var b strings.Builder
	fmt.Fprintf(&b, "---\ntitle: \"%s\"\npages: %d\n---\n\n", escapeQuotes(a.Filename), a.PageCount)
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", a.Filename, a.Summary)

	for _, c := range a.Clauses {
		b.WriteString("## ")
		b.WriteString(c.Title)
		if c.Page > 0 {
			fmt.Fprintf(&b, " (page %d)", c.Page)
		}
		b.WriteString("\n\n")
		b.WriteString(c.Content)
		b.WriteString("\n\n")
	}

	b.WriteString("## Flags\n\n")
	if len(a.Rules) == 0 {
		b.WriteString("No rules matched.\n")
	} else {
		b.WriteString("| Rule | Severity | Clause | Page |\n| --- | --- | --- | --- |\n")
		for _, r := range a.Rules {
			page := "-"
			if r.Page > 0 {
				page = strconv.Itoa(r.Page)
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", cell(r.Rule), cell(r.Severity), cell(r.Title), page)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteReport writes the markdown report into outDir and returns its path.
func WriteReport(outDir string, a *DocumentAnalysis) (string, error) {
	return WriteReportAs(outDir, ReportName(a.Filename), a)
}

// WriteReportAs writes the markdown report into outDir under name.
func WriteReportAs(outDir, name string, a *DocumentAnalysis) (string, error) {
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := WriteMarkdown(&buf, a); err != nil {
		return "", err
	}
	file := filepath.Join(outDir, name)
	if err := os.WriteFile(file, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	return file, nil
}
