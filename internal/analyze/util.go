package analyze

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9\-]+`)

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", "-", "/", "-", ".", "-", "_", "-").Replace(s)
	s = nonSlug.ReplaceAllString(s, "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// ReportName derives the markdown report file name for a document.
func ReportName(filename string) string {
	base := filepath.Base(filename)
	slug := slugify(strings.TrimSuffix(base, filepath.Ext(base)))
	if slug == "" {
		slug = "analysis"
	}
	return slug + ".md"
}

// ReportNames returns one report name per filename. Names that would collide
// get a numeric suffix in input order: contract.md, contract-2.md, ...
func ReportNames(filenames []string) []string {
	used := make(map[string]bool, len(filenames))
	out := make([]string, len(filenames))
	for i, f := range filenames {
		name := ReportName(f)
		stem := strings.TrimSuffix(name, ".md")
		for n := 2; used[name]; n++ {
			name = stem + "-" + strconv.Itoa(n) + ".md"
		}
		used[name] = true
		out[i] = name
	}
	return out
}

func escapeQuotes(s string) string { return strings.ReplaceAll(s, "\"", "\\\"") }

// cell makes s safe inside a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.Join(strings.Fields(s), " ")
}
