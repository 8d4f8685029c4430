package analyze

import "strings"

type clauseKey struct {
	title   string
	page    int
	content string
}

// Aggregate flattens clause groups in order and drops duplicates keyed on
// title, page and trimmed content. The first occurrence wins and is kept as is.
func Aggregate(groups ...[]Clause) []Clause {
	seen := make(map[clauseKey]struct{})
	out := []Clause{}
	for _, group := range groups {
		for _, c := range group {
			key := clauseKey{title: c.Title, page: c.Page, content: strings.TrimSpace(c.Content)}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}
