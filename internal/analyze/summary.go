package analyze

import (
	"context"
	"fmt"
	"sort"
)

const noClausesSummary = "No clauses identified."

// Summarize describes a clause set in one sentence: how many clauses, how
// many distinct titles, and the span of pages they were found on.
func Summarize(clauses []Clause) string {
	if len(clauses) == 0 {
		return noClausesSummary
	}

	titles := make(map[string]struct{})
	pageSet := make(map[int]struct{})
	for _, c := range clauses {
		titles[c.Title] = struct{}{}
		if c.Page > 0 {
			pageSet[c.Page] = struct{}{}
		}
	}
	pages := make([]int, 0, len(pageSet))
	for p := range pageSet {
		pages = append(pages, p)
	}
	sort.Ints(pages)

	var span string
	switch len(pages) {
	case 0:
		span = "unknown pages"
	case 1:
		span = fmt.Sprintf("page %d", pages[0])
	default:
		span = fmt.Sprintf("pages %d-%d", pages[0], pages[len(pages)-1])
	}
	return fmt.Sprintf("Identified %d clauses across %d sections over %s.", len(clauses), len(titles), span)
}

// Deterministic is the built-in Summarizer. It never calls out to a model.
type Deterministic struct{}

func (Deterministic) Summarize(ctx context.Context, clauses []Clause) (string, error) {
	return Summarize(clauses), nil
}
