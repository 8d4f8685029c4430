package analyze

import (
	"context"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name    string
		clauses []Clause
		want    string
	}{
		{"empty", nil, "No clauses identified."},
		{
			"single page",
			[]Clause{{Title: "Section 1", Content: "a", Page: 3}},
			"Identified 1 clauses across 1 sections over page 3.",
		},
		{
			"span ignores gaps",
			[]Clause{
				{Title: "Section 1", Content: "a", Page: 2},
				{Title: "Section 2", Content: "b", Page: 5},
				{Title: "Section 2", Content: "c", Page: 7},
			},
			"Identified 3 clauses across 2 sections over pages 2-7.",
		},
		{
			"unordered pages",
			[]Clause{{Title: "A", Content: "a", Page: 9}, {Title: "B", Content: "b", Page: 1}},
			"Identified 2 clauses across 2 sections over pages 1-9.",
		},
		{
			"unknown pages",
			[]Clause{{Title: "Article 1", Content: "a"}, {Title: "Article 1", Content: "b"}},
			"Identified 2 clauses across 1 sections over unknown pages.",
		},
		{
			"same page repeated",
			[]Clause{{Title: "A", Content: "a", Page: 4}, {Title: "B", Content: "b", Page: 4}, {Title: "C", Content: "c"}},
			"Identified 3 clauses across 3 sections over page 4.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.clauses); got != tt.want {
				t.Errorf("Summarize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeterministicSummarizer(t *testing.T) {
	got, err := Deterministic{}.Summarize(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "No clauses identified." {
		t.Fatalf("got %q", got)
	}
}
