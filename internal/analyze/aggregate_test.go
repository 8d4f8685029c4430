package analyze

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAggregateDedup(t *testing.T) {
	a := Clause{Title: "Section 1", Content: "alpha", Page: 1}
	aPadded := Clause{Title: "Section 1", Content: "  alpha\n", Page: 1}
	b := Clause{Title: "Section 2", Content: "beta", Page: 2}
	aOtherPage := Clause{Title: "Section 1", Content: "alpha", Page: 3}
	aUpper := Clause{Title: "SECTION 1", Content: "alpha", Page: 1}

	got := Aggregate([]Clause{a, b}, []Clause{aPadded, aOtherPage, b, aUpper})
	want := []Clause{a, b, aOtherPage, aUpper}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Aggregate (-want +got):\n%s", diff)
	}
}

func TestAggregateKeepsFirstContent(t *testing.T) {
	first := Clause{Title: "Clause 4", Content: " padded ", Page: 2}
	later := Clause{Title: "Clause 4", Content: "padded", Page: 2}
	got := Aggregate([]Clause{first, later})
	if len(got) != 1 || got[0].Content != " padded " {
		t.Fatalf("expected first occurrence untouched, got %+v", got)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	groups := [][]Clause{
		{{Title: "Section 1", Content: "x", Page: 1}, {Title: "Section 1", Content: "x", Page: 1}},
		{{Title: "Article 2", Content: "y"}, {Title: "Section 1", Content: "x ", Page: 1}},
		{},
		{{Title: "Article 2", Content: "y", Page: 0}, {Title: "Article 3", Content: "z", Page: 5}},
	}
	once := Aggregate(groups...)
	twice := Aggregate(once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("Aggregate not idempotent (-once +twice):\n%s", diff)
	}
	if len(once) != 3 {
		t.Fatalf("expected 3 unique clauses, got %d", len(once))
	}
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	in := []Clause{{Title: "Section 1", Content: " a ", Page: 1}, {Title: "Section 1", Content: "a", Page: 1}}
	snapshot := append([]Clause(nil), in...)
	Aggregate(in)
	if diff := cmp.Diff(snapshot, in); diff != "" {
		t.Fatalf("input mutated (-before +after):\n%s", diff)
	}
}

func TestAggregateEmpty(t *testing.T) {
	if got := Aggregate(); len(got) != 0 {
		t.Fatalf("expected no clauses, got %+v", got)
	}
}
