package analyze

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApplyRulesMultiMatch(t *testing.T) {
	c := Clause{Title: "Section 8", Content: "LIABILITY is capped.\nConfidentiality survives.", Page: 4}
	got := ApplyRules([]Clause{c}, DefaultRules())
	want := []RuleResult{
		{Clause: c, Rule: "confidentiality", Severity: "warn"},
		{Clause: c, Rule: "liability", Severity: "warn"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ApplyRules (-want +got):\n%s", diff)
	}
}

func TestApplyRulesOrder(t *testing.T) {
	clauses := []Clause{
		{Title: "Clause 1", Content: "nothing to see", Page: 1},
		{Title: "Termination", Content: "ends", Page: 2},
		{Title: "Clause 3", Content: "termination and confidentiality", Page: 3},
	}
	got := ApplyRules(clauses, DefaultRules())
	var pairs [][2]string
	for _, r := range got {
		pairs = append(pairs, [2]string{r.Title, r.Rule})
	}
	want := [][2]string{
		{"Termination", "termination"},
		{"Clause 3", "confidentiality"},
		{"Clause 3", "termination"},
	}
	if diff := cmp.Diff(want, pairs); diff != "" {
		t.Fatalf("result order (-want +got):\n%s", diff)
	}
}

func TestApplyRulesCustomTable(t *testing.T) {
	rules := []Rule{{Keyword: "Indemnify", Severity: "high"}, {Keyword: "fees", Severity: "low"}}
	clauses := []Clause{{Title: "Article 2", Content: "Supplier shall INDEMNIFY buyer. Fees apply.", Page: 1}}
	got := ApplyRules(clauses, rules)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Rule != "Indemnify" || got[0].Severity != "high" {
		t.Errorf("first result = %+v", got[0])
	}
	if got[1].Rule != "fees" || got[1].Severity != "low" {
		t.Errorf("second result = %+v", got[1])
	}
}

func TestApplyRulesMatchAcrossTitleBoundary(t *testing.T) {
	// title and content are joined with a newline, so a keyword cannot span them.
	c := Clause{Title: "Section termi", Content: "nation", Page: 1}
	if got := ApplyRules([]Clause{c}, DefaultRules()); len(got) != 0 {
		t.Fatalf("expected no match, got %+v", got)
	}
}

func TestApplyRulesNoClauses(t *testing.T) {
	if got := ApplyRules(nil, DefaultRules()); len(got) != 0 {
		t.Fatalf("expected none, got %+v", got)
	}
}
