package analyze

import "strings"

// DefaultRules returns the built-in rule table. Order matters: it decides the
// order of results for a clause that matches several rules.
func DefaultRules() []Rule {
	return []Rule{
		{Keyword: "confidentiality", Severity: "warn"},
		{Keyword: "termination", Severity: "info"},
		{Keyword: "liability", Severity: "warn"},
	}
}

// ApplyRules flags every clause whose title or content contains a rule
// keyword, case-insensitively. A clause yields one result per matching rule.
func ApplyRules(clauses []Clause, rules []Rule) []RuleResult {
	keywords := make([]string, len(rules))
	for i, r := range rules {
		keywords[i] = strings.ToLower(r.Keyword)
	}

	results := []RuleResult{}
	for _, c := range clauses {
		text := strings.ToLower(c.Title + "\n" + c.Content)
		for i, r := range rules {
			if strings.Contains(text, keywords[i]) {
				results = append(results, RuleResult{Clause: c, Rule: r.Keyword, Severity: r.Severity})
			}
		}
	}
	return results
}
