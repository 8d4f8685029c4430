// Package ai adapts hosted language models to the analyze.Summarizer
// interface. Model output is never trusted blindly: empty answers and
// failures fall back to the deterministic summary.
package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/thywilljoshua/hydra/internal/analyze"
)

// maxPromptClauseChars bounds how much of each clause body goes into a prompt.
const maxPromptClauseChars = 600

// generator produces text for a prompt. Gemini satisfies it through its client.
type generator interface {
	generate(ctx context.Context, prompt string) (string, error)
}

// New returns the summarizer for provider ("off" or "gemini").
func New(ctx context.Context, provider, apiKey, model string) (analyze.Summarizer, error) {
	switch strings.ToLower(provider) {
	case "", "off":
		return analyze.Deterministic{}, nil
	case "gemini":
		g, err := NewGemini(ctx, apiKey, model)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown summarizer provider %q", provider)
	}
}

func buildPrompt(clauses []analyze.Clause) string {
	var b strings.Builder
	b.WriteString("Summarize the following contract clauses in one sentence (max 30 words). ")
	b.WriteString("Describe only what the text says; do not assess legal risk. Return plain text, no markdown.\n\n")
	for _, c := range clauses {
		body := c.Content
		if r := []rune(body); len(r) > maxPromptClauseChars {
			body = string(r[:maxPromptClauseChars]) + "..."
		}
		if c.Page > 0 {
			fmt.Fprintf(&b, "%s (page %d):\n%s\n\n", c.Title, c.Page, body)
		} else {
			fmt.Fprintf(&b, "%s:\n%s\n\n", c.Title, body)
		}
	}
	return b.String()
}

// cleanAnswer strips code fences and wrapping quotes models like to add.
func cleanAnswer(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if nl := strings.Index(s, "\n"); nl != -1 {
			s = s[nl+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "```"))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.Join(strings.Fields(s), " ")
}
