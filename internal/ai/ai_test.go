package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/thywilljoshua/hydra/internal/analyze"
)

type fakeGen struct {
	out    string
	err    error
	prompt string
}

func (f *fakeGen) generate(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.out, f.err
}

var clauses = []analyze.Clause{
	{Title: "Section 1", Content: "All info is confidential.", Page: 1},
	{Title: "Article 2", Content: "Either party may terminate."},
}

func TestGeminiSummarize(t *testing.T) {
	gen := &fakeGen{out: "```\n\"The contract covers confidentiality and termination.\"\n```"}
	g := &Gemini{gen: gen, model: "test"}
	got, err := g.Summarize(context.Background(), clauses)
	if err != nil {
		t.Fatal(err)
	}
	if got != "The contract covers confidentiality and termination." {
		t.Fatalf("got %q", got)
	}
	if !strings.Contains(gen.prompt, "Section 1 (page 1):\nAll info is confidential.") {
		t.Errorf("prompt missing paged clause:\n%s", gen.prompt)
	}
	if !strings.Contains(gen.prompt, "Article 2:\nEither party may terminate.") {
		t.Errorf("prompt missing unpaged clause:\n%s", gen.prompt)
	}
}

func TestGeminiFallsBack(t *testing.T) {
	want := analyze.Summarize(clauses)
	for name, gen := range map[string]*fakeGen{
		"error": {err: errors.New("quota exceeded")},
		"empty": {out: "  \n "},
	} {
		g := &Gemini{gen: gen}
		got, err := g.Summarize(context.Background(), clauses)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got != want {
			t.Errorf("%s: got %q, want %q", name, got, want)
		}
	}
}

func TestGeminiSkipsModelForNoClauses(t *testing.T) {
	gen := &fakeGen{out: "should not be used"}
	got, _ := (&Gemini{gen: gen}).Summarize(context.Background(), nil)
	if got != "No clauses identified." || gen.prompt != "" {
		t.Fatalf("got %q, prompt %q", got, gen.prompt)
	}
}

func TestBuildPromptTruncates(t *testing.T) {
	long := strings.Repeat("x", maxPromptClauseChars+50)
	p := buildPrompt([]analyze.Clause{{Title: "Clause 9", Content: long}})
	if strings.Contains(p, long) || !strings.Contains(p, strings.Repeat("x", maxPromptClauseChars)+"...") {
		t.Fatal("clause body not truncated")
	}
}

func TestNew(t *testing.T) {
	s, err := New(context.Background(), "off", "", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(analyze.Deterministic); !ok {
		t.Fatalf("off: got %T", s)
	}
	if _, err := New(context.Background(), "gemini", "", ""); err == nil {
		t.Fatal("expected missing key error")
	}
	if _, err := New(context.Background(), "openai", "k", ""); err == nil {
		t.Fatal("expected unknown provider error")
	}
}
