package analyze

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

var (
	// ErrEmptyDocument is returned by providers for documents with no bytes.
	ErrEmptyDocument = errors.New("empty document")
	// ErrUnsupportedFormat is returned by ProviderFor for unknown extensions.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

// ExtractError wraps a PageProvider failure for the document at Path.
type ExtractError struct {
	Path string
	Err  error
}

func (e *ExtractError) Error() string { return "extract pages from " + e.Path + ": " + e.Err.Error() }

func (e *ExtractError) Unwrap() error { return e.Err }

// Clause is a block of document text under one header.
// Page is 1-based; 0 means the page is unknown.
type Clause struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Page    int    `json:"page,omitempty"`
}

// Rule flags clauses whose text contains Keyword.
type Rule struct {
	Keyword  string `json:"keyword" yaml:"keyword"`
	Severity string `json:"severity" yaml:"severity"`
}

// RuleResult is a clause paired with the rule it matched.
type RuleResult struct {
	Clause
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
}

type DocumentAnalysis struct {
	Filename  string       `json:"filename"`
	PageCount int          `json:"page_count"`
	Clauses   []Clause     `json:"clauses"`
	Summary   string       `json:"summary"`
	Rules     []RuleResult `json:"rules"`
}

// PageSet is what a PageProvider hands to the pipeline: the page texts it
// extracted (bounded by the page limit) and the document's total page count.
type PageSet struct {
	Texts []string
	Total int
}

type PageProvider interface {
	Pages(ctx context.Context, path string, limit int) (PageSet, error)
}

type Summarizer interface {
	Summarize(ctx context.Context, clauses []Clause) (string, error)
}

type Config struct {
	Provider   PageProvider
	MaxPages   int
	Rules      []Rule
	Summarizer Summarizer
	// Filename overrides the name reported in the analysis (default: base of path).
	Filename string
	Logger   *zap.Logger
}

func (c *Config) defaults() {
	if c.Rules == nil {
		c.Rules = DefaultRules()
	}
	if c.Summarizer == nil {
		c.Summarizer = Deterministic{}
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}
