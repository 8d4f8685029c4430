// Package analyze turns paginated document text into labeled clauses, a
// one-sentence summary and keyword-based rule flags.
//
// The pipeline is synchronous: pages are obtained from a PageProvider,
// segmented in order, deduplicated, summarized and flagged.
//
//	res, err := analyze.Run(ctx, "contract.pdf", analyze.Config{Provider: analyze.PDFProvider{}, MaxPages: 20})
package analyze

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

// Run analyzes the document at path. A provider failure aborts the whole
// run; no partial analysis is ever returned.
func Run(ctx context.Context, path string, cfg Config) (*DocumentAnalysis, error) {
	if cfg.Provider == nil {
		p, err := ProviderFor(path)
		if err != nil {
			return nil, err
		}
		cfg.Provider = p
	}
	cfg.defaults()
	log := cfg.Logger.With(zap.String("path", path))

	set, err := cfg.Provider.Pages(ctx, path, cfg.MaxPages)
	if err != nil {
		return nil, &ExtractError{Path: path, Err: err}
	}
	log.Debug("pages extracted", zap.Int("scanned", len(set.Texts)), zap.Int("total", set.Total))

	name := cfg.Filename
	if name == "" {
		name = filepath.Base(path)
	}
	return assemble(ctx, name, set, cfg, log)
}

// RunPages runs the pipeline over in-memory page texts.
func RunPages(ctx context.Context, name string, pages []string, cfg Config) (*DocumentAnalysis, error) {
	cfg.Provider = StaticPages(pages)
	if cfg.Filename == "" {
		cfg.Filename = name
	}
	return Run(ctx, name, cfg)
}

func assemble(ctx context.Context, name string, set PageSet, cfg Config, log *zap.Logger) (*DocumentAnalysis, error) {
	clauses := Segment(set.Texts)
	log.Debug("segmented", zap.Int("clauses", len(clauses)))

	// Aggregation runs even for a single group so dedup always applies.
	aggregated := Aggregate(clauses)

	summary, err := cfg.Summarizer.Summarize(ctx, aggregated)
	if err != nil {
		return nil, fmt.Errorf("summarize %s: %w", name, err)
	}

	flags := ApplyRules(aggregated, cfg.Rules)

	log.Info("document analyzed",
		zap.String("filename", name),
		zap.Int("pages", set.Total),
		zap.Int("clauses", len(aggregated)),
		zap.Int("flags", len(flags)),
	)
	return &DocumentAnalysis{
		Filename:  name,
		PageCount: set.Total,
		Clauses:   aggregated,
		Summary:   summary,
		Rules:     flags,
	}, nil
}

// IsInputError reports whether err is a rejection of the document itself
// rather than a failure while processing it.
func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyDocument) || errors.Is(err, ErrUnsupportedFormat)
}
