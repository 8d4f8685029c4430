package analyze

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ProviderFor picks a page provider from the file extension.
func ProviderFor(path string) (PageProvider, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return PDFProvider{}, nil
	case ".txt", ".text":
		return TextProvider{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// TextProvider reads a UTF-8 text file whose pages are separated by form feeds.
type TextProvider struct{}

func (TextProvider) Pages(ctx context.Context, path string, limit int) (PageSet, error) {
	if err := ctx.Err(); err != nil {
		return PageSet{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return PageSet{}, err
	}
	if len(b) == 0 {
		return PageSet{}, ErrEmptyDocument
	}
	pages := strings.Split(string(b), "\f")
	// pdftotext ends every page, including the last, with a form feed.
	if n := len(pages); n > 1 && pages[n-1] == "" {
		pages = pages[:n-1]
	}
	return PageSet{Texts: normalizePages(limitPages(pages, limit)), Total: len(pages)}, nil
}

// StaticPages serves pages already held in memory; the path is ignored.
type StaticPages []string

func (s StaticPages) Pages(ctx context.Context, _ string, limit int) (PageSet, error) {
	if err := ctx.Err(); err != nil {
		return PageSet{}, err
	}
	if len(s) == 0 {
		return PageSet{}, ErrEmptyDocument
	}
	return PageSet{Texts: normalizePages(limitPages(s, limit)), Total: len(s)}, nil
}

// limitPages returns at most limit leading pages; limit <= 0 keeps them all.
func limitPages(pages []string, limit int) []string {
	if limit > 0 && limit < len(pages) {
		return pages[:limit]
	}
	return pages
}

func normalizePages(pages []string) []string {
	out := make([]string, len(pages))
	for i, p := range pages {
		out[i] = norm.NFC.String(p)
	}
	return out
}
