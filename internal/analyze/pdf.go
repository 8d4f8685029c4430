package analyze

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	rpdf "rsc.io/pdf"
)

// PDFProvider extracts page text from PDF files with rsc.io/pdf.
type PDFProvider struct{}

func (PDFProvider) Pages(ctx context.Context, path string, limit int) (set PageSet, err error) {
	f, err := os.Open(path)
	if err != nil {
		return PageSet{}, err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return PageSet{}, err
	}
	if info.Size() == 0 {
		return PageSet{}, ErrEmptyDocument
	}

	// rsc.io/pdf panics on malformed input instead of returning errors.
	defer func() {
		if r := recover(); r != nil {
			set, err = PageSet{}, fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	doc, err := rpdf.NewReader(f, info.Size())
	if err != nil {
		return PageSet{}, err
	}
	total := doc.NumPage()
	n := total
	if limit > 0 && limit < n {
		n = limit
	}
	texts := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return PageSet{}, err
		}
		p := doc.Page(i)
		if p.V.IsNull() {
			texts = append(texts, "")
			continue
		}
		texts = append(texts, pageText(p.Content().Text))
	}
	return PageSet{Texts: normalizePages(texts), Total: total}, nil
}

type textLine struct {
	y    float64
	runs []rpdf.Text
}

// pageText rebuilds reading-order lines from positioned text runs: runs
// sharing a baseline form a line, lines go top to bottom, runs left to right.
func pageText(runs []rpdf.Text) string {
	var lines []*textLine
	for _, t := range runs {
		tol := math.Max(t.FontSize*0.5, 1)
		var line *textLine
		for _, l := range lines {
			if math.Abs(l.y-t.Y) <= tol {
				line = l
				break
			}
		}
		if line == nil {
			line = &textLine{y: t.Y}
			lines = append(lines, line)
		}
		line.runs = append(line.runs, t)
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].y > lines[j].y })

	out := make([]string, 0, len(lines))
	for _, l := range lines {
		sort.SliceStable(l.runs, func(i, j int) bool { return l.runs[i].X < l.runs[j].X })
		var b strings.Builder
		for i, t := range l.runs {
			if i > 0 {
				prev := l.runs[i-1]
				gap := t.X - (prev.X + prev.W)
				if gap > t.FontSize*0.15 && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(t.S, " ") {
					b.WriteByte(' ')
				}
			}
			b.WriteString(t.S)
		}
		out = append(out, b.String())
	}
	return strings.Join(out, "\n")
}
