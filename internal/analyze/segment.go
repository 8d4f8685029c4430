package analyze

import (
	"strings"
	"unicode/utf8"
)

// segmenter is the per-call scan state. active is false in the
// NoActiveClause state; title, page and buffer describe the open clause otherwise.
type segmenter struct {
	active bool
	title  string
	page   int
	buffer []string
	out    []Clause
}

func (s *segmenter) header(h Header, page int) {
	if s.active {
		s.flush()
	}
	s.active = true
	s.title = h.Title()
	s.page = page
	s.buffer = nil
	if h.Inline != "" {
		s.buffer = append(s.buffer, h.Inline)
	}
}

func (s *segmenter) body(line string) {
	if !s.active {
		return
	}
	s.buffer = append(s.buffer, line)
}

// flush emits the open clause if it buffered any line. Empty content is
// filtered once at the end of the scan, not here.
func (s *segmenter) flush() {
	if !s.active || len(s.buffer) == 0 {
		return
	}
	s.out = append(s.out, Clause{
		Title:   s.title,
		Content: strings.TrimSpace(strings.Join(s.buffer, "\n")),
		Page:    s.page,
	})
}

// Segment scans page texts in order and returns the clauses they contain.
// Text before the first header is ignored; a clause keeps the page of its
// header even when its body continues onto later pages.
func Segment(pages []string) []Clause {
	var s segmenter
	for i, page := range pages {
		for _, line := range splitLines(page) {
			if h, ok := MatchHeader(line); ok {
				s.header(h, i+1)
				continue
			}
			s.body(line)
		}
	}
	s.flush()

	out := make([]Clause, 0, len(s.out))
	for _, c := range s.out {
		if strings.TrimSpace(c.Content) != "" {
			out = append(out, c)
		}
	}
	return out
}

// splitLines splits on every universal line boundary. A trailing
// terminator does not produce an extra empty line.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch r {
		case '\r':
			lines = append(lines, s[start:i])
			i += size
			if i < len(s) && s[i] == '\n' {
				i++
			}
			start = i
			continue
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			lines = append(lines, s[start:i])
			i += size
			start = i
			continue
		}
		i += size
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
