package analyze

import (
	"regexp"
	"strings"
	"unicode"
)

// space matches Unicode whitespace (NBSP, em space, U+0085, ...), which
// extracted PDF text often uses between a keyword and its number.
const space = `[\s\x{0b}\p{Z}\x{85}\x{1c}-\x{1f}]`

// Identifiers accept any Unicode letter or digit, not just ASCII word characters.
var headerRe = regexp.MustCompile(`(?i)^` + space + `*(Section|Clause|Article)` + space + `+([\p{L}\p{N}_.\-]+)[:\-]?` + space + `*(.*)`)

// Header is a parsed clause header line.
type Header struct {
	Kind       string // keyword as written in the input (Section, CLAUSE, article...)
	Identifier string
	Inline     string // trailing text on the header line, trimmed
}

// Title is the normalized clause title, e.g. "Section 4.2".
func (h Header) Title() string {
	return strings.TrimSpace(h.Kind + " " + h.Identifier)
}

// MatchHeader reports whether line opens a new clause.
func MatchHeader(line string) (Header, bool) {
	m := headerRe.FindStringSubmatch(line)
	if len(m) != 4 {
		return Header{}, false
	}
	return Header{Kind: m[1], Identifier: m[2], Inline: strings.TrimFunc(m[3], isSpace)}, true
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Z, r) || (r >= 0x1c && r <= 0x1f)
}
