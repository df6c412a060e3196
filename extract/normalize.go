package extract

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// stripControl removes control characters other than newline and tab.
	stripControl = runes.Remove(runes.Predicate(func(r rune) bool {
		if r == '\n' || r == '\t' {
			return false
		}
		return unicode.IsControl(r) || r == 0xFFFD
	}))

	hyphenBreakRe   = regexp.MustCompile(`(\p{Ll})-\n\s*(\p{Ll})`)
	spaceRunRe      = regexp.MustCompile(`[ \t]+`)
	blankRunRe      = regexp.MustCompile(`\n{3,}`)
	trailingSpaceRe = regexp.MustCompile(`[ \t]+\n`)
)

// NormalizeText cleans raw extracted text into the canonical form the
// analysis packages operate on: NFKC-normalized Unicode, no control
// characters, no end-of-line hyphenation, collapsed whitespace, and at
// most one blank line between paragraphs.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	t := transform.Chain(norm.NFKC, stripControl)
	normalized, _, err := transform.String(t, s)
	if err == nil {
		s = normalized
	}

	// Rejoin words broken across lines: "termina-\ntion" -> "termination".
	s = hyphenBreakRe.ReplaceAllString(s, "$1$2")

	s = spaceRunRe.ReplaceAllString(s, " ")
	s = trailingSpaceRe.ReplaceAllString(s, "\n")
	s = blankRunRe.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}

// normalizeSegments normalizes each segment and drops segments that end up
// empty, preserving order.
func normalizeSegments(raw []string) []string {
	var texts []string
	for _, s := range raw {
		cleaned := NormalizeText(s)
		if cleaned == "" {
			continue
		}
		texts = append(texts, cleaned)
	}
	return texts
}
