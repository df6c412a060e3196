package clause

import (
	"strings"
	"unicode"
)

// abbreviations that end with a period but do not end a sentence.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"inc": true, "ltd": true, "corp": true, "co": true, "llc": true,
	"no": true, "sec": true, "art": true, "para": true, "cl": true,
	"etc": true, "vs": true, "v": true, "e.g": true, "i.e": true,
	"u.s": true, "u.s.c": true, "c.f.r": true, "st": true,
}

// span is a half-open [Start, End) byte range.
type span struct {
	Start int
	End   int
}

// splitSentences returns contiguous sentence spans covering text: the
// first span starts at 0, each span starts where the previous ended, and
// the last span ends at len(text). Boundaries are placed after sentence
// punctuation followed by whitespace, skipping common legal abbreviations
// and single-letter initials.
func splitSentences(text string) []span {
	if text == "" {
		return nil
	}

	var spans []span
	start := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' && c != ';' {
			continue
		}
		if c == '.' && isAbbreviation(text, i) {
			continue
		}
		// Consume closing quotes/parens after the punctuation.
		end := i + 1
		for end < len(text) {
			if text[end] == '"' || text[end] == ')' {
				end++
				continue
			}
			if strings.HasPrefix(text[end:], "”") {
				end += len("”")
				continue
			}
			break
		}
		if end >= len(text) {
			break
		}
		if !isSentenceStart(text, end) {
			continue
		}
		// Extend the span through trailing whitespace so spans stay
		// contiguous.
		for end < len(text) && (text[end] == ' ' || text[end] == '\n' || text[end] == '\t') {
			end++
		}
		spans = append(spans, span{Start: start, End: end})
		start = end
		i = end - 1
	}

	if start < len(text) {
		spans = append(spans, span{Start: start, End: len(text)})
	}
	return spans
}

// Sentences returns the trimmed sentences of text in order. Empty
// sentences are dropped.
func Sentences(text string) []string {
	spans := splitSentences(text)
	out := make([]string, 0, len(spans))
	for _, sp := range spans {
		s := strings.TrimSpace(text[sp.Start:sp.End])
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// isAbbreviation reports whether the period at index i terminates a known
// abbreviation or single-letter initial.
func isAbbreviation(text string, i int) bool {
	wordStart := i
	for wordStart > 0 {
		r := text[wordStart-1]
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '.' {
			wordStart--
			continue
		}
		break
	}
	word := strings.ToLower(strings.TrimSuffix(text[wordStart:i], "."))
	if word == "" {
		return false
	}
	if len(word) == 1 && word != "v" {
		// Single-letter initial like the P in "John P. Smith".
		return true
	}
	return abbreviations[word] || abbreviations[strings.TrimPrefix(word, ".")]
}

// isSentenceStart reports whether a sentence plausibly starts at or after
// offset i (skipping whitespace): an uppercase letter, a digit, or an
// opening quote/paren.
func isSentenceStart(text string, i int) bool {
	for _, r := range text[i:] {
		if r == ' ' || r == '\n' || r == '\t' {
			continue
		}
		if unicode.IsUpper(r) || unicode.IsDigit(r) {
			return true
		}
		return r == '"' || r == '(' || r == '“'
	}
	// End of text counts as a boundary.
	return true
}
