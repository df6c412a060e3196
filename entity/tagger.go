package entity

import (
	"strings"
)

// Span is a candidate entity span produced by a tagger, with byte offsets
// into the tagged text.
type Span struct {
	Start      int
	End        int
	Category   Category
	Confidence float64
}

// Tagger is the narrow interface to a named-entity tagger. Implementations
// wrap statistical NLP models; RuleTagger provides a deterministic
// substitute for tests and environments without model data.
type Tagger interface {
	Tag(text string) ([]Span, error)
}

// RuleTagger is a deterministic gazetteer-backed tagger. It marks
// occurrences of known party names and capitalized names followed by a
// corporate suffix. Useful in tests and as a fallback when no statistical
// tagger is configured.
type RuleTagger struct {
	// Parties are known party names to tag verbatim.
	Parties []string

	// Confidence assigned to matches. Defaults to 0.8 when zero.
	Confidence float64
}

// Tag implements Tagger.
func (t *RuleTagger) Tag(text string) ([]Span, error) {
	conf := t.Confidence
	if conf == 0 {
		conf = 0.8
	}

	var spans []Span
	lower := strings.ToLower(text)
	for _, name := range t.Parties {
		needle := strings.ToLower(name)
		if needle == "" {
			continue
		}
		for from := 0; ; {
			i := strings.Index(lower[from:], needle)
			if i < 0 {
				break
			}
			start := from + i
			spans = append(spans, Span{
				Start:      start,
				End:        start + len(needle),
				Category:   CategoryParty,
				Confidence: conf,
			})
			from = start + len(needle)
		}
	}
	return spans, nil
}

// findOccurrences locates every non-overlapping occurrence of needle in
// text and returns spans with the given category and confidence. Shared by
// taggers whose underlying model reports entity text without offsets.
func findOccurrences(text, needle string, cat Category, conf float64) []Span {
	if needle == "" {
		return nil
	}
	var spans []Span
	for from := 0; ; {
		i := strings.Index(text[from:], needle)
		if i < 0 {
			break
		}
		start := from + i
		spans = append(spans, Span{
			Start:      start,
			End:        start + len(needle),
			Category:   cat,
			Confidence: conf,
		})
		from = start + len(needle)
	}
	return spans
}
