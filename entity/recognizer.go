package entity

import (
	"fmt"

	"github.com/mohini32/legal-AI-Reader/model"
)

// contextRadius is how many bytes of surrounding text are captured as an
// entity's context snippet.
const contextRadius = 60

// Recognizer extracts entities from normalized text. It is safe for
// concurrent use; the pattern tables are read-only after construction.
type Recognizer struct {
	tagger   Tagger
	patterns []pattern
}

// NewRecognizer builds a Recognizer. The tagger may be nil, in which case
// only the deterministic pattern passes run. Gazetteer terms (known party
// names, legal connector phrases) extend the built-in pattern table.
func NewRecognizer(tagger Tagger, gazetteerTerms []string) *Recognizer {
	patterns := make([]pattern, 0, len(defaultPatterns)+len(gazetteerTerms))
	patterns = append(patterns, defaultPatterns...)
	patterns = append(patterns, compileGazetteerPatterns(gazetteerTerms)...)
	return &Recognizer{
		tagger:   tagger,
		patterns: patterns,
	}
}

// Recognize extracts, merges, deduplicates, and normalizes entities from
// text. The text is treated as one continuous stream, so spans may cross
// page boundaries. A tagger failure degrades to pattern-only extraction
// with a warning rather than failing the pipeline.
func (r *Recognizer) Recognize(text string) ([]Entity, []model.Warning) {
	if text == "" {
		return nil, nil
	}

	rule := r.patternPass(text)

	var (
		tagged   []Entity
		warnings []model.Warning
	)
	if r.tagger != nil {
		spans, err := r.tagger.Tag(text)
		if err != nil {
			warnings = append(warnings, model.Warning{
				Kind:    model.WarnPartialExtraction,
				Message: fmt.Sprintf("entity tagger failed, falling back to pattern extraction: %v", err),
			})
		} else {
			for _, sp := range spans {
				if sp.End <= sp.Start || sp.Start < 0 || sp.End > len(text) {
					continue
				}
				tagged = append(tagged, Entity{
					Category:   sp.Category,
					Text:       text[sp.Start:sp.End],
					Start:      sp.Start,
					End:        sp.End,
					Context:    snippet(text, sp.Start, sp.End),
					Confidence: clamp01(sp.Confidence),
					Source:     SourceTagger,
				})
			}
		}
	}

	merged, mergeWarnings := mergeCandidates(rule, tagged)
	warnings = append(warnings, mergeWarnings...)

	out := make([]Entity, 0, len(merged))
	for _, e := range merged {
		out = append(out, normalizeEntity(e))
	}
	return out, warnings
}

// patternPass runs every regex pattern over the text.
func (r *Recognizer) patternPass(text string) []Entity {
	var out []Entity
	for _, p := range r.patterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			if end <= start {
				continue
			}
			out = append(out, Entity{
				Category:   p.category,
				Text:       text[start:end],
				Start:      start,
				End:        end,
				Context:    snippet(text, start, end),
				Confidence: clamp01(p.confidence),
				Source:     SourceRule,
			})
		}
	}
	return out
}

// snippet returns the text surrounding a span, trimmed to rune boundaries.
func snippet(text string, start, end int) string {
	from := start - contextRadius
	if from < 0 {
		from = 0
	}
	to := end + contextRadius
	if to > len(text) {
		to = len(text)
	}
	// Back off partial UTF-8 sequences at the cut points.
	for from > 0 && from < len(text) && (text[from]&0xC0) == 0x80 {
		from++
	}
	for to > from && to < len(text) && (text[to]&0xC0) == 0x80 {
		to--
	}
	return text[from:to]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
