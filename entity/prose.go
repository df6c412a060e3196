package entity

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// ProseTagger adapts the prose NLP library to the Tagger interface. Prose
// reports entity text without offsets, so each reported entity is located
// in the source text; every occurrence of a tagged name is marked.
type ProseTagger struct {
	// Confidence assigned to model output. Prose does not expose per-entity
	// scores, so a fixed estimate is used. Defaults to 0.8 when zero.
	Confidence float64
}

// Tag implements Tagger using prose's statistical named-entity model.
// PERSON and GPE labels both map to CategoryParty: in contract text the
// names the model finds are overwhelmingly the contracting parties, and
// the regex passes own the high-precision categories.
func (t *ProseTagger) Tag(text string) ([]Span, error) {
	conf := t.Confidence
	if conf == 0 {
		conf = 0.8
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("prose tagging: %w", err)
	}

	var spans []Span
	seen := make(map[string]bool)
	for _, ent := range doc.Entities() {
		if seen[ent.Text] {
			continue
		}
		seen[ent.Text] = true

		switch ent.Label {
		case "PERSON", "GPE":
			spans = append(spans, findOccurrences(text, ent.Text, CategoryParty, conf)...)
		}
	}
	return spans, nil
}
