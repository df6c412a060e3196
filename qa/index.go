// Package qa answers natural-language questions about an analyzed
// contract and produces extractive summaries. Answers are grounded in
// recognized entities and classified clauses; when nothing in the
// document supports a confident answer, the responder says so instead of
// guessing.
package qa

import (
	"strings"

	"github.com/mohini32/legal-AI-Reader/clause"
	"github.com/mohini32/legal-AI-Reader/entity"
)

// chunkOverlap is how many bytes of the following clause are appended to
// each chunk so phrases spanning a clause boundary remain searchable.
const chunkOverlap = 200

// stopwords are dropped during tokenization; they carry no retrieval
// signal.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "was": true,
	"were": true, "this": true, "that": true, "with": true, "shall": true,
	"will": true, "may": true, "any": true, "all": true, "its": true,
	"has": true, "have": true, "not": true, "does": true, "what": true,
	"when": true, "who": true, "how": true, "where": true, "which": true,
	"can": true, "under": true, "upon": true, "into": true, "from": true,
	"agreement": true, "party": true, "parties": true,
}

// chunk is one retrievable unit: a clause plus a short overlap into the
// next clause.
type chunk struct {
	clauseIndex int
	text        string
	tokens      map[string]int
}

// Index holds the searchable view of one analyzed document.
type Index struct {
	clauses  []clause.Clause
	entities []entity.Entity
	chunks   []chunk
}

// NewIndex builds the retrieval index from segmented clauses and
// recognized entities. Both slices may be empty.
func NewIndex(clauses []clause.Clause, entities []entity.Entity) *Index {
	idx := &Index{
		clauses:  clauses,
		entities: entities,
		chunks:   make([]chunk, 0, len(clauses)),
	}
	for i, cl := range clauses {
		text := cl.Text
		if i+1 < len(clauses) {
			next := clauses[i+1].Text
			if len(next) > chunkOverlap {
				next = next[:chunkOverlap]
			}
			text += next
		}
		idx.chunks = append(idx.chunks, chunk{
			clauseIndex: cl.Index,
			text:        text,
			tokens:      countTokens(tokenizeQuery(text)),
		})
	}
	return idx
}

// entitiesOf returns the document's entities of one category, in text
// order.
func (idx *Index) entitiesOf(cat entity.Category) []entity.Entity {
	var out []entity.Entity
	for _, e := range idx.entities {
		if e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

// clauseAt returns the clause containing the byte offset, or nil.
func (idx *Index) clauseAt(offset int) *clause.Clause {
	for i := range idx.clauses {
		if offset >= idx.clauses[i].Start && offset < idx.clauses[i].End {
			return &idx.clauses[i]
		}
	}
	return nil
}

// clausesOf returns the clauses classified as the given type.
func (idx *Index) clausesOf(t clause.Type) []clause.Clause {
	var out []clause.Clause
	for _, cl := range idx.clauses {
		if cl.Type == t {
			out = append(out, cl)
		}
	}
	return out
}

// tokenizeQuery lowercases and splits on non-alphanumeric runes, dropping
// stopwords and tokens shorter than three bytes.
func tokenizeQuery(s string) []string {
	s = strings.ToLower(s)
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) >= 3 && !stopwords[f] {
			out = append(out, f)
		}
	}
	return out
}

func countTokens(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}
