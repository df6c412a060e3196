package clause

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultThreshold is the default classification confidence threshold:
// the best-scoring type must reach it or the clause stays Unclassified.
const DefaultThreshold = 0.8

// headingBoost is added to a type's score when one of its keywords appears
// in the clause heading, which is a much stronger signal than body text.
const headingBoost = 0.15

// Classifier assigns taxonomy types to clauses by fuzzy keyword matching.
// Safe for concurrent use; the keyword table is read-only.
type Classifier struct {
	threshold float64
	keywords  map[Type][]string
}

// NewClassifier creates a Classifier with the built-in keyword table. A
// non-positive threshold falls back to DefaultThreshold.
func NewClassifier(threshold float64) *Classifier {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Classifier{
		threshold: threshold,
		keywords:  typeKeywords,
	}
}

// ClassifyAll returns a copy of clauses with Type and Score assigned.
// Input clauses are not modified.
func (c *Classifier) ClassifyAll(clauses []Clause) []Clause {
	out := make([]Clause, len(clauses))
	for i, cl := range clauses {
		typ, score := c.Classify(cl)
		cl.Type = typ
		cl.Score = score
		out[i] = cl
	}
	return out
}

// Classify scores the clause against every taxonomy type and returns the
// best type when its score clears the threshold, Unclassified otherwise.
// Ties break deterministically on type order.
func (c *Classifier) Classify(cl Clause) (Type, float64) {
	body := strings.ToLower(cl.Text)
	heading := strings.ToLower(cl.Heading)
	tokens := tokenize(body)
	if len(tokens) == 0 {
		return Unclassified, 0
	}

	types := make([]Type, 0, len(c.keywords))
	for t := range c.keywords {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	bestType := Unclassified
	bestScore := 0.0
	for _, t := range types {
		score := c.scoreType(t, body, heading, tokens)
		if score > bestScore {
			bestType = t
			bestScore = score
		}
	}

	if bestScore < c.threshold {
		return Unclassified, 0
	}
	if bestScore > 1 {
		bestScore = 1
	}
	return bestType, bestScore
}

// scoreType computes the fuzzy similarity between one type's keyword set
// and the clause. The type score is the best keyword score, boosted when a
// keyword appears in the heading.
func (c *Classifier) scoreType(t Type, body, heading string, tokens []string) float64 {
	best := 0.0
	for _, kw := range c.keywords[t] {
		score := keywordScore(kw, body, tokens)
		if heading != "" && strings.Contains(heading, kw) {
			score += headingBoost
		}
		if score > best {
			best = score
		}
	}
	return best
}

// keywordScore rates one keyword against the clause body: exact substring
// presence scores 1.0; otherwise single-word keywords are fuzzily compared
// against each token and scored by normalized edit distance.
func keywordScore(kw, body string, tokens []string) float64 {
	if strings.Contains(body, kw) {
		return 1.0
	}
	if strings.ContainsRune(kw, ' ') {
		// Phrase keywords only match as substrings.
		return 0
	}

	best := 0.0
	for _, tok := range tokens {
		if sim := similarity(kw, tok); sim > best {
			best = sim
		}
	}
	return best
}

// similarity is 1 - normalized Levenshtein distance between two words,
// with a cheap length pre-filter.
func similarity(a, b string) float64 {
	la, lb := len(a), len(b)
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 0
	}
	diff := la - lb
	if diff < 0 {
		diff = -diff
	}
	if float64(diff)/float64(longest) > 0.5 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}

// tokenize lowercases and splits on non-alphanumeric runes, dropping
// short tokens that carry no classification signal.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) >= 3 {
			out = append(out, f)
		}
	}
	return out
}
