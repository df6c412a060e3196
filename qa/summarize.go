package qa

import (
	"sort"
	"strings"

	"github.com/mohini32/legal-AI-Reader/clause"
)

// DefaultSummarySentences is the default sentence budget for Summarize.
const DefaultSummarySentences = 5

// Summarize produces an extractive summary: clauses are ranked by how
// informative they look (classified type, entity density, length), the
// leading sentence of each top clause is taken until the sentence budget
// is spent, and the result is reassembled in document order. An empty
// index yields an empty summary.
func (idx *Index) Summarize(maxSentences int) string {
	if maxSentences <= 0 {
		maxSentences = DefaultSummarySentences
	}
	if len(idx.clauses) == 0 {
		return ""
	}

	type ranked struct {
		clauseIndex int
		score       float64
	}
	rankings := make([]ranked, 0, len(idx.clauses))
	for _, cl := range idx.clauses {
		rankings = append(rankings, ranked{cl.Index, idx.clauseSalience(cl)})
	}
	sort.SliceStable(rankings, func(i, j int) bool {
		return rankings[i].score > rankings[j].score
	})

	if len(rankings) > maxSentences {
		rankings = rankings[:maxSentences]
	}
	picked := make([]int, 0, len(rankings))
	for _, r := range rankings {
		picked = append(picked, r.clauseIndex)
	}
	sort.Ints(picked)

	var parts []string
	for _, ci := range picked {
		sentences := clause.Sentences(clauseBody(idx.clauses[ci]))
		if len(sentences) > 0 {
			parts = append(parts, sentences[0])
		}
	}
	return strings.Join(parts, " ")
}

// clauseBody strips the heading line so summaries quote prose, not
// section titles.
func clauseBody(cl clause.Clause) string {
	if cl.Heading == "" {
		return cl.Text
	}
	text := strings.TrimSpace(cl.Text)
	if after, found := strings.CutPrefix(text, cl.Heading); found {
		return strings.TrimSpace(after)
	}
	return text
}

// clauseSalience scores one clause for summary inclusion. Classified
// clauses outrank unclassified ones, entity-dense clauses outrank sparse
// ones, and longer clauses get a mild boost.
func (idx *Index) clauseSalience(cl clause.Clause) float64 {
	score := 0.0
	if cl.Type != clause.Unclassified {
		score += 2
	}
	for _, e := range idx.entities {
		if e.Start >= cl.Start && e.Start < cl.End {
			score += 0.5
		}
	}
	length := len(strings.TrimSpace(cl.Text))
	if length > 200 {
		length = 200
	}
	score += float64(length) / 200
	return score
}
