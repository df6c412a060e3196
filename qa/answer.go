package qa

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/mohini32/legal-AI-Reader/clause"
	"github.com/mohini32/legal-AI-Reader/entity"
)

// ErrNoConfidentAnswer is returned when no answer clears the confidence
// threshold. Callers should surface this rather than show a low-quality
// guess.
var ErrNoConfidentAnswer = errors.New("no confident answer found in document")

// DefaultAnswerThreshold is the default minimum confidence for an answer
// to be returned.
const DefaultAnswerThreshold = 0.4

// Result is one answer with its supporting evidence.
type Result struct {
	// Answer is the extracted answer text.
	Answer string

	// Confidence is in [0, 1] and always at or above the responder's
	// threshold.
	Confidence float64

	// ClauseIndex is the clause the answer was drawn from, or -1 when
	// the answer aggregates entities from multiple clauses.
	ClauseIndex int

	// Sources lists the entity texts or clause headings supporting the
	// answer.
	Sources []string
}

// Responder answers questions against one document index.
type Responder struct {
	idx           *Index
	minConfidence float64
}

// NewResponder creates a Responder. A non-positive threshold falls back
// to DefaultAnswerThreshold.
func NewResponder(idx *Index, minConfidence float64) *Responder {
	if minConfidence <= 0 {
		minConfidence = DefaultAnswerThreshold
	}
	return &Responder{idx: idx, minConfidence: minConfidence}
}

// Answer routes the question to an intent-specific handler when the
// question clearly asks about money, parties, dates, termination, payment
// terms, or governing law, and falls back to keyword retrieval over
// clause chunks otherwise. Every returned Result clears the confidence
// threshold; everything else is ErrNoConfidentAnswer.
func (r *Responder) Answer(question string) (Result, error) {
	q := strings.ToLower(question)
	if strings.TrimSpace(q) == "" {
		return Result{}, ErrNoConfidentAnswer
	}

	type handler struct {
		match func(string) bool
		run   func(string) (Result, bool)
	}
	handlers := []handler{
		{isMoneyQuestion, r.answerMoney},
		{isPartyQuestion, r.answerParties},
		{isDateQuestion, r.answerDates},
		{isJurisdictionQuestion, r.answerJurisdiction},
		{isTerminationQuestion, r.answerTermination},
		{isPaymentQuestion, r.answerPayment},
	}
	for _, h := range handlers {
		if !h.match(q) {
			continue
		}
		if res, ok := h.run(q); ok && res.Confidence >= r.minConfidence {
			return res, nil
		}
		// An intent with no supporting entities falls through to
		// retrieval; the answer may still live in an unclassified clause.
		break
	}

	res, ok := r.answerByRetrieval(q)
	if !ok || res.Confidence < r.minConfidence {
		return Result{}, ErrNoConfidentAnswer
	}
	return res, nil
}

func isMoneyQuestion(q string) bool {
	return containsAnyWord(q, "much", "cost", "fee", "fees", "price", "amount", "pay", "paid", "compensation", "value", "worth")
}

func isPartyQuestion(q string) bool {
	return containsAnyWord(q, "who", "parties", "party", "signatories", "between")
}

func isDateQuestion(q string) bool {
	return containsAnyWord(q, "when", "date", "dates", "deadline", "effective", "expire", "expires")
}

func isJurisdictionQuestion(q string) bool {
	return strings.Contains(q, "governing law") || strings.Contains(q, "jurisdiction") ||
		containsAnyWord(q, "court", "courts", "arbitration", "dispute", "disputes")
}

func isTerminationQuestion(q string) bool {
	return containsAnyWord(q, "terminate", "terminated", "termination", "cancel", "cancellation", "notice")
}

func isPaymentQuestion(q string) bool {
	return strings.Contains(q, "payment terms") || containsAnyWord(q, "invoice", "invoices", "installment", "installments", "payable")
}

// answerMoney reports the document's monetary amounts with their
// surrounding context.
func (r *Responder) answerMoney(string) (Result, bool) {
	return r.entityAnswer(entity.CategoryMoney, 0.85, "The agreement mentions %s.")
}

func (r *Responder) answerParties(string) (Result, bool) {
	parties := r.idx.entitiesOf(entity.CategoryParty)
	if len(parties) == 0 {
		return Result{}, false
	}
	names := dedupeStrings(normalizedTexts(parties))
	return Result{
		Answer:      fmt.Sprintf("The parties are %s.", joinNatural(names)),
		Confidence:  0.9,
		ClauseIndex: -1,
		Sources:     names,
	}, true
}

func (r *Responder) answerDates(string) (Result, bool) {
	return r.entityAnswer(entity.CategoryDate, 0.8, "Relevant dates: %s.")
}

// answerJurisdiction prefers the dispute resolution clause and falls back
// to citation entities.
func (r *Responder) answerJurisdiction(q string) (Result, bool) {
	if res, ok := r.clauseAnswer(clause.DisputeResolution, 0.85); ok {
		return res, true
	}
	return r.entityAnswer(entity.CategoryCitation, 0.6, "The agreement cites %s.")
}

func (r *Responder) answerTermination(q string) (Result, bool) {
	if res, ok := r.clauseAnswer(clause.Termination, 0.85); ok {
		// Surface the notice window alongside the clause when one was
		// recognized inside it.
		for _, e := range r.idx.entitiesOf(entity.CategoryDuration) {
			if cl := r.idx.clauseAt(e.Start); cl != nil && cl.Index == res.ClauseIndex {
				res.Answer = fmt.Sprintf("Termination requires %s notice. %s", e.Normalized, res.Answer)
				res.Sources = append(res.Sources, e.Text)
				break
			}
		}
		return res, true
	}
	return Result{}, false
}

func (r *Responder) answerPayment(q string) (Result, bool) {
	if res, ok := r.clauseAnswer(clause.Payment, 0.85); ok {
		return res, true
	}
	return r.entityAnswer(entity.CategoryMoney, 0.7, "The agreement mentions %s.")
}

// entityAnswer builds an answer from all entities of one category.
func (r *Responder) entityAnswer(cat entity.Category, confidence float64, format string) (Result, bool) {
	ents := r.idx.entitiesOf(cat)
	if len(ents) == 0 {
		return Result{}, false
	}
	values := dedupeStrings(normalizedTexts(ents))
	clauseIndex := -1
	if len(ents) == 1 {
		if cl := r.idx.clauseAt(ents[0].Start); cl != nil {
			clauseIndex = cl.Index
		}
	}
	return Result{
		Answer:      fmt.Sprintf(format, joinNatural(values)),
		Confidence:  confidence,
		ClauseIndex: clauseIndex,
		Sources:     values,
	}, true
}

// clauseAnswer returns the text of the first clause of the given type.
func (r *Responder) clauseAnswer(t clause.Type, confidence float64) (Result, bool) {
	matches := r.idx.clausesOf(t)
	if len(matches) == 0 {
		return Result{}, false
	}
	cl := matches[0]
	sources := []string{}
	if cl.Heading != "" {
		sources = append(sources, cl.Heading)
	}
	return Result{
		Answer:      strings.TrimSpace(cl.Text),
		Confidence:  confidence,
		ClauseIndex: cl.Index,
		Sources:     sources,
	}, true
}

// answerByRetrieval ranks clause chunks by query token overlap, with a
// fuzzy fallback per token, and answers with the best chunk's clause.
func (r *Responder) answerByRetrieval(q string) (Result, bool) {
	queryTokens := tokenizeQuery(q)
	if len(queryTokens) == 0 || len(r.idx.chunks) == 0 {
		return Result{}, false
	}

	bestScore := 0.0
	bestChunk := -1
	for i, ch := range r.idx.chunks {
		score := 0.0
		for _, qt := range queryTokens {
			if ch.tokens[qt] > 0 {
				score++
				continue
			}
			score += bestTokenSimilarity(qt, ch.tokens)
		}
		score /= float64(len(queryTokens))
		if score > bestScore {
			bestScore = score
			bestChunk = i
		}
	}
	if bestChunk < 0 {
		return Result{}, false
	}

	cl := r.idx.clauses[bestChunk]
	sources := []string{}
	if cl.Heading != "" {
		sources = append(sources, cl.Heading)
	}
	return Result{
		Answer:      strings.TrimSpace(cl.Text),
		Confidence:  bestScore,
		ClauseIndex: cl.Index,
		Sources:     sources,
	}, true
}

// bestTokenSimilarity is the highest normalized edit similarity between
// the query token and any chunk token, counting only near matches.
func bestTokenSimilarity(qt string, tokens map[string]int) float64 {
	best := 0.0
	for t := range tokens {
		longest := len(qt)
		if len(t) > longest {
			longest = len(t)
		}
		diff := len(qt) - len(t)
		if diff < 0 {
			diff = -diff
		}
		if longest == 0 || float64(diff)/float64(longest) > 0.34 {
			continue
		}
		sim := 1 - float64(levenshtein.ComputeDistance(qt, t))/float64(longest)
		if sim >= 0.8 && sim > best {
			best = sim
		}
	}
	return best
}

func containsAnyWord(q string, words ...string) bool {
	fields := strings.FieldsFunc(q, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	for _, w := range words {
		if set[w] {
			return true
		}
	}
	return false
}

func normalizedTexts(ents []entity.Entity) []string {
	out := make([]string, len(ents))
	for i, e := range ents {
		if e.Normalized != "" {
			out[i] = e.Normalized
		} else {
			out[i] = e.Text
		}
	}
	return out
}

func dedupeStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

func joinNatural(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
