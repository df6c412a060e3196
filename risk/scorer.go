package risk

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mohini32/legal-AI-Reader/clause"
)

// DefaultWeightCap is the summed severity weight that saturates the 1-10
// score. Findings beyond the cap cannot raise the score further.
const DefaultWeightCap = 25.0

// baselineScore is the floor for any document, including empty ones.
const baselineScore = 1.0

type compiledRule struct {
	Rule
	re *regexp.Regexp
}

// Scorer evaluates a rule set against segmented clauses. Safe for
// concurrent use once constructed.
type Scorer struct {
	rules     []compiledRule
	weightCap float64
}

// NewScorer compiles the rule set. A rule with both or neither of Pattern
// and AbsentTerms is rejected. A non-positive weightCap falls back to
// DefaultWeightCap.
func NewScorer(rules []Rule, weightCap float64) (*Scorer, error) {
	if weightCap <= 0 {
		weightCap = DefaultWeightCap
	}
	compiled := make([]compiledRule, 0, len(rules))
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if r.ID == "" {
			return nil, fmt.Errorf("risk rule with empty ID")
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("duplicate risk rule ID %q", r.ID)
		}
		seen[r.ID] = true
		if (r.Pattern == "") == (len(r.AbsentTerms) == 0) {
			return nil, fmt.Errorf("risk rule %q must set exactly one of pattern or absent terms", r.ID)
		}
		cr := compiledRule{Rule: r}
		if r.Pattern != "" {
			re, err := regexp.Compile(r.Pattern)
			if err != nil {
				return nil, fmt.Errorf("risk rule %q: %w", r.ID, err)
			}
			cr.re = re
		}
		compiled = append(compiled, cr)
	}
	return &Scorer{rules: compiled, weightCap: weightCap}, nil
}

// Assess runs every rule against the clauses and aggregates the findings
// into a document score. Presence rules match per clause and fire at most
// once per clause; absence rules inspect the whole document and report
// with ClauseIndex -1. An empty clause list yields the baseline score with
// no findings.
func (s *Scorer) Assess(clauses []clause.Clause) Assessment {
	if len(clauses) == 0 {
		return Assessment{Score: baselineScore, Level: LevelForScore(baselineScore)}
	}

	var findings []Finding
	for _, cl := range clauses {
		for _, r := range s.rules {
			if r.re == nil || !r.re.MatchString(cl.Text) {
				continue
			}
			findings = append(findings, Finding{
				RuleID:         r.ID,
				ClauseIndex:    cl.Index,
				Category:       r.Category,
				Severity:       r.Severity,
				Score:          r.Severity.Weight(),
				Rationale:      r.Rationale,
				Recommendation: r.Recommendation,
			})
		}
	}

	fullText := strings.ToLower(joinClauses(clauses))
	for _, r := range s.rules {
		if r.re != nil {
			continue
		}
		if containsAny(fullText, r.AbsentTerms) {
			continue
		}
		findings = append(findings, Finding{
			RuleID:         r.ID,
			ClauseIndex:    -1,
			Category:       r.Category,
			Severity:       r.Severity,
			Score:          r.Severity.Weight(),
			Rationale:      r.Rationale,
			Recommendation: r.Recommendation,
		})
	}

	total := 0.0
	for _, f := range findings {
		total += f.Score
	}
	score := baselineScore + total/s.weightCap*9
	if score > 10 {
		score = 10
	}

	return Assessment{
		Score:    score,
		Level:    LevelForScore(score),
		Findings: findings,
	}
}

// joinClauses reassembles the document text. Clause spans tile the source
// text, so concatenation reproduces it.
func joinClauses(clauses []clause.Clause) string {
	var b strings.Builder
	for _, cl := range clauses {
		b.WriteString(cl.Text)
	}
	return b.String()
}

func containsAny(haystack string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(haystack, strings.ToLower(t)) {
			return true
		}
	}
	return false
}
