package risk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohini32/legal-AI-Reader/clause"
)

func makeClauses(texts ...string) []clause.Clause {
	clauses := make([]clause.Clause, len(texts))
	pos := 0
	for i, txt := range texts {
		clauses[i] = clause.Clause{
			Index: i,
			Start: pos,
			End:   pos + len(txt),
			Text:  txt,
		}
		pos += len(txt)
	}
	return clauses
}

func TestAssessServiceContract(t *testing.T) {
	s, err := NewScorer(DefaultRules(), 0)
	require.NoError(t, err)

	clauses := makeClauses(
		"Client shall pay Provider $250,000 annually, payable in monthly installments. ",
		"Either party may terminate this Agreement upon sixty (60) days written notice. ",
		"Provider's total liability shall be limited to the total amount paid by Client in the preceding twelve months.",
	)
	a := s.Assess(clauses)

	ids := a.RuleIDs()
	assert.Contains(t, ids, "termination-notice-period")
	assert.Contains(t, ids, "liability-cap")
	assert.NotContains(t, ids, "unlimited-liability")
	assert.NotContains(t, ids, "missing-liability-cap")
	assert.NotContains(t, ids, "missing-termination-notice")

	// Missing standard clauses fire at the document level.
	missing := a.FindingsForClause(-1)
	missingIDs := make([]string, 0, len(missing))
	for _, f := range missing {
		missingIDs = append(missingIDs, f.RuleID)
	}
	assert.Contains(t, missingIDs, "missing-confidentiality")
	assert.Contains(t, missingIDs, "missing-force-majeure")
	assert.Contains(t, missingIDs, "missing-dispute-resolution")

	// Notice period finding is attached to the termination clause.
	notice := a.FindingsForClause(1)
	require.Len(t, notice, 1)
	assert.Equal(t, "termination-notice-period", notice[0].RuleID)
	assert.Equal(t, CategoryTermination, notice[0].Category)

	assert.GreaterOrEqual(t, a.Score, 1.0)
	assert.LessOrEqual(t, a.Score, 10.0)
	assert.Equal(t, LevelForScore(a.Score), a.Level)
}

func TestAssessCriticalFindings(t *testing.T) {
	s, err := NewScorer(DefaultRules(), 0)
	require.NoError(t, err)

	a := s.Assess(makeClauses(
		"Contractor accepts unlimited liability for all claims and personally guarantees payment. " +
			"The parties are jointly and severally liable and the Customer may terminate immediately " +
			"without an opportunity to cure. Liquidated damages of $50,000 apply.",
	))

	ids := a.RuleIDs()
	assert.Contains(t, ids, "unlimited-liability")
	assert.Contains(t, ids, "personal-guarantee")
	assert.Contains(t, ids, "joint-several-liability")
	assert.Contains(t, ids, "immediate-termination")
	assert.Contains(t, ids, "no-cure-period")
	assert.Contains(t, ids, "liquidated-damages")

	for _, f := range a.Findings {
		if f.RuleID == "unlimited-liability" {
			assert.Equal(t, Critical, f.Severity)
			assert.Equal(t, 4.0, f.Score)
		}
	}

	// Several high-weight findings push the document well past Low.
	assert.Greater(t, a.Score, 6.0)
	assert.LessOrEqual(t, a.Score, 10.0)
}

func TestAssessEmpty(t *testing.T) {
	s, err := NewScorer(DefaultRules(), 0)
	require.NoError(t, err)

	a := s.Assess(nil)
	assert.Equal(t, 1.0, a.Score)
	assert.Equal(t, LevelLow, a.Level)
	assert.Empty(t, a.Findings)
}

func TestAssessScoreSaturates(t *testing.T) {
	s, err := NewScorer(DefaultRules(), 0)
	require.NoError(t, err)

	texts := make([]string, 20)
	for i := range texts {
		texts[i] = "Contractor accepts unlimited liability and personally guarantees every obligation. "
	}
	a := s.Assess(makeClauses(texts...))
	assert.Equal(t, 10.0, a.Score)
	assert.Equal(t, LevelCritical, a.Level)
}

func TestAssessDeterministic(t *testing.T) {
	s, err := NewScorer(DefaultRules(), 0)
	require.NoError(t, err)

	clauses := makeClauses(
		"Either party may terminate this Agreement for convenience with written notice. ",
		"All proprietary information shall remain confidential.",
	)
	first := s.Assess(clauses)
	for i := 0; i < 10; i++ {
		again := s.Assess(clauses)
		assert.Equal(t, first.Score, again.Score)
		assert.Equal(t, first.Level, again.Level)
		require.Len(t, again.Findings, len(first.Findings))
		for j := range first.Findings {
			assert.Equal(t, first.Findings[j], again.Findings[j])
		}
	}
}

func TestAbsenceRulesSuppressed(t *testing.T) {
	s, err := NewScorer(DefaultRules(), 0)
	require.NoError(t, err)

	text := "All confidential and proprietary information is protected. " +
		"Disputes are resolved by arbitration under the governing law of Delaware. " +
		"Performance is excused during force majeure events. " +
		"Liability shall not exceed the fees paid. " +
		"Termination requires thirty days' prior written notice."
	a := s.Assess(makeClauses(text))

	for _, f := range a.Findings {
		assert.False(t, strings.HasPrefix(f.RuleID, "missing-"),
			"absence rule %s should not fire: %s", f.RuleID, f.Rationale)
	}
}

func TestNewScorerRejectsBadRules(t *testing.T) {
	_, err := NewScorer([]Rule{{ID: "bad-re", Pattern: `(`}}, 0)
	assert.Error(t, err)

	_, err = NewScorer([]Rule{{ID: ""}}, 0)
	assert.Error(t, err)

	_, err = NewScorer([]Rule{
		{ID: "dup", Pattern: "a"},
		{ID: "dup", Pattern: "b"},
	}, 0)
	assert.Error(t, err)

	_, err = NewScorer([]Rule{{ID: "neither"}}, 0)
	assert.Error(t, err)

	_, err = NewScorer([]Rule{{ID: "both", Pattern: "a", AbsentTerms: []string{"b"}}}, 0)
	assert.Error(t, err)
}
