package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohini32/legal-AI-Reader/model"
)

const sampleText = `SERVICE AGREEMENT

This Agreement is entered into on January 15, 2024 between Acme Solutions Inc ("Provider") and Blue Harbor LLC ("Client").

The total contract value is $250,000, payable in monthly installments of $20,833.33. Payment terms are Net 30 days.

Either party may terminate this Agreement with sixty (60) days written notice. Questions go to legal@acme.example.com or (415) 555-1212.`

func TestRecognize_PatternOnly(t *testing.T) {
	r := NewRecognizer(nil, nil)
	entities, warnings := r.Recognize(sampleText)
	require.NotEmpty(t, entities)
	assert.Empty(t, warnings)

	groups := GroupByCategory(entities)

	var moneyValues []string
	for _, e := range groups[CategoryMoney] {
		moneyValues = append(moneyValues, e.Normalized)
	}
	assert.Contains(t, moneyValues, "250000.00 USD")
	assert.Contains(t, moneyValues, "20833.33 USD")

	var durations []string
	for _, e := range groups[CategoryDuration] {
		durations = append(durations, e.Normalized)
	}
	assert.Contains(t, durations, "60 days")
	assert.Contains(t, durations, "30 days")

	var dates []string
	for _, e := range groups[CategoryDate] {
		dates = append(dates, e.Normalized)
	}
	assert.Contains(t, dates, "2024-01-15")

	var contacts []string
	for _, e := range groups[CategoryContact] {
		contacts = append(contacts, e.Normalized)
	}
	assert.Contains(t, contacts, "legal@acme.example.com")
	assert.Contains(t, contacts, "4155551212")

	var parties []string
	for _, e := range groups[CategoryParty] {
		parties = append(parties, e.Normalized)
	}
	assert.Contains(t, parties, "Acme Solutions Inc")
}

func TestRecognize_InvariantsHold(t *testing.T) {
	r := NewRecognizer(nil, nil)
	entities, _ := r.Recognize(sampleText)

	for i, e := range entities {
		assert.Greater(t, e.End, e.Start, "entity %d has a zero-width span", i)
		assert.GreaterOrEqual(t, e.Confidence, 0.0)
		assert.LessOrEqual(t, e.Confidence, 1.0)
		assert.Equal(t, sampleText[e.Start:e.End], e.Text)
		if i > 0 {
			assert.GreaterOrEqual(t, e.Start, entities[i-1].Start, "entities out of order")
		}
	}
}

func TestRecognize_Deterministic(t *testing.T) {
	r := NewRecognizer(nil, nil)
	first, _ := r.Recognize(sampleText)
	second, _ := r.Recognize(sampleText)
	assert.Equal(t, first, second)
}

func TestRecognize_EmptyText(t *testing.T) {
	r := NewRecognizer(&RuleTagger{Parties: []string{"Acme"}}, nil)
	entities, warnings := r.Recognize("")
	assert.Empty(t, entities)
	assert.Empty(t, warnings)
}

func TestRecognize_GazetteerTerms(t *testing.T) {
	r := NewRecognizer(nil, []string{"Blue Harbor"})
	entities, _ := r.Recognize("Deliverables are owed to Blue Harbor under this SOW.")

	found := false
	for _, e := range entities {
		if e.Category == CategoryParty && e.Text == "Blue Harbor" {
			found = true
		}
	}
	assert.True(t, found, "gazetteer party not extracted")
}

func TestRecognize_TaggerMergePrefersRuleCategory(t *testing.T) {
	// The tagger claims "January 15, 2024" is a Party; the date pattern
	// overlaps and must win, with a conflict warning.
	text := "Signed on January 15, 2024 by both parties."
	tagger := &fakeTagger{spans: []Span{{
		Start:      findIn(t, text, "January 15, 2024"),
		End:        findIn(t, text, "January 15, 2024") + len("January 15, 2024"),
		Category:   CategoryParty,
		Confidence: 0.99,
	}}}

	r := NewRecognizer(tagger, nil)
	entities, warnings := r.Recognize(text)

	var date *Entity
	for i := range entities {
		if entities[i].Category == CategoryDate {
			date = &entities[i]
		}
		assert.NotEqual(t, CategoryParty, entities[i].Category)
	}
	require.NotNil(t, date)
	assert.Equal(t, "2024-01-15", date.Normalized)
	// max(regex 0.95, tagger 0.99)
	assert.InDelta(t, 0.99, date.Confidence, 1e-9)

	require.Len(t, warnings, 1)
	assert.Equal(t, model.WarnEntityConflict, warnings[0].Kind)
}

func TestRecognize_TaggerFailureDegrades(t *testing.T) {
	r := NewRecognizer(&fakeTagger{err: errors.New("model unavailable")}, nil)
	entities, warnings := r.Recognize("Invoice total of $1,000 due on March 1, 2024.")

	assert.NotEmpty(t, entities, "pattern pass should still run")
	require.Len(t, warnings, 1)
	assert.Equal(t, model.WarnPartialExtraction, warnings[0].Kind)
}

func TestRuleTagger(t *testing.T) {
	tagger := &RuleTagger{Parties: []string{"Acme Corp"}}
	spans, err := tagger.Tag("Acme Corp and acme corp appear twice.")
	require.NoError(t, err)
	require.Len(t, spans, 2)
	for _, sp := range spans {
		assert.Equal(t, CategoryParty, sp.Category)
		assert.InDelta(t, 0.8, sp.Confidence, 1e-9)
	}
}

type fakeTagger struct {
	spans []Span
	err   error
}

func (f *fakeTagger) Tag(string) ([]Span, error) { return f.spans, f.err }

func findIn(t *testing.T, haystack, needle string) int {
	t.Helper()
	i := indexOf(haystack, needle)
	require.GreaterOrEqual(t, i, 0, "needle %q not found", needle)
	return i
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}
