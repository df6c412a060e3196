// Package risk scores contracts against a rule set of risky provisions.
// Each triggered rule yields a Finding; findings aggregate into a 1-10
// document score and a four-band risk level. Scoring is deterministic:
// the same clauses always produce the same assessment.
package risk

import (
	"fmt"
	"sort"
	"strings"
)

// Severity ranks how serious a single finding is.
type Severity int

const (
	Low Severity = iota + 1
	Medium
	High
	Critical
)

// Weight returns the severity's contribution to the document score.
func (s Severity) Weight() float64 {
	switch s {
	case Critical:
		return 4
	case High:
		return 3
	case Medium:
		return 2
	default:
		return 1
	}
}

// String returns the severity name.
func (s Severity) String() string {
	switch s {
	case Critical:
		return "Critical"
	case High:
		return "High"
	case Medium:
		return "Medium"
	default:
		return "Low"
	}
}

// ParseSeverity converts a severity name to its value. Matching is
// case-insensitive.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "low":
		return Low, nil
	case "medium":
		return Medium, nil
	case "high":
		return High, nil
	case "critical":
		return Critical, nil
	}
	return 0, fmt.Errorf("unknown severity %q", name)
}

// Category groups findings by the kind of exposure they represent.
type Category int

const (
	CategoryOther Category = iota
	CategoryLiability
	CategoryTermination
	CategoryFinancial
	CategoryCompliance
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryLiability:
		return "Liability"
	case CategoryTermination:
		return "Termination"
	case CategoryFinancial:
		return "Financial"
	case CategoryCompliance:
		return "Compliance"
	default:
		return "Other"
	}
}

// ParseCategory converts a category name to its value. Matching is
// case-insensitive.
func ParseCategory(name string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "liability":
		return CategoryLiability, nil
	case "termination":
		return CategoryTermination, nil
	case "financial":
		return CategoryFinancial, nil
	case "compliance":
		return CategoryCompliance, nil
	case "other":
		return CategoryOther, nil
	}
	return 0, fmt.Errorf("unknown risk category %q", name)
}

// Level is the document-wide risk band derived from the score.
type Level int

const (
	LevelLow Level = iota
	LevelMedium
	LevelHigh
	LevelCritical
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelCritical:
		return "Critical"
	case LevelHigh:
		return "High"
	case LevelMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// LevelForScore maps a 1-10 score to its risk band.
func LevelForScore(score float64) Level {
	switch {
	case score <= 3:
		return LevelLow
	case score <= 6:
		return LevelMedium
	case score <= 8:
		return LevelHigh
	default:
		return LevelCritical
	}
}

// Finding is one triggered rule.
type Finding struct {
	// RuleID identifies the rule that produced this finding.
	RuleID string

	// ClauseIndex is the index of the clause the rule matched, or -1 for
	// document-level findings such as missing standard clauses.
	ClauseIndex int

	Category Category
	Severity Severity

	// Score is the severity weight this finding contributed.
	Score float64

	// Rationale explains the exposure in plain language.
	Rationale string

	// Recommendation suggests what to negotiate or add.
	Recommendation string
}

// Assessment is the aggregated result of scoring one document.
type Assessment struct {
	// Score is the overall document risk on a 1-10 scale. An empty or
	// risk-free document scores the 1.0 baseline.
	Score float64

	// Level is the band derived from Score.
	Level Level

	// Findings lists every triggered rule in clause order, document-level
	// findings last.
	Findings []Finding
}

// FindingsForClause returns the findings attached to one clause.
func (a Assessment) FindingsForClause(index int) []Finding {
	var out []Finding
	for _, f := range a.Findings {
		if f.ClauseIndex == index {
			out = append(out, f)
		}
	}
	return out
}

// RuleIDs returns the sorted distinct rule IDs that fired.
func (a Assessment) RuleIDs() []string {
	seen := make(map[string]bool, len(a.Findings))
	var ids []string
	for _, f := range a.Findings {
		if !seen[f.RuleID] {
			seen[f.RuleID] = true
			ids = append(ids, f.RuleID)
		}
	}
	sort.Strings(ids)
	return ids
}
