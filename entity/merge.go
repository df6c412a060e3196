package entity

import (
	"fmt"
	"sort"

	"github.com/mohini32/legal-AI-Reader/model"
)

// mergeCandidates combines rule-pass and tagger-pass candidates into a
// deduplicated, ordered entity list. Resolution rules:
//
//   - zero-width candidates are discarded
//   - when a rule span and a tagger span overlap, the rule category is
//     authoritative and the confidence is the max of the two; a category
//     disagreement is reported as a warning rather than silently dropped
//   - overlapping spans of the same category keep the longest span
//
// The function is pure: it never mutates its inputs.
func mergeCandidates(rule, tagged []Entity) ([]Entity, []model.Warning) {
	candidates := make([]Entity, 0, len(rule)+len(tagged))
	for _, e := range append(append([]Entity{}, rule...), tagged...) {
		if e.End > e.Start {
			candidates = append(candidates, e)
		}
	}

	// Longest span first so shorter overlapping spans are absorbed.
	sort.SliceStable(candidates, func(i, j int) bool {
		li, lj := candidates[i].End-candidates[i].Start, candidates[j].End-candidates[j].Start
		if li != lj {
			return li > lj
		}
		return candidates[i].Start < candidates[j].Start
	})

	var (
		kept     []Entity
		warnings []model.Warning
	)
	for _, cand := range candidates {
		conflict := false
		for i := range kept {
			k := &kept[i]
			if !overlaps(cand, *k) {
				continue
			}
			conflict = true

			switch {
			case cand.Category == k.Category:
				// Same category: the longer (already kept) span wins; when
				// the passes agree across sources the merged confidence is
				// the max of the two.
				if cand.Source != k.Source && cand.Confidence > k.Confidence {
					k.Confidence = cand.Confidence
				}
			case k.Source == SourceRule && cand.Source == SourceTagger,
				cand.Source == SourceRule && k.Source == SourceTagger:
				// Cross-source category disagreement: rule wins, merged
				// confidence is the max of both.
				ruleEnt, taggerEnt := cand, *k
				if k.Source == SourceRule {
					ruleEnt, taggerEnt = *k, cand
				}
				warnings = append(warnings, model.Warning{
					Kind: model.WarnEntityConflict,
					Message: fmt.Sprintf("tagger saw %q as %s, pattern match kept as %s",
						taggerEnt.Text, taggerEnt.Category, ruleEnt.Category),
				})
				merged := ruleEnt
				if taggerEnt.Confidence > merged.Confidence {
					merged.Confidence = taggerEnt.Confidence
				}
				*k = merged
			}
			break
		}
		if !conflict {
			kept = append(kept, cand)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Start != kept[j].Start {
			return kept[i].Start < kept[j].Start
		}
		return kept[i].End < kept[j].End
	})
	return kept, warnings
}

func overlaps(a, b Entity) bool {
	return a.Start < b.End && b.Start < a.End
}
