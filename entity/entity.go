// Package entity extracts structured facts (parties, dates, monetary
// amounts, contacts, citations, durations) from normalized contract text.
// It combines a general-purpose statistical tagger, consumed through the
// narrow Tagger interface, with deterministic regex and gazetteer passes;
// candidates are merged, deduplicated, and normalized to canonical forms.
package entity

// Category classifies an extracted entity.
type Category int

const (
	// CategoryUnknown is the zero value; it never appears in results.
	CategoryUnknown Category = iota
	// CategoryParty is a person or organization that is party to the contract.
	CategoryParty
	// CategoryDate is a calendar date.
	CategoryDate
	// CategoryMoney is a monetary amount.
	CategoryMoney
	// CategoryContact is an email address, phone number, or website.
	CategoryContact
	// CategoryCitation is a legal citation (statute or case reference).
	CategoryCitation
	// CategoryDuration is a time period such as a notice period.
	CategoryDuration
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryParty:
		return "Party"
	case CategoryDate:
		return "Date"
	case CategoryMoney:
		return "Money"
	case CategoryContact:
		return "Contact"
	case CategoryCitation:
		return "Citation"
	case CategoryDuration:
		return "Duration"
	default:
		return "Unknown"
	}
}

// Source identifies which pass produced an entity candidate.
type Source int

const (
	// SourceRule marks candidates from regex/gazetteer passes.
	SourceRule Source = iota
	// SourceTagger marks candidates from the statistical tagger.
	SourceTagger
)

// Entity is one structured fact extracted from document text. Offsets are
// byte positions into the normalized document text.
type Entity struct {
	Category Category

	// Text is the surface form as it appears in the document.
	Text string

	// Normalized is the canonical value: ISO 8601 for dates, decimal amount
	// plus currency code for money, a day/month/year count for durations.
	// Empty when no canonical form applies.
	Normalized string

	// Start and End delimit the source span.
	Start int
	End   int

	// Context is a snippet of surrounding text.
	Context string

	// Confidence estimates extraction reliability in [0, 1].
	Confidence float64

	// Source records which pass produced the entity.
	Source Source
}

// GroupByCategory partitions entities by category, preserving document
// order within each group.
func GroupByCategory(entities []Entity) map[Category][]Entity {
	groups := make(map[Category][]Entity)
	for _, e := range entities {
		groups[e.Category] = append(groups[e.Category], e)
	}
	return groups
}
