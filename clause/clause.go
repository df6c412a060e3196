// Package clause segments normalized contract text into clauses and
// classifies each clause against a fixed taxonomy using fuzzy keyword
// matching. Clause spans always cover the entire document text with no
// gaps or overlaps.
package clause

// Type is the classified clause type.
type Type int

const (
	// Unclassified is assigned when no taxonomy type clears the
	// classification threshold.
	Unclassified Type = iota
	Termination
	Liability
	Payment
	Confidentiality
	Indemnification
	IntellectualProperty
	DisputeResolution
	ForceMajeure
	NonCompete
	Warranty
)

// String returns the clause type name.
func (t Type) String() string {
	switch t {
	case Termination:
		return "Termination"
	case Liability:
		return "Liability"
	case Payment:
		return "Payment"
	case Confidentiality:
		return "Confidentiality"
	case Indemnification:
		return "Indemnification"
	case IntellectualProperty:
		return "IntellectualProperty"
	case DisputeResolution:
		return "DisputeResolution"
	case ForceMajeure:
		return "ForceMajeure"
	case NonCompete:
		return "NonCompete"
	case Warranty:
		return "Warranty"
	default:
		return "Unclassified"
	}
}

// Clause is one contiguous segment of contract text treated as a unit for
// classification and risk scoring. Offsets index the normalized document
// text; for any clause list produced by this package, clause N ends exactly
// where clause N+1 begins.
type Clause struct {
	// Index is the 0-based position in document order.
	Index int

	// Start and End delimit the clause span, including its heading line
	// when one was detected.
	Start int
	End   int

	// Text is the clause text, exactly text[Start:End].
	Text string

	// Heading is the detected heading line, empty when the clause came
	// from sentence grouping.
	Heading string

	// Type is the classified clause type.
	Type Type

	// Score is the classification confidence in [0, 1]; 0 for
	// Unclassified clauses.
	Score float64
}
