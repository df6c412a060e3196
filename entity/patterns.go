package entity

import "regexp"

// pattern is one deterministic extraction rule. Patterns are high
// precision; on overlap with tagger output the pattern's category wins.
type pattern struct {
	category   Category
	re         *regexp.Regexp
	confidence float64
}

const monthNames = `(?:January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)`

// defaultPatterns are the built-in domain patterns for legal contracts.
// Order matters only for presentation; merging resolves overlaps.
var defaultPatterns = []pattern{
	// Dates: "January 15, 2024", "15 January 2024", numeric forms, ISO.
	{CategoryDate, regexp.MustCompile(`\b` + monthNames + `\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}\b`), 0.95},
	{CategoryDate, regexp.MustCompile(`\b\d{1,2}(?:st|nd|rd|th)?\s+` + monthNames + `\.?,?\s+\d{4}\b`), 0.95},
	{CategoryDate, regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`), 0.95},
	{CategoryDate, regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`), 0.85},

	// Money: symbol- or code-prefixed amounts, and spelled-out currencies.
	{CategoryMoney, regexp.MustCompile(`(?:\$|€|£|₹|\b(?:USD|EUR|GBP|CAD|INR)\b)\s*\d[\d,]*(?:\.\d{1,2})?(?:\s*(?:million|billion|thousand))?`), 0.95},
	{CategoryMoney, regexp.MustCompile(`(?i)\b\d[\d,]*(?:\.\d{1,2})?\s*(?:dollars?|euros?|pounds?|rupees?)\b`), 0.9},

	// Durations: "sixty (60) days", "60 days", "Net 30 days", "six (6) months".
	{CategoryDuration, regexp.MustCompile(`(?i)\b(?:[a-z]+(?:-[a-z]+)?\s+)?\(\d{1,4}\)\s*(?:calendar\s+|business\s+)?(?:days?|weeks?|months?|years?)\b`), 0.95},
	{CategoryDuration, regexp.MustCompile(`(?i)\b(?:net\s+)?\d{1,4}\s*(?:calendar\s+|business\s+)?(?:days?|weeks?|months?|years?)\b`), 0.85},

	// Contacts: emails, phone numbers, websites.
	{CategoryContact, regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`), 0.98},
	{CategoryContact, regexp.MustCompile(`\b(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]\d{3}[-.\s]\d{4}\b`), 0.9},
	{CategoryContact, regexp.MustCompile(`\bwww\.[A-Za-z0-9-]+\.[A-Za-z]{2,}(?:\.[A-Za-z]{2,})?\b`), 0.85},

	// Legal citations: USC/CFR references and case names.
	{CategoryCitation, regexp.MustCompile(`\b\d+\s+U\.?S\.?C\.?\s*§?\s*\d+\b`), 0.95},
	{CategoryCitation, regexp.MustCompile(`\b\d+\s+C\.?F\.?R\.?\s*§?\s*\d+\b`), 0.95},
	{CategoryCitation, regexp.MustCompile(`\b[A-Z][A-Za-z]+\s+v\.\s+[A-Z][A-Za-z]+\b`), 0.85},

	// Parties: defined terms like ("Company"), and names carrying a
	// corporate suffix.
	{CategoryParty, regexp.MustCompile(`\(\s*(?:the\s+)?[“"][A-Z][A-Za-z ]{1,40}[”"]\s*\)`), 0.9},
	{CategoryParty, regexp.MustCompile(`\b[A-Z][A-Za-z&,.' -]{1,50}?(?:Inc|LLC|LLP|Ltd|Limited|Corp|Corporation|Company|GmbH|AG|S\.A\.|B\.V\.|Pvt\.?\s*Ltd)\.?\b`), 0.9},
}

// compileGazetteerPatterns turns gazetteer term lists into additional
// party patterns so configured names are matched deterministically.
func compileGazetteerPatterns(terms []string) []pattern {
	var out []pattern
	for _, term := range terms {
		if term == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		if err != nil {
			continue
		}
		out = append(out, pattern{CategoryParty, re, 0.85})
	}
	return out
}
