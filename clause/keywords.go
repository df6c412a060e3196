package clause

// typeKeywords maps each taxonomy type to the keyword set used for fuzzy
// classification. Multi-word keywords are matched as phrases; single words
// fuzzily against individual tokens.
var typeKeywords = map[Type][]string{
	Termination: {
		"termination", "terminate", "expiration", "expire",
		"notice period", "written notice", "cancel", "cancellation",
	},
	Liability: {
		"liability", "liable", "limitation of liability", "liability cap",
		"damages", "consequential damages",
	},
	Payment: {
		"payment", "payable", "fees", "invoice", "compensation",
		"installments", "net 30", "contract value", "purchase price",
	},
	Confidentiality: {
		"confidential", "confidentiality", "non-disclosure",
		"proprietary information", "trade secret",
	},
	Indemnification: {
		"indemnify", "indemnification", "indemnity",
		"defend and hold harmless",
	},
	IntellectualProperty: {
		"intellectual property", "copyright", "trademark", "patent",
		"license", "work for hire", "ownership of work product",
	},
	DisputeResolution: {
		"arbitration", "mediation", "governing law", "jurisdiction",
		"dispute resolution", "venue", "courts of",
	},
	ForceMajeure: {
		"force majeure", "act of god", "unforeseeable circumstances",
	},
	NonCompete: {
		"non-compete", "non-solicitation", "restraint of trade",
		"exclusive dealing",
	},
	Warranty: {
		"warranty", "warrants", "warranties", "representations",
		"as is", "merchantability",
	},
}
