package risk

// Rule describes one risky provision to look for. Presence rules carry a
// Pattern matched against each clause; absence rules carry AbsentTerms and
// fire when none of the terms appear anywhere in the document.
type Rule struct {
	// ID is a stable identifier, unique within a rule set.
	ID string

	Category Category
	Severity Severity

	// Pattern is a regular expression matched against clause text. Empty
	// for absence rules.
	Pattern string

	// AbsentTerms lists phrases that satisfy the rule; if the document
	// contains none of them the rule fires as a document-level finding.
	// Matching is case-insensitive. Empty for presence rules.
	AbsentTerms []string

	Rationale      string
	Recommendation string
}

// DefaultRules returns the built-in rule set. Callers may append their own
// rules before constructing a Scorer.
func DefaultRules() []Rule {
	return []Rule{
		{
			ID:             "unlimited-liability",
			Category:       CategoryLiability,
			Severity:       Critical,
			Pattern:        `(?i)unlimited\s+liability|without\s+(?:any\s+)?limit(?:ation)?|liability\s+(?:is|shall\s+be)\s+unlimited`,
			Rationale:      "Liability is not capped, exposing the party to unbounded damages.",
			Recommendation: "Negotiate a liability cap, commonly tied to fees paid over the prior twelve months.",
		},
		{
			ID:             "personal-guarantee",
			Category:       CategoryLiability,
			Severity:       Critical,
			Pattern:        `(?i)personal(?:ly)?\s+guarantee[ds]?|personal\s+guaranty`,
			Rationale:      "A personal guarantee puts individual assets at risk for a business obligation.",
			Recommendation: "Remove the guarantee or limit it to a fixed amount and duration.",
		},
		{
			ID:             "joint-several-liability",
			Category:       CategoryLiability,
			Severity:       High,
			Pattern:        `(?i)joint(?:ly)?\s+and\s+several(?:ly)?`,
			Rationale:      "Joint and several liability makes each party answerable for the full obligation.",
			Recommendation: "Restrict each party's liability to its own acts and omissions.",
		},
		{
			ID:             "hold-harmless",
			Category:       CategoryLiability,
			Severity:       Medium,
			Pattern:        `(?i)hold\s+harmless|indemnify\s+and\s+defend`,
			Rationale:      "Broad hold-harmless language shifts third party claim costs onto one side.",
			Recommendation: "Narrow the indemnity to claims caused by the indemnifying party's own conduct.",
		},
		{
			ID:             "liability-cap",
			Category:       CategoryLiability,
			Severity:       Low,
			Pattern:        `(?i)(?:liability\s+(?:is|shall\s+be)\s+)?limited\s+to\s+the\s+(?:total\s+)?amount|aggregate\s+liability\s+shall\s+not\s+exceed`,
			Rationale:      "A liability cap is present; verify the cap amount is adequate.",
			Recommendation: "Confirm the cap covers realistic loss scenarios and carves out gross negligence.",
		},
		{
			ID:             "immediate-termination",
			Category:       CategoryTermination,
			Severity:       High,
			Pattern:        `(?i)terminat\w+\s+(?:this\s+agreement\s+)?immediately|immediate(?:ly)?\s+terminat\w+|terminat\w+\s+at\s+any\s+time\s+without\s+notice`,
			Rationale:      "The counterparty can end the agreement with no notice period.",
			Recommendation: "Require a written notice period before termination takes effect.",
		},
		{
			ID:             "termination-for-convenience",
			Category:       CategoryTermination,
			Severity:       Medium,
			Pattern:        `(?i)terminat\w+\s+(?:this\s+agreement\s+)?for\s+(?:any\s+reason|convenience|no\s+reason)`,
			Rationale:      "Termination for convenience lets the counterparty walk away without cause.",
			Recommendation: "Add an early termination fee or minimum commitment period.",
		},
		{
			ID:             "no-cure-period",
			Category:       CategoryTermination,
			Severity:       High,
			Pattern:        `(?i)without\s+(?:an?\s+)?(?:opportunity|right)\s+to\s+cure|no\s+cure\s+period`,
			Rationale:      "Breaches cannot be remedied before the agreement is terminated.",
			Recommendation: "Add a cure period, commonly thirty days from written notice of breach.",
		},
		{
			ID:             "termination-notice-period",
			Category:       CategoryTermination,
			Severity:       Low,
			Pattern:        `(?i)days'?\s+(?:prior\s+)?written\s+notice`,
			Rationale:      "A termination notice period is defined; verify the window is workable.",
			Recommendation: "Confirm the notice period leaves enough time to transition the work.",
		},
		{
			ID:             "liquidated-damages",
			Category:       CategoryFinancial,
			Severity:       High,
			Pattern:        `(?i)liquidated\s+damages`,
			Rationale:      "Liquidated damages fix a payout regardless of actual loss.",
			Recommendation: "Check the amount is a genuine pre-estimate of loss, not a penalty.",
		},
		{
			ID:             "penalty",
			Category:       CategoryFinancial,
			Severity:       Medium,
			Pattern:        `(?i)penalt(?:y|ies)|late\s+fee\s+of`,
			Rationale:      "Penalty provisions impose charges beyond compensatory damages.",
			Recommendation: "Replace penalties with interest at a stated rate or remove them.",
		},
		{
			ID:       "missing-liability-cap",
			Category: CategoryCompliance,
			Severity: Medium,
			AbsentTerms: []string{
				"limitation of liability", "liability shall be limited",
				"liability is limited", "limited to the", "shall not exceed",
			},
			Rationale:      "No limitation of liability clause was found.",
			Recommendation: "Add a limitation of liability clause capping direct damages.",
		},
		{
			ID:       "missing-force-majeure",
			Category: CategoryCompliance,
			Severity: Low,
			AbsentTerms: []string{
				"force majeure", "act of god", "beyond the reasonable control",
			},
			Rationale:      "No force majeure clause was found.",
			Recommendation: "Add a force majeure clause excusing performance during uncontrollable events.",
		},
		{
			ID:       "missing-confidentiality",
			Category: CategoryCompliance,
			Severity: Medium,
			AbsentTerms: []string{
				"confidential", "non-disclosure", "proprietary information",
			},
			Rationale:      "No confidentiality clause was found.",
			Recommendation: "Add mutual confidentiality obligations covering disclosed information.",
		},
		{
			ID:       "missing-dispute-resolution",
			Category: CategoryCompliance,
			Severity: Low,
			AbsentTerms: []string{
				"arbitration", "dispute resolution", "governing law",
				"exclusive jurisdiction",
			},
			Rationale:      "No dispute resolution or governing law clause was found.",
			Recommendation: "Specify governing law and a dispute resolution forum.",
		},
		{
			ID:       "missing-termination-notice",
			Category: CategoryCompliance,
			Severity: Low,
			AbsentTerms: []string{
				"written notice", "notice period", "notice of termination",
			},
			Rationale:      "No termination notice mechanism was found.",
			Recommendation: "Define how and when termination notice must be given.",
		},
	}
}
