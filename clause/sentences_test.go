package clause

import "testing"

func TestSplitSentencesTilesText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"single", "This Agreement is binding.", 1},
		{"two", "First sentence here. Second sentence here.", 2},
		{"abbreviation", "Acme Corp. shall pay the fees. Payment is due.", 2},
		{"initial", "Signed by John P. Smith on behalf of the Company.", 1},
		{"citation", "Pursuant to 17 U.S.C. Section 101 the work is protected.", 1},
		{"question", "Is the term renewable? The term renews annually.", 2},
		{"semicolon", "Fees are payable monthly; Invoices are due on receipt.", 2},
		{"no terminal punctuation", "GOVERNING LAW", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := splitSentences(tt.text)
			if len(spans) != tt.want {
				t.Fatalf("got %d sentences, want %d: %#v", len(spans), tt.want, spans)
			}
			// Spans must tile the text exactly.
			pos := 0
			for i, sp := range spans {
				if sp.Start != pos {
					t.Errorf("sentence %d starts at %d, want %d", i, sp.Start, pos)
				}
				if sp.End <= sp.Start {
					t.Errorf("sentence %d has empty span %+v", i, sp)
				}
				pos = sp.End
			}
			if len(spans) > 0 && pos != len(tt.text) {
				t.Errorf("last sentence ends at %d, want %d", pos, len(tt.text))
			}
		})
	}
}

func TestIsAbbreviation(t *testing.T) {
	text := "Acme Inc. was formed. Roe v. Wade is a case."
	if !isAbbreviation(text, 8) {
		t.Error("period after Inc should be an abbreviation")
	}
	if isAbbreviation(text, 20) {
		t.Error("period after formed should not be an abbreviation")
	}
	if !isAbbreviation(text, 27) {
		t.Error("period after v should be an abbreviation")
	}
}
