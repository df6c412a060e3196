package entity

import "testing"

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"January 15, 2024", "2024-01-15", true},
		{"Jan 15, 2024", "2024-01-15", true},
		{"15 January 2024", "2024-01-15", true},
		{"3rd March 2023", "2023-03-03", true},
		{"01/15/2024", "2024-01-15", true},
		{"1/5/2024", "2024-01-05", true},
		{"2024-01-15", "2024-01-15", true},
		{"not a date", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeDate(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NormalizeDate(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalizeDate_Idempotent(t *testing.T) {
	once, ok := NormalizeDate("March 1, 2024")
	if !ok {
		t.Fatal("normalization failed")
	}
	twice, ok := NormalizeDate(once)
	if !ok || once != twice {
		t.Errorf("not idempotent: %q -> %q", once, twice)
	}
}

func TestNormalizeMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"$250,000", "250000.00 USD", true},
		{"$20,833.33", "20833.33 USD", true},
		{"USD 1,500", "1500.00 USD", true},
		{"€99.50", "99.50 EUR", true},
		{"£1,000", "1000.00 GBP", true},
		{"₹5,00,000", "500000.00 INR", true},
		{"$2 million", "2000000.00 USD", true},
		{"1,500 dollars", "1500.00 USD", true},
		{"250000.00 USD", "250000.00 USD", true},
		{"no amount here", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeMoney(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NormalizeMoney(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalizeDuration(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"sixty (60) days", "60 days", true},
		{"60 days", "60 days", true},
		{"Net 30 days", "30 days", true},
		{"six (6) months", "6 months", true},
		{"two (2) years", "2 years", true},
		{"30 business days", "30 days", true},
		{"forever", "", false},
	}

	for _, tt := range tests {
		got, ok := NormalizeDuration(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("NormalizeDuration(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalizeContact(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Legal@Acme.COM", "legal@acme.com"},
		{"(415) 555-1212", "4155551212"},
		{"+1 415-555-1212", "+14155551212"},
		{"www.Example.com", "www.example.com"},
	}

	for _, tt := range tests {
		if got := NormalizeContact(tt.in); got != tt.want {
			t.Errorf("NormalizeContact(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
