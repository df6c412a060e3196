package entity

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var dateLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"1/2/06",
	"01-02-2006",
	"1-2-2006",
}

var ordinalRe = regexp.MustCompile(`(\d)(?:st|nd|rd|th)\b`)

// NormalizeDate converts a surface date to ISO 8601 (YYYY-MM-DD). The
// second return value reports success. Normalization is idempotent: an
// already-canonical date normalizes to itself. Ambiguous numeric dates are
// read month-first, the dominant convention in US contracts.
func NormalizeDate(s string) (string, bool) {
	cleaned := strings.TrimSpace(ordinalRe.ReplaceAllString(s, "$1"))
	cleaned = strings.ReplaceAll(cleaned, "  ", " ")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

var currencyMarkers = []struct {
	marker string
	code   string
}{
	{"$", "USD"}, {"USD", "USD"}, {"dollar", "USD"},
	{"€", "EUR"}, {"EUR", "EUR"}, {"euro", "EUR"},
	{"£", "GBP"}, {"GBP", "GBP"}, {"pound", "GBP"},
	{"₹", "INR"}, {"INR", "INR"}, {"rupee", "INR"},
	{"CAD", "CAD"},
}

var moneyMultipliers = []struct {
	word   string
	factor int64
}{
	{"billion", 1_000_000_000},
	{"million", 1_000_000},
	{"thousand", 1_000},
}

var amountRe = regexp.MustCompile(`\d[\d,]*(?:\.\d+)?`)

// NormalizeMoney converts a surface amount to "<decimal> <code>", e.g.
// "$250,000" -> "250000.00 USD". The currency code defaults to USD when no
// marker is present. Idempotent for already-canonical values.
func NormalizeMoney(s string) (string, bool) {
	raw := amountRe.FindString(s)
	if raw == "" {
		return "", false
	}

	amount, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return "", false
	}

	lower := strings.ToLower(s)
	for _, m := range moneyMultipliers {
		if strings.Contains(lower, m.word) {
			amount = amount.Mul(decimal.NewFromInt(m.factor))
			break
		}
	}

	code := "USD"
	for _, c := range currencyMarkers {
		if strings.Contains(s, c.marker) || strings.Contains(lower, strings.ToLower(c.marker)) {
			code = c.code
			break
		}
	}

	return fmt.Sprintf("%s %s", amount.StringFixed(2), code), true
}

var durationRe = regexp.MustCompile(`(?i)(\d{1,4})\)?\s*(?:calendar\s+|business\s+)?(day|week|month|year)s?`)

// NormalizeDuration converts a surface duration to "<n> <unit>s", e.g.
// "sixty (60) days" -> "60 days". Written-number forms are resolved through
// their parenthetical digits. Idempotent for already-canonical values.
func NormalizeDuration(s string) (string, bool) {
	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return fmt.Sprintf("%s %ss", m[1], strings.ToLower(m[2])), true
}

var phoneStripRe = regexp.MustCompile(`[^\d+]`)

// NormalizeContact canonicalizes contact entities: emails are lowercased,
// phone numbers reduced to digits (keeping a leading +), websites
// lowercased.
func NormalizeContact(s string) string {
	if strings.Contains(s, "@") || strings.HasPrefix(strings.ToLower(s), "www.") {
		return strings.ToLower(strings.TrimSpace(s))
	}
	digits := phoneStripRe.ReplaceAllString(s, "")
	if digits != "" {
		return digits
	}
	return strings.TrimSpace(s)
}

// normalizeEntity fills the Normalized field for categories that have a
// canonical form. Entities that fail to normalize keep an empty Normalized
// value; the surface text always survives.
func normalizeEntity(e Entity) Entity {
	switch e.Category {
	case CategoryDate:
		if v, ok := NormalizeDate(e.Text); ok {
			e.Normalized = v
		}
	case CategoryMoney:
		if v, ok := NormalizeMoney(e.Text); ok {
			e.Normalized = v
		}
	case CategoryDuration:
		if v, ok := NormalizeDuration(e.Text); ok {
			e.Normalized = v
		}
	case CategoryContact:
		e.Normalized = NormalizeContact(e.Text)
	case CategoryParty:
		name := strings.Trim(e.Text, `(")”“ `)
		name = strings.TrimPrefix(name, "the ")
		name = strings.Trim(name, `"”“ `)
		e.Normalized = strings.Join(strings.Fields(name), " ")
	}
	return e
}
