package clause

import (
	"regexp"
	"strings"
	"unicode"
)

// SegmentConfig holds configuration for clause segmentation.
type SegmentConfig struct {
	// SentencesPerClause is how many sentences are grouped into one clause
	// when no headings are found. Default: 3.
	SentencesPerClause int

	// MaxHeadingLength is the longest line still considered a heading
	// candidate, in bytes. Default: 100.
	MaxHeadingLength int
}

// DefaultSegmentConfig returns the default segmentation configuration.
func DefaultSegmentConfig() SegmentConfig {
	return SegmentConfig{
		SentencesPerClause: 3,
		MaxHeadingLength:   100,
	}
}

// Segmenter splits normalized text into clauses. Safe for concurrent use.
type Segmenter struct {
	config SegmentConfig
}

// NewSegmenter creates a Segmenter. Zero config fields fall back to
// defaults.
func NewSegmenter(config SegmentConfig) *Segmenter {
	def := DefaultSegmentConfig()
	if config.SentencesPerClause <= 0 {
		config.SentencesPerClause = def.SentencesPerClause
	}
	if config.MaxHeadingLength <= 0 {
		config.MaxHeadingLength = def.MaxHeadingLength
	}
	return &Segmenter{config: config}
}

var (
	// numberedPrefixRe matches "1.", "2.3", "Section 4.", "Clause 7)"
	// style heading prefixes followed by a title.
	numberedPrefixRe = regexp.MustCompile(`^(?:(?:Section|SECTION|Article|ARTICLE|Clause|CLAUSE)\s+)?\d+(?:\.\d+)*[.):]?\s+\S`)

	// romanPrefixRe matches "Article IV" style headings.
	romanPrefixRe = regexp.MustCompile(`^(?:Section|SECTION|Article|ARTICLE|Clause|CLAUSE)\s+[IVXLC]+[.):]?(?:\s|$)`)
)

// Segment splits text into clauses covering the whole input with no gaps
// or overlaps. Heading lines (numbered sections, ALL-CAPS lines) start a
// new clause; when the text has no headings at all, sentences are grouped
// into fixed-size clauses instead. Empty input yields no clauses.
func (s *Segmenter) Segment(text string) []Clause {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	boundaries, headings := s.headingBoundaries(text)
	if len(boundaries) == 0 {
		return s.segmentBySentences(text)
	}

	// The text before the first heading (the preamble) is its own clause.
	if boundaries[0] != 0 {
		boundaries = append([]int{0}, boundaries...)
		headings = append([]string{""}, headings...)
	}

	clauses := make([]Clause, 0, len(boundaries))
	for i, start := range boundaries {
		end := len(text)
		if i+1 < len(boundaries) {
			end = boundaries[i+1]
		}
		if end <= start {
			continue
		}
		clauses = append(clauses, Clause{
			Index:   len(clauses),
			Start:   start,
			End:     end,
			Text:    text[start:end],
			Heading: headings[i],
		})
	}
	return clauses
}

// headingBoundaries scans lines for heading heuristics and returns the
// byte offset of each heading line along with its text.
func (s *Segmenter) headingBoundaries(text string) (offsets []int, headings []string) {
	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		trimmed := strings.TrimRight(line, "\n")
		if s.isHeading(strings.TrimSpace(trimmed)) {
			offsets = append(offsets, offset)
			headings = append(headings, strings.TrimSpace(trimmed))
		}
		offset += len(line)
	}
	return offsets, headings
}

// isHeading applies the heading heuristics: numbered section prefixes,
// ALL-CAPS lines, and short title-like lines ending without sentence
// punctuation are all treated as headings.
func (s *Segmenter) isHeading(line string) bool {
	if line == "" || len(line) > s.config.MaxHeadingLength {
		return false
	}

	if numberedPrefixRe.MatchString(line) || romanPrefixRe.MatchString(line) {
		return true
	}

	return isAllCapsLine(line)
}

// isAllCapsLine reports whether a line consists of uppercase words (digits
// and punctuation allowed, at least two letters, no lowercase).
func isAllCapsLine(line string) bool {
	letters := 0
	for _, r := range line {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			letters++
		}
	}
	return letters >= 2
}

// segmentBySentences groups sentences into fixed-size clauses when the
// document has no detectable headings.
func (s *Segmenter) segmentBySentences(text string) []Clause {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return nil
	}

	n := s.config.SentencesPerClause
	clauses := make([]Clause, 0, (len(sentences)+n-1)/n)
	for i := 0; i < len(sentences); i += n {
		j := i + n
		if j > len(sentences) {
			j = len(sentences)
		}
		start := sentences[i].Start
		end := sentences[j-1].End
		clauses = append(clauses, Clause{
			Index: len(clauses),
			Start: start,
			End:   end,
			Text:  text[start:end],
		})
	}
	return clauses
}
