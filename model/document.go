package model

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Segment is one page or section of extracted text. Segments are ordered and
// their [Start, End) spans tile the Document text with no gaps or overlaps.
type Segment struct {
	// Index is the 0-based position of the segment in the document.
	Index int

	// Start and End are byte offsets into Document.Text.
	Start int
	End   int

	// Text is the normalized text of the segment.
	Text string
}

// Document is the normalized representation of one uploaded file. It is
// created by the extract package and never modified afterwards.
type Document struct {
	// ID uniquely identifies this extraction result.
	ID string

	// Filename is the name the file was uploaded under.
	Filename string

	// Format is the detected format name (e.g. "PDF", "TXT").
	Format string

	// Text is the full normalized text, the concatenation of all segments.
	Text string

	// Segments are the per-page/per-section spans of Text.
	Segments []Segment

	// WordCount is the number of whitespace-separated words in Text.
	WordCount int

	// PageCount is the number of segments.
	PageCount int

	// ProcessedAt records when extraction completed.
	ProcessedAt time.Time

	// Warnings holds non-fatal issues encountered during extraction.
	Warnings []Warning
}

// NewDocument assembles a Document from ordered segment texts. Segment
// offsets are computed over the joined text; segments are joined with a
// blank line so spans crossing page boundaries remain matchable.
func NewDocument(filename, format string, segmentTexts []string, warnings []Warning) *Document {
	const joiner = "\n\n"

	var b strings.Builder
	segments := make([]Segment, 0, len(segmentTexts))
	for i, st := range segmentTexts {
		if i > 0 {
			b.WriteString(joiner)
		}
		start := b.Len()
		b.WriteString(st)
		segments = append(segments, Segment{
			Index: i,
			Start: start,
			End:   b.Len(),
			Text:  st,
		})
	}

	text := b.String()
	return &Document{
		ID:          uuid.NewString(),
		Filename:    filename,
		Format:      format,
		Text:        text,
		Segments:    segments,
		WordCount:   countWords(text),
		PageCount:   len(segments),
		ProcessedAt: time.Now().UTC(),
		Warnings:    append([]Warning(nil), warnings...),
	}
}

// IsEmpty reports whether the document contains no non-whitespace text.
func (d *Document) IsEmpty() bool {
	return strings.TrimSpace(d.Text) == ""
}

// SegmentAt returns the segment containing the given byte offset, or nil if
// the offset falls outside all segments (e.g. inside a joiner).
func (d *Document) SegmentAt(offset int) *Segment {
	for i := range d.Segments {
		s := &d.Segments[i]
		if offset >= s.Start && offset < s.End {
			return s
		}
	}
	return nil
}

func countWords(s string) int {
	return len(strings.FieldsFunc(s, unicode.IsSpace))
}
