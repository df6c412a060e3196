package extract

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mohini32/legal-AI-Reader/model"
)

// extractPlainText handles TXT input. Form feeds act as page separators;
// files without them produce a single segment. An empty or whitespace-only
// file is a valid, empty document.
func extractPlainText(data []byte, maxPages int) ([]string, []model.Warning, error) {
	// Strip a UTF-8 BOM if present.
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	var warnings []model.Warning
	text := string(data)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "")
		warnings = append(warnings, model.Warning{
			Kind:    model.WarnMessyText,
			Message: "file contained invalid UTF-8; undecodable bytes were dropped",
		})
	}

	segments := strings.Split(text, "\f")
	if len(segments) > maxPages {
		return nil, nil, fmt.Errorf("%w: %d pages (limit %d)", ErrSizeLimitExceeded, len(segments), maxPages)
	}
	return segments, warnings, nil
}

// extractDOC salvages readable text from a legacy binary Word file. There
// is no maintained pure-Go reader for the OLE compound format, so this is a
// best-effort scan for printable runs, always flagged as partial.
func extractDOC(data []byte) ([]string, []model.Warning, error) {
	const minRun = 16

	var (
		out strings.Builder
		run []rune
	)
	flush := func() {
		if len(run) >= minRun {
			s := strings.TrimSpace(string(run))
			if s != "" && looksLikeProse(s) {
				if out.Len() > 0 {
					out.WriteString("\n")
				}
				out.WriteString(s)
			}
		}
		run = run[:0]
	}

	for _, b := range data {
		r := rune(b)
		if r == '\r' || r == '\n' || r == '\t' {
			r = ' '
		}
		if r >= 0x20 && r < 0x7F {
			run = append(run, r)
		} else {
			flush()
		}
	}
	flush()

	if strings.TrimSpace(out.String()) == "" {
		return nil, nil, fmt.Errorf("%w: no readable text in legacy DOC file", ErrCorruptDocument)
	}

	warnings := []model.Warning{{
		Kind:    model.WarnPartialExtraction,
		Message: "legacy DOC format: text salvaged from binary stream, formatting and some content may be lost",
	}}
	return []string{out.String()}, warnings, nil
}

// looksLikeProse filters salvaged runs that are mostly letters and spaces,
// discarding font tables and other binary noise that happens to be ASCII.
func looksLikeProse(s string) bool {
	var letters, spaces, total int
	for _, r := range s {
		total++
		switch {
		case unicode.IsLetter(r):
			letters++
		case r == ' ':
			spaces++
		}
	}
	if total == 0 {
		return false
	}
	return float64(letters+spaces)/float64(total) >= 0.8 && spaces > 0
}
