package model

import (
	"fmt"
	"strings"
)

// WarningKind classifies a non-fatal processing issue.
type WarningKind int

const (
	// WarnPartialExtraction indicates some pages or sections could not be
	// read; extraction continued with the remainder.
	WarnPartialExtraction WarningKind = iota

	// WarnMessyText indicates the extracted text shows traits of a poorly
	// structured source (e.g. salvaged binary runs, heavy OCR noise).
	WarnMessyText

	// WarnEntityConflict indicates the statistical tagger and a rule pattern
	// disagreed on the category of an overlapping span; the rule category
	// was kept.
	WarnEntityConflict
)

// String returns a short identifier for the warning kind.
func (k WarningKind) String() string {
	switch k {
	case WarnPartialExtraction:
		return "partial_extraction"
	case WarnMessyText:
		return "messy_text"
	case WarnEntityConflict:
		return "entity_conflict"
	default:
		return "unknown"
	}
}

// Warning describes a non-fatal issue encountered while processing a
// document. Warnings never abort the pipeline; callers decide how to
// surface them.
type Warning struct {
	Kind WarningKind

	// Page is the 1-based page/section number the warning applies to,
	// or 0 when the warning concerns the whole document.
	Page int

	Message string
}

// String renders the warning for display.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("[%s] page %d: %s", w.Kind, w.Page, w.Message)
	}
	return fmt.Sprintf("[%s] %s", w.Kind, w.Message)
}

// FormatWarnings renders a warning list as a single semicolon-separated
// string, suitable for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
