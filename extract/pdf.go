package extract

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/mohini32/legal-AI-Reader/model"
)

// extractPDF extracts per-page text from a PDF. Pages that cannot be read
// are skipped with a warning; extraction only fails outright when the file
// cannot be opened at all or exceeds the page limit.
func extractPDF(data []byte, maxPages int) ([]string, []model.Warning, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}

	numPages := r.NumPage()
	if numPages > maxPages {
		return nil, nil, fmt.Errorf("%w: %d pages (limit %d)", ErrSizeLimitExceeded, numPages, maxPages)
	}

	segments := make([]string, 0, numPages)
	var warnings []model.Warning
	for i := 1; i <= numPages; i++ {
		text, err := extractPDFPage(r, i)
		if err != nil {
			warnings = append(warnings, model.Warning{
				Kind:    model.WarnPartialExtraction,
				Page:    i,
				Message: fmt.Sprintf("page could not be read: %v", err),
			})
			continue
		}
		segments = append(segments, text)
	}

	return segments, warnings, nil
}

// extractPDFPage reads one page, converting parser panics into errors so a
// single malformed page cannot abort the whole document.
func extractPDFPage(r *pdf.Reader, pageNum int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("parser panic: %v", rec)
		}
	}()

	page := r.Page(pageNum)
	if page.V.IsNull() {
		return "", fmt.Errorf("page object missing")
	}

	return page.GetPlainText(nil)
}
