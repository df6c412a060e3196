package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/mohini32/legal-AI-Reader/model"
)

// extractDOCX extracts paragraph text from a DOCX (Office Open XML)
// archive. Explicit page breaks split the output into segments; documents
// without page breaks produce a single segment.
func extractDOCX(data []byte, maxPages int) ([]string, []model.Warning, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: not a valid DOCX archive: %v", ErrCorruptDocument, err)
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return nil, nil, fmt.Errorf("%w: %v", ErrCorruptDocument, err)
			}
			break
		}
	}
	if docXML == nil {
		return nil, nil, fmt.Errorf("%w: missing word/document.xml", ErrCorruptDocument)
	}

	segments, warnings, err := parseDOCXBody(docXML)
	if err != nil {
		return nil, nil, err
	}
	if len(segments) > maxPages {
		return nil, nil, fmt.Errorf("%w: %d pages (limit %d)", ErrSizeLimitExceeded, len(segments), maxPages)
	}
	return segments, warnings, nil
}

// parseDOCXBody walks document.xml collecting paragraph text. Only the
// handful of WordprocessingML elements that carry or shape text matter
// here: w:p (paragraph), w:t (text run), w:br / w:tab, and page breaks.
func parseDOCXBody(docXML []byte) ([]string, []model.Warning, error) {
	dec := xml.NewDecoder(bytes.NewReader(docXML))

	var (
		segments  []string
		current   strings.Builder
		paragraph strings.Builder
		inText    bool
	)

	flushParagraph := func() {
		p := strings.TrimRight(paragraph.String(), " \t")
		paragraph.Reset()
		if p != "" {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(p)
		}
	}
	flushSegment := func() {
		flushParagraph()
		segments = append(segments, current.String())
		current.Reset()
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Truncated XML still yields whatever was parsed so far.
			flushSegment()
			warn := model.Warning{
				Kind:    model.WarnPartialExtraction,
				Message: fmt.Sprintf("document.xml truncated: %v", err),
			}
			return segments, []model.Warning{warn}, nil
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				paragraph.WriteString(" ")
			case "br":
				if docxBreakIsPage(t) {
					flushSegment()
				} else {
					paragraph.WriteString("\n")
				}
			case "lastRenderedPageBreak":
				flushSegment()
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				flushParagraph()
			}
		case xml.CharData:
			if inText {
				paragraph.Write(t)
			}
		}
	}
	flushSegment()

	return segments, nil, nil
}

// docxBreakIsPage reports whether a w:br element is an explicit page break.
func docxBreakIsPage(el xml.StartElement) bool {
	for _, attr := range el.Attr {
		if attr.Name.Local == "type" && attr.Value == "page" {
			return true
		}
	}
	return false
}
