// Package format provides file format detection for uploaded contract
// documents, combining extension checks with magic-byte inspection.
package format

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// DOC indicates a legacy binary Microsoft Word (.doc) document.
	DOC
	// TXT indicates a plain text document.
	TXT
	// HTML indicates an HTML document.
	HTML
	// Image indicates a scanned contract image (PNG, JPEG, or TIFF),
	// readable only through the OCR path.
	Image
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case DOCX:
		return "DOCX"
	case DOC:
		return "DOC"
	case TXT:
		return "TXT"
	case HTML:
		return "HTML"
	case Image:
		return "Image"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case PDF:
		return ".pdf"
	case DOCX:
		return ".docx"
	case DOC:
		return ".doc"
	case TXT:
		return ".txt"
	case HTML:
		return ".html"
	case Image:
		return ".png"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return PDF
	case ".docx":
		return DOCX
	case ".doc":
		return DOC
	case ".txt", ".text":
		return TXT
	case ".html", ".htm":
		return HTML
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		return Image
	default:
		return Unknown
	}
}

// DetectFromBytes inspects content to determine format. This is more
// reliable than extension-based detection and can distinguish DOCX from
// other ZIP-based formats. Returns Unknown if the content matches no known
// signature; plain text cannot be detected from magic bytes alone.
func DetectFromBytes(data []byte) Format {
	if len(data) < 4 {
		return Unknown
	}

	// PDF magic: %PDF
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return PDF
	}

	// ZIP magic (DOCX is a ZIP archive): PK\x03\x04
	if data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04 {
		if isDOCXArchive(data) {
			return DOCX
		}
		return Unknown
	}

	// Legacy OLE compound file (.doc): D0 CF 11 E0
	if len(data) >= 8 && data[0] == 0xD0 && data[1] == 0xCF && data[2] == 0x11 && data[3] == 0xE0 {
		return DOC
	}

	// PNG magic
	if bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")) {
		return Image
	}

	// JPEG magic: FF D8 FF
	if data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF {
		return Image
	}

	// TIFF magic: II*\x00 or MM\x00*
	if bytes.HasPrefix(data, []byte("II*\x00")) || bytes.HasPrefix(data, []byte("MM\x00*")) {
		return Image
	}

	if detectHTMLMagic(data) {
		return HTML
	}

	return Unknown
}

// isDOCXArchive checks whether a ZIP archive contains Word document parts.
func isDOCXArchive(data []byte) bool {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "word/") {
			return true
		}
	}
	return false
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return false
	}

	limit := len(trimmed)
	if limit > 512 {
		limit = 512
	}
	upper := strings.ToUpper(string(trimmed[:limit]))

	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML.
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}

	return false
}
