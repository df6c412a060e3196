package extract

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/mohini32/legal-AI-Reader/format"
	"github.com/mohini32/legal-AI-Reader/model"
	"github.com/mohini32/legal-AI-Reader/ocr"
)

// Limits bounds the input a single extraction will accept. Oversized input
// is rejected up front rather than risking unbounded processing time.
type Limits struct {
	// MaxFileSize is the maximum accepted file size in bytes. A file of
	// exactly this size is accepted; one byte more is rejected.
	MaxFileSize int64

	// MaxPages is the maximum accepted page count, enforced for paginated
	// formats before page text is parsed.
	MaxPages int
}

// Extractor converts raw file bytes into a normalized model.Document.
// An Extractor is safe for concurrent use; all fields are read-only after
// construction.
type Extractor struct {
	limits      Limits
	allowedExts map[string]bool
	ocrClient   *ocr.Client
	logger      *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithOCR supplies an OCR client used for scanned image input. Without it
// (or when OCR support is not compiled in), image input fails with
// ErrUnsupportedFormat.
func WithOCR(c *ocr.Client) Option {
	return func(e *Extractor) { e.ocrClient = c }
}

// WithLogger sets the logger used for non-fatal extraction events.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) { e.logger = l }
}

// New creates an Extractor with the given limits and extension allow-list.
// Extensions are compared case-insensitively and must include the leading
// dot (".pdf", ".docx", ...).
func New(limits Limits, extensions []string, opts ...Option) *Extractor {
	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = true
	}
	e := &Extractor{
		limits:      limits,
		allowedExts: allowed,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract converts file bytes into a Document. It returns a typed error
// (ErrUnsupportedFormat, ErrSizeLimitExceeded, ErrCorruptDocument) when the
// whole file is unusable; partial failures are recorded as warnings on the
// returned Document instead.
func (e *Extractor) Extract(data []byte, filename string) (*model.Document, error) {
	if int64(len(data)) > e.limits.MaxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (limit %d)", ErrSizeLimitExceeded, len(data), e.limits.MaxFileSize)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if len(e.allowedExts) > 0 && !e.allowedExts[ext] {
		return nil, fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}

	f := format.DetectFromBytes(data)
	if f == format.Unknown {
		// Magic bytes are inconclusive for plain text; trust the extension.
		f = format.Detect(filename)
	}
	if f == format.Unknown {
		return nil, fmt.Errorf("%w: unrecognized content in %q", ErrUnsupportedFormat, filename)
	}

	var (
		segments []string
		warnings []model.Warning
		err      error
	)
	switch f {
	case format.PDF:
		segments, warnings, err = extractPDF(data, e.limits.MaxPages)
	case format.DOCX:
		segments, warnings, err = extractDOCX(data, e.limits.MaxPages)
	case format.DOC:
		segments, warnings, err = extractDOC(data)
	case format.TXT:
		segments, warnings, err = extractPlainText(data, e.limits.MaxPages)
	case format.HTML:
		segments, warnings, err = extractHTML(data)
	case format.Image:
		segments, warnings, err = e.extractImage(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, err
	}

	texts := normalizeSegments(segments)

	// A paginated document where every single page failed to normalize to
	// text is indistinguishable from a corrupt one. Plain text is exempt:
	// an empty TXT file is a valid, empty document.
	if len(texts) == 0 && f != format.TXT {
		return nil, fmt.Errorf("%w: %s contained no readable text", ErrCorruptDocument, f)
	}

	doc := model.NewDocument(filename, f.String(), texts, warnings)
	if len(doc.Warnings) > 0 {
		e.logger.Warn("extraction completed with warnings",
			"filename", filename,
			"format", f.String(),
			"warnings", model.FormatWarnings(doc.Warnings))
	}
	return doc, nil
}

// extractImage runs the OCR path for scanned contract images.
func (e *Extractor) extractImage(data []byte) ([]string, []model.Warning, error) {
	if e.ocrClient == nil || !ocr.Enabled() {
		return nil, nil, fmt.Errorf("%w: scanned image input requires OCR support", ErrUnsupportedFormat)
	}

	text, err := e.ocrClient.RecognizeImage(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: OCR failed: %v", ErrCorruptDocument, err)
	}

	warnings := []model.Warning{{
		Kind:    model.WarnMessyText,
		Message: "text recovered via OCR; recognition errors are possible",
	}}
	return []string{text}, warnings, nil
}
