package extract

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohini32/legal-AI-Reader/model"
)

func testExtractor() *Extractor {
	return New(
		Limits{MaxFileSize: 1 << 20, MaxPages: 10},
		[]string{".pdf", ".docx", ".doc", ".txt", ".html"},
	)
}

func TestExtract_PlainText(t *testing.T) {
	e := testExtractor()

	doc, err := e.Extract([]byte("This Agreement is made on January 15, 2024.\n\nSecond paragraph."), "contract.txt")
	require.NoError(t, err)
	assert.Equal(t, "TXT", doc.Format)
	assert.Equal(t, 1, doc.PageCount)
	assert.Contains(t, doc.Text, "This Agreement")
	assert.NotZero(t, doc.WordCount)
	assert.NotEmpty(t, doc.ID)
}

func TestExtract_PlainTextFormFeedPages(t *testing.T) {
	e := testExtractor()

	doc, err := e.Extract([]byte("page one text\fpage two text\fpage three text"), "contract.txt")
	require.NoError(t, err)
	assert.Equal(t, 3, doc.PageCount)
	assert.Equal(t, "page one text", doc.Segments[0].Text)
	// Segment spans tile the document text.
	for i := range doc.Segments {
		s := doc.Segments[i]
		assert.Equal(t, s.Text, doc.Text[s.Start:s.End])
	}
}

func TestExtract_EmptyTextIsNotAnError(t *testing.T) {
	e := testExtractor()

	doc, err := e.Extract([]byte("   \n\t  "), "empty.txt")
	require.NoError(t, err)
	assert.True(t, doc.IsEmpty())
	assert.Zero(t, doc.PageCount)
}

func TestExtract_SizeLimitBoundary(t *testing.T) {
	e := New(Limits{MaxFileSize: 100, MaxPages: 10}, []string{".txt"})

	atLimit := bytes.Repeat([]byte("a"), 100)
	_, err := e.Extract(atLimit, "ok.txt")
	assert.NoError(t, err, "file at exactly the limit must succeed")

	overLimit := bytes.Repeat([]byte("a"), 101)
	_, err = e.Extract(overLimit, "big.txt")
	assert.ErrorIs(t, err, ErrSizeLimitExceeded)
}

func TestExtract_PageLimitBoundary(t *testing.T) {
	e := New(Limits{MaxFileSize: 1 << 20, MaxPages: 2}, []string{".txt"})

	_, err := e.Extract([]byte("one\ftwo"), "ok.txt")
	assert.NoError(t, err, "page count at exactly the limit must succeed")

	_, err = e.Extract([]byte("one\ftwo\fthree"), "big.txt")
	assert.ErrorIs(t, err, ErrSizeLimitExceeded)
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	e := testExtractor()

	_, err := e.Extract([]byte("col1,col2"), "data.csv")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtract_DOCX(t *testing.T) {
	docXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>SERVICE AGREEMENT</w:t></w:r></w:p>
    <w:p><w:r><w:t>The total contract value is </w:t></w:r><w:r><w:t>$250,000</w:t></w:r></w:p>
    <w:p><w:r><w:br w:type="page"/><w:t>Second page text here.</w:t></w:r></w:p>
  </w:body>
</w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range map[string]string{
		"[Content_Types].xml": "<Types/>",
		"word/document.xml":   docXML,
	} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	e := testExtractor()
	doc, err := e.Extract(buf.Bytes(), "contract.docx")
	require.NoError(t, err)
	assert.Equal(t, "DOCX", doc.Format)
	assert.Equal(t, 2, doc.PageCount)
	assert.Contains(t, doc.Segments[0].Text, "SERVICE AGREEMENT")
	assert.Contains(t, doc.Segments[0].Text, "The total contract value is $250,000")
	assert.Contains(t, doc.Segments[1].Text, "Second page")
}

func TestExtract_DOCXCorrupt(t *testing.T) {
	e := testExtractor()

	// Valid ZIP magic but not a parseable archive.
	_, err := e.Extract([]byte{0x50, 0x4B, 0x03, 0x04, 0x00, 0x00}, "broken.docx")
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestExtract_HTML(t *testing.T) {
	page := `<!DOCTYPE html>
<html><head><title>ignored</title><style>p{color:red}</style></head>
<body><h1>CONSULTING AGREEMENT</h1>
<p>This Agreement is entered into by Acme Corp.</p>
<script>var ignored = true;</script>
</body></html>`

	e := testExtractor()
	doc, err := e.Extract([]byte(page), "contract.html")
	require.NoError(t, err)
	assert.Contains(t, doc.Text, "CONSULTING AGREEMENT")
	assert.Contains(t, doc.Text, "Acme Corp")
	assert.NotContains(t, doc.Text, "ignored")
	assert.NotContains(t, doc.Text, "color:red")
}

func TestExtract_LegacyDOC(t *testing.T) {
	// An OLE header followed by binary noise and one readable sentence.
	data := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, 0x00, 0x01, 0x02)
	data = append(data, []byte("This Agreement may be terminated with sixty days written notice.")...)
	data = append(data, 0x00, 0xFF)

	e := testExtractor()
	doc, err := e.Extract(data, "contract.doc")
	require.NoError(t, err)
	assert.Contains(t, doc.Text, "terminated with sixty days written notice")

	require.NotEmpty(t, doc.Warnings)
	assert.Equal(t, model.WarnPartialExtraction, doc.Warnings[0].Kind)
}

func TestExtract_LegacyDOCNoText(t *testing.T) {
	data := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, bytes.Repeat([]byte{0x01, 0x02}, 64)...)

	e := testExtractor()
	_, err := e.Extract(data, "contract.doc")
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestExtract_ImageWithoutOCR(t *testing.T) {
	e := New(Limits{MaxFileSize: 1 << 20, MaxPages: 10}, []string{".png"})

	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0x00}, 16)...)
	_, err := e.Extract(png, "scan.png")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtract_MagicOverridesExtension(t *testing.T) {
	e := testExtractor()

	// PDF bytes with a .txt name are still detected as PDF (and fail as a
	// corrupt PDF rather than being treated as text).
	_, err := e.Extract([]byte("%PDF-1.4 not really a pdf"), "mislabeled.txt")
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestDocumentWordCount(t *testing.T) {
	e := testExtractor()
	doc, err := e.Extract([]byte("one two three\nfour"), "c.txt")
	require.NoError(t, err)
	assert.Equal(t, 4, doc.WordCount)
	assert.False(t, strings.Contains(doc.Text, "\r"))
}
