package format

import (
	"archive/zip"
	"bytes"
	"testing"
)

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{PDF, "PDF"},
		{DOCX, "DOCX"},
		{DOC, "DOC"},
		{TXT, "TXT"},
		{HTML, "HTML"},
		{Image, "Image"},
		{Unknown, "Unknown"},
		{Format(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"contract.pdf", PDF},
		{"contract.PDF", PDF},
		{"contract.docx", DOCX},
		{"contract.DOCX", DOCX},
		{"contract.doc", DOC},
		{"contract.txt", TXT},
		{"contract.text", TXT},
		{"contract.html", HTML},
		{"contract.htm", HTML},
		{"scan.png", Image},
		{"scan.jpg", Image},
		{"scan.jpeg", Image},
		{"scan.tiff", Image},
		{"contract.xlsx", Unknown},
		{"contract", Unknown},
		{"", Unknown},
		{"/path/to/contract.pdf", PDF},
	}

	for _, tt := range tests {
		if got := Detect(tt.filename); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestDetectFromBytes(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want Format
	}{
		{"pdf", []byte("%PDF-1.7\n"), PDF},
		{"ole doc", []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, DOC},
		{"png", []byte("\x89PNG\r\n\x1a\n...."), Image},
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0}, Image},
		{"tiff little endian", []byte("II*\x00...."), Image},
		{"tiff big endian", []byte("MM\x00*...."), Image},
		{"html doctype", []byte("<!DOCTYPE html><html></html>"), HTML},
		{"html tag", []byte("  \n<html><body>x</body></html>"), HTML},
		{"plain text", []byte("This Agreement is made..."), Unknown},
		{"too short", []byte("ab"), Unknown},
		{"empty", nil, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectFromBytes(tt.data); got != tt.want {
				t.Errorf("DetectFromBytes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFromBytes_DOCX(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range []string{"[Content_Types].xml", "word/document.xml"} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating ZIP entry: %v", err)
		}
		if _, err := w.Write([]byte("<xml/>")); err != nil {
			t.Fatalf("writing ZIP entry: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing ZIP: %v", err)
	}

	if got := DetectFromBytes(buf.Bytes()); got != DOCX {
		t.Errorf("DetectFromBytes(docx zip) = %v, want DOCX", got)
	}
}

func TestDetectFromBytes_NonWordZIP(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("data/readme.txt")
	if err != nil {
		t.Fatalf("creating ZIP entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("writing ZIP entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing ZIP: %v", err)
	}

	if got := DetectFromBytes(buf.Bytes()); got != Unknown {
		t.Errorf("DetectFromBytes(plain zip) = %v, want Unknown", got)
	}
}
