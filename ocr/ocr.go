//go:build ocr

// Package ocr provides OCR (Optical Character Recognition) support for
// scanned contract images via the Tesseract engine.
//
// This package wraps Tesseract via gosseract and requires Tesseract to be
// installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Build with the "ocr" tag to enable this implementation:
//
//	go build -tags ocr
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client. The client should be closed when no longer
// needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	return &Client{client: client}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Enabled reports whether OCR support was compiled in.
func Enabled() bool { return true }

// RecognizeImage performs OCR on image data. PNG, JPEG, TIFF, and BMP
// inputs are accepted; TIFF and BMP are converted to PNG before being
// handed to Tesseract. Returns the recognized text with leading/trailing
// whitespace trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	normalized, err := NormalizeImage(imageData)
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	if err := c.client.SetImageFromBytes(normalized); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// SetLanguage sets the language(s) for OCR recognition. Multiple languages
// can be specified as a "+" separated string (e.g., "eng+fra"). Default is
// "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}
