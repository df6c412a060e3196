//go:build !ocr

// Package ocr provides OCR (Optical Character Recognition) support for
// scanned contract images via the Tesseract engine.
//
// This is the stub implementation used when the "ocr" build tag is not set.
// Recognition functions return ErrOCRNotEnabled.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import "errors"

// ErrOCRNotEnabled is returned when OCR functions are called but OCR
// support was not compiled in. Rebuild with -tags ocr to enable it.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a no-op OCR client used when OCR support is not compiled in.
type Client struct{}

// New creates a stub OCR client. It never fails; recognition calls on the
// returned client report ErrOCRNotEnabled.
func New() (*Client, error) {
	return &Client{}, nil
}

// Close is a no-op on the stub client.
func (c *Client) Close() error { return nil }

// Enabled reports whether OCR support was compiled in.
func Enabled() bool { return false }

// RecognizeImage always returns ErrOCRNotEnabled.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// SetLanguage always returns ErrOCRNotEnabled.
func (c *Client) SetLanguage(lang string) error {
	return ErrOCRNotEnabled
}
