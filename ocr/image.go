package ocr

import (
	"bytes"
	"image"
	"image/png"

	// Register decoders for the image formats scanned contracts arrive in.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// NormalizeImage decodes image data in any supported format (PNG, JPEG,
// TIFF, BMP) and re-encodes it as PNG. PNG and JPEG inputs are returned
// unchanged since Tesseract accepts them directly.
func NormalizeImage(data []byte) ([]byte, error) {
	_, kind, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if kind == "png" || kind == "jpeg" {
		return data, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
