package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

func TestNormalizeImage_PNGPassthrough(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatalf("encoding PNG: %v", err)
	}

	got, err := NormalizeImage(buf.Bytes())
	if err != nil {
		t.Fatalf("NormalizeImage() error = %v", err)
	}
	if !bytes.Equal(got, buf.Bytes()) {
		t.Error("PNG input should be returned unchanged")
	}
}

func TestNormalizeImage_BMPConverted(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, testImage()); err != nil {
		t.Fatalf("encoding BMP: %v", err)
	}

	got, err := NormalizeImage(buf.Bytes())
	if err != nil {
		t.Fatalf("NormalizeImage() error = %v", err)
	}

	if _, err := png.Decode(bytes.NewReader(got)); err != nil {
		t.Errorf("converted output is not valid PNG: %v", err)
	}
}

func TestNormalizeImage_Garbage(t *testing.T) {
	if _, err := NormalizeImage([]byte("definitely not an image")); err == nil {
		t.Error("NormalizeImage(garbage) error = nil, want error")
	}
}
