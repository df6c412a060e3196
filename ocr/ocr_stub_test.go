//go:build !ocr

package ocr

import (
	"errors"
	"testing"
)

func TestStub_RecognizeImage(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	if Enabled() {
		t.Error("Enabled() = true, want false without ocr build tag")
	}

	_, err = c.RecognizeImage([]byte("not an image"))
	if !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("RecognizeImage() error = %v, want ErrOCRNotEnabled", err)
	}

	if err := c.SetLanguage("eng"); !errors.Is(err, ErrOCRNotEnabled) {
		t.Errorf("SetLanguage() error = %v, want ErrOCRNotEnabled", err)
	}
}

func TestStub_CloseIsIdempotent(t *testing.T) {
	c, _ := New()
	if err := c.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := c.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
