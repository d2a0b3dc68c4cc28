// Package ocr recognizes text in images.
package ocr

import (
	"context"
	"errors"
)

// DefaultLanguages are the tesseract language packs used when none are configured.
const DefaultLanguages = "eng+chi_sim"

// ErrUnavailable is returned when the binary was built without an OCR engine.
var ErrUnavailable = errors.New("ocr: engine not available in this build")

// Recognizer extracts text from an image file.
type Recognizer interface {
	Recognize(ctx context.Context, path string) (string, error)
}

// Engine is a Recognizer holding engine resources until Close.
type Engine interface {
	Recognizer
	Close() error
}

// SupportedExtensions are the image types accepted for recognition.
var SupportedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp"}

// Supports reports whether ext (lowercase, with leading dot) is an accepted image type.
func Supports(ext string) bool {
	for _, e := range SupportedExtensions {
		if e == ext {
			return true
		}
	}
	return false
}
