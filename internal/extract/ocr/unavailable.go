//go:build !tesseract

package ocr

import (
	"context"

	"github.com/rs/zerolog/log"
)

type unavailable struct{}

// New returns a Recognizer that always fails with ErrUnavailable. Build with
// -tags tesseract to link the real engine.
func New(languages string) (Engine, error) {
	log.Warn().Str("languages", languages).Msg("OCR engine not compiled in, image jobs will return a failure notice")
	return unavailable{}, nil
}

func (unavailable) Recognize(ctx context.Context, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "", ErrUnavailable
}

func (unavailable) Close() error { return nil }
