//go:build !integration && !tesseract

package ocr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupports(t *testing.T) {
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".gif", ".bmp"} {
		assert.True(t, Supports(ext), ext)
	}
	for _, ext := range []string{".tiff", ".pdf", ".txt", ""} {
		assert.False(t, Supports(ext), ext)
	}
}

func TestUnavailable(t *testing.T) {
	r, err := New(DefaultLanguages)
	require.NoError(t, err)

	_, err = r.Recognize(context.Background(), "/tmp/none.png")
	assert.ErrorIs(t, err, ErrUnavailable)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Recognize(ctx, "/tmp/none.png")
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, r.Close())
}
