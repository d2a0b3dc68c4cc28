// Package extract pulls plain text out of uploaded documents.
package extract

import (
	"context"
	"errors"
	"path/filepath"
	"sort"
	"strings"
)

// ErrUnsupported is returned for a file extension with no registered extractor.
var ErrUnsupported = errors.New("extract: unsupported file type")

// maxEntrySize bounds how much of a single archive member is read.
const maxEntrySize = 64 << 20

// Document extracts text from a file on disk.
type Document interface {
	Extract(ctx context.Context, path string) (string, error)
}

// DocumentFunc adapts a function to Document.
type DocumentFunc func(ctx context.Context, path string) (string, error)

// Extract calls f.
func (f DocumentFunc) Extract(ctx context.Context, path string) (string, error) {
	return f(ctx, path)
}

// Registry dispatches extraction by lowercased file extension.
type Registry struct {
	byExt map[string]Document
}

// NewRegistry returns a registry with the .txt, .docx and .rtf extractors.
func NewRegistry() *Registry {
	r := &Registry{byExt: make(map[string]Document)}
	r.Register(".txt", DocumentFunc(PlainText))
	r.Register(".docx", DocumentFunc(Docx))
	r.Register(".rtf", DocumentFunc(RTF))
	return r
}

// Register adds or replaces the extractor for ext.
func (r *Registry) Register(ext string, d Document) {
	r.byExt[strings.ToLower(ext)] = d
}

// Supports reports whether ext (with leading dot, any case) has an extractor.
func (r *Registry) Supports(ext string) bool {
	_, ok := r.byExt[strings.ToLower(ext)]
	return ok
}

// Extensions lists the registered extensions in sorted order.
func (r *Registry) Extensions() []string {
	out := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Extract dispatches on the extension of path.
func (r *Registry) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	d, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return "", ErrUnsupported
	}
	return d.Extract(ctx, path)
}
