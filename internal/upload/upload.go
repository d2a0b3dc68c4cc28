// Package upload stages uploaded files in a scratch directory for extraction.
package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// File is an uploaded file that has not been written to disk yet.
type File struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// Ext returns the lowercased extension of the original file name.
func (f File) Ext() string {
	return strings.ToLower(filepath.Ext(f.Name))
}

// FromMultipart wraps a multipart file header.
func FromMultipart(h *multipart.FileHeader) File {
	return File{
		Name: h.Filename,
		Open: func() (io.ReadCloser, error) { return h.Open() },
	}
}

// FromPath wraps a file that already exists on disk.
func FromPath(path string) File {
	return File{
		Name: filepath.Base(path),
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// FromBytes wraps in-memory content.
func FromBytes(name string, data []byte) File {
	return File{
		Name: name,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(data)), nil },
	}
}

// Stager writes uploads under unique names in a scratch directory.
type Stager struct {
	dir string
}

// NewStager creates the scratch directory if needed. An empty dir uses the system temp dir.
func NewStager(dir string) (*Stager, error) {
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "translate-uploads")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	return &Stager{dir: dir}, nil
}

// Dir returns the scratch directory.
func (s *Stager) Dir() string {
	return s.dir
}

// Check verifies that the scratch directory is still writable.
func (s *Stager) Check(context.Context) error {
	tmp, err := os.CreateTemp(s.dir, ".check-*")
	if err != nil {
		return fmt.Errorf("scratch dir not writable: %w", err)
	}
	name := tmp.Name()
	_ = tmp.Close()
	return os.Remove(name)
}

// Stage copies f into the scratch directory. The returned cleanup removes the
// staged file and must be called on every path, typically with defer.
func (s *Stager) Stage(f File) (string, func(), error) {
	src, err := f.Open()
	if err != nil {
		return "", func() {}, fmt.Errorf("open upload %s: %w", f.Name, err)
	}
	defer src.Close()

	path := filepath.Join(s.dir, uuid.NewString()+f.Ext())
	dst, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", func() {}, fmt.Errorf("create scratch file: %w", err)
	}

	cleanup := func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("Failed to remove scratch file")
		}
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		cleanup()
		return "", func() {}, fmt.Errorf("write scratch file: %w", err)
	}
	if err := dst.Close(); err != nil {
		cleanup()
		return "", func() {}, fmt.Errorf("close scratch file: %w", err)
	}

	return path, cleanup, nil
}
