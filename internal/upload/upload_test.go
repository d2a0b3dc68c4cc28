//go:build !integration

package upload

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_Ext(t *testing.T) {
	assert.Equal(t, ".docx", File{Name: "Report.DOCX"}.Ext())
	assert.Equal(t, ".txt", File{Name: "a.b.txt"}.Ext())
	assert.Equal(t, "", File{Name: "README"}.Ext())
}

func TestStager_Stage(t *testing.T) {
	dir := t.TempDir()
	stager, err := NewStager(dir)
	require.NoError(t, err)

	path, cleanup, err := stager.Stage(FromBytes("notes.TXT", []byte("hello")))
	require.NoError(t, err)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, ".txt", filepath.Ext(path))
	assert.NotContains(t, path, "notes")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	cleanup()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// a second cleanup is harmless
	cleanup()
}

func TestStager_UniqueNames(t *testing.T) {
	stager, err := NewStager(t.TempDir())
	require.NoError(t, err)

	p1, c1, err := stager.Stage(FromBytes("same.txt", []byte("a")))
	require.NoError(t, err)
	defer c1()
	p2, c2, err := stager.Stage(FromBytes("same.txt", []byte("b")))
	require.NoError(t, err)
	defer c2()

	assert.NotEqual(t, p1, p2)
}

func TestStager_OpenFailure(t *testing.T) {
	dir := t.TempDir()
	stager, err := NewStager(dir)
	require.NoError(t, err)

	f := File{Name: "x.txt", Open: func() (io.ReadCloser, error) { return nil, errors.New("gone") }}
	_, cleanup, err := stager.Stage(f)

	assert.Error(t, err)
	cleanup()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFromPath(t *testing.T) {
	src := filepath.Join(t.TempDir(), "in.rtf")
	require.NoError(t, os.WriteFile(src, []byte("{\\rtf1 hi}"), 0o600))

	f := FromPath(src)
	assert.Equal(t, "in.rtf", f.Name)

	rc, err := f.Open()
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "{\\rtf1 hi}", string(data))
}

func TestNewStager_DefaultDir(t *testing.T) {
	stager, err := NewStager("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(os.TempDir(), "translate-uploads"), stager.Dir())
}

func TestStager_Check(t *testing.T) {
	dir := t.TempDir()
	s, err := NewStager(dir)
	require.NoError(t, err)

	require.NoError(t, s.Check(context.Background()))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "check file must be removed")

	require.NoError(t, os.RemoveAll(dir))
	assert.Error(t, s.Check(context.Background()))
}
