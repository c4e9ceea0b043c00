package store

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/write/pkg/entry"
)

func TestWriteThenRead(t *testing.T) {
	dir := t.TempDir()
	r := New()

	content := "first line\nsecond line — with unicode ✓\n"
	path, err := r.Write(dir, "240102-100000.txt", content)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "240102-100000.txt"), path)

	got, err := r.Read(dir, "240102-100000.txt")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestWriteOverwrites(t *testing.T) {
	dir := t.TempDir()
	r := New()

	_, err := r.Write(dir, "240102-100000.txt", "a much longer first version")
	require.NoError(t, err)
	_, err = r.Write(dir, "240102-100000.txt", "short")
	require.NoError(t, err)

	got, err := r.Read(dir, "240102-100000.txt")
	require.NoError(t, err)
	assert.Equal(t, "short", got)
}

func TestReadSeesExternalWrites(t *testing.T) {
	dir := t.TempDir()
	r := New()

	_, err := r.Write(dir, "240102-100000.txt", "ours")
	require.NoError(t, err)
	_, err = r.Read(dir, "240102-100000.txt")
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "240102-100000.txt"), []byte("theirs"), 0o644))
	got, err := r.Read(dir, "240102-100000.txt")
	require.NoError(t, err)
	assert.Equal(t, "theirs", got)
}

func TestReadMissing(t *testing.T) {
	_, err := New().Read(t.TempDir(), "240102-100000.txt")
	require.Error(t, err)
	assert.True(t, entry.IsNotFound(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadWriteValidation(t *testing.T) {
	r := New()
	_, err := r.Read("", "a.txt")
	assert.True(t, entry.IsValidation(err))
	_, err = r.Write(t.TempDir(), "../escape.txt", "x")
	assert.True(t, entry.IsValidation(err))
	_, err = r.Write(t.TempDir(), "", "x")
	assert.True(t, entry.IsValidation(err))
}

func TestListFiltersAndStats(t *testing.T) {
	dir := t.TempDir()
	r := New()

	for _, name := range []string{
		"240102-100000.txt",
		"240102-090000.txt",
		"240102-100000--reply-240102-110000.txt",
	} {
		_, err := r.Write(dir, name, "body")
		require.NoError(t, err)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden.txt"), []byte("x"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))

	files, err := r.List(context.Background(), dir)
	require.NoError(t, err)

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
		assert.False(t, f.CreatedAt.IsZero(), f.Name)
		assert.False(t, f.ModifiedAt.IsZero(), f.Name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{
		"240102-090000.txt",
		"240102-100000--reply-240102-110000.txt",
		"240102-100000.txt",
	}, names)
}

func TestListEmptyDirectory(t *testing.T) {
	files, err := New().List(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestListUnreadableDirectory(t *testing.T) {
	_, err := New().List(context.Background(), filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, entry.CodeIO, entry.CodeOf(err))
}

func TestCreateDirectory(t *testing.T) {
	base := t.TempDir()

	path, err := CreateDirectory(base, filepath.Join("journal", "2024"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "journal", "2024"), path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	again, err := CreateDirectory(base, filepath.Join("journal", "2024"))
	require.NoError(t, err)
	assert.Equal(t, path, again)
}

func TestCreateDirectoryRequiresBoth(t *testing.T) {
	_, err := CreateDirectory("", "journal")
	assert.True(t, entry.IsValidation(err))
	_, err = CreateDirectory(t.TempDir(), " ")
	assert.True(t, entry.IsValidation(err))
}

func TestCreateDirectoryFailure(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	_, err := CreateDirectory(blocker, "journal")
	require.Error(t, err)
	assert.Equal(t, entry.CodeIO, entry.CodeOf(err))
}
