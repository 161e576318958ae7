package filesystem

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadDir_FlatAndSorted(t *testing.T) {
	mfs := NewMemoryFileSystem("/data")
	mfs.AddFile("march.csv", "a\n1\n")
	mfs.AddFile("january.csv", "a\n1\n")
	mfs.AddFile("archive/old.csv", "a\n1\n")

	entries, err := mfs.ReadDir("/data")
	require.NoError(t, err)

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	assert.Equal(t, []string{"archive", "january.csv", "march.csv"}, names)
	assert.True(t, entries[0].IsDir())
}

func TestMemoryFileSystem_ReadDir_Errors(t *testing.T) {
	mfs := NewMemoryFileSystem("/data")
	mfs.AddFile("a.csv", "x")

	_, err := mfs.ReadDir("/missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = mfs.ReadDir("/data/a.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestMemoryFileSystem_EmptyDir(t *testing.T) {
	mfs := NewMemoryFileSystem("/data")
	mfs.AddDir("empty")

	entries, err := mfs.ReadDir("/data/empty")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/data")
	mfs.AddFile("a.csv", "a,b\n1,2\n")

	content, err := mfs.ReadFile("/data/a.csv")
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(content))

	content, err = mfs.ReadFile("a.csv")
	require.NoError(t, err, "relative paths resolve against the root")
	assert.Equal(t, "a,b\n1,2\n", string(content))

	_, err = mfs.ReadFile("/data/missing.csv")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_FailRead(t *testing.T) {
	mfs := NewMemoryFileSystem("/data")
	mfs.AddFile("locked.csv", "x")
	boom := errors.New("permission denied")
	mfs.FailRead("locked.csv", boom)

	_, err := mfs.ReadFile("/data/locked.csv")
	assert.ErrorIs(t, err, boom)
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/data")
	modTime := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	mfs.AddFileWithTime("a.csv", "12345", modTime)

	info, err := mfs.Stat("/data/a.csv")
	require.NoError(t, err)
	assert.Equal(t, "a.csv", info.Name())
	assert.Equal(t, int64(5), info.Size())
	assert.Equal(t, modTime, info.ModTime())
	assert.False(t, info.IsDir())

	info, err = mfs.Stat("/data")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMemoryFileSystem_Join(t *testing.T) {
	mfs := NewMemoryFileSystem("/data")
	assert.Equal(t, "/data/a.csv", mfs.Join("/data", "a.csv"))
}
