package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider abstracts the read-only filesystem operations the
// extract stage needs. Missing paths produce errors that satisfy
// errors.Is(err, fs.ErrNotExist).
type FileSystemProvider interface {
	// ReadDir returns the entries directly inside path, sorted by name.
	// Returns an error if path does not exist or is not a directory.
	ReadDir(path string) ([]FileInfo, error)

	// ReadFile reads a specific file at the given path.
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path.
	Stat(path string) (FileInfo, error)

	// Join joins path elements using the provider's separator.
	Join(elem ...string) string
}
