// Package scanner provides discovery of tabular source files.
//
// The scanner package is responsible for:
//   - Listing the source files directly inside a directory
//   - Extracting file metadata (path, size, timestamps)
//   - Reading content and computing its normalized checksum on demand
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
