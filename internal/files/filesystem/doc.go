// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the read-only operations the extract stage performs,
// enabling testability through an in-memory implementation while maintaining
// compatibility with the OS filesystem.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
