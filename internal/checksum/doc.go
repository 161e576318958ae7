// Package checksum provides file content hashing with normalization support.
//
// Two checksums are available:
//
//   - Raw checksum: Hash of the exact file content (detects all changes)
//   - Normalized checksum: Hash after removing encoding and line-ending noise
//     (a file re-saved by a spreadsheet tool keeps its identity)
//
// # Normalization Strategy
//
//  1. Drop a leading UTF-8 byte order mark
//  2. Convert CRLF and lone CR line endings to LF
//  3. Drop trailing blank lines
//
// # Example Usage
//
//	calculator := checksum.New()
//	rawChecksum := calculator.CalculateRaw(fileContent)
//	normalizedChecksum := calculator.CalculateNormalized(fileContent)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
