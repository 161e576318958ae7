// Package logging provides concrete implementations of the salesetl.Logger interface.
//
// Available implementations:
//   - Logger: Leveled, timestamped records fanned out to a console sink and a file sink
//   - MemoryLogger: Records entries in memory so tests can assert on a single call
//   - NullLogger: Discards all messages
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
