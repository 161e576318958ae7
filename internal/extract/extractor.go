// Package extract reads every source file in a directory into one dataset.
package extract

import (
	"context"

	"github.com/vvka-141/salesetl/pkg/salesetl"
)

// Extractor discovers source files, parses each one independently and
// concatenates the results. A file that cannot be read or parsed is logged
// and skipped; it never aborts the run.
type Extractor struct {
	scanner salesetl.FileScanner
	reader  salesetl.FileReader
	logger  salesetl.Logger
}

// New creates an Extractor.
// Panics if any dependency is nil.
func New(scanner salesetl.FileScanner, reader salesetl.FileReader, logger salesetl.Logger) *Extractor {
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if reader == nil {
		panic("reader cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Extractor{scanner: scanner, reader: reader, logger: logger}
}

// Extract returns the concatenation of every parsable source file in
// sourceDir, in listing order, or nil when there is nothing to extract.
func (e *Extractor) Extract(ctx context.Context, sourceDir string) *salesetl.Dataset {
	e.logger.Info("Starting extraction from source directory: %s", sourceDir)

	result, err := e.scanner.ScanDirectory(sourceDir)
	if err != nil {
		e.logger.Error("Cannot read source directory %q: %v", sourceDir, err)
		return nil
	}
	if len(result.Files) == 0 {
		e.logger.Warn("No %s files found in %s", salesetl.SourceFileExtension, sourceDir)
		return nil
	}

	parts := make([]*salesetl.Dataset, 0, len(result.Files))
	for _, file := range result.Files {
		if err := ctx.Err(); err != nil {
			e.logger.Error("Extraction interrupted before %q: %v", file.Name, err)
			return nil
		}

		ds, err := e.extractFile(file)
		if err != nil {
			e.logger.Error("Error reading file %q: %v", file.Name, err)
			continue
		}
		parts = append(parts, ds)
	}

	if len(parts) == 0 {
		e.logger.Error("No %s file could be read from %s", salesetl.SourceFileExtension, sourceDir)
		return nil
	}

	merged := salesetl.Concat(parts...)
	e.logger.Info("Extraction complete: %d rows consolidated from %d file(s)", merged.Len(), len(parts))
	return merged
}

func (e *Extractor) extractFile(file salesetl.FileMetadata) (*salesetl.Dataset, error) {
	loaded, err := e.scanner.ReadFile(file)
	if err != nil {
		return nil, err
	}

	ds, err := e.reader.Read(loaded)
	if err != nil {
		return nil, err
	}

	e.logger.Info("File %q read successfully (%d rows)", loaded.Name, ds.Len())
	e.logger.Verbose("File %q: %d bytes, checksum %s (raw %s)", loaded.Name, loaded.SizeBytes, loaded.Checksum, loaded.RawSum)
	return ds, nil
}

var _ salesetl.Extractor = (*Extractor)(nil)
