package scanner

import (
	"fmt"
	"strings"

	"github.com/vvka-141/salesetl/internal/checksum"
	"github.com/vvka-141/salesetl/internal/files/filesystem"
	"github.com/vvka-141/salesetl/pkg/salesetl"
)

// Scanner discovers source files in a directory.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided calculator and fsProvider are also thread-safe.
type Scanner struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a new file scanner with the given checksum calculator.
// Uses OS filesystem by default.
// Panics if calculator is nil.
func NewScanner(calculator checksum.Calculator) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: filesystem.NewOSFileSystem(),
	}
}

// NewScannerWithFS creates a new file scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if calculator or fsProvider is nil.
func NewScannerWithFS(calculator checksum.Calculator, fsProvider filesystem.FileSystemProvider) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: fsProvider,
	}
}

// ScanDirectory lists the regular files directly inside sourcePath whose
// name ends with salesetl.SourceFileExtension. Subdirectories are not
// descended into. File content is not read; see ReadFile.
//
// Returns an error when sourcePath is missing, is not a directory, or
// cannot be listed.
func (s *Scanner) ScanDirectory(sourcePath string) (salesetl.FileScanResult, error) {
	info, err := s.fsProvider.Stat(sourcePath)
	if err != nil {
		return salesetl.FileScanResult{}, fmt.Errorf("failed to access source directory: %w", err)
	}
	if !info.IsDir() {
		return salesetl.FileScanResult{}, fmt.Errorf("source path is not a directory: %s", sourcePath)
	}

	entries, err := s.fsProvider.ReadDir(sourcePath)
	if err != nil {
		return salesetl.FileScanResult{}, err
	}

	var files []salesetl.FileMetadata
	for _, entry := range entries {
		if entry.IsDir() || !isSourceFile(entry.Name()) {
			continue
		}
		files = append(files, salesetl.FileMetadata{
			Path:       s.fsProvider.Join(sourcePath, entry.Name()),
			Name:       entry.Name(),
			SizeBytes:  entry.Size(),
			ModifiedAt: entry.ModTime(),
		})
	}

	return salesetl.FileScanResult{Files: files}, nil
}

// ReadFile reads a scanned file's content and fills in its checksums.
func (s *Scanner) ReadFile(file salesetl.FileMetadata) (salesetl.FileMetadata, error) {
	content, err := s.fsProvider.ReadFile(file.Path)
	if err != nil {
		return file, fmt.Errorf("failed to read file: %w", err)
	}

	file.Content = content
	file.SizeBytes = int64(len(content))
	file.Checksum = s.calculator.CalculateNormalized(content)
	file.RawSum = s.calculator.CalculateRaw(content)
	return file, nil
}

// isSourceFile reports whether a filename carries the source extension.
// The match is case-sensitive: "VENTAS.CSV" is not a source file.
func isSourceFile(name string) bool {
	return strings.HasSuffix(name, salesetl.SourceFileExtension)
}

// Verify Scanner implements the interface at compile time
var _ salesetl.FileScanner = (*Scanner)(nil)
