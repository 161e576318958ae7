package salesetl

// FileScanner defines the interface for discovering source files.
// Implementations must be safe for concurrent use by multiple goroutines.
type FileScanner interface {
	// ScanDirectory lists the files directly inside sourcePath whose name
	// ends with SourceFileExtension, in listing order. Content is not read.
	ScanDirectory(sourcePath string) (FileScanResult, error)

	// ReadFile returns file with Content, Checksum and RawSum populated.
	ReadFile(file FileMetadata) (FileMetadata, error)
}

// FileScanResult contains the results of scanning a directory.
type FileScanResult struct {
	Files []FileMetadata
}

// FileReader parses one source file into a dataset.
// Implementations must be safe for concurrent use by multiple goroutines.
type FileReader interface {
	Read(file FileMetadata) (*Dataset, error)
}
