package salesetl

import "context"

// Extractor reads every source file in a directory into one dataset.
// A nil result means nothing could be extracted; the reasons are logged.
type Extractor interface {
	Extract(ctx context.Context, sourceDir string) *Dataset
}

// Transformer sanitizes the numeric columns of a dataset.
// A nil input yields a nil result and no error.
type Transformer interface {
	Transform(ctx context.Context, ds *Dataset) (*Dataset, error)
}

// Loader replaces a table in a relational store with the rows of a dataset.
// A nil dataset is logged and leaves the store untouched.
type Loader interface {
	Load(ctx context.Context, ds *Dataset, location, table string) error
}
