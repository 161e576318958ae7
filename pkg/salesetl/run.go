package salesetl

import (
	"errors"
	"fmt"
	"time"
)

// RunConfig holds the parameters of one ETL run.
type RunConfig struct {
	// SourceDir is the directory scanned for source files
	SourceDir string

	// StoreLocation selects the relational store (file path or URL)
	StoreLocation string

	// Table is the destination table, replaced on every load
	Table string

	// DryRun stops after the transform stage; nothing is written
	DryRun bool

	// Timeout bounds the whole run; zero means no limit
	Timeout time.Duration
}

// Validate checks that the configuration can drive a run.
// All problems are reported together.
func (c *RunConfig) Validate() error {
	var errs []error

	if c.SourceDir == "" {
		errs = append(errs, fmt.Errorf("SourceDir is required: %w", ErrInvalidConfig))
	}

	if !c.DryRun {
		if c.StoreLocation == "" {
			errs = append(errs, fmt.Errorf("StoreLocation is required: %w", ErrInvalidConfig))
		}
		if c.Table == "" {
			errs = append(errs, fmt.Errorf("Table is required: %w", ErrInvalidConfig))
		}
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// RunSummary describes the outcome of a run.
type RunSummary struct {
	RunID         string
	RowsExtracted int
	RowsLoaded    int

	// Loaded is true when the destination table was replaced
	Loaded bool

	// Result is the transformed dataset, nil when nothing was extracted
	Result *Dataset

	Duration time.Duration
}
