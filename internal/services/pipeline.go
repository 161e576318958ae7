// Package services wires the extract, transform and load stages into a run.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/salesetl/pkg/salesetl"
)

// Pipeline runs the three stages in order.
// Thread-Safety: safe for concurrent Run calls when the injected stages are;
// concurrent runs against the same table replace each other's output.
type Pipeline struct {
	extractor   salesetl.Extractor
	transformer salesetl.Transformer
	loader      salesetl.Loader
	logger      salesetl.Logger

	newRunID func() string
	now      func() time.Time
}

// NewPipeline creates a Pipeline with all dependencies injected.
// Panics on nil dependencies.
func NewPipeline(
	extractor salesetl.Extractor,
	transformer salesetl.Transformer,
	loader salesetl.Loader,
	logger salesetl.Logger,
) *Pipeline {
	if extractor == nil {
		panic("extractor cannot be nil")
	}
	if transformer == nil {
		panic("transformer cannot be nil")
	}
	if loader == nil {
		panic("loader cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}

	return &Pipeline{
		extractor:   extractor,
		transformer: transformer,
		loader:      loader,
		logger:      logger,
		newRunID:    func() string { return uuid.New().String() },
		now:         time.Now,
	}
}

// Run extracts, transforms and (unless cfg.DryRun) loads.
//
// An empty or unreadable source directory is not an error: the stages log
// and decline to act, and the summary reports Loaded == false. Errors come
// from invalid configuration, cancellation, a schema mismatch, or the store.
func (p *Pipeline) Run(ctx context.Context, cfg salesetl.RunConfig) (salesetl.RunSummary, error) {
	if err := cfg.Validate(); err != nil {
		return salesetl.RunSummary{}, err
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	start := p.now()
	summary := salesetl.RunSummary{RunID: p.newRunID()}
	p.logger.Info("ETL run %s started (source: %s, table: %s)", summary.RunID, cfg.SourceDir, cfg.Table)

	raw := p.extractor.Extract(ctx, cfg.SourceDir)
	if raw != nil {
		summary.RowsExtracted = raw.Len()
	}
	if err := ctx.Err(); err != nil {
		summary.Duration = p.now().Sub(start)
		p.logger.Error("ETL run %s interrupted during extraction: %v", summary.RunID, err)
		return summary, fmt.Errorf("extraction interrupted: %w", err)
	}

	clean, err := p.transformer.Transform(ctx, raw)
	if err != nil {
		summary.Duration = p.now().Sub(start)
		p.logger.Error("ETL run %s failed during transformation: %v", summary.RunID, err)
		return summary, err
	}
	summary.Result = clean

	if cfg.DryRun {
		p.logger.Info("Dry run: skipping load into table %q", cfg.Table)
	} else {
		if err := p.loader.Load(ctx, clean, cfg.StoreLocation, cfg.Table); err != nil {
			summary.Duration = p.now().Sub(start)
			p.logger.Error("ETL run %s failed during load: %v", summary.RunID, err)
			return summary, err
		}
		if clean != nil {
			summary.Loaded = true
			summary.RowsLoaded = clean.Len()
		}
	}

	summary.Duration = p.now().Sub(start)
	p.logger.Info("ETL run %s finished in %s (%d rows extracted, %d rows loaded)",
		summary.RunID, summary.Duration.Round(time.Millisecond), summary.RowsExtracted, summary.RowsLoaded)
	return summary, nil
}
