package transform

import (
	"context"
	"fmt"
	"strings"

	"github.com/vvka-141/salesetl/pkg/salesetl"
)

// SchemaError reports required columns missing from a dataset.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset is missing required column(s): %s", strings.Join(e.Missing, ", "))
}

func (e *SchemaError) Unwrap() error {
	return salesetl.ErrSchema
}

// Transformer sanitizes the price and quantity columns of a dataset.
type Transformer struct {
	logger  salesetl.Logger
	columns []string
}

// New creates a Transformer for salesetl.SanitizedColumns.
// Panics if logger is nil.
func New(logger salesetl.Logger) *Transformer {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Transformer{
		logger:  logger,
		columns: append([]string(nil), salesetl.SanitizedColumns...),
	}
}

// Transform returns a copy of ds with the sanitized columns replaced.
// A nil dataset yields (nil, nil); a dataset lacking a required column
// yields a *SchemaError. The input dataset is never modified.
func (t *Transformer) Transform(ctx context.Context, ds *salesetl.Dataset) (*salesetl.Dataset, error) {
	t.logger.Info("Starting transformation phase")
	if ds == nil {
		t.logger.Error("Input dataset is absent; skipping transformation")
		return nil, nil
	}

	if err := t.checkSchema(ds); err != nil {
		t.logger.Error("Transformation aborted: %v", err)
		return nil, err
	}

	out := ds
	for _, column := range t.columns {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("transformation interrupted: %w", err)
		}

		var err error
		out, err = out.MapColumn(column, func(c salesetl.Cell) salesetl.Cell {
			return Sanitize(c).Cell()
		})
		if err != nil {
			return nil, fmt.Errorf("failed to sanitize column %q: %w", column, err)
		}
	}

	t.logger.Info("Price and quantity columns cleaned and converted to numeric (%d rows)", out.Len())
	return out, nil
}

func (t *Transformer) checkSchema(ds *salesetl.Dataset) error {
	var missing []string
	for _, column := range t.columns {
		if !ds.HasColumn(column) {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

var _ salesetl.Transformer = (*Transformer)(nil)
