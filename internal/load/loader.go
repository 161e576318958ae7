// Package load writes a transformed dataset into its destination table.
package load

import (
	"context"

	"github.com/vvka-141/salesetl/internal/store"
	"github.com/vvka-141/salesetl/pkg/salesetl"
)

// Loader replaces a table with the contents of a dataset.
type Loader struct {
	logger salesetl.Logger
}

// New creates a Loader.
// Panics if logger is nil.
func New(logger salesetl.Logger) *Loader {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Loader{logger: logger}
}

// Load replaces table at location with ds. A nil dataset is logged and
// ignored without touching the store. Store failures are logged and
// returned wrapped in salesetl.ErrStoreFailed; the connection is always
// released.
func (l *Loader) Load(ctx context.Context, ds *salesetl.Dataset, location, table string) error {
	display := location
	if loc, err := store.ParseLocation(location); err == nil {
		display = loc.String()
	}
	l.logger.Info("Starting load into table %q at %s", table, display)

	if ds == nil {
		l.logger.Error("Input dataset is absent; nothing to load")
		return nil
	}

	err := store.With(ctx, location, func(s *store.Store) error {
		l.logger.Verbose("Connected to %s store", s.Location().Kind)

		n, err := s.ReplaceTable(ctx, table, ds)
		if err != nil {
			return err
		}
		l.logger.Info("Load complete: %d rows written to table %q", n, table)
		return nil
	})
	if err != nil {
		l.logger.Error("Store error while loading data: %v", err)
		return err
	}
	return nil
}

var _ salesetl.Loader = (*Loader)(nil)
