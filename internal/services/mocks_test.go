package services

import (
	"context"

	"github.com/vvka-141/salesetl/pkg/salesetl"
)

type mockExtractor struct {
	result *salesetl.Dataset
	dirs   []string
	during func() // runs inside Extract, e.g. to cancel the run
}

func (m *mockExtractor) Extract(_ context.Context, sourceDir string) *salesetl.Dataset {
	m.dirs = append(m.dirs, sourceDir)
	if m.during != nil {
		m.during()
	}
	return m.result
}

type mockTransformer struct {
	result *salesetl.Dataset
	err    error
	inputs []*salesetl.Dataset
}

func (m *mockTransformer) Transform(_ context.Context, ds *salesetl.Dataset) (*salesetl.Dataset, error) {
	m.inputs = append(m.inputs, ds)
	return m.result, m.err
}

type loadCall struct {
	ds       *salesetl.Dataset
	location string
	table    string
	deadline bool
}

type mockLoader struct {
	err   error
	calls []loadCall
}

func (m *mockLoader) Load(ctx context.Context, ds *salesetl.Dataset, location, table string) error {
	_, hasDeadline := ctx.Deadline()
	m.calls = append(m.calls, loadCall{ds: ds, location: location, table: table, deadline: hasDeadline})
	return m.err
}
