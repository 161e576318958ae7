package salesetl_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vvka-141/salesetl/pkg/salesetl"
)

func TestRunConfig_Validate(t *testing.T) {
	valid := salesetl.RunConfig{
		SourceDir:     "data",
		StoreLocation: "proyecto.db",
		Table:         "ventas_limpias",
	}

	tests := []struct {
		name    string
		mutate  func(c *salesetl.RunConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(*salesetl.RunConfig) {}},
		{name: "missing source", mutate: func(c *salesetl.RunConfig) { c.SourceDir = "" }, wantErr: true},
		{name: "missing store", mutate: func(c *salesetl.RunConfig) { c.StoreLocation = "" }, wantErr: true},
		{name: "missing table", mutate: func(c *salesetl.RunConfig) { c.Table = "" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *salesetl.RunConfig) { c.Timeout = -time.Second }, wantErr: true},
		{name: "dry run needs no store", mutate: func(c *salesetl.RunConfig) {
			c.DryRun = true
			c.StoreLocation = ""
			c.Table = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, salesetl.ErrInvalidConfig))
			assert.Equal(t, salesetl.ExitConfigError, salesetl.ExitCodeForError(err))
		})
	}
}

func TestRunConfig_ValidateReportsEverything(t *testing.T) {
	cfg := salesetl.RunConfig{}
	err := cfg.Validate()
	assert.ErrorContains(t, err, "SourceDir")
	assert.ErrorContains(t, err, "StoreLocation")
	assert.ErrorContains(t, err, "Table")
}
