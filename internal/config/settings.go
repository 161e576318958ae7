package config

import (
	"fmt"
	"os"
	"time"

	"github.com/vvka-141/salesetl/pkg/salesetl"
)

// Environment variables consulted by Resolve.
const (
	EnvSourceDir = "SALESETL_SOURCE_DIR"
	EnvStore     = "SALESETL_STORE"
	EnvTable     = "SALESETL_TABLE"
	EnvLogLevel  = "SALESETL_LOG_LEVEL"
	EnvLogFile   = "SALESETL_LOG_FILE"
)

// Settings is the effective configuration of a run before command-line
// flags are applied.
type Settings struct {
	SourceDir  string
	Store      string
	Table      string
	Timeout    time.Duration
	LogLevel   string
	LogFile    string
	LogConsole bool
}

// Defaults returns the settings used when nothing else is configured.
func Defaults() Settings {
	return Settings{
		SourceDir:  salesetl.DefaultSourceDir,
		Store:      salesetl.DefaultStoreLocation,
		Table:      salesetl.DefaultTableName,
		Timeout:    salesetl.DefaultTimeout,
		LogLevel:   salesetl.DefaultLogLevel,
		LogFile:    salesetl.DefaultLogFile,
		LogConsole: true,
	}
}

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// Resolve layers the environment over the project file over Defaults.
// project may be nil. lookup defaults to os.LookupEnv.
func Resolve(project *ProjectConfig, lookup LookupFunc) (Settings, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	s := Defaults()

	if project != nil {
		setIfNotEmpty(&s.SourceDir, project.SourceDir)
		setIfNotEmpty(&s.Store, project.Store)
		setIfNotEmpty(&s.Table, project.Table)
		setIfNotEmpty(&s.LogLevel, project.Log.Level)
		setIfNotEmpty(&s.LogFile, project.Log.File)
		if project.Log.Console != nil {
			s.LogConsole = *project.Log.Console
		}
		if project.Timeout != "" {
			d, err := time.ParseDuration(project.Timeout)
			if err != nil {
				return Settings{}, fmt.Errorf("invalid timeout %q in %s: %w", project.Timeout, ConfigFileName, salesetl.ErrInvalidConfig)
			}
			s.Timeout = d
		}
	}

	envOverrides := []struct {
		key    string
		target *string
	}{
		{EnvSourceDir, &s.SourceDir},
		{EnvStore, &s.Store},
		{EnvTable, &s.Table},
		{EnvLogLevel, &s.LogLevel},
		{EnvLogFile, &s.LogFile},
	}
	for _, o := range envOverrides {
		if v, ok := lookup(o.key); ok {
			setIfNotEmpty(o.target, v)
		}
	}

	return s, nil
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
