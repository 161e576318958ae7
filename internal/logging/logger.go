package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// TimeFormat is the timestamp layout written in front of every record.
const TimeFormat = "2006-01-02 15:04:05,000"

// Options configures the destinations and level of a Logger.
type Options struct {
	// Level is the minimum severity written to every sink.
	Level Level

	// File is the path of the log file. Records are appended. Empty disables the file sink.
	File string

	// Console enables the console sink.
	Console bool

	// ConsoleWriter overrides the console destination. Defaults to os.Stderr.
	ConsoleWriter io.Writer
}

// Logger writes leveled, timestamped records to every configured sink.
// Safe for concurrent use by multiple goroutines.
type Logger struct {
	sinks []*log.Logger
	file  *os.File
}

// New creates a Logger from options, opening the log file if one is configured.
// The caller must Close the logger to release the file.
func New(opts Options) (*Logger, error) {
	var writers []io.Writer
	var file *os.File

	if opts.File != "" {
		if dir := filepath.Dir(opts.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		file = f
		writers = append(writers, f)
	}

	if opts.Console {
		w := opts.ConsoleWriter
		if w == nil {
			w = os.Stderr
		}
		writers = append(writers, w)
	}

	l := NewWithWriters(opts.Level, writers...)
	l.file = file
	return l, nil
}

// NewWithWriters creates a Logger writing to the given writers.
// Colors are only emitted for writers that are terminals.
func NewWithWriters(level Level, writers ...io.Writer) *Logger {
	l := &Logger{}
	for _, w := range writers {
		sink := log.NewWithOptions(w, log.Options{
			Level:           level.charm(),
			ReportTimestamp: true,
			TimeFormat:      TimeFormat,
		})
		sink.SetStyles(levelStyles())
		l.sinks = append(l.sinks, sink)
	}
	return l
}

// levelStyles labels records with the level names operators grep for.
func levelStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().SetString("VERBOSE").Foreground(lipgloss.Color("245"))
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().SetString("INFO").Foreground(lipgloss.Color("39"))
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().SetString("WARNING").Foreground(lipgloss.Color("214"))
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().SetString("ERROR").Foreground(lipgloss.Color("196")).Bold(true)
	return styles
}

// Verbose logs detailed diagnostic information if the level allows it.
func (l *Logger) Verbose(format string, args ...interface{}) {
	for _, s := range l.sinks {
		s.Debugf(format, args...)
	}
}

// Info logs informational messages about normal operations.
func (l *Logger) Info(format string, args ...interface{}) {
	for _, s := range l.sinks {
		s.Infof(format, args...)
	}
}

// Warn logs warnings.
func (l *Logger) Warn(format string, args ...interface{}) {
	for _, s := range l.sinks {
		s.Warnf(format, args...)
	}
}

// Error logs error messages.
func (l *Logger) Error(format string, args ...interface{}) {
	for _, s := range l.sinks {
		s.Errorf(format, args...)
	}
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
