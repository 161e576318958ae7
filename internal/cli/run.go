package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/salesetl/internal/checksum"
	"github.com/vvka-141/salesetl/internal/config"
	"github.com/vvka-141/salesetl/internal/extract"
	"github.com/vvka-141/salesetl/internal/files/csvreader"
	"github.com/vvka-141/salesetl/internal/files/scanner"
	"github.com/vvka-141/salesetl/internal/load"
	"github.com/vvka-141/salesetl/internal/logging"
	"github.com/vvka-141/salesetl/internal/services"
	"github.com/vvka-141/salesetl/internal/transform"
	"github.com/vvka-141/salesetl/pkg/salesetl"
)

var runCmd = &cobra.Command{
	Use:   "run [source_dir]",
	Short: "Extract, clean and load the sales files in a directory",
	Long: `Run processes every .csv file in source_dir and replaces the destination table.

The run command:
1. Reads every .csv file in source_dir (files that fail to parse are logged and skipped)
2. Concatenates them into one dataset
3. Cleans "Unit Selling Price (RMB/kg)" and "Quantity Sold (kilo)" into numbers
4. Drops and recreates the destination table with the result

Arguments:
  source_dir    Directory containing the .csv files (default: data)

Store locations:
  proyecto.db                      SQLite file (default)
  ventas.duckdb, duckdb:ventas.db  DuckDB file
  postgres://user@host:5432/db     PostgreSQL

Configuration precedence: flag > environment > salesetl.yaml > default.
Environment variables (also read from .env):
  SALESETL_SOURCE_DIR, SALESETL_STORE, SALESETL_TABLE,
  SALESETL_LOG_LEVEL, SALESETL_LOG_FILE

Examples:
  # Process ./data into proyecto.db
  salesetl run

  # Load into DuckDB
  salesetl run ./ventas --store ventas.duckdb --table ventas_2024

  # Preview the cleaned rows without writing anything
  salesetl run ./ventas --dry-run`,
	Args: OptionalSourceDir,
	RunE: runRun,
}

type runFlagValues struct {
	store, table      string
	logLevel, logFile string
	noConsole         bool
	configDir         string
	separator         string
	timeout           time.Duration
	strict, dryRun    bool
	previewRows       int
}

var runFlags runFlagValues

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.store, "store", "s", "",
		"Store location: file path, duckdb:<path>, or postgres:// URL\n"+
			"Precedence: --store > $SALESETL_STORE > salesetl.yaml > proyecto.db")
	runCmd.Flags().StringVarP(&runFlags.table, "table", "t", "",
		"Destination table, replaced on every run\n"+
			"Precedence: --table > $SALESETL_TABLE > salesetl.yaml > ventas_limpias")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "",
		"Minimum log level: verbose|info|warn|error (default info)")
	runCmd.Flags().StringVar(&runFlags.logFile, "log-file", "",
		"File the log stream is appended to (default proceso_etl.log)")
	runCmd.Flags().BoolVar(&runFlags.noConsole, "no-console", false,
		"Do not write log records to stderr")
	runCmd.Flags().StringVar(&runFlags.configDir, "config-dir", ".",
		"Directory containing salesetl.yaml")
	runCmd.Flags().StringVar(&runFlags.separator, "separator", ",",
		"Field separator of the source files")

	runCmd.Flags().BoolVar(&runFlags.strict, "strict", false,
		"Exit with code 13 when nothing was loaded")
	runCmd.Flags().BoolVar(&runFlags.dryRun, "dry-run", false,
		"Extract and clean, then print a preview instead of loading")
	runCmd.Flags().IntVar(&runFlags.previewRows, "preview-rows", salesetl.DefaultPreviewRows,
		"Rows shown by --dry-run")

	// Catastrophic failure protection, not normal timeout control
	runCmd.Flags().DurationVar(&runFlags.timeout, "timeout", salesetl.DefaultTimeout,
		"Catastrophic failure protection timeout (default 3m)\n"+
			"Prevents indefinite hangs on a locked or unreachable store\n"+
			"Examples: 30s, 5m, 1h30m")

	_ = runCmd.RegisterFlagCompletionFunc("log-level", completeLogLevels)
	_ = runCmd.RegisterFlagCompletionFunc("store", completeStoreLocations)
}

// buildRunSettings layers command-line flags over config.Resolve.
// Extracted for testability.
func buildRunSettings(cmd *cobra.Command, args []string, lookup config.LookupFunc) (config.Settings, error) {
	project, err := config.Load(runFlags.configDir)
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return config.Settings{}, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}

	settings, err := config.Resolve(project, lookup)
	if err != nil {
		return config.Settings{}, err
	}

	if len(args) > 0 && args[0] != "" {
		settings.SourceDir = args[0]
	}
	if runFlags.store != "" {
		settings.Store = runFlags.store
	}
	if runFlags.table != "" {
		settings.Table = runFlags.table
	}
	if runFlags.logLevel != "" {
		settings.LogLevel = runFlags.logLevel
	}
	if runFlags.logFile != "" {
		settings.LogFile = runFlags.logFile
	}
	if runFlags.noConsole {
		settings.LogConsole = false
	}
	if cmd.Flags().Changed("timeout") {
		settings.Timeout = runFlags.timeout
	}
	if settings.Timeout < 0 {
		return config.Settings{}, fmt.Errorf("timeout cannot be negative: %w", salesetl.ErrInvalidConfig)
	}
	if runFlags.previewRows < 0 {
		return config.Settings{}, fmt.Errorf("--preview-rows cannot be negative: %w", salesetl.ErrInvalidConfig)
	}

	return settings, nil
}

// newLogger builds the run logger. --verbose lowers the level to verbose.
func newLogger(settings config.Settings, verbose bool, console io.Writer) (*logging.Logger, error) {
	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, salesetl.ErrInvalidConfig)
	}
	if verbose {
		level = logging.LevelVerbose
	}

	return logging.New(logging.Options{
		Level:         level,
		File:          settings.LogFile,
		Console:       settings.LogConsole,
		ConsoleWriter: console,
	})
}

// newPipeline wires the production stages.
func newPipeline(logger salesetl.Logger) (*services.Pipeline, error) {
	sep := []rune(runFlags.separator)
	if len(sep) != 1 {
		return nil, fmt.Errorf("--separator must be a single character, got %q: %w", runFlags.separator, salesetl.ErrInvalidConfig)
	}
	reader := csvreader.NewReader(csvreader.WithComma(sep[0]))

	return services.NewPipeline(
		extract.New(scanner.NewScanner(checksum.New()), reader, logger),
		transform.New(logger),
		load.New(logger),
		logger,
	), nil
}

func runRun(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()
	verbose := getVerboseFlag(cmd)

	settings, err := buildRunSettings(cmd, args, nil)
	if err != nil {
		return err
	}

	logger, err := newLogger(settings, verbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Close()

	pipeline, err := newPipeline(logger)
	if err != nil {
		return err
	}

	// Setup context with signal handling for graceful shutdown; the timeout
	// is applied by the pipeline
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling run...")
			cancel()
		case <-ctx.Done():
		}
	}()

	summary, err := pipeline.Run(ctx, salesetl.RunConfig{
		SourceDir:     settings.SourceDir,
		StoreLocation: settings.Store,
		Table:         settings.Table,
		DryRun:        runFlags.dryRun,
		Timeout:       settings.Timeout,
	})
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	if runFlags.dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), renderPreview(summary.Result, runFlags.previewRows, terminalWidth()))
		return nil
	}

	if runFlags.strict && !summary.Loaded {
		return fmt.Errorf("no rows loaded from %s: %w", settings.SourceDir, salesetl.ErrNoData)
	}
	return nil
}
