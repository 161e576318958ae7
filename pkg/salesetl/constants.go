package salesetl

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Run completed (including runs that found nothing to load)
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration or store location
	ExitStoreError   = 11 // Store could not be opened or written
	ExitSchemaError  = 12 // Required columns missing from the input
	ExitNoData       = 13 // Nothing was loaded and --strict was given
)

// Column names the transform stage sanitizes into numeric values.
const (
	ColumnUnitPrice = "Unit Selling Price (RMB/kg)"
	ColumnQuantity  = "Quantity Sold (kilo)"
)

// SanitizedColumns lists the columns sanitized by the transform stage, in order.
var SanitizedColumns = []string{ColumnUnitPrice, ColumnQuantity}

const (
	// SourceFileExtension is the suffix a directory entry must carry to be extracted.
	SourceFileExtension = ".csv"

	// DefaultSourceDir is the directory scanned when none is configured.
	DefaultSourceDir = "data"

	// DefaultStoreLocation is the SQLite file written when no store is configured.
	DefaultStoreLocation = "proyecto.db"

	// DefaultTableName is the table replaced on every load.
	DefaultTableName = "ventas_limpias"

	// DefaultLogFile is the file the log stream is duplicated to.
	DefaultLogFile = "proceso_etl.log"

	// DefaultLogLevel is the minimum level written to the log stream.
	DefaultLogLevel = "info"

	// DefaultTimeout bounds a whole run against hangs on a locked or remote store.
	DefaultTimeout = 3 * time.Minute

	// DefaultPreviewRows is the number of rows rendered by a dry run.
	DefaultPreviewRows = 10
)
