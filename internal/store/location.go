package store

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/vvka-141/salesetl/pkg/salesetl"
)

// Kind identifies a store backend.
type Kind int

const (
	KindSQLite Kind = iota
	KindDuckDB
	KindPostgres
)

func (k Kind) String() string {
	switch k {
	case KindSQLite:
		return "sqlite"
	case KindDuckDB:
		return "duckdb"
	case KindPostgres:
		return "postgres"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// SQLite DSN parameters.
const (
	sqliteBusyTimeout = "5000"
	sqliteSynchronous = "NORMAL"
)

const (
	sqlitePrefix = "sqlite:"
	duckdbPrefix = "duckdb:"
	duckdbSuffix = ".duckdb"
)

// Location is a parsed store location.
type Location struct {
	Kind   Kind
	Driver string // database/sql driver name
	DSN    string // driver-specific data source name
	Raw    string // location as given
}

// String returns the location with any password redacted.
func (l Location) String() string {
	if l.Kind == KindPostgres {
		if u, err := url.Parse(l.Raw); err == nil {
			return u.Redacted()
		}
	}
	return l.Raw
}

// ParseLocation maps a store location to a driver and DSN.
// Unknown URL schemes are rejected with salesetl.ErrUnsupportedStore.
func ParseLocation(raw string) (Location, error) {
	loc := strings.TrimSpace(raw)
	if loc == "" {
		return Location{}, fmt.Errorf("store location is empty: %w", salesetl.ErrInvalidConfig)
	}

	switch {
	case strings.HasPrefix(loc, "postgres://"), strings.HasPrefix(loc, "postgresql://"):
		if _, err := url.Parse(loc); err != nil {
			return Location{}, fmt.Errorf("invalid PostgreSQL URL: %w", salesetl.ErrInvalidConfig)
		}
		return Location{Kind: KindPostgres, Driver: "pgx", DSN: loc, Raw: raw}, nil

	case strings.HasPrefix(loc, duckdbPrefix):
		return Location{Kind: KindDuckDB, Driver: "duckdb", DSN: strings.TrimPrefix(loc, duckdbPrefix), Raw: raw}, nil

	case strings.HasPrefix(loc, sqlitePrefix):
		path := strings.TrimPrefix(loc, sqlitePrefix)
		if path == "" {
			return Location{}, fmt.Errorf("sqlite location has no path: %w", salesetl.ErrInvalidConfig)
		}
		return Location{Kind: KindSQLite, Driver: "sqlite3", DSN: buildSQLiteDSN(path), Raw: raw}, nil

	case strings.Contains(loc, "://"):
		scheme := loc[:strings.Index(loc, "://")]
		return Location{}, fmt.Errorf("%w: scheme %q", salesetl.ErrUnsupportedStore, scheme)

	case strings.HasSuffix(loc, duckdbSuffix):
		return Location{Kind: KindDuckDB, Driver: "duckdb", DSN: loc, Raw: raw}, nil

	default:
		return Location{Kind: KindSQLite, Driver: "sqlite3", DSN: buildSQLiteDSN(loc), Raw: raw}, nil
	}
}

// buildSQLiteDSN appends connection parameters to a SQLite file path.
func buildSQLiteDSN(path string) string {
	params := url.Values{}
	params.Set("_busy_timeout", sqliteBusyTimeout)
	params.Set("_synchronous", sqliteSynchronous)
	params.Set("_txlock", "immediate")

	return path + "?" + params.Encode()
}
