package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/vvka-141/salesetl/pkg/salesetl"
)

// DefaultPingTimeout bounds the connectivity check performed by Open.
const DefaultPingTimeout = 10 * time.Second

// Store is an open connection to a relational store.
type Store struct {
	db       *sql.DB
	location Location
	dialect  dialect
}

// Open connects to the store at location and verifies the connection.
// SQLite and DuckDB files are created if they do not exist; their parent
// directory must.
func Open(ctx context.Context, location string) (*Store, error) {
	loc, err := ParseLocation(location)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(loc.Driver, loc.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s store %s: %w", salesetl.ErrStoreFailed, loc.Kind, loc, err)
	}
	if loc.Kind != KindPostgres {
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, DefaultPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: connect to %s store %s: %w", salesetl.ErrStoreFailed, loc.Kind, loc, err)
	}

	return &Store{db: db, location: loc, dialect: dialects[loc.Kind]}, nil
}

// With opens the store at location, runs fn, and closes the store whatever
// fn does, including panicking. A close failure is reported only when fn
// succeeded.
func With(ctx context.Context, location string, fn func(*Store) error) (err error) {
	s, err := Open(ctx, location)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close store: %w", salesetl.ErrStoreFailed, cerr)
		}
	}()

	return fn(s)
}

// Location returns the parsed location of the store.
func (s *Store) Location() Location {
	return s.location
}

// DB exposes the underlying connection pool.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close releases the connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// ReplaceTable drops table if it exists, recreates it with the columns of
// ds and inserts every row, all in one transaction. On error nothing is
// committed. Returns the number of rows written.
func (s *Store) ReplaceTable(ctx context.Context, table string, ds *salesetl.Dataset) (n int, err error) {
	if table == "" {
		return 0, fmt.Errorf("table name is empty: %w", salesetl.ErrInvalidConfig)
	}
	columns := ds.Columns()
	if len(columns) == 0 {
		return 0, fmt.Errorf("cannot create table %q: %w", table, salesetl.ErrNoColumns)
	}
	types := InferColumnTypes(ds)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, s.fail("begin transaction", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				err = fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, s.dialect.dropTable(table)); err != nil {
		return 0, s.fail(fmt.Sprintf("drop table %q", table), err)
	}
	if _, err = tx.ExecContext(ctx, s.dialect.createTable(table, columns, types)); err != nil {
		return 0, s.fail(fmt.Sprintf("create table %q", table), err)
	}

	stmt, err := tx.PrepareContext(ctx, s.dialect.insert(table, columns))
	if err != nil {
		return 0, s.fail(fmt.Sprintf("prepare insert into %q", table), err)
	}
	defer stmt.Close()

	args := make([]interface{}, len(columns))
	for i := 0; i < ds.Len(); i++ {
		row := ds.Row(i)
		for c := range columns {
			args[c] = bindValue(row[c], types[c])
		}
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			return 0, s.fail(fmt.Sprintf("insert row %d into %q", i+1, table), err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, s.fail("commit", err)
	}
	return ds.Len(), nil
}

// CountRows returns the number of rows in table.
func (s *Store) CountRows(ctx context.Context, table string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+quoteIdent(table)).Scan(&n); err != nil {
		return 0, s.fail(fmt.Sprintf("count rows in %q", table), err)
	}
	return n, nil
}

func (s *Store) fail(op string, err error) error {
	return fmt.Errorf("%w: %s on %s store: %w", salesetl.ErrStoreFailed, op, s.location.Kind, err)
}
