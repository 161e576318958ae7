package store

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// dialect holds the SQL differences between backends.
type dialect struct {
	types       map[ColumnType]string
	placeholder func(n int) string
}

var dialects = map[Kind]dialect{
	KindSQLite: {
		types:       map[ColumnType]string{ColumnInteger: "INTEGER", ColumnReal: "REAL", ColumnText: "TEXT"},
		placeholder: questionMark,
	},
	KindDuckDB: {
		types:       map[ColumnType]string{ColumnInteger: "BIGINT", ColumnReal: "DOUBLE", ColumnText: "VARCHAR"},
		placeholder: questionMark,
	},
	KindPostgres: {
		types:       map[ColumnType]string{ColumnInteger: "BIGINT", ColumnReal: "DOUBLE PRECISION", ColumnText: "TEXT"},
		placeholder: func(n int) string { return fmt.Sprintf("$%d", n) },
	},
}

func questionMark(int) string { return "?" }

// quoteIdent quotes a table or column name. Names are used verbatim,
// including spaces and punctuation.
func quoteIdent(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func (d dialect) dropTable(table string) string {
	return "DROP TABLE IF EXISTS " + quoteIdent(table)
}

func (d dialect) createTable(table string, columns []string, types []ColumnType) string {
	defs := make([]string, len(columns))
	for i, c := range columns {
		defs[i] = quoteIdent(c) + " " + d.types[types[i]]
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(table), strings.Join(defs, ", "))
}

func (d dialect) insert(table string, columns []string) string {
	names := make([]string, len(columns))
	params := make([]string, len(columns))
	for i, c := range columns {
		names[i] = quoteIdent(c)
		params[i] = d.placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(names, ", "), strings.Join(params, ", "))
}
