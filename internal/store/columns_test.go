package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/salesetl/pkg/salesetl"
)

func TestInferColumnTypes(t *testing.T) {
	ds, err := salesetl.NewDataset([]string{"code", "price", "mixed", "label", "empty", "sparse"})
	require.NoError(t, err)

	rows := []salesetl.Row{
		{salesetl.Integer(1), salesetl.Number(1.5), salesetl.Integer(3), salesetl.Text("a"), salesetl.Null(), salesetl.Null()},
		{salesetl.Integer(2), salesetl.Integer(2), salesetl.Text("x"), salesetl.Text("b"), salesetl.Null(), salesetl.Integer(7)},
		{salesetl.Null(), salesetl.Null(), salesetl.Null(), salesetl.Null(), salesetl.Null(), salesetl.Null()},
	}
	for _, r := range rows {
		require.NoError(t, ds.Append(r))
	}

	assert.Equal(t, []ColumnType{
		ColumnInteger,
		ColumnReal,
		ColumnText,
		ColumnText,
		ColumnText,
		ColumnInteger,
	}, InferColumnTypes(ds))
}

func TestInferColumnTypes_SanitizedColumns(t *testing.T) {
	ds, err := salesetl.NewDataset([]string{salesetl.ColumnUnitPrice, salesetl.ColumnQuantity})
	require.NoError(t, err)

	// Sanitized values are never integral; a column where every value is
	// Absent carries no type information and falls back to text.
	rows := []salesetl.Row{
		{salesetl.Present(4).Cell(), salesetl.Absent().Cell()},
		{salesetl.Absent().Cell(), salesetl.Absent().Cell()},
	}
	for _, r := range rows {
		require.NoError(t, ds.Append(r))
	}

	assert.Equal(t, []ColumnType{ColumnReal, ColumnText}, InferColumnTypes(ds))
}

func TestInferColumnTypes_NoRows(t *testing.T) {
	ds, err := salesetl.NewDataset([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []ColumnType{ColumnText, ColumnText}, InferColumnTypes(ds))
}

func TestBindValue(t *testing.T) {
	assert.Nil(t, bindValue(salesetl.Null(), ColumnInteger))
	assert.Nil(t, bindValue(salesetl.Null(), ColumnText))
	assert.Equal(t, int64(42), bindValue(salesetl.Integer(42), ColumnInteger))
	assert.Equal(t, 42.0, bindValue(salesetl.Integer(42), ColumnReal))
	assert.Equal(t, 0.25, bindValue(salesetl.Number(0.25), ColumnReal))
	assert.Equal(t, "42", bindValue(salesetl.Integer(42), ColumnText))
	assert.Equal(t, "kg", bindValue(salesetl.Text("kg"), ColumnText))
}

func TestDialect_Statements(t *testing.T) {
	sqlite := dialects[KindSQLite]
	pg := dialects[KindPostgres]
	cols := []string{"Unit Selling Price (RMB/kg)", `odd"name`}

	assert.Equal(t, `DROP TABLE IF EXISTS "ventas_limpias"`, sqlite.dropTable("ventas_limpias"))
	assert.Equal(t,
		`CREATE TABLE "t" ("Unit Selling Price (RMB/kg)" REAL, "odd""name" TEXT)`,
		sqlite.createTable("t", cols, []ColumnType{ColumnReal, ColumnText}))
	assert.Equal(t,
		`CREATE TABLE "t" ("Unit Selling Price (RMB/kg)" DOUBLE PRECISION, "odd""name" TEXT)`,
		pg.createTable("t", cols, []ColumnType{ColumnReal, ColumnText}))
	assert.Equal(t,
		`INSERT INTO "t" ("Unit Selling Price (RMB/kg)", "odd""name") VALUES (?, ?)`,
		sqlite.insert("t", cols))
	assert.Equal(t,
		`INSERT INTO "t" ("Unit Selling Price (RMB/kg)", "odd""name") VALUES ($1, $2)`,
		pg.insert("t", cols))
}
