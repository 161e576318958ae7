package store

import (
	"github.com/vvka-141/salesetl/pkg/salesetl"
)

// ColumnType is the storage type chosen for a dataset column.
type ColumnType int

const (
	ColumnText ColumnType = iota
	ColumnInteger
	ColumnReal
)

func (t ColumnType) String() string {
	switch t {
	case ColumnInteger:
		return "integer"
	case ColumnReal:
		return "real"
	default:
		return "text"
	}
}

// InferColumnTypes picks a storage type for every column of ds.
// A column is integer when every non-null cell is an integral number, real
// when every non-null cell is a number, and text otherwise. A column with
// no non-null cells is text.
func InferColumnTypes(ds *salesetl.Dataset) []ColumnType {
	columns := ds.Columns()
	types := make([]ColumnType, len(columns))

	for c := range columns {
		seen, numeric, integral := false, true, true
		for i := 0; i < ds.Len() && numeric; i++ {
			cell := ds.Row(i)[c]
			switch cell.Kind() {
			case salesetl.CellNull:
				continue
			case salesetl.CellNumber:
				seen = true
				if !cell.IsIntegral() {
					integral = false
				}
			default:
				numeric = false
			}
		}

		switch {
		case !seen || !numeric:
			types[c] = ColumnText
		case integral:
			types[c] = ColumnInteger
		default:
			types[c] = ColumnReal
		}
	}
	return types
}

// bindValue converts a cell to the driver value stored in a column of type t.
func bindValue(cell salesetl.Cell, t ColumnType) interface{} {
	if cell.IsNull() {
		return nil
	}
	switch t {
	case ColumnInteger:
		return cell.SQLValue()
	case ColumnReal:
		v, _ := cell.Float()
		return v
	default:
		return cell.String()
	}
}
