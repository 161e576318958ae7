package salesetl

import (
	"math"
	"strconv"
	"time"
)

// CellKind identifies which variant a Cell holds.
type CellKind uint8

const (
	// CellNull is a missing value: an empty field or a recognized NA marker.
	CellNull CellKind = iota
	// CellNumber is a finite numeric value.
	CellNumber
	// CellText is free-form text.
	CellText
)

// String returns the string representation of a CellKind.
func (k CellKind) String() string {
	switch k {
	case CellNull:
		return "null"
	case CellNumber:
		return "number"
	case CellText:
		return "text"
	default:
		return "CellKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Cell is a raw dataset value: null, number, or text.
// The zero Cell is null.
type Cell struct {
	kind     CellKind
	num      float64
	i        int64
	integral bool
	text     string
}

// Null returns a null cell.
func Null() Cell {
	return Cell{}
}

// Number returns a numeric cell holding v.
// Non-finite values have no numeric representation in a store and become null.
func Number(v float64) Cell {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Null()
	}
	return Cell{kind: CellNumber, num: v}
}

// Integer returns a numeric cell read from an integer literal.
// Integer cells let the store keep whole-number columns as INTEGER.
func Integer(v int64) Cell {
	return Cell{kind: CellNumber, num: float64(v), i: v, integral: true}
}

// Text returns a text cell.
func Text(s string) Cell {
	return Cell{kind: CellText, text: s}
}

// Kind returns the variant held by the cell.
func (c Cell) Kind() CellKind { return c.kind }

// IsNull reports whether the cell is null.
func (c Cell) IsNull() bool { return c.kind == CellNull }

// IsIntegral reports whether the cell was read from an integer literal.
func (c Cell) IsIntegral() bool { return c.kind == CellNumber && c.integral }

// Float returns the numeric value and true for number cells.
func (c Cell) Float() (float64, bool) {
	if c.kind != CellNumber {
		return 0, false
	}
	return c.num, true
}

// String returns the textual representation of the cell.
// Null cells render as the empty string; numbers use the shortest
// decimal form that round-trips.
func (c Cell) String() string {
	switch c.kind {
	case CellNumber:
		if c.integral {
			return strconv.FormatInt(c.i, 10)
		}
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	case CellText:
		return c.text
	default:
		return ""
	}
}

// SQLValue returns the value handed to a database/sql driver for this cell.
func (c Cell) SQLValue() interface{} {
	switch c.kind {
	case CellNumber:
		if c.integral {
			return c.i
		}
		return c.num
	case CellText:
		return c.text
	default:
		return nil
	}
}

// Value is a sanitized numeric value: either a finite float64 or absent.
// The zero Value is absent.
type Value struct {
	v       float64
	present bool
}

// Absent returns the absent value.
func Absent() Value {
	return Value{}
}

// Present returns a value holding v. Non-finite input is absent.
func Present(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Absent()
	}
	return Value{v: v, present: true}
}

// Float64 returns the value and whether it is present.
func (v Value) Float64() (float64, bool) { return v.v, v.present }

// IsAbsent reports whether the value is absent.
func (v Value) IsAbsent() bool { return !v.present }

// Cell converts the value back into a dataset cell.
func (v Value) Cell() Cell {
	if !v.present {
		return Null()
	}
	return Number(v.v)
}

// FileMetadata represents a source file discovered by a FileScanner.
type FileMetadata struct {
	Path       string    // Full path as reported by the filesystem provider
	Name       string    // Filename only: "ventas_enero.csv"
	SizeBytes  int64     // File size in bytes
	ModifiedAt time.Time // Last modification time
	Checksum   string    // SHA-256 of normalized content
	RawSum     string    // SHA-256 of the bytes as read
	Content    []byte    // Full unmodified file content
}
