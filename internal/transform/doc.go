// Package transform normalizes the dirty numeric columns of an extracted
// sales dataset.
//
// Only the unit price and quantity columns are touched. Every cell in those
// columns is sanitized: all characters except ASCII digits and '.' are
// removed and what remains is parsed as a decimal number. Anything that
// does not survive that process becomes a null cell:
//
//	"¥12.50/kg" -> 12.5
//	"3kg"       -> 3
//	"kg"        -> null
//	"1.2.3"     -> null
//
// A dataset that lacks either column is rejected with a *SchemaError before
// any cell is examined.
package transform
