// Package csvreader parses delimited tabular files into datasets.
//
// The first record is the header. Columns are typed as a whole: a column
// whose non-missing fields all parse as numbers holds number cells, any
// other column holds text cells. Empty fields and the usual missing-value
// markers ("NA", "N/A", "NaN", "null", ...) become null cells.
package csvreader
