package csvreader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/vvka-141/salesetl/pkg/salesetl"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// defaultNAValues are the field values read as missing.
var defaultNAValues = []string{
	"", "#N/A", "#N/A N/A", "#NA", "-1.#IND", "-1.#QNAN", "-NaN", "-nan",
	"1.#IND", "1.#QNAN", "<NA>", "N/A", "NA", "NULL", "NaN", "None",
	"n/a", "nan", "null",
}

// Reader parses CSV content into datasets.
// Reader is stateless after construction and safe for concurrent use.
type Reader struct {
	comma     rune
	naValues  map[string]struct{}
	lazyQuote bool
}

// Option configures a Reader.
type Option func(*Reader)

// WithComma sets the field delimiter. Defaults to ','.
func WithComma(r rune) Option {
	return func(rd *Reader) { rd.comma = r }
}

// WithStrictQuotes rejects bare quotes inside unquoted fields.
func WithStrictQuotes() Option {
	return func(rd *Reader) { rd.lazyQuote = false }
}

// NewReader creates a Reader with the default delimiter and missing-value markers.
func NewReader(opts ...Option) *Reader {
	rd := &Reader{
		comma:     ',',
		naValues:  make(map[string]struct{}, len(defaultNAValues)),
		lazyQuote: true,
	}
	for _, v := range defaultNAValues {
		rd.naValues[v] = struct{}{}
	}
	for _, opt := range opts {
		opt(rd)
	}
	return rd
}

// Read parses a scanned file's content.
func (rd *Reader) Read(file salesetl.FileMetadata) (*salesetl.Dataset, error) {
	return rd.Parse(file.Content)
}

// Parse parses CSV content. The first record names the columns.
// Returns salesetl.ErrNoColumns for content without a header, and an
// error naming the line for a record wider than the header.
func (rd *Reader) Parse(content []byte) (*salesetl.Dataset, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(content, utf8BOM)))
	r.Comma = rd.comma
	r.FieldsPerRecord = -1
	r.LazyQuotes = rd.lazyQuote
	r.ReuseRecord = false

	header, err := rd.nextRecord(r)
	if errors.Is(err, io.EOF) {
		return nil, salesetl.ErrNoColumns
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	columns := dedupeColumns(header)

	var records [][]string
	for {
		record, err := rd.nextRecord(r)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) > len(columns) {
			line, _ := r.FieldPos(0)
			return nil, fmt.Errorf("expected %d fields in line %d, saw %d", len(columns), line, len(record))
		}
		records = append(records, record)
	}

	return rd.build(columns, records)
}

// nextRecord returns the next record, skipping lines holding only whitespace.
func (rd *Reader) nextRecord(r *csv.Reader) ([]string, error) {
	for {
		record, err := r.Read()
		if err != nil {
			return nil, err
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}
		return record, nil
	}
}

// build types every column and assembles the dataset.
func (rd *Reader) build(columns []string, records [][]string) (*salesetl.Dataset, error) {
	ds, err := salesetl.NewDataset(columns)
	if err != nil {
		return nil, err
	}

	typed := make([][]salesetl.Cell, len(columns))
	for c := range columns {
		typed[c] = rd.typeColumn(records, c)
	}

	for i := range records {
		row := make(salesetl.Row, len(columns))
		for c := range columns {
			row[c] = typed[c][i]
		}
		if err := ds.Append(row); err != nil {
			return nil, err
		}
	}
	return ds, nil
}

// typeColumn converts column c of every record into cells.
// Short records read as missing in the columns they lack.
func (rd *Reader) typeColumn(records [][]string, c int) []salesetl.Cell {
	cells := make([]salesetl.Cell, len(records))
	numeric := true
	for i, rec := range records {
		if c >= len(rec) || rd.isNA(rec[c]) {
			cells[i] = salesetl.Null()
			continue
		}
		cell, ok := parseNumber(rec[c])
		if !ok {
			numeric = false
			break
		}
		cells[i] = cell
	}
	if numeric {
		return cells
	}

	for i, rec := range records {
		if c >= len(rec) || rd.isNA(rec[c]) {
			cells[i] = salesetl.Null()
			continue
		}
		cells[i] = salesetl.Text(rec[c])
	}
	return cells
}

func (rd *Reader) isNA(field string) bool {
	_, ok := rd.naValues[field]
	return ok
}

// parseNumber parses a decimal integer or float literal.
// Hexadecimal, underscore-separated and non-finite spellings are not numbers.
func parseNumber(field string) (salesetl.Cell, bool) {
	s := strings.TrimSpace(field)
	if s == "" || strings.ContainsAny(s, "xX_pP") {
		return salesetl.Cell{}, false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return salesetl.Integer(i), true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return salesetl.Cell{}, false
	}
	return salesetl.Number(f), true
}

// dedupeColumns names blank headers "Unnamed: <i>" and suffixes repeated
// names with ".1", ".2", ... in order of appearance.
func dedupeColumns(header []string) []string {
	columns := make([]string, len(header))
	used := make(map[string]bool, len(header))
	counts := make(map[string]int, len(header))

	for i, name := range header {
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		candidate := name
		for used[candidate] {
			counts[name]++
			candidate = fmt.Sprintf("%s.%d", name, counts[name])
		}
		used[candidate] = true
		columns[i] = candidate
	}
	return columns
}

var _ salesetl.FileReader = (*Reader)(nil)
