package csvreader

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/salesetl/pkg/salesetl"
)

func cellAt(t *testing.T, ds *salesetl.Dataset, row int, column string) salesetl.Cell {
	t.Helper()
	c, ok := ds.Cell(row, column)
	require.True(t, ok, "column %q missing", column)
	return c
}

func TestParse_Basic(t *testing.T) {
	content := "Item Code,Unit Selling Price (RMB/kg),Quantity Sold (kilo)\n" +
		"102900005117056,10.5 RMB,3kg\n" +
		"102900005115960,¥12.50/kg,0.396\n"

	ds, err := NewReader().Parse([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, []string{"Item Code", "Unit Selling Price (RMB/kg)", "Quantity Sold (kilo)"}, ds.Columns())
	require.Equal(t, 2, ds.Len())

	code := cellAt(t, ds, 0, "Item Code")
	assert.True(t, code.IsIntegral())
	assert.Equal(t, int64(102900005117056), code.SQLValue())

	price := cellAt(t, ds, 1, "Unit Selling Price (RMB/kg)")
	assert.Equal(t, salesetl.CellText, price.Kind())
	assert.Equal(t, "¥12.50/kg", price.String())
}

func TestParse_ColumnTyping(t *testing.T) {
	content := "ints,floats,mixed,empty\n" +
		"1,1.5,7,\n" +
		"2,,abc,\n" +
		"3,2e3,8,NA\n"

	ds, err := NewReader().Parse([]byte(content))
	require.NoError(t, err)

	assert.True(t, cellAt(t, ds, 0, "ints").IsIntegral())

	f, ok := cellAt(t, ds, 2, "floats").Float()
	require.True(t, ok)
	assert.Equal(t, 2000.0, f)
	assert.True(t, cellAt(t, ds, 1, "floats").IsNull())

	mixed := cellAt(t, ds, 0, "mixed")
	assert.Equal(t, salesetl.CellText, mixed.Kind(), "a column with any text is text throughout")
	assert.Equal(t, "7", mixed.String())

	for i := 0; i < 3; i++ {
		assert.True(t, cellAt(t, ds, i, "empty").IsNull())
	}
}

func TestParse_MissingMarkers(t *testing.T) {
	content := "v\nNA\nN/A\nnull\nNaN\n<NA>\nok\n"

	ds, err := NewReader().Parse([]byte(content))
	require.NoError(t, err)
	require.Equal(t, 6, ds.Len())

	for i := 0; i < 5; i++ {
		assert.True(t, cellAt(t, ds, i, "v").IsNull(), "row %d", i)
	}
	assert.Equal(t, "ok", cellAt(t, ds, 5, "v").String())
}

func TestParse_NonDecimalSpellingsAreText(t *testing.T) {
	for _, field := range []string{"0x1F", "1_000", "inf", "Infinity"} {
		t.Run(field, func(t *testing.T) {
			ds, err := NewReader().Parse([]byte("v\n" + field + "\n"))
			require.NoError(t, err)
			assert.Equal(t, salesetl.CellText, cellAt(t, ds, 0, "v").Kind())
		})
	}
}

func TestParse_HeaderOnly(t *testing.T) {
	ds, err := NewReader().Parse([]byte("a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, ds.Len())
	assert.Equal(t, []string{"a", "b"}, ds.Columns())
}

func TestParse_EmptyContent(t *testing.T) {
	for _, content := range []string{"", "\n\n", "\xEF\xBB\xBF", "   \n"} {
		_, err := NewReader().Parse([]byte(content))
		assert.True(t, errors.Is(err, salesetl.ErrNoColumns), "content %q: %v", content, err)
	}
}

func TestParse_BOMStripped(t *testing.T) {
	ds, err := NewReader().Parse([]byte("\xEF\xBB\xBFa,b\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ds.Columns())
}

func TestParse_WideRecordFails(t *testing.T) {
	_, err := NewReader().Parse([]byte("a,b\n1,2\n1,2,3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2 fields in line 3, saw 3")
}

func TestParse_ShortRecordPadded(t *testing.T) {
	ds, err := NewReader().Parse([]byte("a,b,c\n1\n"))
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "1", cellAt(t, ds, 0, "a").String())
	assert.True(t, cellAt(t, ds, 0, "b").IsNull())
	assert.True(t, cellAt(t, ds, 0, "c").IsNull())
}

func TestParse_BlankLinesSkipped(t *testing.T) {
	ds, err := NewReader().Parse([]byte("a,b\n\n1,2\n   \n3,4\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Len())
}

func TestParse_CRLF(t *testing.T) {
	ds, err := NewReader().Parse([]byte("a,b\r\nx,y\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "y", cellAt(t, ds, 0, "b").String())
}

func TestParse_QuotedFields(t *testing.T) {
	ds, err := NewReader().Parse([]byte("name,price\n\"Broccoli, fresh\",\"1,200.00\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "Broccoli, fresh", cellAt(t, ds, 0, "name").String())
	assert.Equal(t, "1,200.00", cellAt(t, ds, 0, "price").String())
}

func TestParse_StrictQuotes(t *testing.T) {
	content := []byte("a\nsay \"hi\"\n")

	_, err := NewReader().Parse(content)
	assert.NoError(t, err, "bare quotes are tolerated by default")

	_, err = NewReader(WithStrictQuotes()).Parse(content)
	assert.Error(t, err)
}

func TestParse_Semicolon(t *testing.T) {
	ds, err := NewReader(WithComma(';')).Parse([]byte("a;b\n1;2\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ds.Columns())
}

func TestDedupeColumns(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		want   []string
	}{
		{"unique", []string{"a", "b"}, []string{"a", "b"}},
		{"repeated", []string{"a", "a", "a"}, []string{"a", "a.1", "a.2"}},
		{"collision with suffix", []string{"a", "a.1", "a"}, []string{"a", "a.1", "a.2"}},
		{"blank", []string{"", "b", " "}, []string{"Unnamed: 0", "b", "Unnamed: 2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dedupeColumns(tt.header))
		})
	}
}

func TestRead_UsesFileContent(t *testing.T) {
	ds, err := NewReader().Read(salesetl.FileMetadata{Name: "a.csv", Content: []byte("a\n1\n")})
	require.NoError(t, err)
	assert.Equal(t, 1, ds.Len())
}
