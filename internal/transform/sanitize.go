package transform

import (
	"strconv"
	"strings"

	"github.com/vvka-141/salesetl/pkg/salesetl"
)

// Sanitize reduces a raw cell to a finite number or Absent.
//
// Number cells go through their decimal rendering, so negative numbers lose
// their sign exactly as a textual "-4" would.
func Sanitize(cell salesetl.Cell) salesetl.Value {
	if cell.IsNull() {
		return salesetl.Absent()
	}

	cleaned := keepNumeric(cell.String())
	if cleaned == "" {
		return salesetl.Absent()
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return salesetl.Absent()
	}
	return salesetl.Present(v)
}

// keepNumeric drops every rune that is not an ASCII digit or '.'.
func keepNumeric(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
