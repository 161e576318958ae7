package salesetl_test

import (
	"math"
	"testing"

	"github.com/vvka-141/salesetl/pkg/salesetl"
)

func TestCell_Variants(t *testing.T) {
	tests := []struct {
		name     string
		cell     salesetl.Cell
		kind     salesetl.CellKind
		str      string
		sqlValue interface{}
	}{
		{"zero value", salesetl.Cell{}, salesetl.CellNull, "", nil},
		{"null", salesetl.Null(), salesetl.CellNull, "", nil},
		{"float", salesetl.Number(12.5), salesetl.CellNumber, "12.5", 12.5},
		{"integer", salesetl.Integer(7), salesetl.CellNumber, "7", int64(7)},
		{"text", salesetl.Text("¥12.50/kg"), salesetl.CellText, "¥12.50/kg", "¥12.50/kg"},
		{"NaN becomes null", salesetl.Number(math.NaN()), salesetl.CellNull, "", nil},
		{"Inf becomes null", salesetl.Number(math.Inf(1)), salesetl.CellNull, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
			if got := tt.cell.String(); got != tt.str {
				t.Errorf("String() = %q, want %q", got, tt.str)
			}
			if got := tt.cell.SQLValue(); got != tt.sqlValue {
				t.Errorf("SQLValue() = %#v, want %#v", got, tt.sqlValue)
			}
		})
	}
}

func TestCell_IsIntegral(t *testing.T) {
	if !salesetl.Integer(3).IsIntegral() {
		t.Error("Integer(3) should be integral")
	}
	if salesetl.Number(3).IsIntegral() {
		t.Error("Number(3) should not be integral")
	}
	if salesetl.Text("3").IsIntegral() {
		t.Error("Text should never be integral")
	}
}

func TestValue(t *testing.T) {
	v := salesetl.Present(10.5)
	got, ok := v.Float64()
	if !ok || got != 10.5 {
		t.Errorf("Present(10.5).Float64() = (%v, %v)", got, ok)
	}
	if c := v.Cell(); c.Kind() != salesetl.CellNumber {
		t.Errorf("Present(10.5).Cell().Kind() = %v", c.Kind())
	}

	if !salesetl.Absent().IsAbsent() {
		t.Error("Absent() should be absent")
	}
	if !(salesetl.Value{}).IsAbsent() {
		t.Error("zero Value should be absent")
	}
	if !salesetl.Present(math.Inf(-1)).IsAbsent() {
		t.Error("Present(-Inf) should be absent")
	}
	if !salesetl.Absent().Cell().IsNull() {
		t.Error("Absent().Cell() should be null")
	}
}
