// Package data contains the value and column types handed to the plot
// geometry core by whatever reads and splits the raw input.
package data

import (
	"fmt"
	"math"
	"strconv"
)

// A Value is one cell of an x column: either a number or a label.
// Whether a whole batch of values is treated as labelled is decided
// once per batch (see AnyLabel), not per element.
type Value struct {
	num   float64
	str   string
	label bool
}

// Num returns a numeric Value.
func Num(x float64) Value { return Value{num: x} }

// Label returns a label Value.
func Label(s string) Value { return Value{str: s, label: true} }

// Parse classifies one input cell: cells that parse as a float are
// numeric, everything else is a label.
func Parse(cell string) Value {
	if x, err := strconv.ParseFloat(cell, 64); err == nil {
		return Num(x)
	}
	return Label(cell)
}

// IsLabel reports whether v is a label.
func (v Value) IsLabel() bool { return v.label }

// Float returns the numeric value of v, or NaN for a label.
func (v Value) Float() float64 {
	if v.label {
		return math.NaN()
	}
	return v.num
}

// String returns the display form of v: the label itself, or the
// canonical tick label of the number.
func (v Value) String() string {
	if v.label {
		return v.str
	}
	return strconv.FormatFloat(v.num, 'g', -1, 64)
}

// Nums wraps a numeric column.
func Nums(xs ...float64) []Value {
	vs := make([]Value, len(xs))
	for i, x := range xs {
		vs[i] = Num(x)
	}
	return vs
}

// Labels wraps a column of names.
func Labels(ss ...string) []Value {
	vs := make([]Value, len(ss))
	for i, s := range ss {
		vs[i] = Label(s)
	}
	return vs
}

// AnyLabel reports whether vs contains at least one label and thus
// must be treated as a labelled batch as a whole.
func AnyLabel(vs []Value) bool {
	for _, v := range vs {
		if v.label {
			return true
		}
	}
	return false
}

// ValueError reports a cell that could not be interpreted as a number.
// Index is the zero-based position of the cell in its column.
type ValueError struct {
	Column string
	Index  int
	Value  string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("data: column %s, element %d: %q is not a number",
		e.Column, e.Index, e.Value)
}

// ParseColumn interprets every cell of a numeric column, e.g. bar
// heights or histogram samples. Empty cells are missing values and
// become NaN. The first cell that does not parse is reported as a
// ValueError naming the column; nothing is silently coerced.
func ParseColumn(name string, cells []string) ([]float64, error) {
	vs := make([]float64, len(cells))
	for i, c := range cells {
		if c == "" {
			vs[i] = math.NaN()
			continue
		}
		x, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, &ValueError{Column: name, Index: i, Value: c}
		}
		vs[i] = x
	}
	return vs, nil
}
