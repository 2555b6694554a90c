package engine

import (
	"fmt"
	"math"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"golang.org/x/exp/constraints"

	"unitengine/internal/quantity"
	"unitengine/internal/units"
)

// FromArrow reads a quantity struct array into a column. Every non-null row
// must carry the same unit. Null rows and null values become NaN.
func FromArrow(name string, arr *array.Struct) (*Column, error) {
	if err := quantity.CheckValidQuantityType(arr.DataType()); err != nil {
		return nil, fmt.Errorf("column %q: %w", name, err)
	}
	st := arr.DataType().(*arrow.StructType)
	enc, err := quantity.EncodingOf(st.Field(1).Type)
	if err != nil {
		return nil, err
	}

	unitList := arr.Field(1).(*array.List)
	var (
		unit quantity.Units
		key  string
		seen bool
	)
	for i := 0; i < arr.Len(); i++ {
		if arr.IsNull(i) {
			continue
		}
		if unitList.IsNull(i) {
			return nil, fmt.Errorf("column %q row %d: %w", name, i, units.ErrNullUnit)
		}
		u, err := rowUnits(unitList, i, enc)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", name, i, err)
		}
		if !seen {
			unit, key, seen = u, u.Key(), true
			continue
		}
		if u.Key() != key {
			return nil, fmt.Errorf("%w: column %q has %s and %s", ErrMixedUnits, name, unit, u)
		}
	}

	out := make([]float64, arr.Len())
	if err := widenColumn(arr.Field(0), out); err != nil {
		return nil, fmt.Errorf("column %q: %w", name, err)
	}
	for i := range out {
		if arr.IsNull(i) {
			out[i] = math.NaN()
		}
	}
	return &Column{Name: name, Values: out, Unit: unit}, nil
}

func rowUnits(list *array.List, i int, enc quantity.Encoding) (quantity.Units, error) {
	start, end := list.ValueOffsets(i)
	terms := array.NewSlice(list.ListValues(), start, end)
	defer terms.Release()
	st, ok := terms.(*array.Struct)
	if !ok {
		return quantity.Units{}, fmt.Errorf("unit terms are %s: %w", terms.DataType(), units.ErrSchema)
	}
	return quantity.DecodeTerms(st, enc)
}

func widenColumn(values arrow.Array, out []float64) error {
	switch v := values.(type) {
	case *array.Int8:
		widen(v.Int8Values(), v, out)
	case *array.Int16:
		widen(v.Int16Values(), v, out)
	case *array.Int32:
		widen(v.Int32Values(), v, out)
	case *array.Int64:
		widen(v.Int64Values(), v, out)
	case *array.Uint8:
		widen(v.Uint8Values(), v, out)
	case *array.Uint16:
		widen(v.Uint16Values(), v, out)
	case *array.Uint32:
		widen(v.Uint32Values(), v, out)
	case *array.Uint64:
		widen(v.Uint64Values(), v, out)
	case *array.Float32:
		widen(v.Float32Values(), v, out)
	case *array.Float64:
		widen(v.Float64Values(), v, out)
	default:
		return fmt.Errorf("values are %s, not numeric: %w", values.DataType(), units.ErrSchema)
	}
	return nil
}

func widen[T constraints.Integer | constraints.Float](vals []T, arr arrow.Array, out []float64) {
	for i, v := range vals {
		if arr.IsNull(i) {
			out[i] = math.NaN()
			continue
		}
		out[i] = float64(v)
	}
}

// ToArrow encodes c as struct<value: float64, unit: UnitType>. NaN values
// are written as nulls.
func (c *Column) ToArrow(mem memory.Allocator) (*array.Struct, error) {
	b := array.NewStructBuilder(mem, quantity.QuantityType(arrow.PrimitiveTypes.Float64))
	defer b.Release()

	values := b.FieldBuilder(0).(*array.Float64Builder)
	unitList := b.FieldBuilder(1).(*array.ListBuilder)
	terms := unitList.ValueBuilder().(*array.StructBuilder)
	for _, v := range c.Values {
		b.Append(true)
		if math.IsNaN(v) {
			values.AppendNull()
		} else {
			values.Append(v)
		}
		unitList.Append(true)
		if err := c.Unit.AppendTo(terms, quantity.Rational); err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name, err)
		}
	}
	return b.NewStructArray(), nil
}
