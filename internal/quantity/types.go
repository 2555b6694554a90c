// Package quantity is the boundary between arrow-encoded unit and quantity
// values and the in-memory model in package units.
package quantity

import (
	"fmt"

	"github.com/apache/arrow/go/v18/arrow"

	"unitengine/internal/units"
)

// Encoding identifies which unit schema a column or scalar uses.
type Encoding int

const (
	// Rational powers: power is struct<numer: int64, denom: int64>.
	Rational Encoding = iota
	// Integer powers: power is int16.
	Int16
)

var (
	PowerType = arrow.StructOf(
		arrow.Field{Name: "numer", Type: arrow.PrimitiveTypes.Int64},
		arrow.Field{Name: "denom", Type: arrow.PrimitiveTypes.Int64},
	)
	TermType = arrow.StructOf(
		arrow.Field{Name: "name", Type: arrow.BinaryTypes.String},
		arrow.Field{Name: "power", Type: PowerType},
	)
	TermTypeInt16 = arrow.StructOf(
		arrow.Field{Name: "name", Type: arrow.BinaryTypes.String},
		arrow.Field{Name: "power", Type: arrow.PrimitiveTypes.Int16},
	)

	// UnitType is list<struct<name: utf8, power: struct<numer, denom>>>.
	UnitType = arrow.ListOf(TermType)
	// UnitTypeInt16 is list<struct<name: utf8, power: int16>>.
	UnitTypeInt16 = arrow.ListOf(TermTypeInt16)
)

// QuantityType is struct<value: valueType, unit: UnitType>.
func QuantityType(valueType arrow.DataType) *arrow.StructType {
	return arrow.StructOf(
		arrow.Field{Name: "value", Type: valueType, Nullable: true},
		arrow.Field{Name: "unit", Type: UnitType},
	)
}

// CheckValidUnitType accepts either unit encoding.
func CheckValidUnitType(dt arrow.DataType) error {
	_, err := EncodingOf(dt)
	return err
}

// EncodingOf validates dt as a unit type and reports which encoding it uses.
func EncodingOf(dt arrow.DataType) (Encoding, error) {
	list, ok := dt.(*arrow.ListType)
	if !ok {
		return 0, fmt.Errorf("invalid unit type: expected list, got %s: %w", dt, units.ErrSchema)
	}
	st, ok := list.Elem().(*arrow.StructType)
	if !ok {
		return 0, fmt.Errorf("invalid unit type: expected list of struct, got list of %s: %w", list.Elem(), units.ErrSchema)
	}
	if st.NumFields() != 2 {
		return 0, fmt.Errorf("invalid unit type: term struct must have 2 fields, got %d: %w", st.NumFields(), units.ErrSchema)
	}

	name, power := st.Field(0), st.Field(1)
	if name.Name != "name" || name.Type.ID() != arrow.STRING || power.Name != "power" {
		return 0, fmt.Errorf("invalid unit type: expected fields name: utf8 and power, got %s: %w", st, units.ErrSchema)
	}
	switch {
	case power.Type.ID() == arrow.INT16:
		return Int16, nil
	case isPowerStruct(power.Type):
		return Rational, nil
	}
	return 0, fmt.Errorf("invalid unit type: power must be int16 or struct<numer: int64, denom: int64>, got %s: %w",
		power.Type, units.ErrSchema)
}

func isPowerStruct(dt arrow.DataType) bool {
	st, ok := dt.(*arrow.StructType)
	if !ok || st.NumFields() != 2 {
		return false
	}
	numer, denom := st.Field(0), st.Field(1)
	return numer.Name == "numer" && numer.Type.ID() == arrow.INT64 &&
		denom.Name == "denom" && denom.Type.ID() == arrow.INT64
}

// CheckValidQuantityType requires field 0 to be a numeric "value" and
// field 1 to be a "unit" of either unit encoding.
func CheckValidQuantityType(dt arrow.DataType) error {
	st, ok := dt.(*arrow.StructType)
	if !ok {
		return fmt.Errorf("invalid quantity: expected struct, got %s: %w", dt, units.ErrSchema)
	}
	if st.NumFields() != 2 {
		return fmt.Errorf("invalid quantity: expected 2 fields (value, unit), got %d: %w", st.NumFields(), units.ErrSchema)
	}
	value, unit := st.Field(0), st.Field(1)
	if err := CheckValidUnitType(unit.Type); err != nil {
		return fmt.Errorf("invalid quantity unit: %w", err)
	}
	if value.Name != "value" || !IsNumeric(value.Type) || unit.Name != "unit" {
		return fmt.Errorf("invalid quantity: expected fields value: numeric and unit, got %s: %w", st, units.ErrSchema)
	}
	return nil
}

// IsNumeric reports whether dt is an integer or floating point type.
func IsNumeric(dt arrow.DataType) bool {
	switch dt.ID() {
	case arrow.INT8, arrow.INT16, arrow.INT32, arrow.INT64,
		arrow.UINT8, arrow.UINT16, arrow.UINT32, arrow.UINT64,
		arrow.FLOAT32, arrow.FLOAT64:
		return true
	}
	return false
}
