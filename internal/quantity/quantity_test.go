package quantity

import (
	"math/big"
	"testing"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/apache/arrow/go/v18/arrow/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unitengine/internal/units"
	"unitengine/internal/units/catalog"
)

func term(name string, num, den int64) units.Term {
	return units.Term{Name: name, Power: big.NewRat(num, den)}
}

func TestScalarRoundTrip(t *testing.T) {
	mem := memory.NewGoAllocator()

	testCases := []struct {
		name  string
		units Units
	}{
		{"single", Of("meter")},
		{"product", NewUnits(term("m", 1, 1), term("s", 2, 1))},
		{"negative", NewUnits(term("kilogram", 1, 1), term("second", -2, 1))},
		{"empty", Units{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.units.ToScalar(mem)
			require.NoError(t, err)
			got, err := FromScalar(s)
			require.NoError(t, err)
			assert.True(t, tc.units.Equal(got), "got %s", got)

			s16, err := tc.units.ToScalarInt16(mem)
			require.NoError(t, err)
			got16, err := FromScalarInt16(s16)
			require.NoError(t, err)
			assert.True(t, tc.units.Equal(got16), "got %s", got16)
		})
	}
}

func TestScalarRoundTripRational(t *testing.T) {
	u := NewUnits(term("meter", 1, 2), term("second", -3, 4))
	s, err := u.ToScalar(memory.NewGoAllocator())
	require.NoError(t, err)

	got, err := FromScalar(s)
	require.NoError(t, err)
	require.Len(t, got.Terms, 2)
	assert.Equal(t, "meter", got.Terms[0].Name)
	assert.Equal(t, "1/2", got.Terms[0].Power.RatString())
	assert.Equal(t, "-3/4", got.Terms[1].Power.RatString())

	_, err = u.ToScalarInt16(memory.NewGoAllocator())
	assert.ErrorIs(t, err, units.ErrSchema)
}

func TestFromScalarRejects(t *testing.T) {
	mem := memory.NewGoAllocator()

	_, err := FromScalar(scalar.NewInt32Scalar(42))
	assert.ErrorIs(t, err, units.ErrSchema)

	_, err = FromScalar(scalar.MakeNullScalar(UnitType))
	assert.ErrorIs(t, err, units.ErrNullUnit)

	_, err = FromScalar(nil)
	assert.ErrorIs(t, err, units.ErrNullUnit)

	// right shape, wrong power encoding
	s16, err := Of("meter").ToScalarInt16(mem)
	require.NoError(t, err)
	_, err = FromScalar(s16)
	assert.ErrorIs(t, err, units.ErrSchema)

	// list of strings
	sb := array.NewStringBuilder(mem)
	sb.Append("meter")
	_, err = FromScalar(scalar.NewListScalar(sb.NewArray()))
	assert.ErrorIs(t, err, units.ErrSchema)
}

func TestFromScalarNullEntry(t *testing.T) {
	mem := memory.NewGoAllocator()
	b := array.NewStructBuilder(mem, TermTypeInt16)
	b.Append(true)
	b.FieldBuilder(0).(*array.StringBuilder).Append("meter")
	b.FieldBuilder(1).(*array.Int16Builder).Append(1)
	b.AppendNull()
	b.FieldBuilder(0).(*array.StringBuilder).AppendNull()
	b.FieldBuilder(1).(*array.Int16Builder).AppendNull()

	got, err := FromScalarInt16(scalar.NewListScalar(b.NewArray()))
	assert.ErrorIs(t, err, units.ErrNullUnit)
	assert.True(t, got.IsEmpty())
}

func TestFromScalarZeroDenominator(t *testing.T) {
	mem := memory.NewGoAllocator()
	b := array.NewStructBuilder(mem, TermType)
	b.Append(true)
	b.FieldBuilder(0).(*array.StringBuilder).Append("meter")
	power := b.FieldBuilder(1).(*array.StructBuilder)
	power.Append(true)
	power.FieldBuilder(0).(*array.Int64Builder).Append(1)
	power.FieldBuilder(1).(*array.Int64Builder).Append(0)

	_, err := FromScalar(scalar.NewListScalar(b.NewArray()))
	assert.ErrorIs(t, err, units.ErrSchema)
}

func TestCheckValidUnitType(t *testing.T) {
	assert.NoError(t, CheckValidUnitType(UnitType))
	assert.NoError(t, CheckValidUnitType(UnitTypeInt16))

	bad := []arrow.DataType{
		arrow.PrimitiveTypes.Int32,
		arrow.ListOf(arrow.BinaryTypes.String),
		arrow.ListOf(arrow.StructOf(arrow.Field{Name: "name", Type: arrow.BinaryTypes.String})),
		arrow.ListOf(arrow.StructOf(
			arrow.Field{Name: "unit", Type: arrow.BinaryTypes.String},
			arrow.Field{Name: "power", Type: arrow.PrimitiveTypes.Int16},
		)),
		arrow.ListOf(arrow.StructOf(
			arrow.Field{Name: "name", Type: arrow.BinaryTypes.String},
			arrow.Field{Name: "power", Type: arrow.PrimitiveTypes.Float64},
		)),
	}
	for _, dt := range bad {
		assert.ErrorIs(t, CheckValidUnitType(dt), units.ErrSchema, dt.String())
	}
}

func TestCheckValidQuantityType(t *testing.T) {
	assert.NoError(t, CheckValidQuantityType(QuantityType(arrow.PrimitiveTypes.Float64)))
	assert.NoError(t, CheckValidQuantityType(QuantityType(arrow.PrimitiveTypes.Int32)))

	testCases := map[string]arrow.DataType{
		"not a struct": arrow.PrimitiveTypes.Float64,
		"missing unit": arrow.StructOf(arrow.Field{Name: "value", Type: arrow.PrimitiveTypes.Float64}),
		"non-numeric value": arrow.StructOf(
			arrow.Field{Name: "value", Type: arrow.BinaryTypes.String},
			arrow.Field{Name: "unit", Type: UnitType},
		),
		"misnamed unit": arrow.StructOf(
			arrow.Field{Name: "value", Type: arrow.PrimitiveTypes.Float64},
			arrow.Field{Name: "units", Type: UnitType},
		),
		"bad unit type": arrow.StructOf(
			arrow.Field{Name: "value", Type: arrow.PrimitiveTypes.Float64},
			arrow.Field{Name: "unit", Type: arrow.BinaryTypes.String},
		),
	}
	for name, dt := range testCases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, CheckValidQuantityType(dt), units.ErrSchema)
		})
	}
}

func TestUnitsAlgebra(t *testing.T) {
	a := NewUnits(term("m", 1, 1), term("s", 2, 1))
	b := NewUnits(term("m", 2, 1), term("s", 3, 1))

	prod := a.Mul(b)
	assert.True(t, prod.Equal(NewUnits(term("m", 3, 1), term("s", 5, 1))), prod.String())

	quot := a.Div(b)
	assert.True(t, quot.Equal(NewUnits(term("m", -1, 1), term("s", -1, 1))), quot.String())

	assert.True(t, a.Div(a).IsEmpty())
	assert.True(t, Of("m").PowInt(2).Sqrt().Equal(Of("m")))
	assert.Equal(t, "m*s^2", a.String())
	assert.Equal(t, "m^(1/2)", Of("m").Sqrt().String())

	// operands are untouched
	assert.Equal(t, "m*s^2", a.String())
	assert.Equal(t, "m^2*s^3", b.String())
}

func TestUnitsKey(t *testing.T) {
	a := NewUnits(term("m", 1, 1), term("s", -1, 1))
	b := NewUnits(term("m", 2, 2), term("s", -1, 1))
	c := NewUnits(term("s", -1, 1), term("m", 1, 1))

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
	assert.False(t, a.Equal(c))
}

func TestResolve(t *testing.T) {
	reg := catalog.New()

	kmh, err := Resolve(reg, NewUnits(term("hour", -1, 1), term("kilometer", 1, 1)))
	require.NoError(t, err)
	assert.Equal(t, "kilometer/hour", kmh.Name())

	f, err := Convert(reg, NewUnits(term("kilometer", 1, 1), term("hour", -1, 1)), NewUnits(term("meter", 1, 1), term("second", -1, 1)))
	require.NoError(t, err)
	assert.InDelta(t, 1000.0/3600.0, f, 1e-12)

	one, err := Resolve(reg, Units{})
	require.NoError(t, err)
	assert.True(t, one.Dimension().IsDimensionless())

	_, err = Resolve(reg, Of("smoot"))
	assert.ErrorIs(t, err, units.ErrNotFound)

	_, err = Resolve(reg, Of("degree_Celsius").PowInt(2))
	assert.ErrorIs(t, err, units.ErrOffsetNotSupported)

	_, err = Convert(reg, Of("degree_Celsius"), Of("kelvin"))
	assert.ErrorIs(t, err, units.ErrOffsetNotSupported)

	_, err = Convert(reg, Of("meter"), Of("second"))
	assert.ErrorIs(t, err, units.ErrDimensionMismatch)
}
