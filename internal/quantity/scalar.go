package quantity

import (
	"fmt"
	"math"
	"math/big"

	"github.com/apache/arrow/go/v18/arrow"
	"github.com/apache/arrow/go/v18/arrow/array"
	"github.com/apache/arrow/go/v18/arrow/memory"
	"github.com/apache/arrow/go/v18/arrow/scalar"

	"unitengine/internal/units"
)

// FromScalar decodes a rational-power unit scalar.
func FromScalar(s scalar.Scalar) (Units, error) {
	return fromScalar(s, Rational)
}

// FromScalarInt16 decodes an integer-power unit scalar.
func FromScalarInt16(s scalar.Scalar) (Units, error) {
	return fromScalar(s, Int16)
}

func fromScalar(s scalar.Scalar, want Encoding) (Units, error) {
	if s == nil || !s.IsValid() {
		return Units{}, fmt.Errorf("unit scalar is null: %w", units.ErrNullUnit)
	}
	l, ok := s.(*scalar.List)
	if !ok {
		return Units{}, fmt.Errorf("expected list of structs, got %s: %w", s.DataType(), units.ErrSchema)
	}
	enc, err := EncodingOf(l.DataType())
	if err != nil {
		return Units{}, err
	}
	if enc != want {
		return Units{}, fmt.Errorf("unit scalar %s has the wrong power encoding: %w", l.DataType(), units.ErrSchema)
	}
	terms, ok := l.Value.(*array.Struct)
	if !ok {
		return Units{}, fmt.Errorf("unit scalar values are %s, not a struct array: %w", l.Value.DataType(), units.ErrSchema)
	}
	return DecodeTerms(terms, enc)
}

// DecodeTerms decodes a struct array of unit terms in the given encoding. It
// fails before building anything if any entry is null.
func DecodeTerms(terms *array.Struct, enc Encoding) (Units, error) {
	if terms.NullN() > 0 {
		return Units{}, fmt.Errorf("unit has %d null entries: %w", terms.NullN(), units.ErrNullUnit)
	}
	names, ok := terms.Field(0).(*array.String)
	if !ok {
		return Units{}, fmt.Errorf("unit names are %s: %w", terms.Field(0).DataType(), units.ErrSchema)
	}
	if names.NullN() > 0 {
		return Units{}, fmt.Errorf("unit has null names: %w", units.ErrNullUnit)
	}

	powers, err := decodePowers(terms.Field(1), enc)
	if err != nil {
		return Units{}, err
	}

	out := make([]units.Term, names.Len())
	for i := range out {
		out[i] = units.Term{Name: names.Value(i), Power: powers[i]}
	}
	return Units{Terms: out}, nil
}

func decodePowers(col arrow.Array, enc Encoding) ([]*big.Rat, error) {
	if col.NullN() > 0 {
		return nil, fmt.Errorf("unit has null powers: %w", units.ErrNullUnit)
	}
	out := make([]*big.Rat, col.Len())

	if enc == Int16 {
		ints, ok := col.(*array.Int16)
		if !ok {
			return nil, fmt.Errorf("unit powers are %s, want int16: %w", col.DataType(), units.ErrSchema)
		}
		for i := range out {
			out[i] = big.NewRat(int64(ints.Value(i)), 1)
		}
		return out, nil
	}

	st, ok := col.(*array.Struct)
	if !ok {
		return nil, fmt.Errorf("unit powers are %s, want struct: %w", col.DataType(), units.ErrSchema)
	}
	numer, ok1 := st.Field(0).(*array.Int64)
	denom, ok2 := st.Field(1).(*array.Int64)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("unit powers are %s, want struct<numer: int64, denom: int64>: %w", st.DataType(), units.ErrSchema)
	}
	if numer.NullN() > 0 || denom.NullN() > 0 {
		return nil, fmt.Errorf("unit has null power components: %w", units.ErrNullUnit)
	}
	for i := range out {
		d := denom.Value(i)
		if d == 0 {
			return nil, fmt.Errorf("unit power %d/0: %w", numer.Value(i), units.ErrSchema)
		}
		out[i] = big.NewRat(numer.Value(i), d)
	}
	return out, nil
}

// ToScalar encodes u with rational powers. The returned scalar owns the
// underlying array.
func (u Units) ToScalar(mem memory.Allocator) (*scalar.List, error) {
	arr, err := u.termsArray(mem, Rational)
	if err != nil {
		return nil, err
	}
	return scalar.NewListScalar(arr), nil
}

// ToScalarInt16 encodes u with int16 powers. Fractional powers or powers
// outside the int16 range fail with ErrSchema.
func (u Units) ToScalarInt16(mem memory.Allocator) (*scalar.List, error) {
	arr, err := u.termsArray(mem, Int16)
	if err != nil {
		return nil, err
	}
	return scalar.NewListScalar(arr), nil
}

func (u Units) termsArray(mem memory.Allocator, enc Encoding) (*array.Struct, error) {
	typ := TermType
	if enc == Int16 {
		typ = TermTypeInt16
	}
	b := array.NewStructBuilder(mem, typ)
	defer b.Release()
	if err := u.AppendTo(b, enc); err != nil {
		return nil, err
	}
	return b.NewStructArray(), nil
}

// AppendTo writes u's terms into a term struct builder, such as the value
// builder of a unit list column. Powers are checked before anything is
// appended, so a failure leaves b untouched.
func (u Units) AppendTo(b *array.StructBuilder, enc Encoding) error {
	for _, t := range u.Terms {
		if err := checkPower(t, enc); err != nil {
			return err
		}
	}

	names := b.FieldBuilder(0).(*array.StringBuilder)
	for _, t := range u.Terms {
		b.Append(true)
		names.Append(t.Name)
		if enc == Int16 {
			b.FieldBuilder(1).(*array.Int16Builder).Append(int16(t.Power.Num().Int64()))
			continue
		}
		power := b.FieldBuilder(1).(*array.StructBuilder)
		power.Append(true)
		power.FieldBuilder(0).(*array.Int64Builder).Append(t.Power.Num().Int64())
		power.FieldBuilder(1).(*array.Int64Builder).Append(t.Power.Denom().Int64())
	}
	return nil
}

func checkPower(t units.Term, enc Encoding) error {
	if !t.Power.Num().IsInt64() || !t.Power.Denom().IsInt64() {
		return fmt.Errorf("unit %q power %s overflows int64: %w", t.Name, t.Power.RatString(), units.ErrSchema)
	}
	if enc != Int16 {
		return nil
	}
	if !t.Power.IsInt() {
		return fmt.Errorf("unit %q power %s is not an integer: %w", t.Name, t.Power.RatString(), units.ErrSchema)
	}
	if n := t.Power.Num().Int64(); n < math.MinInt16 || n > math.MaxInt16 {
		return fmt.Errorf("unit %q power %d overflows int16: %w", t.Name, n, units.ErrSchema)
	}
	return nil
}
