package units

import (
	"fmt"
	"math"
	"math/big"
)

// Unit is a named unit plus an optional link to the unit it scales to.
// A Unit without a conversion is a base unit for its dimension. The
// Conversion -> Unit -> Conversion chain is an owned tree, never a cycle.
type Unit struct {
	Simple     SimpleUnit
	Conversion *Conversion
}

// Dimensionless is the identity for Mul: empty name, no terms, no conversion.
func Dimensionless() Unit {
	return Unit{}
}

func NewBaseUnit(name string, dim Dimension) Unit {
	return Unit{Simple: NewSimpleUnit(name, dim)}
}

// NewDerivedUnit defines name as factor times base. The dimension must match
// the base unit's.
func NewDerivedUnit(name string, dim Dimension, factor float64, base Unit) (Unit, error) {
	if err := validFactor(factor); err != nil {
		return Unit{}, fmt.Errorf("unit %q: %w", name, err)
	}
	if !dim.Equal(base.Dimension()) {
		return Unit{}, fmt.Errorf("unit %q: %w: %s vs base %q %s",
			name, ErrDimensionMismatch, dim, base.Name(), base.Dimension())
	}
	return Unit{
		Simple:     NewSimpleUnit(name, dim),
		Conversion: &Conversion{Factor: factor, Base: base},
	}, nil
}

// NewOffsetUnit defines an affine unit (value*factor + offset). It can be
// registered and looked up, but any conversion through it fails with
// ErrOffsetNotSupported.
func NewOffsetUnit(name string, dim Dimension, factor, offset float64, base Unit) (Unit, error) {
	u, err := NewDerivedUnit(name, dim, factor, base)
	if err != nil {
		return Unit{}, err
	}
	u.Conversion.Offset = &offset
	return u, nil
}

func (u Unit) Name() string {
	return u.Simple.Name
}

func (u Unit) Dimension() Dimension {
	return u.Simple.Dimension
}

func (u Unit) IsBase() bool {
	return u.Conversion == nil
}

// HasOffset reports whether any link in the conversion chain has an offset.
func (u Unit) HasOffset() bool {
	for c := u.Conversion; c != nil; c = c.Base.Conversion {
		if c.Offset != nil {
			return true
		}
	}
	return false
}

// WithName renames the unit and keeps its conversion.
func (u Unit) WithName(name string) Unit {
	u.Simple.Name = name
	return u
}

// Equal is structural equality, recursing into the conversion chain.
func (u Unit) Equal(other Unit) bool {
	return u.Simple.Equal(other.Simple) && u.Conversion.equal(other.Conversion)
}

func (u Unit) String() string {
	if u.Simple.Name == "" {
		return "dimensionless"
	}
	return u.Simple.Name
}

// Mul multiplies two units. Conversions combine as:
//
//	both:      factor c1*c2, base c1.base * c2.base
//	left only: factor c1,    base c1.base * right
//	right only:factor c2,    base left * c2.base
//	neither:   no conversion
func (u Unit) Mul(other Unit) Unit {
	rejectOffsets("mul", u, other)
	simple := u.Simple.Mul(other.Simple)

	var conv *Conversion
	switch c1, c2 := u.Conversion, other.Conversion; {
	case c1 != nil && c2 != nil:
		conv = &Conversion{Factor: c1.Factor * c2.Factor, Base: c1.Base.Mul(c2.Base)}
	case c1 != nil:
		conv = &Conversion{Factor: c1.Factor, Base: c1.Base.Mul(other)}
	case c2 != nil:
		conv = &Conversion{Factor: c2.Factor, Base: u.Mul(c2.Base)}
	}
	return compose("mul", simple, conv)
}

// Div mirrors Mul: dividing by a scaled unit multiplies by its inverse factor.
func (u Unit) Div(other Unit) Unit {
	rejectOffsets("div", u, other)
	simple := u.Simple.Div(other.Simple)

	var conv *Conversion
	switch c1, c2 := u.Conversion, other.Conversion; {
	case c1 != nil && c2 != nil:
		conv = &Conversion{Factor: c1.Factor / c2.Factor, Base: c1.Base.Div(c2.Base)}
	case c1 != nil:
		conv = &Conversion{Factor: c1.Factor, Base: c1.Base.Div(other)}
	case c2 != nil:
		conv = &Conversion{Factor: 1.0 / c2.Factor, Base: u.Div(c2.Base)}
	}
	return compose("div", simple, conv)
}

func (u Unit) PowInt(n int64) Unit {
	rejectOffsets("pow", u)
	simple := u.Simple.PowInt(n)
	var conv *Conversion
	if c := u.Conversion; c != nil {
		conv = &Conversion{Factor: powInt(c.Factor, n), Base: c.Base.PowInt(n)}
	}
	return compose("pow", simple, conv)
}

// Pow raises the unit to a rational power, e.g. 1/2 for a square root. The
// factor goes through math.Pow, so it is exact only for integer powers.
func (u Unit) Pow(n *big.Rat) Unit {
	if n.IsInt() && n.Num().IsInt64() {
		return u.PowInt(n.Num().Int64())
	}
	rejectOffsets("pow", u)
	simple := u.Simple.Pow(n)
	var conv *Conversion
	if c := u.Conversion; c != nil {
		exp, _ := n.Float64()
		conv = &Conversion{Factor: math.Pow(c.Factor, exp), Base: c.Base.Pow(n)}
	}
	return compose("pow", simple, conv)
}

func compose(op string, simple SimpleUnit, conv *Conversion) Unit {
	simple = simple.Simplify()
	if conv != nil && !simple.Dimension.Equal(conv.Base.Dimension()) {
		invariant(op, ErrInvariant, "unit %q has dimension %s but its base %q has %s",
			simple.Name, simple.Dimension, conv.Base.Name(), conv.Base.Dimension())
	}
	return Unit{Simple: simple, Conversion: conv}
}

func rejectOffsets(op string, operands ...Unit) {
	for _, u := range operands {
		if u.HasOffset() {
			invariant(op, ErrOffsetNotSupported, "unit %q has an offset conversion", u.Name())
		}
	}
}

// powInt keeps integer powers exact where float multiplication allows it
// (1000^2 == 1e6 exactly).
func powInt(f float64, n int64) float64 {
	if n < 0 {
		return 1 / powInt(f, -n)
	}
	result := 1.0
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result *= f
		}
		f *= f
	}
	return result
}
