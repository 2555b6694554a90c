// Package catalog holds the built-in table of dimensions and units and builds
// the frozen registry that the rest of the service shares.
package catalog

import (
	"fmt"
	"math/big"

	"unitengine/internal/units"
)

type Kind int

const (
	KindBaseDimension Kind = iota
	KindDerivedDimension
	KindBaseUnit
	KindCompositeUnit
	KindDerivedUnit
	KindOffsetUnit
)

// Factor is one name^power term of a dimension or unit product.
type Factor struct {
	Name  string
	Power int64
}

// Entry is one row of the catalog. Which fields matter depends on Kind.
type Entry struct {
	Kind      Kind
	Name      string
	Dimension string
	Factors   []Factor
	Factor    float64
	Offset    float64
	Base      string
}

func F(name string, power int64) Factor {
	return Factor{Name: name, Power: power}
}

// BaseDimension registers "[name]".
func BaseDimension(name string) Entry {
	return Entry{Kind: KindBaseDimension, Name: name}
}

// DerivedDimension registers the product of existing dimensions under name.
// No factors gives a dimensionless dimension.
func DerivedDimension(name string, factors ...Factor) Entry {
	return Entry{Kind: KindDerivedDimension, Name: name, Factors: factors}
}

func BaseUnit(name, dimension string) Entry {
	return Entry{Kind: KindBaseUnit, Name: name, Dimension: dimension}
}

// CompositeUnit registers the product of existing units. An empty name keeps
// the composed one ("kilogram*meter/second^2").
func CompositeUnit(name string, factors ...Factor) Entry {
	return Entry{Kind: KindCompositeUnit, Name: name, Factors: factors}
}

func DerivedUnit(name, dimension string, factor float64, base string) Entry {
	return Entry{Kind: KindDerivedUnit, Name: name, Dimension: dimension, Factor: factor, Base: base}
}

func OffsetUnit(name, dimension string, factor, offset float64, base string) Entry {
	return Entry{Kind: KindOffsetUnit, Name: name, Dimension: dimension, Factor: factor, Offset: offset, Base: base}
}

// New builds the default registry. A failure here is a defect in the table
// itself, so it panics.
func New() *units.Registry {
	r, err := Build(Definitions())
	if err != nil {
		panic(err)
	}
	return r
}

// Build runs entries through the registry in order and freezes the result.
// Every entry may only refer to names registered by earlier entries.
func Build(entries []Entry) (*units.Registry, error) {
	r := units.NewRegistry()
	for i, e := range entries {
		if err := e.apply(r); err != nil {
			return nil, fmt.Errorf("catalog entry %d (%s): %w", i, e.label(), err)
		}
	}
	r.Freeze()
	return r, nil
}

func (e Entry) apply(r *units.Registry) error {
	switch e.Kind {
	case KindBaseDimension:
		return r.AddDimensionSimple(e.Name)
	case KindDerivedDimension:
		d, err := dimensionProduct(r, e.Factors)
		if err != nil {
			return err
		}
		return r.AddDimension(d.WithName(e.Name))
	case KindBaseUnit:
		return r.AddUnitSimple(e.Name, e.Dimension)
	case KindCompositeUnit:
		u, err := r.Compose(terms(e.Factors))
		if err != nil {
			return err
		}
		if e.Name != "" {
			u = u.WithName(e.Name)
		}
		return r.AddUnit(u)
	case KindDerivedUnit:
		return r.AddUnitDeriv(e.Name, e.Dimension, e.Factor, e.Base)
	case KindOffsetUnit:
		return r.AddUnitOffset(e.Name, e.Dimension, e.Factor, e.Offset, e.Base)
	}
	return fmt.Errorf("unknown entry kind %d: %w", e.Kind, units.ErrSchema)
}

func (e Entry) label() string {
	if e.Name != "" {
		return e.Name
	}
	return fmt.Sprint(e.Factors)
}

func dimensionProduct(r *units.Registry, factors []Factor) (units.Dimension, error) {
	var d units.Dimension
	for i, f := range factors {
		part, err := r.GetDimension(f.Name)
		if err != nil {
			return units.Dimension{}, err
		}
		switch {
		case i == 0:
			d = part.PowInt(f.Power)
		case f.Power > 0:
			d = d.Mul(part.PowInt(f.Power))
		default:
			d = d.Div(part.PowInt(-f.Power))
		}
	}
	return d, nil
}

func terms(factors []Factor) []units.Term {
	out := make([]units.Term, len(factors))
	for i, f := range factors {
		out[i] = units.Term{Name: f.Name, Power: big.NewRat(f.Power, 1)}
	}
	return out
}
