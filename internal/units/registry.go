package units

import (
	"fmt"
	"math/big"
	"sort"
)

// Registry is a name-keyed catalog of dimensions and units. It is built once
// through the Add* methods in dependency order, frozen, and then shared
// read-only; after Freeze it is safe for concurrent readers without locking.
type Registry struct {
	dimensions map[string]Dimension
	units      map[string]Unit
	frozen     bool
}

func NewRegistry() *Registry {
	return &Registry{
		dimensions: make(map[string]Dimension),
		units:      make(map[string]Unit),
	}
}

// Freeze rejects every later Add* call with ErrFrozen.
func (r *Registry) Freeze() {
	r.frozen = true
}

func (r *Registry) Frozen() bool {
	return r.frozen
}

// AddDimensionSimple registers "[name]" as name^1.
func (r *Registry) AddDimensionSimple(name string) error {
	return r.AddDimension(NewSimpleDimension(name))
}

// AddDimension registers a pre-combined dimension under d.Name.
func (r *Registry) AddDimension(d Dimension) error {
	if err := r.writable(); err != nil {
		return err
	}
	if _, ok := r.dimensions[d.Name]; ok {
		return fmt.Errorf("dimension %q: %w", d.Name, ErrDuplicate)
	}
	r.dimensions[d.Name] = d.Simplify()
	return nil
}

// AddUnitSimple registers a base unit (no conversion) of an existing dimension.
func (r *Registry) AddUnitSimple(name, dimension string) error {
	dim, err := r.GetDimension(dimension)
	if err != nil {
		return fmt.Errorf("unit %q: %w", name, err)
	}
	return r.AddUnit(NewBaseUnit(name, dim))
}

// AddUnitDeriv registers name as factor * base. When base is itself derived,
// the link is flattened to base's own reference with the factors multiplied,
// so every registered unit is at most one hop from its reference.
func (r *Registry) AddUnitDeriv(name, dimension string, factor float64, base string) error {
	dim, err := r.GetDimension(dimension)
	if err != nil {
		return fmt.Errorf("unit %q: %w", name, err)
	}
	ref, err := r.GetUnit(base)
	if err != nil {
		return fmt.Errorf("unit %q: %w", name, err)
	}
	if ref.HasOffset() {
		return fmt.Errorf("unit %q: base %q: %w", name, base, ErrOffsetNotSupported)
	}
	if c := ref.Conversion; c != nil {
		factor *= c.Factor
		ref = c.Base
	}
	u, err := NewDerivedUnit(name, dim, factor, ref)
	if err != nil {
		return err
	}
	return r.AddUnit(u)
}

// AddUnitOffset registers an affine unit. Conversions through it fail with
// ErrOffsetNotSupported.
func (r *Registry) AddUnitOffset(name, dimension string, factor, offset float64, base string) error {
	dim, err := r.GetDimension(dimension)
	if err != nil {
		return fmt.Errorf("unit %q: %w", name, err)
	}
	ref, err := r.GetUnit(base)
	if err != nil {
		return fmt.Errorf("unit %q: %w", name, err)
	}
	u, err := NewOffsetUnit(name, dim, factor, offset, ref)
	if err != nil {
		return err
	}
	return r.AddUnit(u)
}

// AddUnit registers a pre-built unit, usually the result of unit algebra
// (meter.PowInt(2)), under its own name.
func (r *Registry) AddUnit(u Unit) error {
	if err := r.writable(); err != nil {
		return err
	}
	name := u.Name()
	if name == "" {
		return fmt.Errorf("unit with dimension %s has no name: %w", u.Dimension(), ErrSchema)
	}
	if _, ok := r.units[name]; ok {
		return fmt.Errorf("unit %q: %w", name, ErrDuplicate)
	}
	r.units[name] = u
	return nil
}

func (r *Registry) GetDimension(name string) (Dimension, error) {
	d, ok := r.dimensions[name]
	if !ok {
		return Dimension{}, fmt.Errorf("dimension %q: %w", name, ErrNotFound)
	}
	return d, nil
}

func (r *Registry) GetUnit(name string) (Unit, error) {
	u, ok := r.units[name]
	if !ok {
		return Unit{}, fmt.Errorf("unit %q: %w", name, ErrNotFound)
	}
	return u, nil
}

// MustGetDimension is for registry bootstrap only, where a missing entry is
// a defect in the catalog itself.
func (r *Registry) MustGetDimension(name string) Dimension {
	d, err := r.GetDimension(name)
	if err != nil {
		panic(err)
	}
	return d
}

// MustGetUnit: see MustGetDimension.
func (r *Registry) MustGetUnit(name string) Unit {
	u, err := r.GetUnit(name)
	if err != nil {
		panic(err)
	}
	return u
}

func (r *Registry) UnitNames() []string {
	names := make([]string, 0, len(r.units))
	for name := range r.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DimensionNames() []string {
	names := make([]string, 0, len(r.dimensions))
	for name := range r.dimensions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered units.
func (r *Registry) Len() int {
	return len(r.units)
}

// Compose resolves a product of named units raised to rational powers into a
// single Unit. Positive powers are folded first, then negative ones, both in
// input order, so {kilometer:1, hour:-1} and {hour:-1, kilometer:1} compose to
// the same "kilometer/hour". An empty product is Dimensionless().
func (r *Registry) Compose(terms []Term) (Unit, error) {
	// Zero powers drop out of the product but must still name a unit.
	for _, t := range terms {
		if t.Power.Sign() == 0 {
			if _, err := r.GetUnit(t.Name); err != nil {
				return Unit{}, err
			}
		}
	}
	ordered := make([]Term, 0, len(terms))
	for _, t := range terms {
		if t.Power.Sign() > 0 {
			ordered = append(ordered, t)
		}
	}
	for _, t := range terms {
		if t.Power.Sign() < 0 {
			ordered = append(ordered, t)
		}
	}

	acc := Dimensionless()
	for i, t := range ordered {
		u, err := r.GetUnit(t.Name)
		if err != nil {
			return Unit{}, err
		}
		if len(ordered) == 1 && t.Power.Cmp(big.NewRat(1, 1)) == 0 {
			return u, nil
		}
		if u.HasOffset() {
			return Unit{}, fmt.Errorf("unit %q in a product: %w", t.Name, ErrOffsetNotSupported)
		}
		switch {
		case i == 0:
			acc = u.Pow(t.Power)
		case t.Power.Sign() > 0:
			acc = acc.Mul(u.Pow(t.Power))
		default:
			acc = acc.Div(u.Pow(new(big.Rat).Neg(t.Power)))
		}
	}
	return acc, nil
}

// Convert returns the factor f such that value_in_to = value_in_from * f.
func (r *Registry) Convert(from, to string) (float64, error) {
	fromUnit, err := r.GetUnit(from)
	if err != nil {
		return 0, &ConversionError{From: from, To: to, Err: err}
	}
	toUnit, err := r.GetUnit(to)
	if err != nil {
		return 0, &ConversionError{From: from, To: to, Err: err}
	}
	return ConvertUnits(fromUnit, toUnit)
}

func (r *Registry) writable() error {
	if r.frozen {
		return ErrFrozen
	}
	return nil
}
