package quantity

import (
	"fmt"

	"unitengine/internal/units"
)

// Resolve folds the composite into a single registry unit. The empty
// composite is the dimensionless identity.
func Resolve(reg *units.Registry, u Units) (units.Unit, error) {
	unit, err := reg.Compose(u.Terms)
	if err != nil {
		return units.Unit{}, fmt.Errorf("resolve %s: %w", u, err)
	}
	return unit, nil
}

// Convert returns the factor taking values in from to values in to.
func Convert(reg *units.Registry, from, to Units) (float64, error) {
	fromUnit, err := Resolve(reg, from)
	if err != nil {
		return 0, err
	}
	toUnit, err := Resolve(reg, to)
	if err != nil {
		return 0, err
	}
	return units.ConvertUnits(fromUnit, toUnit)
}
