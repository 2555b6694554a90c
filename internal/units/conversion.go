package units

import (
	"fmt"
	"math"
)

// Conversion links a unit to a reference unit of the same dimension:
// value_in_base = value * Factor. Offset is carried so affine units can be
// described, but no resolution path accepts it.
type Conversion struct {
	Factor float64
	Offset *float64
	Base   Unit
}

func (c *Conversion) hasOffset() bool {
	return c != nil && c.Offset != nil
}

func (c *Conversion) equal(other *Conversion) bool {
	if c == nil || other == nil {
		return c == nil && other == nil
	}
	if c.Factor != other.Factor {
		return false
	}
	if (c.Offset == nil) != (other.Offset == nil) {
		return false
	}
	if c.Offset != nil && *c.Offset != *other.Offset {
		return false
	}
	return c.Base.Equal(other.Base)
}

func (c *Conversion) String() string {
	if c == nil {
		return "<base>"
	}
	if c.Offset != nil {
		return fmt.Sprintf("%g %s + %g", c.Factor, c.Base.Name(), *c.Offset)
	}
	return fmt.Sprintf("%g %s", c.Factor, c.Base.Name())
}

func validFactor(f float64) error {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidFactor, f)
	}
	return nil
}
