package units

import "math/big"

// SimpleUnit is a unit's name and dimension, without any conversion.
type SimpleUnit struct {
	Name      string
	Dimension Dimension
}

func NewSimpleUnit(name string, dim Dimension) SimpleUnit {
	return SimpleUnit{Name: name, Dimension: dim.Simplify()}
}

func (s SimpleUnit) Mul(other SimpleUnit) SimpleUnit {
	return SimpleUnit{
		Name:      composeName(s.Name, "*", other.Name),
		Dimension: s.Dimension.Mul(other.Dimension),
	}
}

func (s SimpleUnit) Div(other SimpleUnit) SimpleUnit {
	return SimpleUnit{
		Name:      composeName(s.Name, "/", other.Name),
		Dimension: s.Dimension.Div(other.Dimension),
	}
}

func (s SimpleUnit) Pow(n *big.Rat) SimpleUnit {
	return SimpleUnit{
		Name:      powName(s.Name, n),
		Dimension: s.Dimension.Pow(n),
	}
}

func (s SimpleUnit) PowInt(n int64) SimpleUnit {
	return s.Pow(big.NewRat(n, 1))
}

// Simplify drops zero-power terms from the dimension, so meter/meter ends up
// dimensionless instead of length^0.
func (s SimpleUnit) Simplify() SimpleUnit {
	s.Dimension = s.Dimension.Simplify()
	return s
}

func (s SimpleUnit) Equal(other SimpleUnit) bool {
	return s.Name == other.Name && s.Dimension.Equal(other.Dimension)
}
