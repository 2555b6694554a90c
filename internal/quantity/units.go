package quantity

import (
	"math/big"
	"strings"

	"unitengine/internal/units"
)

// Units is a composite unit: a product of named registry units raised to
// rational powers, in the order the host wrote them.
type Units struct {
	Terms []units.Term
}

func NewUnits(terms ...units.Term) Units {
	return Units{Terms: terms}
}

// Of is shorthand for a single unit to the first power.
func Of(name string) Units {
	return Units{Terms: []units.Term{{Name: name, Power: big.NewRat(1, 1)}}}
}

func (u Units) IsEmpty() bool {
	return len(u.Terms) == 0
}

// Mul merges matching names by adding powers and appends the rest. Terms
// whose power cancels to zero are dropped.
func (u Units) Mul(other Units) Units {
	return u.combine(other, false)
}

func (u Units) Div(other Units) Units {
	return u.combine(other, true)
}

func (u Units) combine(other Units, negate bool) Units {
	out := u.clone()
	for _, t := range other.Terms {
		p := new(big.Rat).Set(t.Power)
		if negate {
			p.Neg(p)
		}
		merged := false
		for i := range out {
			if out[i].Name == t.Name {
				out[i].Power.Add(out[i].Power, p)
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, units.Term{Name: t.Name, Power: p})
		}
	}
	return Units{Terms: dropZero(out)}
}

func (u Units) PowInt(n int64) Units {
	return u.Pow(big.NewRat(n, 1))
}

func (u Units) Pow(n *big.Rat) Units {
	out := u.clone()
	for i := range out {
		out[i].Power.Mul(out[i].Power, n)
	}
	return Units{Terms: dropZero(out)}
}

func (u Units) Sqrt() Units {
	return u.Pow(big.NewRat(1, 2))
}

// Equal is order-sensitive: two composites that list the same terms in a
// different order resolve to differently named registry units.
func (u Units) Equal(other Units) bool {
	if len(u.Terms) != len(other.Terms) {
		return false
	}
	for i, t := range u.Terms {
		o := other.Terms[i]
		if t.Name != o.Name || t.Power.Cmp(o.Power) != 0 {
			return false
		}
	}
	return true
}

// Key is a stable textual form of the terms, usable as a cache key.
// Equal composites have equal keys.
func (u Units) Key() string {
	var b strings.Builder
	for i, t := range u.Terms {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(t.Name)
		b.WriteByte(':')
		b.WriteString(t.Power.RatString())
	}
	return b.String()
}

func (u Units) String() string {
	if len(u.Terms) == 0 {
		return "dimensionless"
	}
	parts := make([]string, len(u.Terms))
	for i, t := range u.Terms {
		switch {
		case t.Power.Cmp(big.NewRat(1, 1)) == 0:
			parts[i] = t.Name
		case t.Power.IsInt():
			parts[i] = t.Name + "^" + t.Power.RatString()
		default:
			parts[i] = t.Name + "^(" + t.Power.RatString() + ")"
		}
	}
	return strings.Join(parts, "*")
}

func (u Units) clone() []units.Term {
	out := make([]units.Term, len(u.Terms))
	for i, t := range u.Terms {
		out[i] = units.Term{Name: t.Name, Power: new(big.Rat).Set(t.Power)}
	}
	return out
}

func dropZero(terms []units.Term) []units.Term {
	out := terms[:0]
	for _, t := range terms {
		if t.Power.Sign() != 0 {
			out = append(out, t)
		}
	}
	return out
}
