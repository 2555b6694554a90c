package units

import (
	"math/big"
	"sort"
	"strings"
)

// Term is one base dimension (or one named unit) raised to a rational power.
// Power is never mutated after the Term is built; operations allocate.
type Term struct {
	Name  string
	Power *big.Rat
}

// Dimension is a product of base dimensions raised to rational powers, e.g.
// length^1 * time^-2. Name is the registry key ("[velocity]") and does not
// take part in equality.
type Dimension struct {
	Name  string
	Terms []Term
}

// NewDimension builds a dimension from explicit terms. Terms with equal names
// are merged and zero powers dropped.
func NewDimension(name string, terms ...Term) Dimension {
	d := Dimension{Name: name}
	for _, t := range terms {
		d.Terms = mergeTerm(d.Terms, t.Name, t.Power)
	}
	return d.Simplify()
}

// NewSimpleDimension registers "[base]" as base^1.
func NewSimpleDimension(base string) Dimension {
	return Dimension{
		Name:  "[" + base + "]",
		Terms: []Term{{Name: base, Power: big.NewRat(1, 1)}},
	}
}

func (d Dimension) WithName(name string) Dimension {
	d.Name = name
	return d
}

// Mul adds the exponents of matching terms and appends the rest.
func (d Dimension) Mul(other Dimension) Dimension {
	terms := combineTerms(d.Terms, other.Terms, false)
	return Dimension{Name: composeName(d.Name, "*", other.Name), Terms: terms}.Simplify()
}

// Div subtracts the exponents of matching terms and appends the rest negated.
func (d Dimension) Div(other Dimension) Dimension {
	terms := combineTerms(d.Terms, other.Terms, true)
	return Dimension{Name: composeName(d.Name, "/", other.Name), Terms: terms}.Simplify()
}

// Pow multiplies every exponent by n.
func (d Dimension) Pow(n *big.Rat) Dimension {
	terms := make([]Term, 0, len(d.Terms))
	for _, t := range d.Terms {
		terms = append(terms, Term{Name: t.Name, Power: new(big.Rat).Mul(t.Power, n)})
	}
	return Dimension{Name: powName(d.Name, n), Terms: terms}.Simplify()
}

func (d Dimension) PowInt(n int64) Dimension {
	return d.Pow(big.NewRat(n, 1))
}

// Simplify drops every term whose exponent is exactly zero.
func (d Dimension) Simplify() Dimension {
	terms := make([]Term, 0, len(d.Terms))
	for _, t := range d.Terms {
		if t.Power.Sign() != 0 {
			terms = append(terms, t)
		}
	}
	d.Terms = terms
	return d
}

func (d Dimension) IsDimensionless() bool {
	return len(d.Terms) == 0
}

// Canonical returns a copy with the terms sorted by name.
func (d Dimension) Canonical() Dimension {
	terms := append([]Term(nil), d.Terms...)
	sort.Slice(terms, func(i, j int) bool { return terms[i].Name < terms[j].Name })
	d.Terms = terms
	return d
}

// Equal reports whether both dimensions have the same terms, in any order.
func (d Dimension) Equal(other Dimension) bool {
	return termsEqual(d.Canonical().Terms, other.Canonical().Terms)
}

// Identical is the order-sensitive comparison: same terms in the same order.
func (d Dimension) Identical(other Dimension) bool {
	return termsEqual(d.Terms, other.Terms)
}

// String renders the terms, e.g. "length*time^-2".
func (d Dimension) String() string {
	if d.IsDimensionless() {
		return "dimensionless"
	}
	parts := make([]string, 0, len(d.Terms))
	for _, t := range d.Terms {
		parts = append(parts, t.Name+powSuffix(t.Power))
	}
	return strings.Join(parts, "*")
}

func termsEqual(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Power.Cmp(b[i].Power) != 0 {
			return false
		}
	}
	return true
}

func combineTerms(left, right []Term, negate bool) []Term {
	terms := append([]Term(nil), left...)
	for _, t := range right {
		p := t.Power
		if negate {
			p = new(big.Rat).Neg(p)
		}
		terms = mergeTerm(terms, t.Name, p)
	}
	return terms
}

func mergeTerm(terms []Term, name string, power *big.Rat) []Term {
	for i := range terms {
		if terms[i].Name == name {
			terms[i] = Term{Name: name, Power: new(big.Rat).Add(terms[i].Power, power)}
			return terms
		}
	}
	return append(terms, Term{Name: name, Power: new(big.Rat).Set(power)})
}

// composeName joins operand names, parenthesizing a compound right-hand side
// where reading left to right would change its meaning.
func composeName(left, op, right string) string {
	switch {
	case left == "":
		if op == "/" {
			return "1/" + wrap(right, "*/")
		}
		return right
	case right == "":
		return left
	}
	if op == "/" {
		return left + "/" + wrap(right, "*/")
	}
	return left + "*" + wrap(right, "/")
}

func powName(name string, n *big.Rat) string {
	if name == "" || n.Cmp(big.NewRat(1, 1)) == 0 {
		return name
	}
	return wrap(name, "*/^") + powSuffix(n)
}

func wrap(name, ops string) string {
	if strings.ContainsAny(name, ops) {
		return "(" + name + ")"
	}
	return name
}

func powSuffix(p *big.Rat) string {
	switch {
	case p.Cmp(big.NewRat(1, 1)) == 0:
		return ""
	case p.IsInt():
		return "^" + p.Num().String()
	default:
		return "^(" + p.RatString() + ")"
	}
}
