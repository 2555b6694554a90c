package engine

import (
	"fmt"
	"math"
	"math/big"

	"gonum.org/v1/gonum/floats"

	"unitengine/internal/quantity"
	"unitengine/internal/units"
)

type UnaryOp string

const (
	OpNoop    UnaryOp = "noop"
	OpAbs     UnaryOp = "abs"
	OpNeg     UnaryOp = "neg"
	OpSqrt    UnaryOp = "sqrt"
	OpCbrt    UnaryOp = "cbrt"
	OpSin     UnaryOp = "sin"
	OpCos     UnaryOp = "cos"
	OpTan     UnaryOp = "tan"
	OpCot     UnaryOp = "cot"
	OpArcsin  UnaryOp = "arcsin"
	OpArccos  UnaryOp = "arccos"
	OpArctan  UnaryOp = "arctan"
	OpSinh    UnaryOp = "sinh"
	OpCosh    UnaryOp = "cosh"
	OpTanh    UnaryOp = "tanh"
	OpArcsinh UnaryOp = "arcsinh"
	OpArccosh UnaryOp = "arccosh"
	OpArctanh UnaryOp = "arctanh"
	OpCumSum  UnaryOp = "cum_sum"
	OpCumProd UnaryOp = "cum_prod"
	OpCumMax  UnaryOp = "cum_max"
	OpCumMin  UnaryOp = "cum_min"
)

var (
	circular = map[UnaryOp]func(float64) float64{
		OpSin: math.Sin,
		OpCos: math.Cos,
		OpTan: math.Tan,
		OpCot: func(v float64) float64 { return 1 / math.Tan(v) },
	}
	hyperbolic = map[UnaryOp]func(float64) float64{
		OpSinh: math.Sinh,
		OpCosh: math.Cosh,
		OpTanh: math.Tanh,
	}
	// inverse functions return radians for the circular ones and a plain
	// number for the hyperbolic ones.
	inverse = map[UnaryOp]func(float64) float64{
		OpArcsin:  math.Asin,
		OpArccos:  math.Acos,
		OpArctan:  math.Atan,
		OpArcsinh: math.Asinh,
		OpArccosh: math.Acosh,
		OpArctanh: math.Atanh,
	}
)

type BinaryOp string

const (
	OpAdd BinaryOp = "add"
	OpSub BinaryOp = "sub"
	OpMul BinaryOp = "mul"
	OpDiv BinaryOp = "div"
)

// Unary applies op row by row. Trigonometric and hyperbolic functions take a
// dimensionless column (angles included) and return a dimensionless one;
// angle units are converted to radians first. Inverse functions scale ratios
// such as percent to plain numbers; arcsin, arccos and arctan answer in
// radians. Cumulative ops skip null rows and carry the running value past
// them.
func (e *Engine) Unary(op UnaryOp, col *Column) (*Column, error) {
	switch op {
	case OpNoop:
		return &Column{Name: col.Name, Values: append([]float64(nil), col.Values...), Unit: col.Unit}, nil
	case OpAbs:
		return e.mapValues(col, col.Unit, math.Abs)
	case OpNeg:
		return e.mapValues(col, col.Unit, func(v float64) float64 { return -v })
	case OpSqrt:
		return e.Pow(col, big.NewRat(1, 2))
	case OpCbrt:
		return e.Pow(col, big.NewRat(1, 3))
	case OpSin, OpCos, OpTan, OpCot, OpSinh, OpCosh, OpTanh:
		f, err := e.angleFactor(col.Unit)
		if err != nil {
			return nil, err
		}
		fn, ok := circular[op]
		if !ok {
			fn = hyperbolic[op]
		}
		return e.mapValues(col, quantity.Units{}, func(v float64) float64 { return fn(v * f) })
	case OpArcsin, OpArccos, OpArctan, OpArcsinh, OpArccosh, OpArctanh:
		f, err := e.plainFactor(col.Unit, "count")
		if err != nil {
			return nil, err
		}
		unit := quantity.Units{}
		if op == OpArcsin || op == OpArccos || op == OpArctan {
			unit = quantity.Of("radian")
		}
		fn := inverse[op]
		return e.mapValues(col, unit, func(v float64) float64 { return fn(v * f) })
	case OpCumSum:
		return cumulative(col, col.Unit, 1, func(acc, v float64) float64 { return acc + v }), nil
	case OpCumProd:
		// Row i carries unit^i, which no single column unit can hold, so
		// only plain numbers are accepted.
		f, err := e.plainFactor(col.Unit, "count")
		if err != nil {
			return nil, err
		}
		return cumulative(col, quantity.Units{}, f, func(acc, v float64) float64 { return acc * v }), nil
	case OpCumMax:
		return cumulative(col, col.Unit, 1, math.Max), nil
	case OpCumMin:
		return cumulative(col, col.Unit, 1, math.Min), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOp, op)
}

// Pow raises every value and the unit to n. Square and cube roots go
// through math.Sqrt and math.Cbrt.
func (e *Engine) Pow(col *Column, n *big.Rat) (*Column, error) {
	unit := col.Unit.Pow(n)
	if _, err := e.resolver.Resolve(unit); err != nil {
		return nil, err
	}

	var fn func(float64) float64
	switch n.RatString() {
	case "1/2":
		fn = math.Sqrt
	case "1/3":
		fn = math.Cbrt
	default:
		exp, _ := n.Float64()
		fn = func(v float64) float64 { return math.Pow(v, exp) }
	}
	return e.mapValues(col, unit, fn)
}

// Binary combines two columns row by row. A right column of length one is
// broadcast. add and sub need equal dimensions and rescale right into
// left's unit; mul and div combine the units, which must resolve.
func (e *Engine) Binary(op BinaryOp, left, right *Column) (*Column, error) {
	n := left.Len()
	broadcast := right.Len() == 1 && n != 1
	if !broadcast && right.Len() != n {
		return nil, fmt.Errorf("%w: %s has %d rows, %s has %d", ErrLengthMismatch, left.Name, n, right.Name, right.Len())
	}

	var (
		unit   quantity.Units
		kernel func(dst, l, r []float64)
	)
	switch op {
	case OpAdd, OpSub:
		f, err := e.resolver.Convert(right.Unit, left.Unit)
		if err != nil {
			return nil, err
		}
		if op == OpSub {
			f = -f
		}
		unit = left.Unit
		if broadcast {
			c := right.Values[0] * f
			kernel = func(dst, l, _ []float64) { copy(dst, l); floats.AddConst(c, dst) }
		} else {
			kernel = func(dst, l, r []float64) { floats.AddScaledTo(dst, l, f, r) }
		}
	case OpMul:
		unit = left.Unit.Mul(right.Unit)
		if _, err := e.resolver.Resolve(unit); err != nil {
			return nil, err
		}
		if broadcast {
			c := right.Values[0]
			kernel = func(dst, l, _ []float64) { floats.ScaleTo(dst, c, l) }
		} else {
			kernel = func(dst, l, r []float64) { floats.MulTo(dst, l, r) }
		}
	case OpDiv:
		unit = left.Unit.Div(right.Unit)
		if _, err := e.resolver.Resolve(unit); err != nil {
			return nil, err
		}
		if broadcast {
			c := right.Values[0]
			kernel = func(dst, l, _ []float64) {
				for i, v := range l {
					dst[i] = v / c
				}
			}
		} else {
			kernel = func(dst, l, r []float64) { floats.DivTo(dst, l, r) }
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}

	out := make([]float64, n)
	err := e.forEachChunk(n, func(start, end int) error {
		r := right.Values
		if !broadcast {
			r = r[start:end]
		}
		kernel(out[start:end], left.Values[start:end], r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Column{Name: left.Name, Values: out, Unit: unit}, nil
}

// Convert rescales col into to.
func (e *Engine) Convert(col *Column, to quantity.Units) (*Column, error) {
	f, err := e.resolver.Convert(col.Unit, to)
	if err != nil {
		return nil, err
	}
	out := make([]float64, col.Len())
	err = e.forEachChunk(len(out), func(start, end int) error {
		floats.ScaleTo(out[start:end], f, col.Values[start:end])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Column{Name: col.Name, Values: out, Unit: to}, nil
}

func (e *Engine) mapValues(col *Column, unit quantity.Units, fn func(float64) float64) (*Column, error) {
	out := make([]float64, col.Len())
	err := e.forEachChunk(len(out), func(start, end int) error {
		for i := start; i < end; i++ {
			out[i] = fn(col.Values[i])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Column{Name: col.Name, Values: out, Unit: unit}, nil
}

// angleFactor checks that u is dimensionless and returns the factor to
// radians, or 1 when u is not an angle.
func (e *Engine) angleFactor(u quantity.Units) (float64, error) {
	return e.plainFactor(u, "radian")
}

// plainFactor checks that u is dimensionless and returns the factor into
// base, or 1 when u sits on another dimensionless base.
func (e *Engine) plainFactor(u quantity.Units, base string) (float64, error) {
	unit, err := e.resolver.Resolve(u)
	if err != nil {
		return 0, err
	}
	if !unit.Dimension().IsDimensionless() {
		return 0, fmt.Errorf("%s is not dimensionless: %w", u, units.ErrDimensionMismatch)
	}
	target, err := e.resolver.Resolve(quantity.Of(base))
	if err != nil {
		return 1, nil
	}
	if f, err := units.ConvertUnits(unit, target); err == nil {
		return f, nil
	}
	return 1, nil
}

// cumulative is sequential; each row depends on the one before. Values are
// scaled by f on the way in. A null row stays null and leaves the running
// value untouched.
func cumulative(col *Column, unit quantity.Units, f float64, step func(acc, v float64) float64) *Column {
	out := make([]float64, col.Len())
	var acc float64
	started := false
	for i, v := range col.Values {
		if math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		v *= f
		if started {
			acc = step(acc, v)
		} else {
			acc, started = v, true
		}
		out[i] = acc
	}
	return &Column{Name: col.Name, Values: out, Unit: unit}
}

// Dot sums the row-wise products of left and right, skipping rows where
// either side is null. The result carries left's unit times right's.
func (e *Engine) Dot(left, right *Column) (Scalar, error) {
	n := left.Len()
	if right.Len() != n {
		return Scalar{}, fmt.Errorf("%w: %s has %d rows, %s has %d", ErrLengthMismatch, left.Name, n, right.Name, right.Len())
	}
	unit := left.Unit.Mul(right.Unit)
	if _, err := e.resolver.Resolve(unit); err != nil {
		return Scalar{}, err
	}

	type partial struct {
		sum   float64
		pairs int
	}
	results := make(chan partial, e.workers)
	err := e.forEachChunk(n, func(start, end int) error {
		var p partial
		for i := start; i < end; i++ {
			l, r := left.Values[i], right.Values[i]
			if math.IsNaN(l) || math.IsNaN(r) {
				continue
			}
			p.sum += l * r
			p.pairs++
		}
		results <- p
		return nil
	})
	close(results)
	if err != nil {
		return Scalar{}, err
	}

	var total partial
	for p := range results {
		total.sum += p.sum
		total.pairs += p.pairs
	}
	if total.pairs == 0 {
		return Scalar{}, fmt.Errorf("%w: %s . %s", ErrEmpty, left.Name, right.Name)
	}
	return Scalar{Value: total.sum, Unit: unit}, nil
}
