package engine

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"unitengine/internal/models"
	"unitengine/internal/quantity"
)

type AggOp string

const (
	AggSum    AggOp = "sum"
	AggMean   AggOp = "mean"
	AggMin    AggOp = "min"
	AggMax    AggOp = "max"
	AggMedian AggOp = "median"
	AggStd    AggOp = "std"
	AggVar    AggOp = "var"
	AggArgMax AggOp = "arg_max"
	AggArgMin AggOp = "arg_min"
)

// Scalar is a single aggregated value with its unit.
type Scalar struct {
	Value float64
	Unit  quantity.Units
}

type partialAgg struct {
	sum   float64
	count int
	nulls int
	min   float64
	max   float64
}

// Stats holds every aggregate of one column. NaN rows count as nulls and are
// skipped. Std and Var are sample statistics.
type Stats struct {
	Count  int
	Nulls  int
	Sum    float64
	Mean   float64
	Min    float64
	Max    float64
	Median float64
	Std    float64
	Var    float64
}

// Aggregate reduces col to one value. var is in the column's unit squared,
// arg_max and arg_min give a dimensionless row index; everything else keeps
// the column's unit.
func (e *Engine) Aggregate(op AggOp, col *Column) (Scalar, error) {
	if op == AggArgMax || op == AggArgMin {
		i, err := argExtreme(col, op == AggArgMax)
		if err != nil {
			return Scalar{}, err
		}
		return Scalar{Value: float64(i)}, nil
	}
	st, err := e.Stats(col)
	if err != nil {
		return Scalar{}, err
	}
	unit := col.Unit
	var v float64
	switch op {
	case AggSum:
		v = st.Sum
	case AggMean:
		v = st.Mean
	case AggMin:
		v = st.Min
	case AggMax:
		v = st.Max
	case AggMedian:
		v = st.Median
	case AggStd:
		v = st.Std
	case AggVar:
		v = st.Var
		unit = col.Unit.PowInt(2)
	default:
		return Scalar{}, fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}
	return Scalar{Value: v, Unit: unit}, nil
}

// Stats computes sum, count, min and max in parallel chunks and merges the
// partials; median and variance run over the non-null values afterwards.
func (e *Engine) Stats(col *Column) (Stats, error) {
	n := col.Len()
	results := make(chan partialAgg, e.workers)

	err := e.forEachChunk(n, func(start, end int) error {
		p := partialAgg{min: math.Inf(1), max: math.Inf(-1)}
		vals := col.Values[start:end]
		for _, v := range vals {
			if math.IsNaN(v) {
				p.nulls++
				continue
			}
			p.sum += v
			p.count++
			p.min = math.Min(p.min, v)
			p.max = math.Max(p.max, v)
		}
		results <- p
		return nil
	})
	close(results)
	if err != nil {
		return Stats{}, err
	}

	// Merge Phase
	st := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	for p := range results {
		st.Sum += p.sum
		st.Count += p.count
		st.Nulls += p.nulls
		st.Min = math.Min(st.Min, p.min)
		st.Max = math.Max(st.Max, p.max)
	}
	if st.Count == 0 {
		return Stats{}, fmt.Errorf("%w: %s", ErrEmpty, col.Name)
	}

	valid := make([]float64, 0, st.Count)
	for _, v := range col.Values {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	st.Mean = st.Sum / float64(st.Count)
	st.Median = median(valid)
	if st.Count > 1 {
		_, st.Var = stat.MeanVariance(valid, nil)
		st.Std = math.Sqrt(st.Var)
	}
	return st, nil
}

// Summarize is Stats in the API's shape.
func (e *Engine) Summarize(col *Column) (*models.ColumnStats, error) {
	st, err := e.Stats(col)
	if err != nil {
		return nil, err
	}
	return &models.ColumnStats{
		Name:         col.Name,
		Unit:         col.Unit.String(),
		Count:        st.Count,
		Nulls:        st.Nulls,
		Sum:          st.Sum,
		Mean:         st.Mean,
		Min:          st.Min,
		Max:          st.Max,
		Median:       st.Median,
		Std:          st.Std,
		Variance:     st.Var,
		VarianceUnit: col.Unit.PowInt(2).String(),
	}, nil
}

// argExtreme returns the row of the largest (or smallest) non-null value.
// Ties go to the first row.
func argExtreme(col *Column, largest bool) (int, error) {
	best := -1
	for i, v := range col.Values {
		if math.IsNaN(v) {
			continue
		}
		if best < 0 || (largest && v > col.Values[best]) || (!largest && v < col.Values[best]) {
			best = i
		}
	}
	if best < 0 {
		return 0, fmt.Errorf("%w: %s", ErrEmpty, col.Name)
	}
	return best, nil
}

// median sorts vals in place.
func median(vals []float64) float64 {
	slices.Sort(vals)
	mid := len(vals) / 2
	if len(vals)%2 == 1 {
		return vals[mid]
	}
	return (vals[mid-1] + vals[mid]) / 2
}
