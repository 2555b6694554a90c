package units

// ConvertUnits returns the factor f such that value_in_to = value_in_from * f.
//
// Only one hop is resolved: when both units are derived, they must name
// the same reference unit. A common ancestor further up is not searched
// for. Registration flattens chains, so catalog units always share a
// reference when they share a root.
func ConvertUnits(from, to Unit) (float64, error) {
	fail := func(err error) (float64, error) {
		return 0, &ConversionError{From: from.String(), To: to.String(), Err: err}
	}

	if !from.Dimension().Equal(to.Dimension()) {
		return fail(ErrDimensionMismatch)
	}
	if from.Conversion.hasOffset() || to.Conversion.hasOffset() {
		return fail(ErrOffsetNotSupported)
	}

	switch c1, c2 := from.Conversion, to.Conversion; {
	case c1 != nil && c2 != nil:
		if !c1.Base.Equal(c2.Base) {
			return fail(ErrIncompatibleBase)
		}
		return c1.Factor / c2.Factor, nil
	case c1 != nil:
		// to is treated as the reference itself.
		return c1.Factor, nil
	case c2 != nil:
		return 1.0 / c2.Factor, nil
	default:
		if !from.Equal(to) {
			return fail(ErrIncompatibleBase)
		}
		return 1.0, nil
	}
}
