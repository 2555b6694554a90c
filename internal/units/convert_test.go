package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertUnitsCases(t *testing.T) {
	km := derived(t, "kilometer", 1000, meter)
	cm := derived(t, "centimeter", 0.01, meter)
	// a second, unrelated base unit of length
	rope := NewBaseUnit("rope", lengthDim)
	fathom := derived(t, "fathom", 2, rope)

	testCases := []struct {
		name     string
		from, to Unit
		expected float64
		err      error
	}{
		{name: "both derived, same base", from: km, to: cm, expected: 1e5},
		{name: "derived to its base", from: km, to: meter, expected: 1000},
		{name: "base to derived", from: meter, to: cm, expected: 100},
		{name: "identical base units", from: meter, to: meter, expected: 1},
		{name: "different base units", from: meter, to: rope, err: ErrIncompatibleBase},
		{name: "derived from different bases", from: km, to: fathom, err: ErrIncompatibleBase},
		{name: "dimension mismatch", from: meter, to: second, err: ErrDimensionMismatch},
		{name: "dimension mismatch before base check", from: km, to: derived(t, "hour", 3600, second), err: ErrDimensionMismatch},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ConvertUnits(tc.from, tc.to)
			if tc.err != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.err)
				var convErr *ConversionError
				require.ErrorAs(t, err, &convErr)
				assert.Equal(t, tc.from.String(), convErr.From)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.expected, got, tc.expected*1e-12)
		})
	}
}

func TestConvertUnitsDerivedToForeignBase(t *testing.T) {
	// Only one side is derived: the other side is taken as the reference
	// without checking that it is the same unit.
	km := derived(t, "kilometer", 1000, meter)
	rope := NewBaseUnit("rope", lengthDim)

	got, err := ConvertUnits(km, rope)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got)
}

func TestConvertUnitsIdentityAndInverse(t *testing.T) {
	km := derived(t, "kilometer", 1000, meter)
	cm := derived(t, "centimeter", 0.01, meter)
	inch := derived(t, "inch", 0.0254, meter)
	kmh := km.Div(derived(t, "hour", 3600, second))

	all := []Unit{meter, km, cm, inch}
	for _, a := range all {
		f, err := ConvertUnits(a, a)
		require.NoError(t, err)
		assert.Equal(t, 1.0, f, a.String())

		for _, b := range all {
			ab, err := ConvertUnits(a, b)
			require.NoError(t, err)
			ba, err := ConvertUnits(b, a)
			require.NoError(t, err)
			assert.InDelta(t, 1.0, ab*ba, 1e-12, "%s <-> %s", a, b)
		}
	}

	f, err := ConvertUnits(kmh, kmh)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)
}

func TestConvertComposedUnits(t *testing.T) {
	km := derived(t, "kilometer", 1000, meter)
	hour := derived(t, "hour", 3600, second)

	f, err := ConvertUnits(km.Div(hour), meter.Div(second))
	require.NoError(t, err)
	assert.InDelta(t, 1000.0/3600.0, f, 1e-12)

	footPerSecond := derived(t, "foot", 0.3048, meter).Div(second)
	f, err = ConvertUnits(km.Div(hour), footPerSecond)
	require.NoError(t, err)
	assert.InDelta(t, (1000.0/3600.0)/0.3048, f, 1e-12)
}
