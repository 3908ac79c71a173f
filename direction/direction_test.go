package direction_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoned/direction"
)

func TestResolve_Defaults(t *testing.T) {
	d, err := direction.Resolve(direction.Spec{}, 3, 2, 1, 0)
	require.NoError(t, err)
	assert.Nil(t, d.B)

	for i := 0; i < 3; i++ {
		gx, gy, gb := d.Rows(i)
		assert.Equal(t, []float64{0, 0}, gx)
		assert.Equal(t, []float64{1}, gy)
		assert.Nil(t, gb)
	}
}

func TestResolve_Broadcast(t *testing.T) {
	spec := direction.Spec{
		X: direction.Scalar(-1),
		Y: direction.Uniform([]float64{1, 0.5}),
		B: direction.PerDMU([][]float64{{-1}, {0}}),
	}
	d, err := direction.Resolve(spec, 2, 3, 2, 1)
	require.NoError(t, err)

	gx, gy, gb := d.Rows(1)
	assert.Equal(t, []float64{-1, -1, -1}, gx)
	assert.Equal(t, []float64{1, 0.5}, gy)
	assert.Equal(t, []float64{0}, gb)

	again, err := direction.Resolve(spec, 2, 3, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, d, again)
}

func TestDirections_RowsAreCopies(t *testing.T) {
	d, err := direction.Resolve(direction.Spec{X: direction.Scalar(-1)}, 2, 1, 1, 0)
	require.NoError(t, err)

	gx, gy, _ := d.Rows(0)
	gx[0], gy[0] = 5, 5
	gx, gy, _ = d.Rows(0)
	assert.Equal(t, []float64{-1}, gx)
	assert.Equal(t, []float64{1}, gy)

	assert.Panics(t, func() { d.Rows(2) })
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name      string
		spec      direction.Spec
		q         int
		want      error
		component string
		dmu       int
	}{
		{
			name:      "per-DMU row count",
			spec:      direction.Spec{X: direction.PerDMU([][]float64{{1}})},
			want:      direction.ErrLength,
			component: "gx", dmu: -1,
		},
		{
			name:      "per-DMU row width",
			spec:      direction.Spec{Y: direction.PerDMU([][]float64{{1}, {1, 2}})},
			want:      direction.ErrLength,
			component: "gy", dmu: 1,
		},
		{
			name:      "uniform width",
			spec:      direction.Spec{Y: direction.Uniform([]float64{1, 1})},
			want:      direction.ErrLength,
			component: "gy", dmu: -1,
		},
		{
			name:      "gb without undesirable outputs",
			spec:      direction.Spec{B: direction.Scalar(1)},
			want:      direction.ErrLength,
			component: "gb", dmu: -1,
		},
		{
			name:      "non-finite scalar",
			spec:      direction.Spec{X: direction.Scalar(math.NaN())},
			want:      direction.ErrNonFinite,
			component: "gx", dmu: -1,
		},
		{
			name: "degenerate DMU",
			spec: direction.Spec{
				X: direction.Scalar(0),
				Y: direction.PerDMU([][]float64{{1}, {0}}),
			},
			want:      direction.ErrDegenerate,
			component: "g", dmu: 1,
		},
		{
			name: "degenerate with undesirable",
			spec: direction.Spec{
				Y: direction.Scalar(0),
				B: direction.Scalar(0),
			},
			q:         1,
			want:      direction.ErrDegenerate,
			component: "g", dmu: 0,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := direction.Resolve(tc.spec, 2, 1, 1, tc.q)
			require.Error(t, err)
			assert.Nil(t, d)
			assert.ErrorIs(t, err, tc.want)

			var de *direction.Error
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.component, de.Component)
			assert.Equal(t, tc.dmu, de.DMU)
		})
	}
}

func TestResolve_UndesirableOnlyDirection(t *testing.T) {
	// gy = 0 is fine as long as another component is non-zero.
	d, err := direction.Resolve(direction.Spec{Y: direction.Scalar(0), B: direction.Scalar(-1)}, 2, 1, 1, 1)
	require.NoError(t, err)
	_, gy, gb := d.Rows(0)
	assert.Equal(t, []float64{0}, gy)
	assert.Equal(t, []float64{-1}, gb)
}
