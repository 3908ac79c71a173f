package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoned/model"
)

func TestVariables_DeclareLayout(t *testing.T) {
	vars := model.NewVariables()
	alpha, err := vars.Declare("alpha", "intercepts", 3, 1, model.Free)
	require.NoError(t, err)
	beta, err := vars.Declare("beta", "input slopes", 3, 2, model.NonNegative)
	require.NoError(t, err)

	assert.Equal(t, 9, vars.Len())
	assert.Equal(t, model.VarID(0), alpha.Offset())
	assert.Equal(t, model.VarID(3), beta.Offset())
	assert.False(t, alpha.Indexed())
	assert.True(t, beta.Indexed())

	id, err := beta.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, model.VarID(8), id)
	assert.Equal(t, "beta[2,1]", vars.Name(id))
	assert.Equal(t, "alpha[1]", vars.Name(alpha.ID(1, 0)))
	assert.Equal(t, "x42", vars.Name(42))

	assert.Equal(t, model.NonNegative, vars.Bounds(id))
	assert.Equal(t, model.Free, vars.Bounds(42))

	owner, ok := vars.Owner(4)
	require.True(t, ok)
	assert.Equal(t, "beta", owner.Name())

	_, err = beta.At(3, 0)
	assert.ErrorIs(t, err, model.ErrOutOfRange)
	assert.Panics(t, func() { beta.ID(0, 2) })

	names := make([]string, 0, 2)
	for _, b := range vars.Blocks() {
		names = append(names, b.Name())
	}
	assert.Equal(t, []string{"alpha", "beta"}, names)
}

func TestVariables_DeclareErrors(t *testing.T) {
	vars := model.NewVariables()
	_, err := vars.Declare("e", "", 2, 1, model.Free)
	require.NoError(t, err)

	_, err = vars.Declare("e", "", 2, 1, model.Free)
	assert.ErrorIs(t, err, model.ErrDuplicateBlock)
	_, err = vars.Declare("z", "", 0, 1, model.Free)
	assert.ErrorIs(t, err, model.ErrBadShape)
	_, err = vars.Declare("", "", 1, 1, model.Free)
	assert.ErrorIs(t, err, model.ErrBadShape)
	_, err = vars.Declare("w", "", 1, 1, model.Bounds{Lower: 1, Upper: 0})
	assert.ErrorIs(t, err, model.ErrBadBounds)

	_, err = model.New("m", vars, model.Objective{})
	require.NoError(t, err)
	_, err = vars.Declare("late", "", 1, 1, model.Free)
	assert.ErrorIs(t, err, model.ErrFrozen)
}

func TestBounds(t *testing.T) {
	assert.Equal(t, 0.0, model.NonNegative.Violation(3))
	assert.Equal(t, 0.5, model.NonNegative.Violation(-0.5))
	assert.True(t, math.IsInf(model.Free.Violation(math.NaN()), 1))
	assert.Equal(t, "[0, +inf]", model.NonNegative.String())
	assert.Equal(t, "[-inf, +inf]", model.Free.String())
}
