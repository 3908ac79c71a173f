package frontier_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoned/frontier"
	"github.com/katalvlaran/stoned/model"
	"github.com/katalvlaran/stoned/shape"
)

func TestAssemble_CNLSScenario(t *testing.T) {
	m, err := frontier.Assemble(threeDMU(), frontier.Config{Loss: frontier.LeastSquares()})
	require.NoError(t, err)

	assert.Equal(t, "CNLS", m.Name())
	assert.Equal(t, []string{"alpha", "beta", "e"}, blockNames(m))
	assert.Equal(t, []string{"regression", "concavity"}, familyNames(m))
	assert.Equal(t, 9, m.NumVariables())
	assert.Equal(t, 9, m.NumConstraints())

	assert.Equal(t, model.Free, block(t, m, "alpha").Bounds())
	assert.Equal(t, model.NonNegative, block(t, m, "beta").Bounds())
	assert.Equal(t, model.Free, block(t, m, "e").Bounds())
	assert.Equal(t, 3, block(t, m, "beta").Len())

	assert.Equal(t, []string{
		"regression[0]: alpha[0] + beta[0] + e[0] = 1",
		"regression[1]: alpha[1] + 2*beta[1] + e[1] = 2",
		"regression[2]: alpha[2] + 3*beta[2] + e[2] = 2",
	}, rows(t, m, frontier.FamilyRegression))

	assert.Equal(t, []string{
		"concavity[0,1]: alpha[0] + beta[0] - alpha[1] - beta[1] <= 0",
		"concavity[0,2]: alpha[0] + beta[0] - alpha[2] - beta[2] <= 0",
		"concavity[1,0]: alpha[1] + 2*beta[1] - alpha[0] - 2*beta[0] <= 0",
		"concavity[1,2]: alpha[1] + 2*beta[1] - alpha[2] - 2*beta[2] <= 0",
		"concavity[2,0]: alpha[2] + 3*beta[2] - alpha[0] - 3*beta[0] <= 0",
		"concavity[2,1]: alpha[2] + 3*beta[2] - alpha[1] - 3*beta[1] <= 0",
	}, rows(t, m, frontier.FamilyConcavity))

	obj := m.Objective()
	assert.Equal(t, model.Minimize, obj.Sense)
	assert.Empty(t, obj.Linear.Terms)
	require.Len(t, obj.Quadratic, 3)
	e := block(t, m, "e")
	for i, q := range obj.Quadratic {
		assert.Equal(t, model.QuadTerm{I: e.ID(i, 0), J: e.ID(i, 0), Coef: 1}, q)
	}
}

func TestAssemble_FeasiblePointAndSolverObjective(t *testing.T) {
	m, err := frontier.Assemble(threeDMU(), frontier.Config{Loss: frontier.LeastSquares()})
	require.NoError(t, err)

	// One shared hyperplane y = 1 + 0.5x: residuals -0.5, 0, -0.5.
	values := []float64{1, 1, 1, 0.5, 0.5, 0.5, -0.5, 0, -0.5}
	vs, err := m.Check(values, 1e-12)
	require.NoError(t, err)
	assert.Empty(t, vs)

	solver := &stubSolver{}
	solver.On("Solve", mock.Anything, m).
		Return(&model.Solution{Status: model.StatusOptimal, Values: values, Objective: 0.5}, nil)

	sol, err := model.Solve(context.Background(), solver, m)
	require.NoError(t, err)
	assert.InDelta(t, sol.Objective, m.Objective().Evaluate(sol.Values), 1e-12)

	beta, err := sol.Block(block(t, m, "beta"))
	require.NoError(t, err)
	beta.Do(func(_, _ int, v float64) bool {
		assert.GreaterOrEqual(t, v, 0.0)
		return true
	})
}

func TestAssemble_SolverFailurePropagates(t *testing.T) {
	m, err := frontier.Assemble(threeDMU(), frontier.Config{Loss: frontier.LeastSquares()})
	require.NoError(t, err)

	solver := &stubSolver{}
	solver.On("Solve", mock.Anything, m).Return(&model.Solution{Status: model.StatusInfeasible}, nil).Once()

	sol, err := model.Solve(context.Background(), solver, m)
	assert.Nil(t, sol)
	var se *model.SolverError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, model.StatusInfeasible, se.Status)
	solver.AssertExpectations(t)
}

func TestAssemble_Quantile(t *testing.T) {
	m, err := frontier.Assemble(threeDMU(), frontier.Config{Loss: frontier.Quantile(0.5)})
	require.NoError(t, err)

	assert.Equal(t, "CQR", m.Name())
	assert.Equal(t, []string{"alpha", "beta", "ep", "em"}, blockNames(m))
	assert.Equal(t, model.NonNegative, block(t, m, "ep").Bounds())
	assert.Equal(t, model.NonNegative, block(t, m, "em").Bounds())
	_, hasE := m.Variables().Block("e")
	assert.False(t, hasE)

	assert.Equal(t, "regression[0]: alpha[0] + beta[0] + ep[0] - em[0] = 1", rows(t, m, frontier.FamilyRegression)[0])

	obj := m.Objective()
	assert.False(t, obj.IsQuadratic())
	require.Len(t, obj.Linear.Terms, 6)
	ep, em := block(t, m, "ep"), block(t, m, "em")
	for i := 0; i < 3; i++ {
		assert.Equal(t, model.Term{Var: ep.ID(i, 0), Coef: 0.5}, obj.Linear.Terms[i])
		assert.Equal(t, model.Term{Var: em.ID(i, 0), Coef: 0.5}, obj.Linear.Terms[3+i])
	}

	// 0.5·Σep + 0.5·Σem at ep = (1,0,2), em = (0,3,0)
	values := make([]float64, m.NumVariables())
	values[ep.ID(0, 0)], values[ep.ID(2, 0)], values[em.ID(1, 0)] = 1, 2, 3
	assert.InDelta(t, 3.0, obj.Evaluate(values), 1e-12)
}

func TestAssemble_Expectile(t *testing.T) {
	m, err := frontier.Assemble(threeDMU(), frontier.Config{Loss: frontier.Expectile(0.3)})
	require.NoError(t, err)

	assert.Equal(t, "CER", m.Name())
	obj := m.Objective()
	require.Len(t, obj.Quadratic, 6)
	assert.InDelta(t, 0.3, obj.Quadratic[0].Coef, 1e-15)
	assert.InDelta(t, 0.7, obj.Quadratic[5].Coef, 1e-15)
	assert.Equal(t, block(t, m, "em").ID(2, 0), obj.Quadratic[5].I)
}

func TestAssemble_CostFrontierFlipsConcavity(t *testing.T) {
	m, err := frontier.Assemble(threeDMU(), frontier.Config{Frontier: frontier.Cost})
	require.NoError(t, err)

	f, ok := m.Family(frontier.FamilyConcavity)
	require.True(t, ok)
	for c := range f.All() {
		assert.Equal(t, model.GE, c.Sense)
	}
}

func TestAssemble_VectorInputs(t *testing.T) {
	data := frontier.Data{
		X: shape.Vectors([][]float64{{1, 2}, {2, 1}, {3, 3}}),
		Y: shape.Scalars([]float64{1, 2, 2}),
	}
	m, err := frontier.Assemble(data, frontier.Config{})
	require.NoError(t, err)

	beta := block(t, m, "beta")
	assert.True(t, beta.Indexed())
	assert.Equal(t, 2, beta.Cols())
	assert.Equal(t, "regression[0]: alpha[0] + beta[0,0] + 2*beta[0,1] + e[0] = 1", rows(t, m, frontier.FamilyRegression)[0])
	assert.Equal(t, "concavity[1,0]: alpha[1] + 2*beta[1,0] + beta[1,1] - alpha[0] - 2*beta[0,0] - beta[0,1] <= 0",
		rows(t, m, frontier.FamilyConcavity)[2])
}

func TestAssemble_ScalarMatchesSingletonVector(t *testing.T) {
	scalar, err := frontier.Assemble(threeDMU(), frontier.Config{Loss: frontier.Quantile(0.25)})
	require.NoError(t, err)
	vector, err := frontier.Assemble(frontier.Data{
		X: shape.Vectors([][]float64{{1}, {2}, {3}}),
		Y: shape.Vectors([][]float64{{1}, {2}, {2}}),
	}, frontier.Config{Loss: frontier.Quantile(0.25)})
	require.NoError(t, err)

	assert.Equal(t, scalar.NumVariables(), vector.NumVariables())
	assert.Equal(t, scalar.NumConstraints(), vector.NumConstraints())
	assert.Equal(t, scalar.Fingerprint(), vector.Fingerprint())
	assert.Equal(t, rows(t, scalar, frontier.FamilyConcavity), rows(t, vector, frontier.FamilyConcavity))
}

func TestAssemble_Deterministic(t *testing.T) {
	cfg := frontier.Config{Loss: frontier.Expectile(0.9), ErrorModel: frontier.Multiplicative}
	a, err := frontier.Assemble(threeDMU(), cfg)
	require.NoError(t, err)
	b, err := frontier.Assemble(threeDMU(), cfg)
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
}

func TestAssemble_CopiesInput(t *testing.T) {
	x := []float64{1, 2, 3}
	data := frontier.Data{X: shape.Scalars(x), Y: shape.Scalars([]float64{1, 2, 2})}
	m, err := frontier.Assemble(data, frontier.Config{})
	require.NoError(t, err)
	before := m.Fingerprint()

	x[0] = 100
	assert.Equal(t, before, m.Fingerprint())
}

func TestAssemble_ShapeErrorsAreAtomic(t *testing.T) {
	data := frontier.Data{
		X: shape.Vectors([][]float64{{1, 2}, {2}}),
		Y: shape.Scalars([]float64{1, 2}),
	}
	m, err := frontier.Assemble(data, frontier.Config{})
	assert.Nil(t, m)
	assert.ErrorIs(t, err, shape.ErrRagged)
}

func TestAssemble_LogModelNeedsPositiveOutputs(t *testing.T) {
	data := frontier.Data{X: shape.Scalars([]float64{1, 2}), Y: shape.Scalars([]float64{1, 0})}
	m, err := frontier.Assemble(data, frontier.Config{ErrorModel: frontier.Multiplicative})
	assert.Nil(t, m)
	assert.ErrorIs(t, err, shape.ErrDomain)
}

type stubSolver struct {
	mock.Mock
}

func (s *stubSolver) Solve(ctx context.Context, m *model.Model) (*model.Solution, error) {
	args := s.Called(ctx, m)
	sol, _ := args.Get(0).(*model.Solution)
	return sol, args.Error(1)
}
