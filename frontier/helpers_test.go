package frontier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoned/frontier"
	"github.com/katalvlaran/stoned/model"
	"github.com/katalvlaran/stoned/shape"
)

// threeDMU is the n=3 scalar dataset x=[1,2,3], y=[1,2,2].
func threeDMU() frontier.Data {
	return frontier.Data{
		X: shape.Scalars([]float64{1, 2, 3}),
		Y: shape.Scalars([]float64{1, 2, 2}),
	}
}

// rows renders every row of family with variable labels.
func rows(t *testing.T, m *model.Model, family string) []string {
	t.Helper()
	f, ok := m.Family(family)
	require.True(t, ok, "family %s missing", family)

	out := make([]string, 0, f.Len())
	for c := range f.All() {
		out = append(out, c.Format(m.Variables()))
	}
	require.Len(t, out, f.Len(), "Len must match the rows yielded")

	return out
}

// blockNames lists the declared blocks in order.
func blockNames(m *model.Model) []string {
	var out []string
	for _, b := range m.Variables().Blocks() {
		out = append(out, b.Name())
	}

	return out
}

// familyNames lists the constraint families in order.
func familyNames(m *model.Model) []string {
	var out []string
	for _, f := range m.Families() {
		out = append(out, f.Name())
	}

	return out
}

// block fetches a block by name or fails the test.
func block(t *testing.T, m *model.Model, name string) *model.Block {
	t.Helper()
	b, ok := m.Variables().Block(name)
	require.True(t, ok, "block %s missing", name)

	return b
}

// assign builds a value vector from per-block constants.
func assign(m *model.Model, perBlock map[string]float64) []float64 {
	values := make([]float64, m.NumVariables())
	for _, b := range m.Variables().Blocks() {
		for k := 0; k < b.Len(); k++ {
			values[int(b.Offset())+k] = perBlock[b.Name()]
		}
	}

	return values
}
