package frontier

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stoned/shape"
)

func TestMetrics_RecordsAssemblies(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	met, err := NewMetrics(reg)
	require.NoError(t, err)

	data := Data{X: shape.Scalars([]float64{1, 2, 3}), Y: shape.Scalars([]float64{1, 2, 2})}
	_, err = Assemble(data, Config{}, WithMetrics(met))
	require.NoError(t, err)
	_, err = Assemble(data, Config{Loss: Quantile(0)}, WithMetrics(met))
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(met.assemblies.WithLabelValues("CNLS", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(met.assemblies.WithLabelValues(unknownModel, "error")))
	assert.Equal(t, 9.0, testutil.ToFloat64(met.variables.WithLabelValues("CNLS")))
	assert.Equal(t, 3.0, testutil.ToFloat64(met.constraints.WithLabelValues("CNLS", FamilyRegression)))
	assert.Equal(t, 6.0, testutil.ToFloat64(met.constraints.WithLabelValues("CNLS", FamilyConcavity)))
	assert.Equal(t, 1, testutil.CollectAndCount(met.duration))
}

func TestMetrics_DoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)
	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var met *Metrics
	assert.NotPanics(t, func() { met.fail("CNLS") })
}
