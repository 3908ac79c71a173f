package frontier

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/stoned/model"
)

const metricsNamespace = "stoned"

// Metrics records assembly outcomes. A nil *Metrics records nothing.
type Metrics struct {
	assemblies  *prometheus.CounterVec
	constraints *prometheus.CounterVec
	variables   *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		assemblies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "assemblies_total",
			Help:      "Model assemblies by model name and outcome.",
		}, []string{"model", "outcome"}),
		constraints: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "constraints_total",
			Help:      "Constraint rows generated, by model and family.",
		}, []string{"model", "family"}),
		variables: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "variables_total",
			Help:      "Decision variables declared, by model.",
		}, []string{"model"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "assembly_duration_seconds",
			Help:      "Wall time of successful assemblies.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"model"}),
	}
	for _, c := range []prometheus.Collector{m.assemblies, m.constraints, m.variables, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observe(mdl *model.Model, name string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.assemblies.WithLabelValues(name, "ok").Inc()
	m.variables.WithLabelValues(name).Add(float64(mdl.NumVariables()))
	for _, f := range mdl.Families() {
		m.constraints.WithLabelValues(name, f.Name()).Add(float64(f.Len()))
	}
	m.duration.WithLabelValues(name).Observe(elapsed.Seconds())
}

func (m *Metrics) fail(name string) {
	if m == nil {
		return
	}
	m.assemblies.WithLabelValues(name, "error").Inc()
}
