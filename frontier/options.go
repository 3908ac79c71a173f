package frontier

import "go.uber.org/zap"

// DefaultParallelism bounds AssembleAll when WithParallelism is not given.
const DefaultParallelism = 4

const (
	panicNilLogger   = "frontier: WithLogger: logger must be non-nil"
	panicEmptyName   = "frontier: WithName: name must be non-empty"
	panicParallelism = "frontier: WithParallelism: k must be >= 1"
)

// Option mutates assembly options. Constructors panic only on
// nonsensical values (programmer error).
type Option func(*Options)

// Options is the resolved option set; fields are unexported.
type Options struct {
	logger      *zap.Logger
	metrics     *Metrics
	name        string
	parallelism int
}

// WithLogger routes assembly logs to l. Default: zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithMetrics records assembly counters and durations into m. Default: none.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.metrics = m }
}

// WithName overrides the model name (default: the registry entry name, e.g. "CNLS").
func WithName(name string) Option {
	if name == "" {
		panic(panicEmptyName)
	}

	return func(o *Options) { o.name = name }
}

// WithParallelism bounds the number of concurrent assemblies in AssembleAll.
func WithParallelism(k int) Option {
	if k < 1 {
		panic(panicParallelism)
	}

	return func(o *Options) { o.parallelism = k }
}

func gatherOptions(opts ...Option) Options {
	o := Options{logger: zap.NewNop(), parallelism: DefaultParallelism}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
