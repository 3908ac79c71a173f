package frontier

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned for a configuration combination outside the registry.
	ErrUnsupported = errors.New("frontier: unsupported configuration")

	// ErrInvalidTau is returned when a quantile/expectile τ is not in (0, 1).
	ErrInvalidTau = errors.New("frontier: tau must lie in (0, 1)")

	// ErrInvalidWeights is returned when the isotonic weight matrix is not n×n and finite.
	ErrInvalidWeights = errors.New("frontier: invalid weight matrix")
)

// ConfigError names the configuration field that was rejected.
// It is always returned before any variable is declared.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s=%s: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
