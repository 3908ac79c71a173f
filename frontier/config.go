package frontier

import (
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/stoned/direction"
	"github.com/katalvlaran/stoned/shape"
)

// Frontier selects the orientation of the concavity inequality.
type Frontier uint8

const (
	Production Frontier = iota // concave frontier, support functions dominate from above
	Cost                       // convex frontier, support functions dominate from below
)

func (f Frontier) String() string {
	switch f {
	case Production:
		return "production"
	case Cost:
		return "cost"
	default:
		return "frontier(" + strconv.Itoa(int(f)) + ")"
	}
}

// ErrorModel selects additive or multiplicative (log) composite errors.
type ErrorModel uint8

const (
	Additive ErrorModel = iota
	Multiplicative
)

func (m ErrorModel) String() string {
	switch m {
	case Additive:
		return "additive"
	case Multiplicative:
		return "multiplicative"
	default:
		return "errormodel(" + strconv.Itoa(int(m)) + ")"
	}
}

// ReturnsToScale controls the intercept alpha.
type ReturnsToScale uint8

const (
	VariableRTS ReturnsToScale = iota // intercept present
	ConstantRTS                       // frontier through the origin
)

func (r ReturnsToScale) String() string {
	switch r {
	case VariableRTS:
		return "vrs"
	case ConstantRTS:
		return "crs"
	default:
		return "rts(" + strconv.Itoa(int(r)) + ")"
	}
}

// LossKind names a loss family.
type LossKind uint8

const (
	LossLeastSquares LossKind = iota
	LossQuantile
	LossExpectile
)

func (k LossKind) String() string {
	switch k {
	case LossLeastSquares:
		return "ls"
	case LossQuantile:
		return "quantile"
	case LossExpectile:
		return "expectile"
	default:
		return "loss(" + strconv.Itoa(int(k)) + ")"
	}
}

// Loss is a loss family plus its τ (ignored for least squares).
type Loss struct {
	Kind LossKind
	Tau  float64
}

// LeastSquares is Σ e².
func LeastSquares() Loss { return Loss{Kind: LossLeastSquares} }

// Quantile is τ·Σ ep + (1-τ)·Σ em.
func Quantile(tau float64) Loss { return Loss{Kind: LossQuantile, Tau: tau} }

// Expectile is τ·Σ ep² + (1-τ)·Σ em².
func Expectile(tau float64) Loss { return Loss{Kind: LossExpectile, Tau: tau} }

func (l Loss) String() string {
	if l.Kind == LossLeastSquares {
		return l.Kind.String()
	}

	return l.Kind.String() + "(" + strconv.FormatFloat(l.Tau, 'g', -1, 64) + ")"
}

// Config holds the configuration axes of one assembly.
// A non-nil Direction selects the directional distance formulation.
type Config struct {
	Frontier       Frontier
	ErrorModel     ErrorModel
	ReturnsToScale ReturnsToScale
	Loss           Loss
	Direction      *direction.Spec
}

// Validate checks every axis value; it does not check combinations.
func (c Config) Validate() error {
	if c.Frontier > Cost {
		return &ConfigError{Field: "frontier", Value: c.Frontier.String(), Err: ErrUnsupported}
	}
	if c.ErrorModel > Multiplicative {
		return &ConfigError{Field: "error_model", Value: c.ErrorModel.String(), Err: ErrUnsupported}
	}
	if c.ReturnsToScale > ConstantRTS {
		return &ConfigError{Field: "rts", Value: c.ReturnsToScale.String(), Err: ErrUnsupported}
	}
	switch c.Loss.Kind {
	case LossLeastSquares:
	case LossQuantile, LossExpectile:
		if math.IsNaN(c.Loss.Tau) || c.Loss.Tau <= 0 || c.Loss.Tau >= 1 {
			return &ConfigError{Field: "tau", Value: strconv.FormatFloat(c.Loss.Tau, 'g', -1, 64), Err: ErrInvalidTau}
		}
	default:
		return &ConfigError{Field: "loss", Value: c.Loss.Kind.String(), Err: ErrUnsupported}
	}

	return nil
}

// Data is the observed dataset. Weights, when non-empty, is the n×n prior
// weight matrix of the isotonic formulations.
type Data struct {
	Y, X, B shape.Column
	Weights [][]float64
}

// ParseFrontier accepts "production"/"prod" and "cost".
func ParseFrontier(s string) (Frontier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return Production, nil
	case "cost":
		return Cost, nil
	}

	return 0, &ConfigError{Field: "frontier", Value: s, Err: ErrUnsupported}
}

// ParseErrorModel accepts "additive"/"addi" and "multiplicative"/"mult".
func ParseErrorModel(s string) (ErrorModel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "additive", "addi":
		return Additive, nil
	case "multiplicative", "mult":
		return Multiplicative, nil
	}

	return 0, &ConfigError{Field: "error_model", Value: s, Err: ErrUnsupported}
}

// ParseReturnsToScale accepts "vrs"/"variable" and "crs"/"constant".
func ParseReturnsToScale(s string) (ReturnsToScale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vrs", "variable":
		return VariableRTS, nil
	case "crs", "constant":
		return ConstantRTS, nil
	}

	return 0, &ConfigError{Field: "rts", Value: s, Err: ErrUnsupported}
}

// ParseLoss accepts "ls"/"least_squares", "quantile" and "expectile"; tau is
// used by the latter two and range-checked by Config.Validate.
func ParseLoss(s string, tau float64) (Loss, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ls", "least_squares", "":
		return LeastSquares(), nil
	case "quantile":
		return Quantile(tau), nil
	case "expectile":
		return Expectile(tau), nil
	}

	return Loss{}, &ConfigError{Field: "loss", Value: s, Err: ErrUnsupported}
}
