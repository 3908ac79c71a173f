package frontier

import "fmt"

type formulation uint8

const (
	standard formulation = iota
	directional
)

func (f formulation) String() string {
	if f == directional {
		return "directional"
	}

	return "standard"
}

// registryKey is the full configuration tuple minus frontier orientation,
// which every entry supports.
type registryKey struct {
	formulation formulation
	errorModel  ErrorModel
	rts         ReturnsToScale
	loss        LossKind
	undesirable bool
	isotonic    bool
}

func (k registryKey) String() string {
	return fmt.Sprintf("%s/%s/%s/%s/undesirable=%t/isotonic=%t",
		k.formulation, k.errorModel, k.rts, k.loss, k.undesirable, k.isotonic)
}

// recipe names a supported model and lists its constraint families in order.
type recipe struct {
	name     string
	families []familyBuilder
}

var registry = buildRegistry()

func buildRegistry() map[registryKey]recipe {
	r := make(map[registryKey]recipe)
	losses := []LossKind{LossLeastSquares, LossQuantile, LossExpectile}

	for _, loss := range losses {
		for _, iso := range []bool{false, true} {
			r[registryKey{standard, Additive, VariableRTS, loss, false, iso}] = recipe{
				name:     modelName(loss, iso, ""),
				families: []familyBuilder{additiveRegression{}, concavity{}},
			}
			for _, rts := range []ReturnsToScale{VariableRTS, ConstantRTS} {
				r[registryKey{standard, Multiplicative, rts, loss, false, iso}] = recipe{
					name:     modelName(loss, iso, ""),
					families: []familyBuilder{logRegression{}, frontierLink{}, concavity{}},
				}
			}
		}
		for _, und := range []bool{false, true} {
			r[registryKey{directional, Additive, VariableRTS, loss, und, false}] = recipe{
				name:     modelName(loss, false, "-DDF"),
				families: []familyBuilder{directionalRegression{}, translation{}, concavity{}},
			}
		}
	}

	return r
}

func modelName(loss LossKind, isotonic bool, suffix string) string {
	base := map[LossKind]string{LossLeastSquares: "CNLS", LossQuantile: "CQR", LossExpectile: "CER"}[loss]
	if isotonic {
		base = "I" + base
	}

	return base + suffix
}

// Supported lists every registry key as a readable string, sorted by
// declaration order of the axes. Intended for diagnostics and CLI help.
func Supported() []string {
	out := make([]string, 0, len(registry))
	for _, f := range []formulation{standard, directional} {
		for _, em := range []ErrorModel{Additive, Multiplicative} {
			for _, rts := range []ReturnsToScale{VariableRTS, ConstantRTS} {
				for _, loss := range []LossKind{LossLeastSquares, LossQuantile, LossExpectile} {
					for _, und := range []bool{false, true} {
						for _, iso := range []bool{false, true} {
							k := registryKey{f, em, rts, loss, und, iso}
							if rc, ok := registry[k]; ok {
								out = append(out, rc.name+" "+k.String())
							}
						}
					}
				}
			}
		}
	}

	return out
}
