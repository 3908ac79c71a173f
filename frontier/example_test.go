package frontier_test

import (
	"fmt"

	"github.com/katalvlaran/stoned/frontier"
	"github.com/katalvlaran/stoned/shape"
)

// ExampleAssemble builds CNLS for three DMUs and prints every row.
func ExampleAssemble() {
	m, err := frontier.Assemble(frontier.Data{
		X: shape.Scalars([]float64{1, 2, 3}),
		Y: shape.Scalars([]float64{1, 2, 2}),
	}, frontier.Config{Loss: frontier.LeastSquares()})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(m.Name(), m.NumVariables(), m.NumConstraints())
	for c := range m.Constraints() {
		fmt.Println(c.Format(m.Variables()))
	}
	// Output:
	// CNLS 9 9
	// regression[0]: alpha[0] + beta[0] + e[0] = 1
	// regression[1]: alpha[1] + 2*beta[1] + e[1] = 2
	// regression[2]: alpha[2] + 3*beta[2] + e[2] = 2
	// concavity[0,1]: alpha[0] + beta[0] - alpha[1] - beta[1] <= 0
	// concavity[0,2]: alpha[0] + beta[0] - alpha[2] - beta[2] <= 0
	// concavity[1,0]: alpha[1] + 2*beta[1] - alpha[0] - 2*beta[0] <= 0
	// concavity[1,2]: alpha[1] + 2*beta[1] - alpha[2] - 2*beta[2] <= 0
	// concavity[2,0]: alpha[2] + 3*beta[2] - alpha[0] - 3*beta[0] <= 0
	// concavity[2,1]: alpha[2] + 3*beta[2] - alpha[1] - 3*beta[1] <= 0
}

// ExampleSupported prints the first registry entries.
func ExampleSupported() {
	for _, s := range frontier.Supported()[:2] {
		fmt.Println(s)
	}
	// Output:
	// CNLS standard/additive/vrs/ls/undesirable=false/isotonic=false
	// ICNLS standard/additive/vrs/ls/undesirable=false/isotonic=true
}
