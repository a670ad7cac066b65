package autodiff_test

import (
	"math"
	"testing"

	"github.com/born-ml/gradgraph/internal/autodiff"
	"github.com/stretchr/testify/require"
)

// numericalGradient computes the gradient using finite differences.
// f: function that takes a float64 and returns a float64.
// x: point at which to compute the gradient.
// epsilon: small value for finite difference.
func numericalGradient(f func(float64) float64, x, epsilon float64) float64 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

// expression builds the same function once on the graph and once in float64.
type expression struct {
	name  string
	build func(g *autodiff.Graph, x autodiff.NodeID) (autodiff.NodeID, error)
	eval  func(x float64) float64
	at    float32
}

var expressions = []expression{
	{
		name: "(x + 2) * 3",
		build: func(g *autodiff.Graph, x autodiff.NodeID) (autodiff.NodeID, error) {
			s, err := g.Add(x, g.Leaf(2))
			if err != nil {
				return 0, err
			}
			return g.Mul(s, g.Leaf(3))
		},
		eval: func(x float64) float64 { return (x + 2) * 3 },
		at:   5,
	},
	{
		name: "x*x - x/4",
		build: func(g *autodiff.Graph, x autodiff.NodeID) (autodiff.NodeID, error) {
			sq, err := g.Mul(x, x)
			if err != nil {
				return 0, err
			}
			q, err := g.Div(x, g.Leaf(4))
			if err != nil {
				return 0, err
			}
			return g.Sub(sq, q)
		},
		eval: func(x float64) float64 { return x*x - x/4 },
		at:   1.5,
	},
	{
		name: "1 / (x*x + 1)",
		build: func(g *autodiff.Graph, x autodiff.NodeID) (autodiff.NodeID, error) {
			sq, err := g.Mul(x, x)
			if err != nil {
				return 0, err
			}
			d, err := g.Add(sq, g.Leaf(1))
			if err != nil {
				return 0, err
			}
			return g.Div(g.Leaf(1), d)
		},
		eval: func(x float64) float64 { return 1 / (x*x + 1) },
		at:   0.75,
	},
	{
		name: "(x - 3) * (x + x) / x",
		build: func(g *autodiff.Graph, x autodiff.NodeID) (autodiff.NodeID, error) {
			a, err := g.Sub(x, g.Leaf(3))
			if err != nil {
				return 0, err
			}
			b, err := g.Add(x, x)
			if err != nil {
				return 0, err
			}
			m, err := g.Mul(a, b)
			if err != nil {
				return 0, err
			}
			return g.Div(m, x)
		},
		eval: func(x float64) float64 { return (x - 3) * (x + x) / x },
		at:   2.5,
	},
}

// TestNumericalGradient_Expressions compares Backward with finite differences.
func TestNumericalGradient_Expressions(t *testing.T) {
	const epsilon = 1e-4

	for _, e := range expressions {
		t.Run(e.name, func(t *testing.T) {
			g := autodiff.New()
			x := g.Leaf(e.at)
			root, err := e.build(g, x)
			require.NoError(t, err)

			require.InDelta(t, e.eval(float64(e.at)), float64(g.Value(root)), 1e-4)
			require.NoError(t, g.Backward(root))

			autodiffGrad := float64(g.Grad(x))
			numericalGrad := numericalGradient(e.eval, float64(e.at), epsilon)

			// 1% tolerance for float32 accumulation.
			if math.Abs(autodiffGrad-numericalGrad) > 0.01*math.Max(1, math.Abs(numericalGrad)) {
				t.Errorf("autodiff grad (%f) differs from numerical grad (%f)", autodiffGrad, numericalGrad)
			}
		})
	}
}
