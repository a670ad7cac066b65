package ops_test

import (
	"math"
	"testing"

	"github.com/born-ml/gradgraph/internal/autodiff/ops"
)

const (
	epsilonGrad = 1e-3
	tolerance   = 0.01 // 1% relative error tolerance for numerical gradients
)

// numericalPartials estimates (d f/d a, d f/d b) with central differences.
// Evaluation runs in float64 to keep the estimate well below float32 noise.
func numericalPartials(op ops.Operation, a, b float32) (float64, float64) {
	f := func(x, y float64) float64 {
		out, err := op.Forward(float32(x), float32(y))
		if err != nil {
			panic(err)
		}
		return float64(out)
	}
	x, y := float64(a), float64(b)
	da := (f(x+epsilonGrad, y) - f(x-epsilonGrad, y)) / (2 * epsilonGrad)
	db := (f(x, y+epsilonGrad) - f(x, y-epsilonGrad)) / (2 * epsilonGrad)
	return da, db
}

func relErr(got float32, want float64) float64 {
	diff := math.Abs(float64(got) - want)
	scale := math.Max(math.Abs(want), 1)
	return diff / scale
}

// TestNumericalGradient_AllOps checks every analytic rule against finite differences.
func TestNumericalGradient_AllOps(t *testing.T) {
	points := [][2]float32{{2, 3}, {-1.5, 4}, {0.5, -2}, {7, 0.25}}

	for _, op := range []ops.Op{ops.Add, ops.Sub, ops.Mul, ops.Div} {
		operation, _ := ops.Lookup(op)
		for _, p := range points {
			wantA, wantB := numericalPartials(operation, p[0], p[1])
			gotA, gotB := operation.Backward(1, p[0], p[1])

			if e := relErr(gotA, wantA); e > tolerance {
				t.Errorf("%s at %v: grad_a = %f, numerical %f (rel err %f)", op.Name(), p, gotA, wantA, e)
			}
			if e := relErr(gotB, wantB); e > tolerance {
				t.Errorf("%s at %v: grad_b = %f, numerical %f (rel err %f)", op.Name(), p, gotB, wantB, e)
			}
		}
	}
}
