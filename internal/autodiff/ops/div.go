package ops

// DivOp represents scalar division: output = a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b, so grad_a = outputGrad / b
//   - d(a/b)/db = -a/b², so grad_b = -outputGrad * a / b²
type DivOp struct{}

// Forward returns a / b, or ErrDivisionByZero when b is zero.
func (DivOp) Forward(a, b float32) (float32, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Backward computes operand gradients for division.
// The divisor is non-zero for every node built through Forward.
func (DivOp) Backward(outputGrad, a, b float32) (float32, float32) {
	gradA := outputGrad / b

	// grad_b = -(outputGrad * a) / (b * b)
	gradB := negateGradient(outputGrad * a / (b * b))

	return gradA, gradB
}
