package ops

// MulOp represents scalar multiplication: output = a * b.
//
// Backward pass:
//   - d(a*b)/da = b, so grad_a = outputGrad * b
//   - d(a*b)/db = a, so grad_b = outputGrad * a
type MulOp struct{}

// Forward returns a * b.
func (MulOp) Forward(a, b float32) (float32, error) {
	return a * b, nil
}

// Backward computes operand gradients for multiplication.
func (MulOp) Backward(outputGrad, a, b float32) (float32, float32) {
	return outputGrad * b, outputGrad * a
}
