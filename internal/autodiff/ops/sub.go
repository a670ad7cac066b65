package ops

// SubOp represents scalar subtraction: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1, so grad_a = outputGrad
//   - d(a-b)/db = -1, so grad_b = -outputGrad
type SubOp struct{}

// Forward returns a - b.
func (SubOp) Forward(a, b float32) (float32, error) {
	return a - b, nil
}

// Backward computes operand gradients for subtraction.
func (SubOp) Backward(outputGrad, _, _ float32) (float32, float32) {
	return outputGrad, negateGradient(outputGrad)
}
