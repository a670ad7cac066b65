package ops

// AddOp represents scalar addition: output = a + b.
//
// Backward pass:
//   - d(a+b)/da = 1, so grad_a = outputGrad
//   - d(a+b)/db = 1, so grad_b = outputGrad
type AddOp struct{}

// Forward returns a + b.
func (AddOp) Forward(a, b float32) (float32, error) {
	return a + b, nil
}

// Backward computes operand gradients for addition.
// Since d(a+b)/da = d(a+b)/db = 1, the gradient flows equally to both operands.
func (AddOp) Backward(outputGrad, _, _ float32) (float32, float32) {
	return outputGrad, outputGrad
}
