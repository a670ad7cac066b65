package ops

import "errors"

// ErrDivisionByZero is returned by DivOp.Forward for a zero divisor.
var ErrDivisionByZero = errors.New("division by zero")

// negateGradient returns the gradient flowing through a negated path.
func negateGradient(grad float32) float32 {
	return -grad
}
