package autodiff

import (
	"errors"
	"fmt"

	"github.com/born-ml/gradgraph/internal/autodiff/ops"
)

// Sentinel errors. Use errors.Is to match them through the typed errors below.
var (
	// ErrDivisionByZero is reported when a division node is built with a zero divisor.
	ErrDivisionByZero = ops.ErrDivisionByZero

	// ErrUnknownNode is returned for a NodeID that the graph did not allocate.
	ErrUnknownNode = errors.New("autodiff: unknown node")

	// ErrGraphInvariant is returned when a node's operand count does not match its operator.
	ErrGraphInvariant = errors.New("autodiff: graph invariant violated")

	// ErrUnsupportedOp is returned for an operator without a derivative rule.
	ErrUnsupportedOp = errors.New("autodiff: unsupported operation")
)

// ArithmeticError reports a forward evaluation failure while building a node.
type ArithmeticError struct {
	Op          Op
	Left, Right float32
	Err         error
}

// Error returns the error string.
func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("autodiff: %v %s %v: %v", e.Left, e.Op, e.Right, e.Err)
}

// Unwrap returns the underlying cause, e.g. ErrDivisionByZero.
func (e *ArithmeticError) Unwrap() error {
	return e.Err
}

// InvariantError reports a node whose operand count is inconsistent with its operator.
type InvariantError struct {
	Node     NodeID
	Op       Op
	Operands int
	Want     int
}

// Error returns the error string.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("autodiff: node %d (%s) has %d operands, want %d", e.Node, e.Op.Name(), e.Operands, e.Want)
}

// Is reports whether the target error matches ErrGraphInvariant.
func (e *InvariantError) Is(err error) bool {
	return err == ErrGraphInvariant
}

// UnsupportedOpError reports an operator tag with no derivative rule.
type UnsupportedOpError struct {
	Node NodeID // -1 when raised at construction time
	Op   Op
}

// Error returns the error string.
func (e *UnsupportedOpError) Error() string {
	if e.Node < 0 {
		return fmt.Sprintf("autodiff: operation %s not implemented", e.Op.Name())
	}
	return fmt.Sprintf("autodiff: node %d: operation %s not implemented", e.Node, e.Op.Name())
}

// Is reports whether the target error matches ErrUnsupportedOp.
func (e *UnsupportedOpError) Is(err error) bool {
	return err == ErrUnsupportedOp
}
