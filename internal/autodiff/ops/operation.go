// Package ops defines the scalar operators of the expression graph and their
// local derivative rules.
//
// Each operator implements the Operation interface, which provides:
//   - Forward: the arithmetic result computed when the node is built
//   - Backward: operand gradients given the node's gradient (chain rule)
//
// Supported operators:
//   - AddOp: addition (d(a+b)/da = 1, d(a+b)/db = 1)
//   - SubOp: subtraction (d(a-b)/da = 1, d(a-b)/db = -1)
//   - MulOp: multiplication (d(a*b)/da = b, d(a*b)/db = a)
//   - DivOp: division (d(a/b)/da = 1/b, d(a/b)/db = -a/b²)
package ops

import "strconv"

// Op identifies the operator that produced a node. None marks a leaf.
type Op uint8

// Operator tags.
const (
	None Op = iota
	Add
	Sub
	Mul
	Div
)

// String returns the operator symbol, or "" for a leaf.
func (o Op) String() string {
	switch o {
	case None:
		return ""
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return "op(" + strconv.Itoa(int(o)) + ")"
	}
}

// Name returns the lowercase operator name used in expression documents.
func (o Op) Name() string {
	switch o {
	case None:
		return "leaf"
	case Add:
		return "add"
	case Sub:
		return "sub"
	case Mul:
		return "mul"
	case Div:
		return "div"
	default:
		return "op(" + strconv.Itoa(int(o)) + ")"
	}
}

// IsLeaf reports whether o marks a leaf node.
func (o Op) IsLeaf() bool {
	return o == None
}

// Operation is a binary scalar operator with a local derivative rule.
type Operation interface {
	// Forward computes the node value from its operand values.
	Forward(left, right float32) (float32, error)

	// Backward computes operand gradient contributions given the node gradient.
	//
	// Example for AddOp:
	//   outputGrad: dL/d(a+b)
	//   returns: (dL/d(a+b), dL/d(a+b)) (gradient flows equally to both operands)
	Backward(outputGrad, left, right float32) (gradLeft, gradRight float32)
}

var registry = map[Op]Operation{
	Add: AddOp{},
	Sub: SubOp{},
	Mul: MulOp{},
	Div: DivOp{},
}

// Lookup returns the Operation registered for op.
// The second result is false for leaves and unknown tags.
func Lookup(op Op) (Operation, bool) {
	o, ok := registry[op]
	return o, ok
}

// Parse maps an operator name or symbol ("add" or "+") to its tag.
func Parse(s string) (Op, bool) {
	for op := Add; op <= Div; op++ {
		if s == op.Name() || s == op.String() {
			return op, true
		}
	}
	return None, false
}
