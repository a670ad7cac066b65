// Package autodiff implements reverse-mode automatic differentiation over
// scalar float32 values.
//
// Architecture:
//   - Graph: an arena of nodes addressed by NodeID; operands are stored as ids
//   - Operators (Add, Sub, Mul, Div): build a new node from two existing ones
//   - Backward: walks the reverse post-order from a root and accumulates
//     gradients with the rules from package ops
//
// Usage:
//
//	g := autodiff.New()
//	x := g.Leaf(3)
//	y, _ := g.Mul(x, x) // y = x²
//
//	_ = g.Backward(y)
//	fmt.Println(g.Grad(x)) // dy/dx = 2x = 6
//
// Nodes are never modified structurally after construction; only gradients
// change, and only through Backward and ZeroGrad.
package autodiff

import (
	"fmt"

	"github.com/born-ml/gradgraph/internal/autodiff/ops"
)

// NodeID addresses a node inside its Graph. It is the node's identity:
// two distinct nodes may hold equal values but never share an id.
type NodeID int

// Op identifies the operator that produced a node.
type Op = ops.Op

// Operator tags.
const (
	OpNone = ops.None
	OpAdd  = ops.Add
	OpSub  = ops.Sub
	OpMul  = ops.Mul
	OpDiv  = ops.Div
)

type node struct {
	value    float32
	grad     float32
	op       Op
	operands []NodeID // [left, right] for operators, empty for leaves
}

// Graph owns every node of one or more expressions.
// A Graph is not safe for concurrent use.
type Graph struct {
	nodes []node
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make([]node, 0, 64), // Pre-allocate for common case
	}
}

// Len returns the number of nodes allocated in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Leaf adds a constant or variable node.
func (g *Graph) Leaf(value float32) NodeID {
	g.nodes = append(g.nodes, node{value: value})
	return NodeID(len(g.nodes) - 1)
}

// Add returns a new node a + b.
func (g *Graph) Add(a, b NodeID) (NodeID, error) {
	return g.Apply(OpAdd, a, b)
}

// Sub returns a new node a - b.
func (g *Graph) Sub(a, b NodeID) (NodeID, error) {
	return g.Apply(OpSub, a, b)
}

// Mul returns a new node a * b.
func (g *Graph) Mul(a, b NodeID) (NodeID, error) {
	return g.Apply(OpMul, a, b)
}

// Div returns a new node a / b.
// A zero divisor yields an *ArithmeticError and no node is allocated.
func (g *Graph) Div(a, b NodeID) (NodeID, error) {
	return g.Apply(OpDiv, a, b)
}

// Apply builds a node for the binary operator op over operands (a, b).
// Operand order is preserved. Neither operand is modified.
func (g *Graph) Apply(op Op, a, b NodeID) (NodeID, error) {
	operation, ok := ops.Lookup(op)
	if !ok {
		return -1, &UnsupportedOpError{Node: -1, Op: op}
	}
	if err := g.check(a); err != nil {
		return -1, err
	}
	if err := g.check(b); err != nil {
		return -1, err
	}

	left, right := g.nodes[a].value, g.nodes[b].value
	value, err := operation.Forward(left, right)
	if err != nil {
		return -1, &ArithmeticError{Op: op, Left: left, Right: right, Err: err}
	}

	g.nodes = append(g.nodes, node{
		value:    value,
		op:       op,
		operands: []NodeID{a, b},
	})
	return NodeID(len(g.nodes) - 1), nil
}

// Contains reports whether id was allocated by g.
func (g *Graph) Contains(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

func (g *Graph) check(id NodeID) error {
	if !g.Contains(id) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	return nil
}

// Value returns the forward value of id. It panics if id is not in g.
func (g *Graph) Value(id NodeID) float32 {
	return g.nodes[id].value
}

// Grad returns the accumulated gradient of id. It panics if id is not in g.
func (g *Graph) Grad(id NodeID) float32 {
	return g.nodes[id].grad
}

// Op returns the operator that produced id, OpNone for leaves.
func (g *Graph) Op(id NodeID) Op {
	return g.nodes[id].op
}

// Operands returns a copy of the operand ids of id, (left, right) for
// operator nodes and nil for leaves.
func (g *Graph) Operands(id NodeID) []NodeID {
	operands := g.nodes[id].operands
	if len(operands) == 0 {
		return nil
	}
	out := make([]NodeID, len(operands))
	copy(out, operands)
	return out
}

// NodeView is a read-only copy of a node's display fields.
type NodeView struct {
	ID       NodeID
	Value    float32
	Grad     float32
	Op       Op
	Operands []NodeID
}

// Node returns a read-only view of id.
func (g *Graph) Node(id NodeID) (NodeView, error) {
	if err := g.check(id); err != nil {
		return NodeView{}, err
	}
	n := g.nodes[id]
	return NodeView{
		ID:       id,
		Value:    n.value,
		Grad:     n.grad,
		Op:       n.op,
		Operands: g.Operands(id),
	}, nil
}

// Format returns a short debug form of id, e.g. "Value(50.00, *)".
func (g *Graph) Format(id NodeID) string {
	if !g.Contains(id) {
		return fmt.Sprintf("Value(<unknown %d>)", id)
	}
	n := g.nodes[id]
	if n.op.IsLeaf() {
		return fmt.Sprintf("Value(%.2f)", n.value)
	}
	return fmt.Sprintf("Value(%.2f, %s)", n.value, n.op)
}
