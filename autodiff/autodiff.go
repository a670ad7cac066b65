// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar float32 values.
//
// Expressions are built on a Graph with Add, Sub, Mul and Div. Each call
// allocates one node and returns its NodeID; operands stay usable, so one
// node can feed many others. Backward then propagates d(root)/d(node) to
// every node reachable from the root.
//
// Example:
//
//	import "github.com/born-ml/gradgraph/autodiff"
//
//	func main() {
//	    g := autodiff.New()
//	    x := g.Leaf(2)
//	    p, _ := g.Add(x, x) // p = 2x
//	    q, _ := g.Mul(p, x) // q = 2x²
//
//	    if err := g.Backward(q); err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(g.Grad(x)) // dq/dx = 4x = 8
//	}
//
// Gradients accumulate across Backward calls; call ZeroGrad between passes
// to start fresh.
package autodiff

import (
	"github.com/born-ml/gradgraph/internal/autodiff"
)

// Graph is an arena holding the nodes of one or more expressions.
type Graph = autodiff.Graph

// NodeID identifies a node within its Graph.
type NodeID = autodiff.NodeID

// Op identifies the operator that produced a node.
type Op = autodiff.Op

// Operator tags.
const (
	OpNone = autodiff.OpNone
	OpAdd  = autodiff.OpAdd
	OpSub  = autodiff.OpSub
	OpMul  = autodiff.OpMul
	OpDiv  = autodiff.OpDiv
)

// NodeView is a read-only copy of a node.
type NodeView = autodiff.NodeView

// Edge links an operand (Child) to the node consuming it (Parent).
type Edge = autodiff.Edge

// Option configures a backward pass.
type Option = autodiff.Option

// TraceStep describes one propagation step of a backward pass.
type TraceStep = autodiff.TraceStep

// TraceFunc receives backward propagation steps.
type TraceFunc = autodiff.TraceFunc

// Error types.
type (
	ArithmeticError    = autodiff.ArithmeticError
	InvariantError     = autodiff.InvariantError
	UnsupportedOpError = autodiff.UnsupportedOpError
)

// Sentinel errors.
var (
	ErrDivisionByZero = autodiff.ErrDivisionByZero
	ErrUnknownNode    = autodiff.ErrUnknownNode
	ErrGraphInvariant = autodiff.ErrGraphInvariant
	ErrUnsupportedOp  = autodiff.ErrUnsupportedOp
)

// New creates an empty graph.
func New() *Graph {
	return autodiff.New()
}

// WithTrace installs a per-step hook on a backward pass.
func WithTrace(fn TraceFunc) Option {
	return autodiff.WithTrace(fn)
}
