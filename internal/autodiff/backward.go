package autodiff

import "github.com/born-ml/gradgraph/internal/autodiff/ops"

// Backward accumulates d(root)/d(node) into the gradient of every node
// reachable from root.
//
// Algorithm:
//  1. Build the reverse post-order from root (see Order)
//  2. Validate every operator node before touching any gradient
//  3. Start this pass with zero for every node and 1 for root
//  4. Walk the order front to back; each operator node adds
//     grad * (local derivative) into both operands
//  5. Commit: root's gradient becomes 1, every other node adds this pass's value
//
// Gradients accumulate across calls. Running Backward twice on the same root
// without ZeroGrad in between doubles every non-root gradient; root stays 1.
// On error no gradient is modified.
func (g *Graph) Backward(root NodeID, opts ...Option) error {
	cfg := newBackwardConfig(opts)

	order, err := g.Order(root)
	if err != nil {
		return err
	}

	rules, err := g.rules(order)
	if err != nil {
		return err
	}

	pass := make(map[NodeID]float32, len(order))
	pass[root] = 1

	for i, id := range order {
		rule := rules[i]
		if rule == nil {
			continue // leaf
		}
		n := &g.nodes[id]
		left, right := n.operands[0], n.operands[1]
		grad := pass[id]

		gradLeft, gradRight := rule.Backward(grad, g.nodes[left].value, g.nodes[right].value)
		pass[left] += gradLeft
		pass[right] += gradRight

		if cfg.trace != nil {
			cfg.trace(TraceStep{
				Node:      id,
				Op:        n.op,
				Grad:      grad,
				Left:      left,
				Right:     right,
				LeftGrad:  gradLeft,
				RightGrad: gradRight,
			})
		}
	}

	for _, id := range order {
		if id == root {
			g.nodes[id].grad = 1
			continue
		}
		g.nodes[id].grad += pass[id]
	}
	return nil
}

// rules resolves the derivative rule for each node in order; nil marks a leaf.
func (g *Graph) rules(order []NodeID) ([]ops.Operation, error) {
	rules := make([]ops.Operation, len(order))
	for i, id := range order {
		n := g.nodes[id]
		if n.op.IsLeaf() {
			if len(n.operands) != 0 {
				return nil, &InvariantError{Node: id, Op: n.op, Operands: len(n.operands), Want: 0}
			}
			continue
		}
		rule, ok := ops.Lookup(n.op)
		if !ok {
			return nil, &UnsupportedOpError{Node: id, Op: n.op}
		}
		if len(n.operands) != 2 {
			return nil, &InvariantError{Node: id, Op: n.op, Operands: len(n.operands), Want: 2}
		}
		rules[i] = rule
	}
	return rules, nil
}

// ZeroGrad resets the gradient of every node reachable from root to zero.
func (g *Graph) ZeroGrad(root NodeID) error {
	nodes, err := g.Nodes(root)
	if err != nil {
		return err
	}
	for _, id := range nodes {
		g.nodes[id].grad = 0
	}
	return nil
}
