package autodiff

import "fmt"

// This file exposes the read-only enumeration used by diagram export.

// Edge is one operand relationship: Child is an operand of Parent.
type Edge struct {
	Child  NodeID
	Parent NodeID
}

// Nodes returns every node reachable from root, each exactly once, in
// pre-order (root first, left operand before right).
func (g *Graph) Nodes(root NodeID) ([]NodeID, error) {
	if err := g.check(root); err != nil {
		return nil, err
	}

	visited := make(map[NodeID]bool)
	var out []NodeID
	stack := []NodeID{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[id] {
			continue
		}
		visited[id] = true
		out = append(out, id)

		operands := g.nodes[id].operands
		for i := len(operands) - 1; i >= 0; i-- {
			if !g.Contains(operands[i]) {
				return nil, fmt.Errorf("%w: node %d references unknown operand %d", ErrGraphInvariant, id, operands[i])
			}
			if !visited[operands[i]] {
				stack = append(stack, operands[i])
			}
		}
	}
	return out, nil
}

// Edges returns one edge per operand slot of every node reachable from root.
// A node used twice by the same parent (x*x) yields two identical edges.
func (g *Graph) Edges(root NodeID) ([]Edge, error) {
	nodes, err := g.Nodes(root)
	if err != nil {
		return nil, err
	}
	var edges []Edge
	for _, id := range nodes {
		for _, operand := range g.nodes[id].operands {
			edges = append(edges, Edge{Child: operand, Parent: id})
		}
	}
	return edges, nil
}
