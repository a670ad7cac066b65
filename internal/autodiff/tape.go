package autodiff

import "fmt"

// Order returns the processing order of a backward pass from root: a
// reverse post-order, so every node appears before all of its operands.
//
// Algorithm:
//  1. Depth-first walk from root, marking nodes visited by id on first arrival
//  2. Append each node once all of its operands have been appended (post-order)
//  3. Reverse the list
//
// The walk uses an explicit stack, so deep chains do not recurse.
func (g *Graph) Order(root NodeID) ([]NodeID, error) {
	if err := g.check(root); err != nil {
		return nil, err
	}

	type frame struct {
		id   NodeID
		next int // index of the next operand to visit
	}

	visited := make(map[NodeID]bool)
	visited[root] = true
	post := make([]NodeID, 0, 16)
	stack := []frame{{id: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		operands := g.nodes[top.id].operands
		if top.next < len(operands) {
			child := operands[top.next]
			top.next++
			if !g.Contains(child) {
				return nil, fmt.Errorf("%w: node %d references unknown operand %d", ErrGraphInvariant, top.id, child)
			}
			if !visited[child] {
				visited[child] = true
				stack = append(stack, frame{id: child})
			}
			continue
		}
		post = append(post, top.id)
		stack = stack[:len(stack)-1]
	}

	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}
	return post, nil
}
