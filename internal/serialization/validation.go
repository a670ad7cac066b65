package serialization

import "fmt"

// Validation limits for resource protection.
const (
	MaxPayloadSize = 256 * 1024 * 1024 // 256MB - maximum MessagePack payload
	MaxNodeCount   = 10_000_000        // Maximum number of nodes in a snapshot
)

var validOps = map[string]bool{"": true, "+": true, "-": true, "*": true, "/": true}

// ValidateSnapshot checks that s describes a well-formed graph:
//   - node ids are unique and the root is among them
//   - operator symbols are known
//   - every edge references known nodes
//   - operator nodes have exactly two operand edges, leaves none
//   - labels reference known nodes
func ValidateSnapshot(s *Snapshot) error {
	if s == nil {
		return &ValidationError{Type: "nil_snapshot", Node: -1, Details: "snapshot is nil"}
	}
	if len(s.Nodes) > MaxNodeCount {
		return &ValidationError{
			Type:    "too_many_nodes",
			Node:    -1,
			Details: fmt.Sprintf("got %d, max %d", len(s.Nodes), MaxNodeCount),
		}
	}

	byID := make(map[int64]NodeRecord, len(s.Nodes))
	for _, n := range s.Nodes {
		if _, dup := byID[n.ID]; dup {
			return &ValidationError{Type: "duplicate_node", Node: n.ID, Details: "id listed twice"}
		}
		if !validOps[n.Op] {
			return &ValidationError{Type: "unknown_op", Node: n.ID, Details: fmt.Sprintf("operator %q", n.Op)}
		}
		byID[n.ID] = n
	}

	if _, ok := byID[s.Root]; !ok {
		return &ValidationError{Type: "missing_root", Node: s.Root, Details: "root is not among the nodes"}
	}

	operands := make(map[int64]int, len(s.Nodes))
	for _, e := range s.Edges {
		if _, ok := byID[e.Child]; !ok {
			return &ValidationError{Type: "unknown_node", Node: e.Child, Details: fmt.Sprintf("edge to parent %d", e.Parent)}
		}
		if _, ok := byID[e.Parent]; !ok {
			return &ValidationError{Type: "unknown_node", Node: e.Parent, Details: fmt.Sprintf("edge from child %d", e.Child)}
		}
		operands[e.Parent]++
	}

	for _, n := range s.Nodes {
		want := 2
		if n.IsLeaf() {
			want = 0
		}
		if got := operands[n.ID]; got != want {
			return &ValidationError{
				Type:    "operand_count",
				Node:    n.ID,
				Details: fmt.Sprintf("%d operand edges, want %d", got, want),
			}
		}
	}

	for name, id := range s.Labels {
		if _, ok := byID[id]; !ok {
			return &ValidationError{Type: "unknown_label", Node: id, Details: fmt.Sprintf("label %q", name)}
		}
	}
	return nil
}
