package serialization

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diamond returns a snapshot of q = (x + x) * x after a backward pass at x = 2.
func diamond() *Snapshot {
	return &Snapshot{
		ID:       "test",
		Root:     2,
		Backward: true,
		Nodes: []NodeRecord{
			{ID: 2, Value: 8, Grad: 1, Op: "*"},
			{ID: 1, Value: 4, Grad: 2, Op: "+"},
			{ID: 0, Value: 2, Grad: 8},
		},
		Edges: []EdgeRecord{
			{Child: 1, Parent: 2},
			{Child: 0, Parent: 2},
			{Child: 0, Parent: 1},
			{Child: 0, Parent: 1},
		},
		Labels: map[string]int64{"x": 0, "p": 1, "q": 2},
	}
}

func TestValidateSnapshot_Valid(t *testing.T) {
	require.NoError(t, ValidateSnapshot(diamond()))
}

func TestValidateSnapshot_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(s *Snapshot)
		wantType string
	}{
		{"duplicate node", func(s *Snapshot) { s.Nodes = append(s.Nodes, NodeRecord{ID: 0}) }, "duplicate_node"},
		{"unknown op", func(s *Snapshot) { s.Nodes[1].Op = "^" }, "unknown_op"},
		{"missing root", func(s *Snapshot) { s.Root = 9 }, "missing_root"},
		{"dangling child", func(s *Snapshot) { s.Edges[0].Child = 7 }, "unknown_node"},
		{"dangling parent", func(s *Snapshot) { s.Edges[0].Parent = 7 }, "unknown_node"},
		{"missing operand", func(s *Snapshot) { s.Edges = s.Edges[:3] }, "operand_count"},
		{"leaf with operand", func(s *Snapshot) {
			s.Edges = append(s.Edges, EdgeRecord{Child: 1, Parent: 0})
		}, "operand_count"},
		{"unknown label", func(s *Snapshot) { s.Labels["y"] = 5 }, "unknown_label"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := diamond()
			tt.mutate(s)

			err := ValidateSnapshot(s)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSnapshot)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantType, vErr.Type)
		})
	}
}

func TestValidateSnapshot_Nil(t *testing.T) {
	assert.ErrorIs(t, ValidateSnapshot(nil), ErrInvalidSnapshot)
}

func TestSnapshot_Lookup(t *testing.T) {
	s := diamond()

	n, ok := s.Node(1)
	require.True(t, ok)
	assert.Equal(t, "+", n.Op)
	assert.False(t, n.IsLeaf())

	_, ok = s.Node(42)
	assert.False(t, ok)

	name, ok := s.Label(0)
	require.True(t, ok)
	assert.Equal(t, "x", name)

	s.Labels["a"] = 0
	name, _ = s.Label(0)
	assert.Equal(t, "a", name, "smallest name wins")

	_, ok = s.Label(99)
	assert.False(t, ok)
}
