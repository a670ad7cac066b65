package export

import (
	"time"

	"github.com/born-ml/gradgraph/internal/autodiff"
	"github.com/born-ml/gradgraph/internal/serialization"
	"github.com/google/uuid"
)

// SnapshotOption configures TakeSnapshot.
type SnapshotOption func(*snapshotConfig)

type snapshotConfig struct {
	labels    map[string]autodiff.NodeID
	gradients bool
	now       func() time.Time
}

// WithLabels attaches names to nodes. Names of unreachable nodes are dropped.
func WithLabels(labels map[string]autodiff.NodeID) SnapshotOption {
	return func(c *snapshotConfig) { c.labels = labels }
}

// WithGradients marks the snapshot as taken after a backward pass.
func WithGradients(done bool) SnapshotOption {
	return func(c *snapshotConfig) { c.gradients = done }
}

// TakeSnapshot copies every node and edge reachable from root.
func TakeSnapshot(g *autodiff.Graph, root autodiff.NodeID, opts ...SnapshotOption) (*serialization.Snapshot, error) {
	cfg := snapshotConfig{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}

	nodes, err := g.Nodes(root)
	if err != nil {
		return nil, err
	}
	edges, err := g.Edges(root)
	if err != nil {
		return nil, err
	}

	s := &serialization.Snapshot{
		ID:        uuid.NewString(),
		CreatedAt: cfg.now().UTC(),
		Root:      int64(root),
		Backward:  cfg.gradients,
		Nodes:     make([]serialization.NodeRecord, 0, len(nodes)),
		Edges:     make([]serialization.EdgeRecord, 0, len(edges)),
	}

	reachable := make(map[autodiff.NodeID]bool, len(nodes))
	for _, id := range nodes {
		reachable[id] = true
		s.Nodes = append(s.Nodes, serialization.NodeRecord{
			ID:    int64(id),
			Value: g.Value(id),
			Grad:  g.Grad(id),
			Op:    g.Op(id).String(),
		})
	}
	for _, e := range edges {
		s.Edges = append(s.Edges, serialization.EdgeRecord{
			Child:  int64(e.Child),
			Parent: int64(e.Parent),
		})
	}

	for name, id := range cfg.labels {
		if !reachable[id] {
			continue
		}
		if s.Labels == nil {
			s.Labels = make(map[string]int64)
		}
		s.Labels[name] = int64(id)
	}
	return s, nil
}
