package serialization

import "time"

// Format constants.
const (
	MagicBytes      = "GRAD"
	FormatVersion   = 1
	ChecksumSize    = 32 // SHA-256 checksum size (32 bytes)
	FixedHeaderSize = 4 + 4 + 4 + 8 + ChecksumSize
	ChecksumOffset  = 0x14
)

// Flags for the .grad format.
const (
	FlagHasGradients uint32 = 1 << 0 // bit 0: gradients come from a completed backward pass
)

// Snapshot is a read-only copy of a computation graph seen from one root.
type Snapshot struct {
	ID        string           `msgpack:"id"`               // Unique snapshot id
	CreatedAt time.Time        `msgpack:"created_at"`       // When the snapshot was taken
	Root      int64            `msgpack:"root"`             // Id of the root node
	Backward  bool             `msgpack:"backward"`         // Whether gradients are populated
	Nodes     []NodeRecord     `msgpack:"nodes"`            // Nodes in pre-order from the root
	Edges     []EdgeRecord     `msgpack:"edges"`            // One entry per operand slot
	Labels    map[string]int64 `msgpack:"labels,omitempty"` // Optional names for nodes
}

// NodeRecord describes one node.
type NodeRecord struct {
	ID    int64   `msgpack:"id"`
	Value float32 `msgpack:"value"`
	Grad  float32 `msgpack:"grad"`
	Op    string  `msgpack:"op"` // Operator symbol, empty for leaves
}

// EdgeRecord is an operand relationship: Child is an operand of Parent.
type EdgeRecord struct {
	Child  int64 `msgpack:"child"`
	Parent int64 `msgpack:"parent"`
}

// IsLeaf reports whether the node has no operator.
func (n NodeRecord) IsLeaf() bool {
	return n.Op == ""
}

// Node returns the record with the given id.
func (s *Snapshot) Node(id int64) (NodeRecord, bool) {
	for _, n := range s.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return NodeRecord{}, false
}

// Label returns the name recorded for id, if any. When several names share
// an id the lexically smallest wins.
func (s *Snapshot) Label(id int64) (string, bool) {
	best, found := "", false
	for name, nid := range s.Labels {
		if nid == id && (!found || name < best) {
			best, found = name, true
		}
	}
	return best, found
}
