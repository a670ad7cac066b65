package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/born-ml/gradgraph/internal/serialization"
)

var recordEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`{`, `\{`,
	`}`, `\}`,
	`|`, `\|`,
	`<`, `\<`,
	`>`, `\>`,
)

// NodeLabel returns the record label of n, lines left-aligned:
//
//	[name]
//	val 5.00
//	grad: 0.00
//	op: *
//
// The name line is present only when the snapshot labels n, the op line only
// for operator nodes.
func NodeLabel(s *serialization.Snapshot, n serialization.NodeRecord) string {
	var b strings.Builder
	if name, ok := s.Label(n.ID); ok {
		b.WriteString(recordEscaper.Replace(name))
		b.WriteString(`\l`)
	}
	fmt.Fprintf(&b, `val %.2f\lgrad: %.2f\l`, n.Value, n.Grad)
	if !n.IsLeaf() {
		fmt.Fprintf(&b, `op: %s\l`, recordEscaper.Replace(n.Op))
	}
	return b.String()
}

// WriteDOT writes s as a Graphviz digraph. Edges point from operand to the
// node that consumes it; a node used twice by one parent gets two edges.
func WriteDOT(w io.Writer, s *serialization.Snapshot) error {
	if err := serialization.ValidateSnapshot(s); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "// snapshot %s\n", s.ID)
	bw.WriteString("digraph G {\n")
	bw.WriteString("  rankdir=LR;\n")
	for _, n := range s.Nodes {
		fmt.Fprintf(bw, "  %d [label=\"%s\", shape=record];\n", n.ID, NodeLabel(s, n))
	}
	for _, e := range s.Edges {
		fmt.Fprintf(bw, "  %d -> %d;\n", e.Child, e.Parent)
	}
	bw.WriteString("}\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write dot: %w", err)
	}
	return nil
}
