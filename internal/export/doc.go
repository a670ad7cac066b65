// Package export turns a computation graph into artifacts for people and
// tools: MessagePack snapshots, Graphviz DOT text, and rendered SVG/PNG
// images.
//
// Everything is driven by a serialization.Snapshot, so a graph can be drawn
// straight after a backward pass or later from a saved .grad file:
//
//	snap, _ := export.TakeSnapshot(g, root, export.WithGradients(true))
//	var dot bytes.Buffer
//	_ = export.WriteDOT(&dot, snap)
//	svg, err := export.Render(ctx, dot.Bytes(), export.FormatSVG)
package export
