// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package export provides graph snapshots, Graphviz DOT output and image
// rendering for autodiff graphs.
//
// Example:
//
//	snap, err := export.TakeSnapshot(g, root, export.WithGradients(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = export.WriteSnapshotFile("graph.grad", snap)
//	_ = export.WriteDOT(os.Stdout, snap)
package export

import (
	"context"
	"io"

	"github.com/born-ml/gradgraph/autodiff"
	"github.com/born-ml/gradgraph/internal/export"
	"github.com/born-ml/gradgraph/internal/serialization"
)

// Snapshot is a read-only copy of a graph seen from one root.
type Snapshot = serialization.Snapshot

// NodeRecord describes one node of a Snapshot.
type NodeRecord = serialization.NodeRecord

// EdgeRecord describes one operand edge of a Snapshot.
type EdgeRecord = serialization.EdgeRecord

// SnapshotOption configures TakeSnapshot.
type SnapshotOption = export.SnapshotOption

// Format is an image format supported by Render.
type Format = export.Format

// Supported image formats.
const (
	FormatSVG = export.FormatSVG
	FormatPNG = export.FormatPNG
)

// Errors.
var (
	ErrGraphvizNotFound = export.ErrGraphvizNotFound
	ErrChecksumMismatch = serialization.ErrChecksumMismatch
	ErrInvalidSnapshot  = serialization.ErrInvalidSnapshot
)

// WithLabels attaches names to nodes.
func WithLabels(labels map[string]autodiff.NodeID) SnapshotOption {
	return export.WithLabels(labels)
}

// WithGradients marks the snapshot as taken after a backward pass.
func WithGradients(done bool) SnapshotOption {
	return export.WithGradients(done)
}

// TakeSnapshot copies every node and edge reachable from root.
func TakeSnapshot(g *autodiff.Graph, root autodiff.NodeID, opts ...SnapshotOption) (*Snapshot, error) {
	return export.TakeSnapshot(g, root, opts...)
}

// WriteDOT writes s as a Graphviz digraph.
func WriteDOT(w io.Writer, s *Snapshot) error {
	return export.WriteDOT(w, s)
}

// Render rasterizes DOT source with the Graphviz dot binary.
func Render(ctx context.Context, dot []byte, format Format) ([]byte, error) {
	return export.Render(ctx, dot, format)
}

// ParseFormat parses "svg" or "png".
func ParseFormat(s string) (Format, error) {
	return export.ParseFormat(s)
}

// WriteSnapshot encodes s in the .grad format.
func WriteSnapshot(w io.Writer, s *Snapshot) error {
	return serialization.Write(w, s)
}

// WriteSnapshotFile writes s to a new .grad file.
func WriteSnapshotFile(path string, s *Snapshot) error {
	return serialization.WriteFile(path, s)
}

// ReadSnapshot decodes and validates a .grad snapshot.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	return serialization.Read(r)
}

// ReadSnapshotFile reads a .grad snapshot from path.
func ReadSnapshotFile(path string) (*Snapshot, error) {
	return serialization.ReadFile(path)
}
