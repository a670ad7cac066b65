package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/born-ml/gradgraph/export"
	"github.com/spf13/cobra"
)

func newInspectCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the nodes of a .grad snapshot or expression file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := loadSnapshot(args[0], cfg.verbose, cfg.logger(cmd.ErrOrStderr()))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "snapshot %s (%s)\n", snap.ID, snap.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
			return printTable(cmd.OutOrStdout(), snap)
		},
	}
}

// loadSnapshot reads a .grad file, or evaluates any other file as an expression.
func loadSnapshot(path string, trace bool, log *slog.Logger) (*export.Snapshot, error) {
	if strings.EqualFold(filepath.Ext(path), ".grad") {
		return export.ReadSnapshotFile(path)
	}
	return evaluate(path, trace, log)
}

// printTable writes one row per node, ordered by node id.
func printTable(w io.Writer, snap *export.Snapshot) error {
	nodes := make([]export.NodeRecord, len(snap.Nodes))
	copy(nodes, snap.Nodes)
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tID\tVALUE\tGRAD\tOP")
	for _, n := range nodes {
		name, ok := snap.Label(n.ID)
		if !ok {
			name = "-"
		}
		if n.ID == snap.Root {
			name += " (root)"
		}
		op := n.Op
		if op == "" {
			op = "leaf"
		}
		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%s\n", name, n.ID, n.Value, n.Grad, op)
	}
	return tw.Flush()
}
