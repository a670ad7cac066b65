package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/born-ml/gradgraph/autodiff"
	"github.com/born-ml/gradgraph/export"
	"github.com/born-ml/gradgraph/internal/expr"
	"github.com/spf13/cobra"
)

func newBackwardCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backward FILE",
		Short: "Build the expression in FILE, run one backward pass and print every node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := cfg.logger(cmd.ErrOrStderr())

			snap, err := evaluate(args[0], cfg.verbose, log)
			if err != nil {
				return err
			}
			if err := printTable(cmd.OutOrStdout(), snap); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.timeout)
			defer cancel()
			return writeArtifacts(ctx, snap, artifacts{
				dot:      cfg.dotPath,
				svg:      cfg.svgPath,
				png:      cfg.pngPath,
				snapshot: cfg.snapshotPath,
			}, log)
		},
	}

	cmd.Flags().StringVar(&cfg.dotPath, "dot", "", "write Graphviz DOT to this path")
	cmd.Flags().StringVar(&cfg.svgPath, "svg", "", "render an SVG diagram to this path (needs graphviz)")
	cmd.Flags().StringVar(&cfg.pngPath, "png", "", "render a PNG diagram to this path (needs graphviz)")
	cmd.Flags().StringVar(&cfg.snapshotPath, "snapshot", "", "write a .grad snapshot to this path")
	return cmd
}

// evaluate loads an expression file, builds it and runs one backward pass.
func evaluate(path string, trace bool, log *slog.Logger) (*export.Snapshot, error) {
	doc, err := expr.Load(path)
	if err != nil {
		return nil, err
	}

	g := autodiff.New()
	built, err := doc.Build(g)
	if err != nil {
		return nil, err
	}
	log.Debug("expression built", "file", path, "nodes", g.Len(), "root", doc.Root)

	var opts []autodiff.Option
	if trace {
		opts = append(opts, autodiff.WithTrace(func(s autodiff.TraceStep) {
			log.Debug("backward step",
				"node", s.Node,
				"op", s.Op.String(),
				"grad", s.Grad,
				"left", s.Left,
				"left_grad", s.LeftGrad,
				"right", s.Right,
				"right_grad", s.RightGrad,
			)
		}))
	}
	if err := g.Backward(built.Root, opts...); err != nil {
		return nil, fmt.Errorf("backward: %w", err)
	}

	return export.TakeSnapshot(g, built.Root,
		export.WithLabels(built.Names),
		export.WithGradients(true),
	)
}
