package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cfg := defaultConfig()

	root := &cobra.Command{
		Use:          "gradgraph",
		Short:        "Scalar reverse-mode autodiff: build expressions, backpropagate, draw the graph",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return cfg.validate()
		},
	}

	root.PersistentFlags().BoolVarP(&cfg.verbose, "verbose", "v", false, "log every backward step")
	root.PersistentFlags().StringVar(&cfg.logFormat, "log-format", cfg.logFormat, "log format: text or json")
	root.PersistentFlags().DurationVar(&cfg.timeout, "timeout", cfg.timeout, "deadline for writing artifacts")

	root.AddCommand(
		newBackwardCmd(cfg),
		newRenderCmd(cfg),
		newInspectCmd(cfg),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gradgraph %s\n", version)
		},
	}
}
