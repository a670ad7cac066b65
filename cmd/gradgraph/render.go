package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"

	"github.com/born-ml/gradgraph/export"
	"github.com/spf13/cobra"
)

func newRenderCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Draw the graph of an expression (.yaml) or snapshot (.grad) file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := cfg.logger(cmd.ErrOrStderr())

			snap, err := loadSnapshot(args[0], cfg.verbose, log)
			if err != nil {
				return err
			}

			format, err := export.ParseFormat(cfg.format)
			if err != nil {
				return err
			}

			output := cfg.output
			if output == "" {
				output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + "." + string(format)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.timeout)
			defer cancel()

			var dot bytes.Buffer
			if err := export.WriteDOT(&dot, snap); err != nil {
				return err
			}
			data, err := export.Render(ctx, dot.Bytes(), format)
			if err != nil {
				return err
			}
			return writeFile(output, data, log)
		},
	}

	cmd.Flags().StringVarP(&cfg.format, "format", "f", cfg.format, "image format: svg or png")
	cmd.Flags().StringVarP(&cfg.output, "output", "o", "", "output path (default: FILE with the format extension)")
	return cmd
}
