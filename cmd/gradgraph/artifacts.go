package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/born-ml/gradgraph/export"
	"golang.org/x/sync/errgroup"
)

// artifacts lists output paths; empty paths are skipped.
type artifacts struct {
	dot      string
	svg      string
	png      string
	snapshot string
}

// writeArtifacts writes every requested artifact concurrently.
func writeArtifacts(ctx context.Context, snap *export.Snapshot, out artifacts, log *slog.Logger) error {
	var dot bytes.Buffer
	if err := export.WriteDOT(&dot, snap); err != nil {
		return err
	}

	eg, ctx := errgroup.WithContext(ctx)

	if out.dot != "" {
		eg.Go(func() error {
			return writeFile(out.dot, dot.Bytes(), log)
		})
	}
	if out.snapshot != "" {
		eg.Go(func() error {
			if err := export.WriteSnapshotFile(out.snapshot, snap); err != nil {
				return err
			}
			log.Info("wrote snapshot", "path", out.snapshot, "id", snap.ID)
			return nil
		})
	}

	images := []struct {
		path   string
		format export.Format
	}{
		{out.svg, export.FormatSVG},
		{out.png, export.FormatPNG},
	}
	for _, img := range images {
		if img.path == "" {
			continue
		}
		img := img
		eg.Go(func() error {
			data, err := export.Render(ctx, dot.Bytes(), img.format)
			if err != nil {
				return err
			}
			return writeFile(img.path, data, log)
		})
	}

	return eg.Wait()
}

func writeFile(path string, data []byte, log *slog.Logger) error {
	//nolint:gosec // G306: diagrams are not secret
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Info("wrote file", "path", path, "bytes", len(data))
	return nil
}
