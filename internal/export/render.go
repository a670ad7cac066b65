package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrGraphvizNotFound is returned when the Graphviz dot binary is not on PATH.
var ErrGraphvizNotFound = errors.New("export: graphviz dot binary not found")

// Format is an image format supported by Render.
type Format string

// Supported formats.
const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat accepts "svg" or "png", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatSVG, FormatPNG:
		return f, nil
	default:
		return "", fmt.Errorf("export: unsupported format %q (want svg or png)", s)
	}
}

// DotBinary is the Graphviz executable used by Render.
var DotBinary = "dot"

// Render rasterizes DOT source with Graphviz.
func Render(ctx context.Context, dot []byte, format Format) ([]byte, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}
	path, err := exec.LookPath(DotBinary)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGraphvizNotFound, err)
	}

	//nolint:gosec // G204: format is validated above, binary comes from configuration
	cmd := exec.CommandContext(ctx, path, "-T"+string(format))
	cmd.Stdin = bytes.NewReader(dot)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("export: graphviz failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
