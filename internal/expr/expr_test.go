package expr_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/born-ml/gradgraph/internal/autodiff"
	"github.com/born-ml/gradgraph/internal/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const diamondYAML = `
leaves:
  x: 2.0
nodes:
  - {name: p, op: add, left: x, right: x}
  - {name: q, op: "*", left: p, right: x}
root: q
`

func TestDecodeAndBuild(t *testing.T) {
	doc, err := expr.Decode(strings.NewReader(diamondYAML))
	require.NoError(t, err)
	assert.Equal(t, "q", doc.Root)
	assert.Len(t, doc.Nodes, 2)

	g := autodiff.New()
	built, err := doc.Build(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "p", "q"}, built.Order)
	assert.Equal(t, built.Names["q"], built.Root)
	assert.Equal(t, float32(8), g.Value(built.Root))

	require.NoError(t, g.Backward(built.Root))
	assert.Equal(t, float32(8), g.Grad(built.Names["x"]))
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "", "empty input"},
		{"unknown field", "leaves: {x: 1}\nroot: x\nextra: 1\n", "field extra not found"},
		{"missing root", "leaves: {x: 1}\n", "root is required"},
		{"undefined root", "leaves: {x: 1}\nroot: y\n", `root "y" is not defined`},
		{"bad op", "leaves: {x: 1}\nnodes:\n  - {name: y, op: pow, left: x, right: x}\nroot: y\n", `unknown op "pow"`},
		{"forward reference", "leaves: {x: 1}\nnodes:\n  - {name: y, op: add, left: x, right: z}\n  - {name: z, op: add, left: x, right: x}\nroot: y\n", `operand "z" is not defined above it`},
		{"self reference", "leaves: {x: 1}\nnodes:\n  - {name: y, op: add, left: y, right: x}\nroot: y\n", `operand "y"`},
		{"duplicate name", "leaves: {x: 1}\nnodes:\n  - {name: x, op: add, left: x, right: x}\nroot: x\n", "already defined"},
		{"bad name", "leaves: {\"1x\": 1}\nroot: 1x\n", "invalid leaf name"},
		{"not yaml", "leaves: [", "failed to parse yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := expr.Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecode_ValidationWrapsSentinel(t *testing.T) {
	_, err := expr.Decode(strings.NewReader("leaves: {x: 1}\nroot: nope\n"))
	assert.ErrorIs(t, err, expr.ErrInvalidDocument)
}

func TestBuild_DivisionByZero(t *testing.T) {
	doc, err := expr.Decode(strings.NewReader(`
leaves: {a: 1, b: 0}
nodes:
  - {name: r, op: div, left: a, right: b}
root: r
`))
	require.NoError(t, err)

	_, err = doc.Build(autodiff.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, autodiff.ErrDivisionByZero)
	assert.Contains(t, err.Error(), `node "r"`)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diamond.yaml")
	require.NoError(t, os.WriteFile(path, []byte(diamondYAML), 0o600))

	doc, err := expr.Load(path)
	require.NoError(t, err)
	assert.Equal(t, float32(2), doc.Leaves["x"])

	_, err = expr.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
