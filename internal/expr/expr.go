// Package expr loads expressions from YAML documents and builds them into an
// autodiff graph.
//
// Document layout:
//
//	leaves:
//	  x: 2.0
//	nodes:
//	  - {name: p, op: add, left: x, right: x}
//	  - {name: q, op: mul, left: p, right: x}
//	root: q
//
// A node may only reference leaves and nodes listed above it, so every
// document describes an acyclic graph.
package expr

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"

	"github.com/born-ml/gradgraph/internal/autodiff"
	"github.com/born-ml/gradgraph/internal/autodiff/ops"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument is wrapped by every validation failure.
var ErrInvalidDocument = errors.New("expr: invalid document")

var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Document is a decoded expression file.
type Document struct {
	Leaves map[string]float32 `yaml:"leaves"`
	Nodes  []NodeSpec         `yaml:"nodes"`
	Root   string             `yaml:"root"`
}

// NodeSpec is one operator node. Op accepts a name (add, sub, mul, div) or a
// symbol (+ - * /).
type NodeSpec struct {
	Name  string `yaml:"name"`
	Op    string `yaml:"op"`
	Left  string `yaml:"left"`
	Right string `yaml:"right"`
}

// Built is the result of building a document into a graph.
type Built struct {
	Root  autodiff.NodeID
	Names map[string]autodiff.NodeID
	Order []string // leaves sorted by name, then nodes in document order
}

// Decode reads one YAML document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("expr: failed to parse yaml: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Load decodes the document stored at path.
func Load(path string) (*Document, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for expression loading
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("expr: failed to open file: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Validate checks names, operators, references and the root.
func (d *Document) Validate() error {
	defined := make(map[string]bool, len(d.Leaves)+len(d.Nodes))
	for name := range d.Leaves {
		if !namePattern.MatchString(name) {
			return fmt.Errorf("%w: invalid leaf name %q", ErrInvalidDocument, name)
		}
		defined[name] = true
	}

	for i, n := range d.Nodes {
		if !namePattern.MatchString(n.Name) {
			return fmt.Errorf("%w: node %d: invalid name %q", ErrInvalidDocument, i, n.Name)
		}
		if defined[n.Name] {
			return fmt.Errorf("%w: node %q: name already defined", ErrInvalidDocument, n.Name)
		}
		if _, ok := ops.Parse(n.Op); !ok {
			return fmt.Errorf("%w: node %q: unknown op %q", ErrInvalidDocument, n.Name, n.Op)
		}
		for _, ref := range []string{n.Left, n.Right} {
			if !defined[ref] {
				return fmt.Errorf("%w: node %q: operand %q is not defined above it", ErrInvalidDocument, n.Name, ref)
			}
		}
		defined[n.Name] = true
	}

	if d.Root == "" {
		return fmt.Errorf("%w: root is required", ErrInvalidDocument)
	}
	if !defined[d.Root] {
		return fmt.Errorf("%w: root %q is not defined", ErrInvalidDocument, d.Root)
	}
	return nil
}

// Build validates d and adds its nodes to g.
// Forward errors such as division by zero are wrapped with the node name.
func (d *Document) Build(g *autodiff.Graph) (*Built, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	b := &Built{Names: make(map[string]autodiff.NodeID, len(d.Leaves)+len(d.Nodes))}

	leaves := make([]string, 0, len(d.Leaves))
	for name := range d.Leaves {
		leaves = append(leaves, name)
	}
	sort.Strings(leaves)
	for _, name := range leaves {
		b.Names[name] = g.Leaf(d.Leaves[name])
		b.Order = append(b.Order, name)
	}

	for _, n := range d.Nodes {
		op, _ := ops.Parse(n.Op)
		id, err := g.Apply(op, b.Names[n.Left], b.Names[n.Right])
		if err != nil {
			return nil, fmt.Errorf("expr: node %q: %w", n.Name, err)
		}
		b.Names[n.Name] = id
		b.Order = append(b.Order, n.Name)
	}

	b.Root = b.Names[d.Root]
	return b, nil
}
