package treeio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kdsketch/kdsketch/pkg/kdtree"
)

// MarshalTree converts a tree to JSON bytes.
func MarshalTree(t *kdtree.Tree[float64]) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTree(t, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTree encodes a tree as indented JSON to w.
// The output can be re-imported with [ReadTree] for round-trip processing.
func WriteTree(t *kdtree.Tree[float64], w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fromTree(t)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTreeFile writes a tree to a JSON file at path.
// The file is created with 0644 permissions.
func WriteTreeFile(t *kdtree.Tree[float64], path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteTree(t, f)
}

func fromTree(t *kdtree.Tree[float64]) tree {
	return tree{
		Dims: t.Dims,
		Bounds: bounds{
			Min: []float64(t.Bounds.Min),
			Max: []float64(t.Bounds.Max),
		},
		Root: fromNode(t.Root),
	}
}

func fromNode(n kdtree.Node[float64]) *node {
	switch n := n.(type) {
	case *kdtree.Inner[float64]:
		axis, value := n.Axis, n.Value
		return &node{
			Axis:  &axis,
			Value: &value,
			Left:  fromNode(n.Left),
			Right: fromNode(n.Right),
		}
	case *kdtree.Leaf[float64]:
		points := make([][]float64, len(n.Points))
		for i, p := range n.Points {
			points[i] = []float64(p)
		}
		return &node{Points: &points}
	}
	return nil
}
