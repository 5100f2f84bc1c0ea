package treeio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/kdsketch/kdsketch/pkg/errors"
	"github.com/kdsketch/kdsketch/pkg/kdtree"
)

// ReadTree decodes a JSON tree from r and validates it.
// Use [ReadTreeFile] for files or pass bytes.NewReader for in-memory data.
func ReadTree(r io.Reader) (*kdtree.Tree[float64], error) {
	var data tree
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidTree, err, "decode tree")
	}
	return toTree(data)
}

// ReadTreeFile reads a JSON file and returns the decoded tree.
func ReadTreeFile(path string) (*kdtree.Tree[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, err
	}
	defer f.Close()
	return ReadTree(f)
}

func toTree(data tree) (*kdtree.Tree[float64], error) {
	root, err := toNode(data.Root)
	if err != nil {
		return nil, err
	}

	t := kdtree.New(data.Dims, kdtree.Bounds[float64]{
		Min: kdtree.Point[float64](data.Bounds.Min),
		Max: kdtree.Point[float64](data.Bounds.Max),
	}, root)

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func toNode(n *node) (kdtree.Node[float64], error) {
	if n == nil {
		return nil, nil
	}

	internal := n.Axis != nil || n.Value != nil || n.Left != nil || n.Right != nil
	leaf := n.Points != nil
	switch {
	case internal && leaf:
		return nil, errors.New(errors.ErrCodeInvalidTree, "node carries both split metadata and points")
	case !internal && !leaf:
		return nil, errors.New(errors.ErrCodeInvalidTree, "node carries neither split metadata nor points")
	case leaf:
		points := make([]kdtree.Point[float64], len(*n.Points))
		for i, p := range *n.Points {
			points[i] = kdtree.Point[float64](p)
		}
		return kdtree.NewLeaf(points...), nil
	}

	if n.Axis == nil || n.Value == nil || n.Left == nil || n.Right == nil {
		return nil, errors.New(errors.ErrCodeInvalidTree,
			"internal node must carry axis, value, and both children")
	}
	left, err := toNode(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := toNode(n.Right)
	if err != nil {
		return nil, err
	}
	return kdtree.NewInner(*n.Axis, *n.Value, left, right), nil
}
