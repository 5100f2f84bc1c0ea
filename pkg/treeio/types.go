// Package treeio reads and writes the JSON interchange form of a tree.
//
// A node object is internal exactly when it carries "axis", "value", "left"
// and "right", and a leaf exactly when it carries "points". Objects carrying
// both or neither are rejected at decode time, so the in-memory invariant
// (a kdtree.Node is either an Inner or a Leaf) holds from the boundary
// inward. Coordinates decode as float64.
//
// Example document:
//
//	{
//	  "dims": 2,
//	  "bounds": {"min": [-10, -10], "max": [10, 10]},
//	  "root": {
//	    "axis": 0, "value": 0,
//	    "left":  {"points": [[-3.5, 4.25]]},
//	    "right": {"points": [[1, 2]]}
//	  }
//	}
package treeio

// tree is the wire form of a kdtree.Tree.
type tree struct {
	Dims   int    `json:"dims"`
	Bounds bounds `json:"bounds"`
	Root   *node  `json:"root,omitempty"`
}

// bounds is the wire form of the global bounding box.
type bounds struct {
	Min []float64 `json:"min"`
	Max []float64 `json:"max"`
}

// node is the wire form of a tree node. Pointer fields distinguish "absent"
// from zero values so the internal/leaf exclusivity check can be exact.
type node struct {
	Axis   *int         `json:"axis,omitempty"`
	Value  *float64     `json:"value,omitempty"`
	Left   *node        `json:"left,omitempty"`
	Right  *node        `json:"right,omitempty"`
	Points *[][]float64 `json:"points,omitempty"`
}
