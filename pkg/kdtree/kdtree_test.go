package kdtree

import (
	"testing"

	"github.com/kdsketch/kdsketch/pkg/errors"
)

func bounds2(minX, minY, maxX, maxY float64) Bounds[float64] {
	return Bounds[float64]{
		Min: Point[float64]{minX, minY},
		Max: Point[float64]{maxX, maxY},
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		root Node[float64]
		want int
	}{
		{"empty tree", nil, 0},
		{"empty leaf", NewLeaf[float64](), 0},
		{"leaf with points", NewLeaf(Point[float64]{1, 2}, Point[float64]{3, 4}), 2},
		{
			"nested",
			NewInner(0, 0.5,
				NewLeaf(Point[float64]{-1, 1}),
				NewInner(1, 2.0,
					NewLeaf(Point[float64]{1, 1}, Point[float64]{2, 1}),
					NewLeaf[float64](),
				),
			),
			3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New(2, bounds2(-10, -10, 10, 10), tt.root)
			if got := tr.Count(); got != tt.want {
				t.Errorf("Count() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		tree *Tree[float64]
		ok   bool
	}{
		{
			"valid tree",
			New(2, bounds2(-10, -10, 10, 10),
				NewInner(0, 0.5,
					NewLeaf(Point[float64]{-1, 1}),
					NewLeaf(Point[float64]{1, 1}),
				)),
			true,
		},
		{"valid empty tree", New(2, bounds2(0, 0, 1, 1), nil), true},
		{"zero dimensions", New(0, Bounds[float64]{}, nil), false},
		{"negative dimensions", New(-1, Bounds[float64]{}, nil), false},
		{
			"bounds arity mismatch",
			New(3, bounds2(0, 0, 1, 1), nil),
			false,
		},
		{
			"inverted bounds",
			New(2, bounds2(10, 0, -10, 1), nil),
			false,
		},
		{
			"axis out of range",
			New(2, bounds2(-1, -1, 1, 1),
				NewInner(2, 0.0, NewLeaf[float64](), NewLeaf[float64]())),
			false,
		},
		{
			"missing child",
			New(2, bounds2(-1, -1, 1, 1),
				&Inner[float64]{Axis: 0, Value: 0, Left: NewLeaf[float64]()}),
			false,
		},
		{
			"point arity mismatch",
			New(2, bounds2(-1, -1, 1, 1),
				NewLeaf(Point[float64]{1, 2, 3})),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tree.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("Validate() = nil, want error")
				}
				if errors.GetCode(err) != errors.ErrCodeInvalidTree {
					t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidTree)
				}
			}
		})
	}
}

func TestValidateFloat32(t *testing.T) {
	tr := New(2, Bounds[float32]{
		Min: Point[float32]{-1, -1},
		Max: Point[float32]{1, 1},
	}, NewInner[float32](0, 0.5,
		NewLeaf(Point[float32]{-0.5, 0}),
		NewLeaf(Point[float32]{0.5, 0}),
	))

	if err := tr.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if got := tr.Count(); got != 2 {
		t.Errorf("Count() = %d, want 2", got)
	}
}

func TestAxisLabel(t *testing.T) {
	tests := []struct {
		axis int
		want string
	}{
		{0, "x"},
		{1, "y"},
		{2, "z"},
		{3, "w"},
		{4, "x4"},
		{7, "x7"},
	}

	for _, tt := range tests {
		if got := AxisLabel(tt.axis); got != tt.want {
			t.Errorf("AxisLabel(%d) = %q, want %q", tt.axis, got, tt.want)
		}
	}
}

func TestPointEqual(t *testing.T) {
	p := Point[float64]{1, 2}
	if !p.Equal(Point[float64]{1, 2}) {
		t.Error("identical points should be equal")
	}
	if p.Equal(Point[float64]{1, 3}) {
		t.Error("different values should not be equal")
	}
	if p.Equal(Point[float64]{1, 2, 3}) {
		t.Error("different arity should not be equal")
	}
}
