package kdtree

import "testing"

func TestRectOf(t *testing.T) {
	r := RectOf(bounds2(-10, -5, 10, 5))
	want := Rect[float64]{MinX: -10, MaxX: 10, MinY: -5, MaxY: 5}
	if r != want {
		t.Errorf("RectOf = %+v, want %+v", r, want)
	}
}

func TestRectSplitX(t *testing.T) {
	r := Rect[float64]{MinX: -10, MaxX: 10, MinY: -5, MaxY: 5}
	left, right := r.SplitX(2)

	if left.MaxX != 2 || left.MinX != -10 {
		t.Errorf("left = %+v, want x in [-10, 2]", left)
	}
	if right.MinX != 2 || right.MaxX != 10 {
		t.Errorf("right = %+v, want x in [2, 10]", right)
	}

	// The y extent never changes, and the halves reassemble the parent.
	if left.MinY != r.MinY || left.MaxY != r.MaxY || right.MinY != r.MinY || right.MaxY != r.MaxY {
		t.Error("SplitX must not touch the y extent")
	}
	if left.MaxX != right.MinX {
		t.Error("halves must share the split boundary")
	}
}

func TestRectSplitY(t *testing.T) {
	r := Rect[float64]{MinX: -10, MaxX: 10, MinY: -5, MaxY: 5}
	left, right := r.SplitY(-1)

	if left.MaxY != -1 || left.MinY != -5 {
		t.Errorf("left = %+v, want y in [-5, -1]", left)
	}
	if right.MinY != -1 || right.MaxY != 5 {
		t.Errorf("right = %+v, want y in [-1, 5]", right)
	}
	if left.MinX != r.MinX || left.MaxX != r.MaxX || right.MinX != r.MinX || right.MaxX != r.MaxX {
		t.Error("SplitY must not touch the x extent")
	}
}
