package shape_test

import (
	"fmt"

	"github.com/kdsketch/kdsketch/pkg/kdtree"
	"github.com/kdsketch/kdsketch/pkg/render/shape"
)

func ExampleRender() {
	t := kdtree.New(2, kdtree.Bounds[float64]{
		Min: kdtree.Point[float64]{-10, -5},
		Max: kdtree.Point[float64]{10, 5},
	}, kdtree.NewInner(0, 0.5,
		kdtree.NewLeaf(kdtree.Point[float64]{-3.5, 4.25}),
		kdtree.NewLeaf(kdtree.Point[float64]{1, 2}),
	))

	fmt.Println(shape.Render(t))
	// Output:
	// KdTree {
	//     split_value: 0.5 on x
	//     left: KdTree {
	//         points: [
	//             (-3.5,	+4.25)
	//         ]
	//     }
	//     right: KdTree {
	//         points: [
	//             (+1,	+2)
	//         ]
	//     }
	// }
}
