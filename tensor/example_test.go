// SPDX-License-Identifier: MIT

package tensor_test

import (
	"fmt"

	"github.com/katalvlaran/statevec/tensor"
)

// ExampleContract applies a bit flip to the second axis of a 2×2 tensor.
func ExampleContract() {
	state, _ := tensor.FromSlice([]complex128{1, 0, 0, 0}, 2, 2)
	x, _ := tensor.Matrix([][]complex128{{0, 1}, {1, 0}})

	out, err := tensor.Contract(x, state, []int{1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out.Data())
	// Output: [(0+0i) (1+0i) (0+0i) (0+0i)]
}

// ExampleTranspose swaps the axes of a 2×3 matrix.
func ExampleTranspose() {
	m, _ := tensor.Matrix([][]complex128{{1, 2, 3}, {4, 5, 6}})
	tr, _ := tensor.Transpose(m, []int{1, 0})
	fmt.Println(tr.Shape())
	fmt.Print(tr)
	// Output:
	// [3 2]
	// [(1+0i), (4+0i)]
	// [(2+0i), (5+0i)]
	// [(3+0i), (6+0i)]
}
