// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/statevec/gates"
	"github.com/katalvlaran/statevec/tensor"
)

// Partition is the axis bookkeeping for one controlled gate application.
type Partition struct {
	// Order lists the axes after reordering: sorted controls first, then
	// every other axis in ascending order.
	Order []int
	// Targets are the target axes renumbered within the non-control block:
	// each target minus the number of controls smaller than it.
	Targets []int
	// Inverse restores canonical axis order: Transpose(Transpose(t, Order), Inverse) == t.
	Inverse []int
}

// ControlOrder computes the Partition for controls and targets on n qubits.
//
// Implementation:
//   - Stage 1 (Validate): indices in [0, n), controls distinct, targets
//     distinct and disjoint from controls.
//   - Stage 2 (Order): sorted controls, then the gaps between them in
//     ascending order, which is every non-control axis ascending.
//   - Stage 3 (Adjust): shift each target down by the controls below it.
//   - Stage 4 (Invert): inverse permutation of Order.
//
// Behavior highlights:
//   - Pure and deterministic in (controls, targets, n).
//   - Empty controls give the identity order and unchanged targets.
//   - Targets may be empty; only the order and its inverse are produced then.
//
// Complexity: O(n + m log m + k log m).
func ControlOrder(controls, targets []int, n int) (Partition, error) {
	if n < 0 {
		return Partition{}, fmt.Errorf("ControlOrder: n=%d: %w", n, ErrInvalidQubitCount)
	}
	for _, q := range slices.Concat(controls, targets) {
		if q < 0 || q >= n {
			return Partition{}, fmt.Errorf("ControlOrder: qubit %d of %d: %w", q, n, ErrQubitOutOfRange)
		}
	}
	if err := gates.ValidateQubits(slices.Concat(controls, targets)); err != nil {
		return Partition{}, fmt.Errorf("ControlOrder: %w", err)
	}

	sorted := slices.Clone(controls)
	slices.Sort(sorted)

	isControl := make([]bool, n)
	for _, c := range sorted {
		isControl[c] = true
	}
	order := make([]int, 0, n)
	order = append(order, sorted...)
	for ax := 0; ax < n; ax++ {
		if !isControl[ax] {
			order = append(order, ax)
		}
	}

	adjusted := make([]int, len(targets))
	for i, t := range targets {
		// number of controls below t = insertion point in the sorted list
		below, _ := slices.BinarySearch(sorted, t)
		adjusted[i] = t - below
	}

	inv, err := tensor.InversePermutation(order)
	if err != nil {
		return Partition{}, fmt.Errorf("ControlOrder: %w", err)
	}

	return Partition{Order: order, Targets: adjusted, Inverse: inv}, nil
}
