// SPDX-License-Identifier: MIT
// Package: gates
//
// Purpose:
//   - Single place for structural checks on qubit lists and gate matrices.
//   - Range checks against a register size live with the caller that knows n.

package gates

import (
	"fmt"

	"github.com/katalvlaran/statevec/tensor"
)

// ValidateQubits ensures every index is non-negative and appears once.
// Complexity: O(k log k) via a set.
func ValidateQubits(qubits []int) error {
	seen := make(map[int]struct{}, len(qubits))
	for _, q := range qubits {
		if q < 0 {
			return fmt.Errorf("ValidateQubits: qubit %d: %w", q, ErrBadQubits)
		}
		if _, dup := seen[q]; dup {
			return fmt.Errorf("ValidateQubits: qubit %d: %w", q, ErrOverlap)
		}
		seen[q] = struct{}{}
	}

	return nil
}

// ValidateMatrix ensures m is a 2^k×2^k matrix.
// Complexity: O(1).
func ValidateMatrix(m *tensor.Dense, k int) error {
	if err := tensor.ValidateSquare(m); err != nil {
		return fmt.Errorf("ValidateMatrix: %w: %w", ErrBadMatrix, err)
	}
	if k < 1 || k > 30 || m.Dim(0) != 1<<k {
		return fmt.Errorf("ValidateMatrix: %d×%d for %d qubit(s): %w", m.Dim(0), m.Dim(1), k, ErrBadMatrix)
	}

	return nil
}

// Validate runs the structural checks on g: at least one target, distinct
// non-negative qubits, and a matrix sized for the targets.
// Complexity: O(k log k).
func Validate(g Gate) error {
	if g == nil {
		return fmt.Errorf("Validate: nil gate: %w", ErrBadQubits)
	}
	targets := g.Targets()
	if len(targets) == 0 {
		return fmt.Errorf("Validate(%s): no targets: %w", g.Name(), ErrBadQubits)
	}
	if err := ValidateQubits(g.Qubits()); err != nil {
		return fmt.Errorf("Validate(%s): %w", g.Name(), err)
	}
	if err := ValidateMatrix(g.Matrix(), len(targets)); err != nil {
		return fmt.Errorf("Validate(%s): %w", g.Name(), err)
	}

	return nil
}
