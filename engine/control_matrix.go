// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"

	"github.com/katalvlaran/statevec/gates"
	"github.com/katalvlaran/statevec/tensor"
)

// ControlMatrix returns the promoted 4×4 operator [[I, 0], [0, U]] of a
// gate with exactly one control and a 2×2 bare matrix U, in the basis
// |control target>.
//
// ApplyGate does not use this; it handles any number of controls through
// ControlOrder and a partial contraction. The promoted form is for callers
// that need the dense operator, and it is only defined where that operator
// stays 4×4.
//
// Errors:
//   - ErrUnsupported: uncontrolled gate, or more than one control.
//   - ErrShape: the bare matrix is not 2×2.
func (e *Engine) ControlMatrix(g gates.Gate) (*tensor.Dense, error) {
	cg, ok := g.(gates.Controlled)
	if !ok {
		return nil, fmt.Errorf("ControlMatrix: gate without controls: %w", ErrUnsupported)
	}
	if m := len(cg.Controls()); m != 1 {
		return nil, fmt.Errorf("ControlMatrix(%s): %d controls, want 1: %w", cg.Name(), m, ErrUnsupported)
	}
	u := cg.Matrix()
	if err := tensor.ValidateSquare(u); err != nil || u.Dim(0) != 2 {
		return nil, fmt.Errorf("ControlMatrix(%s): bare matrix must be 2×2: %w", cg.Name(), ErrShape)
	}
	id, err := tensor.Identity(2)
	if err != nil {
		return nil, fmt.Errorf("ControlMatrix: %w", err)
	}
	out, err := tensor.BlockDiag(id, u)
	if err != nil {
		return nil, fmt.Errorf("ControlMatrix: %w", err)
	}

	return out, nil
}
