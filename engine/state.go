// SPDX-License-Identifier: MIT

package engine

import "fmt"

// stateLen returns 2^n after checking n against the engine limits.
func (e *Engine) stateLen(op string, n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%s: n=%d: %w", op, n, ErrInvalidQubitCount)
	}
	if n > e.opts.maxQubits {
		return 0, fmt.Errorf("%s: n=%d exceeds limit %d: %w", op, n, e.opts.maxQubits, ErrAllocation)
	}

	return 1 << n, nil
}

// ZeroState returns |0…0>: amplitude 1 at index 0 and 0 elsewhere.
// n = 0 yields the one-element vector [1].
// Complexity: O(2^n).
func (e *Engine) ZeroState(n int) ([]complex128, error) {
	return e.BasisState(n, 0)
}

// BasisState returns the computational basis state |index> on n qubits.
// Complexity: O(2^n).
func (e *Engine) BasisState(n, index int) ([]complex128, error) {
	size, err := e.stateLen("BasisState", n)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= size {
		return nil, fmt.Errorf("BasisState: index %d for %d qubit(s): %w", index, n, ErrQubitOutOfRange)
	}
	state := make([]complex128, size)
	state[index] = 1

	return state, nil
}

// validateState checks len(state) == 2^n.
func (e *Engine) validateState(op string, state []complex128, n int) error {
	size, err := e.stateLen(op, n)
	if err != nil {
		return err
	}
	if len(state) != size {
		return fmt.Errorf("%s: len %d, want 2^%d = %d: %w", op, len(state), n, size, ErrStateLength)
	}

	return nil
}
