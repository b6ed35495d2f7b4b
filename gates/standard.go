// SPDX-License-Identifier: MIT

package gates

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/statevec/tensor"
)

// Unitary wraps an arbitrary 2^k×2^k matrix acting on k distinct targets.
// The matrix is copied. Unitarity is not checked here; the engine can be
// configured to verify it.
func Unitary(m *tensor.Dense, targets ...int) (Uncontrolled, error) {
	if len(targets) == 0 {
		return Uncontrolled{}, fmt.Errorf("Unitary: no targets: %w", ErrBadQubits)
	}
	if err := ValidateQubits(targets); err != nil {
		return Uncontrolled{}, fmt.Errorf("Unitary: %w", err)
	}
	if err := ValidateMatrix(m, len(targets)); err != nil {
		return Uncontrolled{}, fmt.Errorf("Unitary: %w", err)
	}

	return Uncontrolled{name: "Unitary", targets: slices.Clone(targets), matrix: m.Clone()}, nil
}

func fixed(name string, m *tensor.Dense, hermitian bool, targets ...int) Uncontrolled {
	return Uncontrolled{name: name, targets: targets, matrix: m, hermitian: hermitian}
}

// I is the single-qubit identity.
func I(q int) Uncontrolled { return fixed("I", identityMatrix(), true, q) }

// X is the Pauli-X (bit flip).
func X(q int) Uncontrolled { return fixed("X", pauliXMatrix(), true, q) }

// Y is the Pauli-Y.
func Y(q int) Uncontrolled { return fixed("Y", pauliYMatrix(), true, q) }

// Z is the Pauli-Z (phase flip).
func Z(q int) Uncontrolled { return fixed("Z", pauliZMatrix(), true, q) }

// H is the Hadamard gate.
func H(q int) Uncontrolled { return fixed("H", hadamardMatrix(), true, q) }

// S is diag(1, i).
func S(q int) Uncontrolled { return fixed("S", diagPhase(math.Pi/2), false, q) }

// Sdg is diag(1, -i).
func Sdg(q int) Uncontrolled { return fixed("S†", diagPhase(-math.Pi/2), false, q) }

// T is diag(1, e^{iπ/4}).
func T(q int) Uncontrolled { return fixed("T", diagPhase(math.Pi/4), false, q) }

// Tdg is diag(1, e^{-iπ/4}).
func Tdg(q int) Uncontrolled { return fixed("T†", diagPhase(-math.Pi/4), false, q) }

// SX is the square root of X.
func SX(q int) Uncontrolled { return fixed("SX", sqrtXMatrix(), false, q) }

// SWAP exchanges qubits a and b.
func SWAP(a, b int) Uncontrolled { return fixed("SWAP", swapMatrix(), true, a, b) }

var (
	rxFamily    = &family{arity: 1, build: rxMatrix, adjoint: negate, eigen: 0.5}
	ryFamily    = &family{arity: 1, build: ryMatrix, adjoint: negate, eigen: 0.5}
	rzFamily    = &family{arity: 1, build: rzMatrix, adjoint: negate, eigen: 0.5}
	phaseFamily = &family{arity: 1, build: phaseMatrix, adjoint: negate, eigen: 0.5}
	u3Family    = &family{arity: 3, build: u3Matrix, adjoint: u3Adjoint}
)

func parametrized(name string, fam *family, values []float64, targets ...int) Uncontrolled {
	vals := slices.Clone(values)
	return Uncontrolled{name: name, targets: targets, matrix: fam.build(vals), fam: fam, params: vals}
}

// RX rotates about the X axis by theta.
func RX(q int, theta float64) Uncontrolled {
	return parametrized("RX", rxFamily, []float64{theta}, q)
}

// RY rotates about the Y axis by theta.
func RY(q int, theta float64) Uncontrolled {
	return parametrized("RY", ryFamily, []float64{theta}, q)
}

// RZ rotates about the Z axis by theta.
func RZ(q int, theta float64) Uncontrolled {
	return parametrized("RZ", rzFamily, []float64{theta}, q)
}

// Phase is diag(1, e^{iθ}) (U1).
func Phase(q int, theta float64) Uncontrolled {
	return parametrized("U1", phaseFamily, []float64{theta}, q)
}

// U3 is the general single-qubit rotation with angles (theta, phi, lambda).
func U3(q int, theta, phi, lambda float64) Uncontrolled {
	return parametrized("U3", u3Family, []float64{theta, phi, lambda}, q)
}

// CNOT flips target when control is |1>.
func CNOT(control, target int) Controlled { return controlled(X(target), control) }

// CZ applies Z to target when control is |1>.
func CZ(control, target int) Controlled { return controlled(Z(target), control) }

// CRX is RX(theta) on target conditioned on control.
func CRX(control, target int, theta float64) Controlled {
	return controlled(RX(target, theta), control)
}

// CRY is RY(theta) on target conditioned on control.
func CRY(control, target int, theta float64) Controlled {
	return controlled(RY(target, theta), control)
}

// CRZ is RZ(theta) on target conditioned on control.
func CRZ(control, target int, theta float64) Controlled {
	return controlled(RZ(target, theta), control)
}

// Toffoli flips target when both controls are |1>.
func Toffoli(c0, c1, target int) Controlled { return controlled(X(target), c0, c1) }
