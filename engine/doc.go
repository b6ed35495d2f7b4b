// Package engine applies gates to dense n-qubit statevectors.
//
// The engine never materializes the 2^n×2^n operator of a gate. A k-qubit
// gate is a (2,)^(2k) tensor contracted against k axes of the (2,)^n state
// tensor. Controlled gates reorder axes so the controls lead, collapse them
// into one axis of size 2^m, and contract only the last slice along it (the
// subspace where every control is |1>). The other 2^m−1 slices pass through
// untouched, then the axes are restored.
//
// Conventions:
//
//   - Qubit i is tensor axis i. The flat vector is row-major, so qubit 0 is
//     the most significant bit of a basis index: |q0 q1 … q(n-1)>.
//   - ApplyGate never writes into the caller's buffer; it returns a new one.
//     Callers replace their state with the returned slice.
//   - All validation (qubit ranges, matrix shape, state length) happens
//     before any amplitude is touched.
//
// Configuration uses functional options; see WithBackend, WithLogger,
// WithMaxQubits, WithValidateUnitary and WithEpsilon. The zero-config engine
// runs on tensor.CPU, logs nothing, and refuses registers above
// DefaultMaxQubits qubits.
//
// Example:
//
//	eng := engine.New()
//	psi, _ := eng.ZeroState(2)
//	psi, _ = eng.ApplyGate(gates.H(0), psi, 2)
//	psi, _ = eng.ApplyGate(gates.CNOT(0, 1), psi, 2) // Bell state
package engine
