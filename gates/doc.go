// Package gates describes quantum gates as immutable values: which qubits a
// gate acts on, which qubits condition it, and the dense unitary it applies.
//
// A Gate is one of two concrete variants:
//
//   - Uncontrolled: a 2^k×2^k matrix acting on k target qubits.
//   - Controlled:   the same, applied only on the subspace where every
//     control qubit is |1>.
//
// The set is closed; consumers branch with a type switch over the two.
//
// Matrix convention: row = output basis index, column = input basis index,
// with the first listed target as the most significant bit. So for
// SWAP(0, 1) and CNOT(0, 1) the usual textbook matrices apply.
//
// Parametrized gates (RX, RY, RZ, Phase, U3 and their controlled forms)
// expose Parameters and WithParameters so circuits can update angles
// without rebuilding structure. Gates that are generated by a single Pauli
// term report GeneratorEigenvalue for the parameter-shift rule.
//
// Example:
//
//	g := gates.RX(0, math.Pi/2)
//	cg, err := g.Controlled(1)
//	if err != nil { /* overlap or bad index */ }
package gates
