// Package quantuminfo computes figures of merit on pure statevectors:
// overlaps and distances, measurement probabilities, single-qubit reduced
// density matrices with their purity and entropy, and the Meyer-Wallach
// entanglement measure with the entangling capability of a parametrized
// circuit.
//
// All functions take states in the engine's convention (qubit 0 is the most
// significant bit of a basis index). Mixed-state inputs are out of scope:
// reduced density matrices are derived from a pure state, never simulated.
//
// Complexity quicksheet (N = 2^n):
//   - Fidelity / TraceDistance / Probabilities: O(N)
//   - ReducedDensityMatrix / Purity / EntanglementEntropy: O(N)
//   - MeyerWallach: O(n·N)
//   - EntanglingCapability: samples × (Execute + O(n·N)), run concurrently
package quantuminfo
