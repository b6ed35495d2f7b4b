// Package statevec is an in-memory state-vector simulator for n-qubit pure
// states: a dense amplitude container, a tensor-contraction gate engine and
// the small set of consumers (circuits, observables, gradients, metrics)
// that sit on top of it.
//
// 🚀 What is statevec?
//
//	A pure-Go library that brings together:
//		• tensor: row-major complex tensors, axis permutation, contraction
//		• gates: uncontrolled / controlled gate descriptors + standard set
//		• engine: zero state, apply_gate, control_matrix, circuit execution
//		• circuit: ordered gate queues with trainable parameters
//		• hamiltonian: dense observables (XXZ, TFIM, one-body Pauli)
//		• derivative: parameter-shift gradients
//		• quantuminfo: fidelity, reduced states, Meyer–Wallach entanglement
//		• dbf: double-bracket flow diagonalization of dense Hamiltonians
//
// ✨ Conventions
//
//   - Qubit i is tensor axis i; qubit 0 is the most significant bit of a
//     basis index, so |q0 q1 … q(n-1)> lives at flat index Σ q_i·2^(n-1-i).
//   - A gate on k qubits is a 2^k × 2^k matrix (row = output, column = input).
//   - The engine never materializes a 2^n × 2^n operator; a gate touches the
//     state through a contraction over its target axes only.
//
// Quick ASCII example (Bell pair):
//
//	q0 ──H──●──
//	        │
//	q1 ─────X──
//
//	|00> → (|00> + |11>)/√2
//
// Under the hood:
//
//	tensor/      — Dense, Transpose, Slice, Concatenate, Contract, matrix kernels
//	gates/       — Gate, Uncontrolled, Controlled, standard gate constructors
//	engine/      — Engine, ControlOrder, ApplyGate, ControlMatrix, Execute
//	circuit/     — Circuit, parameters, inversion
//	hamiltonian/ — Hamiltonian, X/Y/Z, XXZ, TFIM
//	derivative/  — ParameterShift, Gradient
//	quantuminfo/ — pure-state metrics, entangling capability, moment integrals
//	dbf/         — double-bracket flow towards the eigenbasis
//	examples/    — runnable scenarios
//
//	go get github.com/katalvlaran/statevec
package statevec
