// Package hamiltonian provides dense Hermitian observables on n qubits and
// the standard spin models used as targets for variational circuits.
//
// Models (periodic boundary conditions where two-body):
//
//	X(n), Y(n), Z(n)   H = −Σ σ_i
//	XXZ(n, δ)          H =  Σ (X_i X_{i+1} + Y_i Y_{i+1} + δ Z_i Z_{i+1})
//	TFIM(n, h)         H = −Σ (Z_i Z_{i+1} + h X_i)
//
// Matrices are 2^n×2^n and built by Kronecker products in the qubit-0-is-
// most-significant convention used by the engine, so Expectation can be
// fed an engine state directly.
package hamiltonian
