// Package dbf implements the double-bracket flow: a sequence of unitary
// conjugations H ← U H U† that drives a dense Hamiltonian towards diagonal
// form while preserving its spectrum.
//
// 🚀 Generators
//
//   - Canonical: U = exp(s·[Δ(H), H]), Δ the diagonal part of H.
//   - SingleCommutator: U = exp(s·[D, H]) for a caller-supplied diagonal D.
//   - GroupCommutator: U = e^{isH} e^{isD} e^{−isH} e^{−isD}, which agrees
//     with SingleCommutator at step s² up to O(s³) and needs only
//     exponentials of H and D.
//
// Progress is measured by the off-diagonal norm ‖σ(H)‖² = tr(σ(H)†σ(H)).
// BestStep searches a step grid concurrently for the smallest loss.
//
// Complexity: every step is O(d³) for d = 2^n, dominated by Expm and MatMul.
package dbf
