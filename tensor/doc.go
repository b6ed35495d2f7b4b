// Package tensor provides dense complex tensors and the contraction kernel
// used to apply small operators to large state tensors.
//
// The tensor package provides:
//
//   - Dense: a row-major complex128 buffer with an explicit shape and strides.
//     Reshape and Slice are no-copy views; Transpose and Concatenate copy.
//   - Contract: a generalized einsum that applies a (d…, d…) operator to the
//     named axes of a tensor while leaving every other axis untouched.
//   - Matrix kernels (MatMul, MatVec, Kron, BlockDiag, ConjTranspose, …) for
//     the rank-2 operands that gates and observables are built from.
//   - Backend: the capability set {Reshape, Transpose, Slice, Contract,
//     Concatenate} the simulation engine is written against, with CPU as the
//     single-threaded reference implementation.
//
// Complexity quicksheet:
//   - New/Clone: O(N); At/Set: O(rank); Reshape/Slice: O(rank)
//   - Transpose/Concatenate: O(N)
//   - Contract over k axes of total size D: O(N·D) time, O(N + D) scratch
package tensor
