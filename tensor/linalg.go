// SPDX-License-Identifier: MIT

// Package tensor - rank-2 kernels.
//
// Purpose:
//   - Build and combine the small dense operators gates and observables are
//     made of: products, Kronecker products, block-diagonal embeddings.
//   - Keep loop orders fixed (i→k→j) so results are reproducible bit-for-bit.
//
// Determinism & Policy:
//   - All kernels allocate a fresh result; operands are never mutated.
//   - Validation happens up front through validators.go; errors are wrapped
//     with the kernel's tag.

package tensor

import (
	"fmt"
	"math"
	"math/cmplx"
)

// ---------- kernel tags ----------

const (
	opMatMul    = "MatMul"
	opMatVec    = "MatVec"
	opKron      = "Kron"
	opAdd       = "Add"
	opScale     = "Scale"
	opDagger    = "ConjTranspose"
	opBlockDiag = "BlockDiag"
	opUnitary   = "IsUnitary"
	opHermitian = "IsHermitian"
	opTrace     = "Trace"
	opComm      = "Commutator"
)

// linalgErrorf wraps err with the kernel tag.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatMul returns the matrix product a·b.
// Complexity: O(r·n·c).
func MatMul(a, b *Dense) (*Dense, error) {
	if err := ValidateMatrix(a); err != nil {
		return nil, linalgErrorf(opMatMul, err)
	}
	if err := ValidateMatrix(b); err != nil {
		return nil, linalgErrorf(opMatMul, err)
	}
	r, n, c := a.shape[0], a.shape[1], b.shape[1]
	if b.shape[0] != n {
		return nil, linalgErrorf(opMatMul, ErrDimensionMismatch)
	}
	out, err := New(r, c)
	if err != nil {
		return nil, linalgErrorf(opMatMul, err)
	}
	for i := 0; i < r; i++ {
		orow := out.data[i*c : (i+1)*c]
		for k := 0; k < n; k++ {
			aik := a.data[i*n+k]
			if aik == 0 {
				continue
			}
			brow := b.data[k*c : (k+1)*c]
			for j := range orow {
				orow[j] += aik * brow[j]
			}
		}
	}

	return out, nil
}

// MatVec returns y = m·x.
// Complexity: O(r·c).
func MatVec(m *Dense, x []complex128) ([]complex128, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, linalgErrorf(opMatVec, err)
	}
	r, c := m.shape[0], m.shape[1]
	if err := ValidateVecLen(x, c); err != nil {
		return nil, linalgErrorf(opMatVec, err)
	}
	y := make([]complex128, r)
	for i := 0; i < r; i++ {
		var acc complex128
		row := m.data[i*c : (i+1)*c]
		for j, v := range row {
			acc += v * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Kron returns the Kronecker product a ⊗ b. With the qubit-0-outermost
// convention, a acts on the leading qubits and b on the trailing ones.
// Complexity: O(ra·ca·rb·cb).
func Kron(a, b *Dense) (*Dense, error) {
	if err := ValidateMatrix(a); err != nil {
		return nil, linalgErrorf(opKron, err)
	}
	if err := ValidateMatrix(b); err != nil {
		return nil, linalgErrorf(opKron, err)
	}
	ra, ca := a.shape[0], a.shape[1]
	rb, cb := b.shape[0], b.shape[1]
	out, err := New(ra*rb, ca*cb)
	if err != nil {
		return nil, linalgErrorf(opKron, err)
	}
	c := ca * cb
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			aij := a.data[i*ca+j]
			if aij == 0 {
				continue
			}
			for p := 0; p < rb; p++ {
				row := (i*rb + p) * c
				for q := 0; q < cb; q++ {
					out.data[row+j*cb+q] = aij * b.data[p*cb+q]
				}
			}
		}
	}

	return out, nil
}

// Add returns the element-wise sum a + b of two tensors with equal shapes.
// Complexity: O(N).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, linalgErrorf(opAdd, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, linalgErrorf(opAdd, err)
	}
	if len(a.shape) != len(b.shape) || len(a.data) != len(b.data) {
		return nil, linalgErrorf(opAdd, ErrDimensionMismatch)
	}
	for i := range a.shape {
		if a.shape[i] != b.shape[i] {
			return nil, linalgErrorf(opAdd, ErrDimensionMismatch)
		}
	}
	out := a.Clone()
	for i, v := range b.data {
		out.data[i] += v
	}

	return out, nil
}

// Scale returns alpha·t.
// Complexity: O(N).
func Scale(t *Dense, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, linalgErrorf(opScale, err)
	}
	out := t.Clone()
	for i := range out.data {
		out.data[i] *= alpha
	}

	return out, nil
}

// ConjTranspose returns the Hermitian adjoint m†.
// Complexity: O(r·c).
func ConjTranspose(m *Dense) (*Dense, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, linalgErrorf(opDagger, err)
	}
	r, c := m.shape[0], m.shape[1]
	out, err := New(c, r)
	if err != nil {
		return nil, linalgErrorf(opDagger, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[j*r+i] = cmplx.Conj(m.data[i*c+j])
		}
	}

	return out, nil
}

// BlockDiag returns the block-diagonal matrix diag(blocks[0], blocks[1], …).
// Off-diagonal blocks are zero. Blocks need not be square.
// Complexity: O(R·C) for the zeroed result plus O(Σ block sizes) writes.
func BlockDiag(blocks ...*Dense) (*Dense, error) {
	if len(blocks) == 0 {
		return nil, linalgErrorf(opBlockDiag, ErrNilTensor)
	}
	R, C := 0, 0
	for _, b := range blocks {
		if err := ValidateMatrix(b); err != nil {
			return nil, linalgErrorf(opBlockDiag, err)
		}
		R += b.shape[0]
		C += b.shape[1]
	}
	out, err := New(R, C)
	if err != nil {
		return nil, linalgErrorf(opBlockDiag, err)
	}
	r0, c0 := 0, 0
	for _, b := range blocks {
		br, bc := b.shape[0], b.shape[1]
		for i := 0; i < br; i++ {
			copy(out.data[(r0+i)*C+c0:(r0+i)*C+c0+bc], b.data[i*bc:(i+1)*bc])
		}
		r0 += br
		c0 += bc
	}

	return out, nil
}

// Trace returns Σ m[i,i] for a square matrix.
// Complexity: O(n).
func Trace(m *Dense) (complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, linalgErrorf(opTrace, err)
	}
	n := m.shape[0]
	var acc complex128
	for i := 0; i < n; i++ {
		acc += m.data[i*n+i]
	}

	return acc, nil
}

// Commutator returns [a, b] = a·b − b·a for square matrices of equal size.
// Complexity: O(n³).
func Commutator(a, b *Dense) (*Dense, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, linalgErrorf(opComm, err)
	}
	if err := ValidateSquare(b); err != nil {
		return nil, linalgErrorf(opComm, err)
	}
	if a.shape[0] != b.shape[0] {
		return nil, linalgErrorf(opComm, ErrDimensionMismatch)
	}
	ab, err := MatMul(a, b)
	if err != nil {
		return nil, linalgErrorf(opComm, err)
	}
	ba, err := MatMul(b, a)
	if err != nil {
		return nil, linalgErrorf(opComm, err)
	}
	for i, v := range ba.data {
		ab.data[i] -= v
	}

	return ab, nil
}

// IsUnitary reports whether m†m equals the identity within eps (max-abs).
// Complexity: O(n³).
func IsUnitary(m *Dense, eps float64) (bool, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return false, linalgErrorf(opUnitary, ErrNaNInf)
	}
	if err := ValidateSquare(m); err != nil {
		return false, linalgErrorf(opUnitary, err)
	}
	mh, err := ConjTranspose(m)
	if err != nil {
		return false, linalgErrorf(opUnitary, err)
	}
	p, err := MatMul(mh, m)
	if err != nil {
		return false, linalgErrorf(opUnitary, err)
	}
	id, err := Identity(m.shape[0])
	if err != nil {
		return false, linalgErrorf(opUnitary, err)
	}
	ok, err := AllClose(p.data, id.data, 0, eps)
	if err != nil {
		return false, linalgErrorf(opUnitary, err)
	}

	return ok, nil
}

// IsHermitian reports whether |m[i,j] − conj(m[j,i])| ≤ eps for all i ≤ j.
// Complexity: O(n²) over the upper triangle.
func IsHermitian(m *Dense, eps float64) (bool, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return false, linalgErrorf(opHermitian, ErrNaNInf)
	}
	if err := ValidateSquare(m); err != nil {
		return false, linalgErrorf(opHermitian, err)
	}
	n := m.shape[0]
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if cmplx.Abs(m.data[i*n+j]-cmplx.Conj(m.data[j*n+i])) > eps {
				return false, nil
			}
		}
	}

	return true, nil
}
