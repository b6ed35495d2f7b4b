// SPDX-License-Identifier: MIT

package tensor

import (
	"math"
	"math/cmplx"
)

const (
	opExpm = "Expm"

	// expmScaledNorm bounds ‖A/2^s‖₁ before the Taylor series is summed.
	expmScaledNorm = 0.5
	// expmMaxTerms caps the series; at ‖A‖₁ ≤ 0.5 it converges in ~15 terms.
	expmMaxTerms = 30
	expmTermTol  = 1e-17
)

// Expm returns the matrix exponential exp(alpha·m) of a square matrix.
//
// Implementation:
//   - Stage 1 (Validate): m square, alpha and every entry of m finite.
//   - Stage 2 (Scale): A = alpha·m / 2^s with ‖A‖₁ ≤ 0.5.
//   - Stage 3 (Sum): Taylor series of exp(A) until a term drops below 1e-17
//     in 1-norm.
//   - Stage 4 (Square): exp(alpha·m) = exp(A)^(2^s).
//
// With alpha = −i·t and Hermitian m the result is the unitary e^{−itm}.
//
// Complexity: O((K + s)·d³) for d×d m, K series terms.
func Expm(m *Dense, alpha complex128) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, linalgErrorf(opExpm, err)
	}
	if !finite(alpha) || !allFinite(m.data) {
		return nil, linalgErrorf(opExpm, ErrNaNInf)
	}
	d := m.shape[0]
	a, err := Scale(m, alpha)
	if err != nil {
		return nil, linalgErrorf(opExpm, err)
	}
	s := 0
	for norm := norm1(a); norm > expmScaledNorm; norm /= 2 {
		s++
	}
	if s > 0 {
		inv := complex(math.Ldexp(1, -s), 0)
		for i := range a.data {
			a.data[i] *= inv
		}
	}

	out, err := Identity(d)
	if err != nil {
		return nil, linalgErrorf(opExpm, err)
	}
	term := out.Clone()
	for k := 1; k <= expmMaxTerms; k++ {
		if term, err = MatMul(term, a); err != nil {
			return nil, linalgErrorf(opExpm, err)
		}
		inv := complex(1/float64(k), 0)
		for i := range term.data {
			term.data[i] *= inv
			out.data[i] += term.data[i]
		}
		if norm1(term) < expmTermTol {
			break
		}
	}
	for ; s > 0; s-- {
		if out, err = MatMul(out, out); err != nil {
			return nil, linalgErrorf(opExpm, err)
		}
	}

	return out, nil
}

// norm1 is the maximum absolute column sum of a square matrix.
func norm1(m *Dense) float64 {
	d := m.shape[0]
	var best float64
	for j := 0; j < d; j++ {
		var col float64
		for i := 0; i < d; i++ {
			col += cmplx.Abs(m.data[i*d+j])
		}
		best = math.Max(best, col)
	}

	return best
}

func finite(v complex128) bool {
	return !cmplx.IsNaN(v) && !cmplx.IsInf(v)
}

func allFinite(data []complex128) bool {
	for _, v := range data {
		if !finite(v) {
			return false
		}
	}

	return true
}
