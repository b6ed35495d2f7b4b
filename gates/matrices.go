// SPDX-License-Identifier: MIT

package gates

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/statevec/tensor"
)

// literal builds a d×d matrix from row-major entries. Only used with
// compile-time constant sizes, so a failure is a programming error.
func literal(d int, entries ...complex128) *tensor.Dense {
	m, err := tensor.FromSlice(entries, d, d)
	if err != nil {
		panic("gates: bad literal matrix: " + err.Error())
	}

	return m
}

var invSqrt2 = complex(1/math.Sqrt2, 0)

func identityMatrix() *tensor.Dense { return literal(2, 1, 0, 0, 1) }
func pauliXMatrix() *tensor.Dense   { return literal(2, 0, 1, 1, 0) }
func pauliYMatrix() *tensor.Dense   { return literal(2, 0, -1i, 1i, 0) }
func pauliZMatrix() *tensor.Dense   { return literal(2, 1, 0, 0, -1) }
func hadamardMatrix() *tensor.Dense {
	return literal(2, invSqrt2, invSqrt2, invSqrt2, -invSqrt2)
}

// diagPhase returns diag(1, e^{iφ}); S, T and their adjoints are special cases.
func diagPhase(phi float64) *tensor.Dense {
	return literal(2, 1, 0, 0, cmplx.Exp(complex(0, phi)))
}

func sqrtXMatrix() *tensor.Dense {
	return literal(2, 0.5+0.5i, 0.5-0.5i, 0.5-0.5i, 0.5+0.5i)
}

func swapMatrix() *tensor.Dense {
	return literal(4,
		1, 0, 0, 0,
		0, 0, 1, 0,
		0, 1, 0, 0,
		0, 0, 0, 1,
	)
}

// rxMatrix: exp(-iθX/2).
func rxMatrix(p []float64) *tensor.Dense {
	c, s := math.Cos(p[0]/2), math.Sin(p[0]/2)
	return literal(2, complex(c, 0), complex(0, -s), complex(0, -s), complex(c, 0))
}

// ryMatrix: exp(-iθY/2).
func ryMatrix(p []float64) *tensor.Dense {
	c, s := math.Cos(p[0]/2), math.Sin(p[0]/2)
	return literal(2, complex(c, 0), complex(-s, 0), complex(s, 0), complex(c, 0))
}

// rzMatrix: exp(-iθZ/2).
func rzMatrix(p []float64) *tensor.Dense {
	h := p[0] / 2
	return literal(2, cmplx.Exp(complex(0, -h)), 0, 0, cmplx.Exp(complex(0, h)))
}

func phaseMatrix(p []float64) *tensor.Dense { return diagPhase(p[0]) }

// u3Matrix with p = (θ, φ, λ):
//
//	[ e^{-i(φ+λ)/2} cos(θ/2)   -e^{-i(φ-λ)/2} sin(θ/2) ]
//	[ e^{ i(φ-λ)/2} sin(θ/2)    e^{ i(φ+λ)/2} cos(θ/2) ]
func u3Matrix(p []float64) *tensor.Dense {
	theta, phi, lam := p[0], p[1], p[2]
	c, s := complex(math.Cos(theta/2), 0), complex(math.Sin(theta/2), 0)
	plus := cmplx.Exp(complex(0, (phi+lam)/2))
	minus := cmplx.Exp(complex(0, (phi-lam)/2))

	return literal(2,
		cmplx.Conj(plus)*c, -cmplx.Conj(minus)*s,
		minus*s, plus*c,
	)
}

// negate is the adjoint rule for rotations and phases: U(θ)† = U(-θ).
func negate(p []float64) []float64 {
	out := make([]float64, len(p))
	for i, v := range p {
		out[i] = -v
	}

	return out
}

// u3Adjoint: U3(θ, φ, λ)† = U3(-θ, -λ, -φ).
func u3Adjoint(p []float64) []float64 {
	return []float64{-p[0], -p[2], -p[1]}
}
