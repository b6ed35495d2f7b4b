// SPDX-License-Identifier: MIT

package dbf

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/katalvlaran/statevec/hamiltonian"
	"github.com/katalvlaran/statevec/tensor"
)

// Generator selects how the flow unitary of one step is built.
type Generator int

const (
	// Canonical uses the commutator with H's own diagonal part.
	Canonical Generator = iota
	// SingleCommutator uses the commutator with a supplied diagonal D.
	SingleCommutator
	// GroupCommutator approximates SingleCommutator by four exponentials.
	GroupCommutator
)

func (g Generator) valid() bool { return g >= Canonical && g <= GroupCommutator }

// String implements fmt.Stringer.
func (g Generator) String() string {
	switch g {
	case Canonical:
		return "canonical"
	case SingleCommutator:
		return "single_commutator"
	case GroupCommutator:
		return "group_commutator"
	default:
		return fmt.Sprintf("Generator(%d)", int(g))
	}
}

// Flow holds the evolving Hamiltonian of a double-bracket flow.
// A Flow is not safe for concurrent mutation; read-only methods
// (Loss, BestStep, OffDiagonalNorm) may run concurrently with each other.
type Flow struct {
	n    int
	h    *tensor.Dense
	h0   *tensor.Dense
	opts Options
}

// New starts a flow at h. The flow owns a copy; h is never modified.
func New(h *hamiltonian.Hamiltonian, opts ...Option) (*Flow, error) {
	if h == nil {
		return nil, fmt.Errorf("dbf.New: %w", ErrNilHamiltonian)
	}
	m := h.Matrix()

	return &Flow{n: h.NumQubits(), h: m, h0: m.Clone(), opts: gatherOptions(opts...)}, nil
}

// NumQubits returns n.
func (f *Flow) NumQubits() int { return f.n }

// Generator returns the configured generator.
func (f *Flow) Generator() Generator { return f.opts.generator }

// Matrix returns a copy of the current operator.
func (f *Flow) Matrix() *tensor.Dense { return f.h.Clone() }

// Initial returns a copy of the starting operator.
func (f *Flow) Initial() *tensor.Dense { return f.h0.Clone() }

// Reset rewinds the flow to its starting operator.
func (f *Flow) Reset() { f.h = f.h0.Clone() }

// Hamiltonian returns the current operator as an observable.
func (f *Flow) Hamiltonian() (*hamiltonian.Hamiltonian, error) {
	return hamiltonian.New(f.n, f.h)
}

// Step advances the flow by step with the configured generator.
// d is ignored by Canonical and required by the other generators.
func (f *Flow) Step(step float64, d *tensor.Dense) error {
	return f.StepWith(f.opts.generator, step, d)
}

// StepWith advances the flow by step with generator g.
//
// Implementation:
//   - Stage 1 (Generate): build U for g (see package doc).
//   - Stage 2 (Conjugate): H ← U H U†, then re-symmetrize H ← (H + H†)/2
//     so rounding never accumulates an anti-Hermitian part.
//
// On error the flow is unchanged.
func (f *Flow) StepWith(g Generator, step float64, d *tensor.Dense) error {
	next, err := advance(f.h, g, step, d)
	if err != nil {
		return fmt.Errorf("dbf.Step(%s, %g): %w", g, step, err)
	}
	f.h = next
	if f.opts.logger.GetLevel() <= log.DebugLevel {
		f.opts.logger.Debug("flow step", "generator", g, "step", step, "offdiag", offDiagonalNorm(next))
	}

	return nil
}

// advance returns U h U† for one step without touching h.
func advance(h *tensor.Dense, g Generator, step float64, d *tensor.Dense) (*tensor.Dense, error) {
	if math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, tensor.ErrNaNInf
	}
	u, err := unitary(h, g, step, d)
	if err != nil {
		return nil, err
	}
	uh, err := tensor.MatMul(u, h)
	if err != nil {
		return nil, err
	}
	ud, err := tensor.ConjTranspose(u)
	if err != nil {
		return nil, err
	}
	next, err := tensor.MatMul(uh, ud)
	if err != nil {
		return nil, err
	}

	return hermitianPart(next)
}

func unitary(h *tensor.Dense, g Generator, step float64, d *tensor.Dense) (*tensor.Dense, error) {
	switch g {
	case Canonical:
		w, err := tensor.Commutator(diagonal(h), h)
		if err != nil {
			return nil, err
		}
		return tensor.Expm(w, complex(step, 0))
	case SingleCommutator, GroupCommutator:
		if d == nil {
			return nil, fmt.Errorf("%s: %w", g, ErrNoDiagonal)
		}
		if err := tensor.ValidateSquare(d); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrShape, err)
		}
		if d.Dim(0) != h.Dim(0) {
			return nil, fmt.Errorf("D is %d×%d, H is %d×%d: %w", d.Dim(0), d.Dim(1), h.Dim(0), h.Dim(1), ErrShape)
		}
		if g == SingleCommutator {
			w, err := tensor.Commutator(d, h)
			if err != nil {
				return nil, err
			}
			return tensor.Expm(w, complex(step, 0))
		}
		return groupCommutator(h, d, step)
	default:
		return nil, fmt.Errorf("%s: %w", g, ErrUnknownGenerator)
	}
}

// groupCommutator returns e^{isH} e^{isD} e^{−isH} e^{−isD}.
func groupCommutator(h, d *tensor.Dense, step float64) (*tensor.Dense, error) {
	factors := []struct {
		m     *tensor.Dense
		alpha complex128
	}{
		{h, complex(0, step)},
		{d, complex(0, step)},
		{h, complex(0, -step)},
		{d, complex(0, -step)},
	}
	var out *tensor.Dense
	for _, fc := range factors {
		e, err := tensor.Expm(fc.m, fc.alpha)
		if err != nil {
			return nil, err
		}
		if out == nil {
			out = e
			continue
		}
		if out, err = tensor.MatMul(out, e); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// diagonal returns diag(h) as a matrix.
func diagonal(h *tensor.Dense) *tensor.Dense {
	n := h.Dim(0)
	out := h.Clone()
	data := out.Data()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				data[i*n+j] = 0
			}
		}
	}

	return out
}

// offDiagonal returns h − diag(h).
func offDiagonal(h *tensor.Dense) *tensor.Dense {
	n := h.Dim(0)
	out := h.Clone()
	data := out.Data()
	for i := 0; i < n; i++ {
		data[i*n+i] = 0
	}

	return out
}

func hermitianPart(m *tensor.Dense) (*tensor.Dense, error) {
	mh, err := tensor.ConjTranspose(m)
	if err != nil {
		return nil, err
	}
	sum, err := tensor.Add(m, mh)
	if err != nil {
		return nil, err
	}

	return tensor.Scale(sum, 0.5)
}

// offDiagonalNorm is Re tr(σ†σ) for σ = h − diag(h).
func offDiagonalNorm(h *tensor.Dense) float64 {
	sigma := offDiagonal(h)
	sd, err := tensor.ConjTranspose(sigma)
	if err != nil {
		return math.NaN()
	}
	p, err := tensor.MatMul(sd, sigma)
	if err != nil {
		return math.NaN()
	}
	tr, err := tensor.Trace(p)
	if err != nil {
		return math.NaN()
	}

	return real(tr)
}

// Diagonal returns the diagonal part Δ(H) of the current operator.
func (f *Flow) Diagonal() *tensor.Dense { return diagonal(f.h) }

// OffDiagonal returns σ(H) = H − Δ(H).
func (f *Flow) OffDiagonal() *tensor.Dense { return offDiagonal(f.h) }

// OffDiagonalNorm returns ‖σ(H)‖² = Re tr(σ(H)†σ(H)).
// Complexity: O(d³).
func (f *Flow) OffDiagonalNorm() float64 { return offDiagonalNorm(f.h) }

// EnergyFluctuation returns √(<H²> − <H>²) of the current operator in
// state, both moments normalized by <ψ|ψ>. Eigenstates give 0.
// Complexity: O(d²).
func (f *Flow) EnergyFluctuation(state []complex128) (float64, error) {
	h, err := f.Hamiltonian()
	if err != nil {
		return 0, fmt.Errorf("EnergyFluctuation: %w", err)
	}
	hpsi, err := h.Apply(state)
	if err != nil {
		return 0, fmt.Errorf("EnergyFluctuation: %w", err)
	}
	norm := tensor.Norm2(state)
	if norm == 0 {
		return 0, fmt.Errorf("EnergyFluctuation: %w", ErrZeroState)
	}
	e, err := tensor.InnerProduct(state, hpsi)
	if err != nil {
		return 0, fmt.Errorf("EnergyFluctuation: %w", err)
	}
	n2 := norm * norm
	mean := real(e) / n2
	h2 := tensor.Norm2(hpsi)
	h2 = h2 * h2 / n2

	return math.Sqrt(math.Max(0, h2-mean*mean)), nil
}
