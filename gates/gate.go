// SPDX-License-Identifier: MIT

package gates

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/statevec/tensor"
)

// Gate is the closed set {Uncontrolled, Controlled}. All accessors return
// copies; a Gate value never changes after construction.
type Gate interface {
	// Name is the short mnemonic ("H", "CX", "RY", "Unitary", …).
	Name() string
	// Targets are the qubits the matrix acts on, most significant first.
	Targets() []int
	// Controls are the conditioning qubits; empty for Uncontrolled.
	Controls() []int
	// Qubits lists controls followed by targets.
	Qubits() []int
	// Matrix is a copy of the bare 2^k×2^k unitary on the targets.
	Matrix() *tensor.Dense
	// Dagger returns the adjoint gate on the same qubits.
	Dagger() Gate

	Parametrized

	sealed()
}

// Parametrized is the trainable-angle surface. Fixed gates report no
// parameters and reject any non-empty WithParameters call.
type Parametrized interface {
	Parameters() []float64
	WithParameters(values ...float64) (Gate, error)
	GeneratorEigenvalue() (float64, error)
}

// IsParametrized reports whether g carries at least one parameter.
func IsParametrized(g Gate) bool { return len(g.Parameters()) > 0 }

// family rebuilds the matrix of a parametrized gate from its values.
type family struct {
	arity   int
	build   func([]float64) *tensor.Dense
	adjoint func([]float64) []float64
	eigen   float64 // 0: no single generator eigenvalue
}

// Uncontrolled applies matrix to targets unconditionally.
type Uncontrolled struct {
	name    string
	targets []int
	matrix  *tensor.Dense
	fam     *family
	params  []float64

	// hermitian marks fixed gates that are their own adjoint.
	hermitian bool
}

var _ Gate = Uncontrolled{}

func (Uncontrolled) sealed() {}

// Name implements Gate.
func (g Uncontrolled) Name() string { return g.name }

// Targets implements Gate.
func (g Uncontrolled) Targets() []int { return slices.Clone(g.targets) }

// Controls implements Gate; always empty.
func (Uncontrolled) Controls() []int { return nil }

// Qubits implements Gate.
func (g Uncontrolled) Qubits() []int { return slices.Clone(g.targets) }

// Matrix implements Gate.
func (g Uncontrolled) Matrix() *tensor.Dense {
	if g.matrix == nil {
		return nil
	}

	return g.matrix.Clone()
}

// Dagger implements Gate. Parametrized gates stay parametrized with
// adjusted values; fixed gates carry the conjugate transpose.
func (g Uncontrolled) Dagger() Gate {
	if g.fam != nil {
		vals := g.fam.adjoint(g.params)
		return Uncontrolled{name: g.name, targets: g.targets, matrix: g.fam.build(vals), fam: g.fam, params: vals}
	}
	if g.hermitian {
		return g
	}
	out := Uncontrolled{name: adjointName(g.name), targets: g.targets, matrix: g.matrix}
	// a matrix ConjTranspose rejects is carried over as is, so Validate
	// still reports it on the adjoint
	if m, err := tensor.ConjTranspose(g.matrix); err == nil {
		out.matrix = m
	}

	return out
}

// Parameters implements Parametrized.
func (g Uncontrolled) Parameters() []float64 { return slices.Clone(g.params) }

// WithParameters implements Parametrized.
func (g Uncontrolled) WithParameters(values ...float64) (Gate, error) {
	return g.withParameters(values)
}

func (g Uncontrolled) withParameters(values []float64) (Uncontrolled, error) {
	if g.fam == nil {
		if len(values) == 0 {
			return g, nil
		}
		return Uncontrolled{}, fmt.Errorf("%s.WithParameters: got %d, want 0: %w", g.name, len(values), ErrParameterCount)
	}
	if len(values) != g.fam.arity {
		return Uncontrolled{}, fmt.Errorf("%s.WithParameters: got %d, want %d: %w", g.name, len(values), g.fam.arity, ErrParameterCount)
	}
	vals := slices.Clone(values)

	return Uncontrolled{name: g.name, targets: g.targets, matrix: g.fam.build(vals), fam: g.fam, params: vals}, nil
}

// GeneratorEigenvalue implements Parametrized.
func (g Uncontrolled) GeneratorEigenvalue() (float64, error) {
	if g.fam == nil || g.fam.eigen == 0 {
		return 0, fmt.Errorf("%s: %w", g.name, ErrNoGenerator)
	}

	return g.fam.eigen, nil
}

// Controlled promotes g to a gate conditioned on controls.
// Controls must be non-negative, distinct and disjoint from the targets.
func (g Uncontrolled) Controlled(controls ...int) (Controlled, error) {
	if len(controls) == 0 {
		return Controlled{}, fmt.Errorf("%s.Controlled: no controls: %w", g.name, ErrBadQubits)
	}
	c := controlled(g, controls...)
	if err := ValidateQubits(c.Qubits()); err != nil {
		return Controlled{}, fmt.Errorf("%s.Controlled%v: %w", g.name, controls, err)
	}

	return c, nil
}

// String renders e.g. "RY(2)[0.5]".
func (g Uncontrolled) String() string { return render(g.name, nil, g.targets, g.params) }

// Controlled applies base only where every control qubit is |1>.
type Controlled struct {
	name     string
	base     Uncontrolled
	controls []int
}

var _ Gate = Controlled{}

// controlled builds the variant without validation; the name gets one "C"
// per control (X→CX→CCX).
func controlled(base Uncontrolled, controls ...int) Controlled {
	return Controlled{
		name:     strings.Repeat("C", len(controls)) + base.name,
		base:     base,
		controls: slices.Clone(controls),
	}
}

func (Controlled) sealed() {}

// Name implements Gate.
func (g Controlled) Name() string { return g.name }

// Targets implements Gate.
func (g Controlled) Targets() []int { return g.base.Targets() }

// Controls implements Gate.
func (g Controlled) Controls() []int { return slices.Clone(g.controls) }

// Qubits implements Gate.
func (g Controlled) Qubits() []int {
	return append(slices.Clone(g.controls), g.base.targets...)
}

// Matrix implements Gate. It is the bare matrix on the targets, not the
// promoted operator on controls+targets.
func (g Controlled) Matrix() *tensor.Dense { return g.base.Matrix() }

// Base returns the uncontrolled gate this one conditions.
func (g Controlled) Base() Uncontrolled { return g.base }

// Dagger implements Gate.
func (g Controlled) Dagger() Gate {
	base := g.base.Dagger().(Uncontrolled)

	return controlled(base, g.controls...)
}

// Parameters implements Parametrized.
func (g Controlled) Parameters() []float64 { return g.base.Parameters() }

// WithParameters implements Parametrized.
func (g Controlled) WithParameters(values ...float64) (Gate, error) {
	base, err := g.base.withParameters(values)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.name, err)
	}

	return Controlled{name: g.name, base: base, controls: g.controls}, nil
}

// GeneratorEigenvalue implements Parametrized. Controlled rotations have a
// generator with three distinct eigenvalues, so the two-term shift rule
// does not apply.
func (g Controlled) GeneratorEigenvalue() (float64, error) {
	return 0, fmt.Errorf("%s: %w", g.name, ErrNoGenerator)
}

// String renders e.g. "CX(0→1)".
func (g Controlled) String() string {
	return render(g.name, g.controls, g.base.targets, g.base.params)
}

// adjointName toggles a trailing "†".
func adjointName(name string) string {
	if s, ok := strings.CutSuffix(name, "†"); ok {
		return s
	}

	return name + "†"
}

func render(name string, controls, targets []int, params []float64) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	if len(controls) > 0 {
		sb.WriteString(joinInts(controls))
		sb.WriteString("→")
	}
	sb.WriteString(joinInts(targets))
	sb.WriteByte(')')
	if len(params) > 0 {
		fmt.Fprintf(&sb, "%v", params)
	}

	return sb.String()
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}

	return strings.Join(parts, ",")
}
