// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/statevec/gates"
)

// Circuit is an ordered list of gates on NumQubits qubits. The zero value
// is not usable; call New.
type Circuit struct {
	n     int
	queue []gates.Gate
}

// New returns an empty circuit on n qubits.
func New(n int) (*Circuit, error) {
	if n < 0 {
		return nil, fmt.Errorf("circuit.New(%d): %w", n, ErrInvalidQubitCount)
	}

	return &Circuit{n: n}, nil
}

// Add appends gs in order. Either every gate is added or none is.
func (c *Circuit) Add(gs ...gates.Gate) error {
	for i, g := range gs {
		if err := gates.Validate(g); err != nil {
			return fmt.Errorf("Add: gate %d: %w", i, err)
		}
		for _, q := range g.Qubits() {
			if q >= c.n {
				return fmt.Errorf("Add: gate %d (%s): qubit %d of %d: %w", i, g.Name(), q, c.n, ErrQubitOutOfRange)
			}
		}
	}
	c.queue = append(c.queue, gs...)

	return nil
}

// NumQubits returns the register size.
func (c *Circuit) NumQubits() int { return c.n }

// Gates returns the gate list in application order. The slice is a copy.
func (c *Circuit) Gates() []gates.Gate { return slices.Clone(c.queue) }

// Len returns the number of gates.
func (c *Circuit) Len() int { return len(c.queue) }

// Parameters returns every trainable value, flattened in gate order.
func (c *Circuit) Parameters() []float64 {
	var out []float64
	for _, g := range c.queue {
		out = append(out, g.Parameters()...)
	}

	return out
}

// SetParameters replaces all trainable values. len(values) must equal
// len(Parameters()). The circuit is unchanged on error.
func (c *Circuit) SetParameters(values []float64) error {
	if want := len(c.Parameters()); len(values) != want {
		return fmt.Errorf("SetParameters: got %d, want %d: %w", len(values), want, ErrParameterCount)
	}
	next := make([]gates.Gate, len(c.queue))
	off := 0
	for i, g := range c.queue {
		k := len(g.Parameters())
		if k == 0 {
			next[i] = g
			continue
		}
		ng, err := g.WithParameters(values[off : off+k]...)
		if err != nil {
			return fmt.Errorf("SetParameters: gate %d: %w", i, err)
		}
		next[i] = ng
		off += k
	}
	c.queue = next

	return nil
}

// ParametrizedGate returns the gate owning flat parameter index i.
func (c *Circuit) ParametrizedGate(i int) (gates.Gate, error) {
	if i >= 0 {
		off := 0
		for _, g := range c.queue {
			k := len(g.Parameters())
			if i < off+k {
				return g, nil
			}
			off += k
		}
	}

	return nil, fmt.Errorf("ParametrizedGate(%d): %w", i, ErrParameterIndex)
}

// Copy returns an independent circuit with the same gates.
func (c *Circuit) Copy() *Circuit {
	return &Circuit{n: c.n, queue: slices.Clone(c.queue)}
}

// Invert returns the adjoint circuit: daggers in reverse order. Running a
// circuit followed by its inverse is the identity.
func (c *Circuit) Invert() *Circuit {
	inv := make([]gates.Gate, len(c.queue))
	for i, g := range c.queue {
		inv[len(c.queue)-1-i] = g.Dagger()
	}

	return &Circuit{n: c.n, queue: inv}
}

// String lists the gates one per line.
func (c *Circuit) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Circuit(%d qubits, %d gates)\n", c.n, len(c.queue))
	for i, g := range c.queue {
		fmt.Fprintf(&sb, "  %d: %v\n", i, g)
	}

	return sb.String()
}
