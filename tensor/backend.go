// SPDX-License-Identifier: MIT

package tensor

import "fmt"

// Backend is the numeric capability set the simulation engine is written
// against. An implementation owns how tensors are laid out and contracted;
// callers only see *Dense values going in and out.
type Backend interface {
	// Name identifies the backend in logs and error messages.
	Name() string
	// Reshape returns t with a new shape; implementations may return a view.
	Reshape(t *Dense, shape ...int) (*Dense, error)
	// Transpose permutes axes (output axis i is input axis perm[i]).
	Transpose(t *Dense, perm []int) (*Dense, error)
	// Slice returns t[start:end] along the leading axis.
	Slice(t *Dense, start, end int) (*Dense, error)
	// Contract applies op to the named axes of t.
	Contract(op, t *Dense, axes []int) (*Dense, error)
	// Concatenate joins parts along the leading axis.
	Concatenate(parts ...*Dense) (*Dense, error)
	// MaxThreads is the largest thread count the backend accepts.
	MaxThreads() int
}

// CPU is the single-threaded reference backend over Dense buffers.
type CPU struct{}

var _ Backend = CPU{}

// NewCPU returns the reference CPU backend.
func NewCPU() CPU { return CPU{} }

// Name implements Backend.
func (CPU) Name() string { return "cpu" }

// Reshape implements Backend. The result shares t's buffer.
func (CPU) Reshape(t *Dense, shape ...int) (*Dense, error) {
	if err := ValidateNotNil(t); err != nil {
		return nil, fmt.Errorf("cpu.Reshape: %w", err)
	}

	return t.Reshape(shape...)
}

// Transpose implements Backend.
func (CPU) Transpose(t *Dense, perm []int) (*Dense, error) { return Transpose(t, perm) }

// Slice implements Backend.
func (CPU) Slice(t *Dense, start, end int) (*Dense, error) { return Slice(t, start, end) }

// Contract implements Backend.
func (CPU) Contract(op, t *Dense, axes []int) (*Dense, error) { return Contract(op, t, axes) }

// Concatenate implements Backend.
func (CPU) Concatenate(parts ...*Dense) (*Dense, error) { return Concatenate(parts...) }

// MaxThreads implements Backend; CPU has no internal parallelism.
func (CPU) MaxThreads() int { return 1 }
