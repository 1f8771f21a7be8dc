// SPDX-License-Identifier: MIT

package distance

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for distance computation.
var (
	// ErrNilNetwork is returned when a nil *core.Network is passed.
	ErrNilNetwork = errors.New("distance: network is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distance: invalid option supplied")
)

// Unreachable marks a pair with no route. It exceeds any real step count and
// leaves head-room so that Unreachable+1 does not overflow.
const Unreachable = math.MaxInt32

// Method selects the per-source shortest-path strategy.
type Method int

const (
	// Relaxation is the depth-first relax-and-recurse walk.
	Relaxation Method = iota
	// BreadthFirst is the queue-based layer walk.
	BreadthFirst
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case Relaxation:
		return "relaxation"
	case BreadthFirst:
		return "breadth-first"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Option configures AllPairs.
type Option func(*Options)

// Options holds AllPairs parameters.
type Options struct {
	// Ctx allows cancellation between sources.
	Ctx context.Context

	// Method selects the shortest-path strategy.
	Method Method

	err error
}

// DefaultOptions returns background context and the Relaxation method.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), Method: Relaxation}
}

// WithContext sets a custom context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMethod selects the shortest-path strategy.
func WithMethod(m Method) Option {
	return func(o *Options) {
		switch m {
		case Relaxation, BreadthFirst:
			o.Method = m
		default:
			o.err = fmt.Errorf("%w: unknown method %v", ErrOptionViolation, m)
		}
	}
}

// Matrix is an immutable dense n×n table of step counts.
type Matrix struct {
	n int
	d []int // d[u*n+v]
}

func newMatrix(n int) *Matrix {
	m := &Matrix{n: n, d: make([]int, n*n)}
	for i := range m.d {
		m.d[i] = Unreachable
	}
	for v := 0; v < n; v++ {
		m.d[v*n+v] = 0
	}

	return m
}

// Len returns the matrix order.
func (m *Matrix) Len() int { return m.n }

// At returns the step count from u to v, or Unreachable.
func (m *Matrix) At(u, v int) int { return m.d[u*m.n+v] }

// Reachable reports whether a route from u to v exists.
func (m *Matrix) Reachable(u, v int) bool { return m.d[u*m.n+v] != Unreachable }

// Row returns a copy of the distances from u.
func (m *Matrix) Row(u int) []int {
	row := make([]int, m.n)
	copy(row, m.d[u*m.n:(u+1)*m.n])

	return row
}

func (m *Matrix) set(u, v, d int) { m.d[u*m.n+v] = d }
