// SPDX-License-Identifier: MIT

// File: mask.go
// Role: Fixed-width bit set used for activated-node sets and partitions.
//
// Determinism:
//   - Bits() yields elements in ascending order.
package core

import (
	"iter"
	"math/bits"
)

// Mask is a fixed-width set of small non-negative integers (0..63).
// The zero value is the empty set.
type Mask uint64

// FullMask returns the set {0, 1, ..., n-1}. n is clamped to [0, MaxMaskBits].
func FullMask(n int) Mask {
	switch {
	case n <= 0:
		return 0
	case n >= MaxMaskBits:
		return ^Mask(0)
	}

	return Mask(1)<<uint(n) - 1
}

// Bit returns the singleton set {i}.
func Bit(i int) Mask { return Mask(1) << uint(i) }

// Has reports whether i is in m.
func (m Mask) Has(i int) bool { return m&Bit(i) != 0 }

// With returns m ∪ {i}.
func (m Mask) With(i int) Mask { return m | Bit(i) }

// Without returns m \ {i}.
func (m Mask) Without(i int) Mask { return m &^ Bit(i) }

// Count returns |m|.
func (m Mask) Count() int { return bits.OnesCount64(uint64(m)) }

// SubsetOf reports whether every element of m is in other.
func (m Mask) SubsetOf(other Mask) bool { return m&^other == 0 }

// Bits yields the elements of m in ascending order.
func (m Mask) Bits() iter.Seq[int] {
	return func(yield func(int) bool) {
		for rest := uint64(m); rest != 0; rest &= rest - 1 {
			if !yield(bits.TrailingZeros64(rest)) {
				return
			}
		}
	}
}
