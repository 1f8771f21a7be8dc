package core_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/timebound/core"
)

func TestMask_SetOperations(t *testing.T) {
	var m core.Mask
	assert.Zero(t, m.Count())

	m = m.With(0).With(3).With(63)
	assert.True(t, m.Has(0))
	assert.True(t, m.Has(3))
	assert.True(t, m.Has(63))
	assert.False(t, m.Has(1))
	assert.Equal(t, 3, m.Count())
	assert.Equal(t, []int{0, 3, 63}, slices.Collect(m.Bits()))

	m = m.Without(3)
	assert.False(t, m.Has(3))
	assert.True(t, m.SubsetOf(core.FullMask(64)))
	assert.False(t, m.SubsetOf(core.FullMask(4)))
}

func TestFullMask_Clamps(t *testing.T) {
	assert.Equal(t, core.Mask(0), core.FullMask(-1))
	assert.Equal(t, core.Mask(0), core.FullMask(0))
	assert.Equal(t, core.Mask(0b111), core.FullMask(3))
	assert.Equal(t, ^core.Mask(0), core.FullMask(64))
	assert.Equal(t, ^core.Mask(0), core.FullMask(100))
}

func TestMask_BitsStopsEarly(t *testing.T) {
	m := core.FullMask(10)
	var seen []int
	for i := range m.Bits() {
		if i == 2 {
			break
		}
		seen = append(seen, i)
	}
	assert.Equal(t, []int{0, 1}, seen)
}
