package entropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededIsDeterministic(t *testing.T) {
	a, b := NewSeeded(7), NewSeeded(7)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
	assert.Equal(t, uint64(7), a.Seed())
}

func TestSeededRanges(t *testing.T) {
	s := NewSeeded(99)
	for i := 0; i < 200; i++ {
		v := s.IntN(5)
		assert.True(t, v >= 0 && v < 5)
		f := s.Float()
		assert.True(t, f >= 0 && f < 1)
	}
}

func TestChanceBounds(t *testing.T) {
	s := &Scripted{Draws: []int{99}}
	assert.False(t, Chance(s, 0))
	assert.True(t, Chance(s, 100))
	assert.False(t, Chance(s, 99))

	s = &Scripted{Draws: []int{10}}
	assert.True(t, Chance(s, 11))
	assert.False(t, Chance(s, 10))
}

func TestScriptedRepeatsLastDraw(t *testing.T) {
	s := &Scripted{Draws: []int{3, 8}}
	assert.Equal(t, 3, s.IntN(10))
	assert.Equal(t, 8, s.IntN(10))
	assert.Equal(t, 8, s.IntN(10))
	assert.Equal(t, 2, s.IntN(3))
}
