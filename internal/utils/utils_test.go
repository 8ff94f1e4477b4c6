package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGServiceIsDeterministicForSeed(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestPRNGServiceRanges(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		v := s.Spread(0.5, 1)
		assert.GreaterOrEqual(t, v, 0.5)
		assert.Less(t, v, 1.5)

		a := s.Angle()
		assert.GreaterOrEqual(t, a, 0.0)
		assert.Less(t, a, 2*math.Pi)
	}
	assert.Equal(t, 0, s.Intn(0))
	assert.False(t, s.Chance(0))
	assert.True(t, s.Chance(1))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 20.0, Clamp(5, 20, 120))
	assert.Equal(t, 120.0, Clamp(500, 20, 120))
	assert.Equal(t, 64.0, Clamp(64, 20, 120))
}

func TestLerpAndApproach(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, 0.5, Approach(0, 1, 0.5))
	assert.Equal(t, 1.0, Approach(0.9, 1, 0.5))
	assert.Equal(t, 0.0, Approach(0.2, 0, 0.5))
}
