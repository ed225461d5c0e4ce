package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRNG_SameSeedIsDeterministic(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestNewRNG_SeedReturnsConstructedValue(t *testing.T) {
	r := NewRNG(12345)
	assert.Equal(t, uint64(12345), r.Seed())
}

func TestRNG_BoolRespectsExtremes(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 100; i++ {
		assert.False(t, r.Bool(0))
	}
	r2 := NewRNG(1)
	for i := 0; i < 100; i++ {
		assert.True(t, r2.Bool(1))
	}
}

func TestRNG_RangeStaysWithinBounds(t *testing.T) {
	r := NewRNG(7)
	for i := 0; i < 200; i++ {
		v := r.Range(10, 20)
		assert.GreaterOrEqual(t, v, 10.0)
		assert.Less(t, v, 20.0)
	}
}
