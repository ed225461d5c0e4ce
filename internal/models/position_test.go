package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionByName_RoundTrips(t *testing.T) {
	for p := PositionTag(0); p < NumPositions; p++ {
		got, ok := PositionByName(p.String())
		assert.True(t, ok)
		assert.Equal(t, p, got)
	}
}

func TestCompatibility_SamePositionIsPerfect(t *testing.T) {
	assert.Equal(t, 1.0, Compatibility(ST, ST))
	assert.Equal(t, 1.0, Compatibility(GK, GK))
}

func TestCompatibility_GoalkeeperOutfieldIsCatastrophic(t *testing.T) {
	c := Compatibility(ST, GK)
	assert.LessOrEqual(t, c, 0.7)

	c = Compatibility(GK, CB)
	assert.LessOrEqual(t, c, 0.7)
}

func TestCompatibility_IsSymmetric(t *testing.T) {
	for a := PositionTag(0); a < NumPositions; a++ {
		for b := PositionTag(0); b < NumPositions; b++ {
			assert.Equal(t, Compatibility(a, b), Compatibility(b, a), "compatibility(%s,%s) should equal compatibility(%s,%s)", a, b, b, a)
		}
	}
}

func TestCompatibility_FarMismatchWorseThanAdjacent(t *testing.T) {
	adjacent := Compatibility(CB, DM)
	far := Compatibility(ST, CB)
	assert.Less(t, far, adjacent)
}
