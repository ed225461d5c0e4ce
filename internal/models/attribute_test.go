package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributeByName_RoundTrips(t *testing.T) {
	for a := Attribute(0); a < NumAttributes; a++ {
		got, ok := AttributeByName(a.String())
		assert.True(t, ok, "attribute %d should round-trip by name", a)
		assert.Equal(t, a, got)
	}
}

func TestAttributeByName_UnknownName(t *testing.T) {
	_, ok := AttributeByName("not_a_real_attribute")
	assert.False(t, ok)
}

func TestAttribute_IsGoalkeeping(t *testing.T) {
	assert.True(t, Reflexes.IsGoalkeeping())
	assert.True(t, Handling.IsGoalkeeping())
	assert.False(t, Finishing.IsGoalkeeping())
	assert.False(t, Tackling.IsGoalkeeping())
}

func TestAttributeSet_SetClampsRange(t *testing.T) {
	var set AttributeSet
	set.Set(Finishing, 25)
	assert.Equal(t, 20, set.Get(Finishing))

	set.Set(Finishing, -5)
	assert.Equal(t, 1, set.Get(Finishing))

	set.Set(Finishing, 14)
	assert.Equal(t, 14, set.Get(Finishing))
}

func TestAttributeSet_ZeroValueIsZero(t *testing.T) {
	var set AttributeSet
	assert.Equal(t, 0, set.Get(Passing))
}
