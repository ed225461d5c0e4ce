package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/matchsim/internal/models"
)

func TestChainScheduler_FIFOOrder(t *testing.T) {
	c := NewChainScheduler()
	require.NoError(t, c.Push(ChainEvent{Kind: models.EventCorner, Depth: 1}))
	require.NoError(t, c.Push(ChainEvent{Kind: models.EventFoul, Depth: 1}))

	first, ok := c.Pop()
	require.True(t, ok)
	assert.Equal(t, models.EventCorner, first.Kind)

	second, ok := c.Pop()
	require.True(t, ok)
	assert.Equal(t, models.EventFoul, second.Kind)

	_, ok = c.Pop()
	assert.False(t, ok)
}

func TestChainScheduler_DropsBeyondMaxDepth(t *testing.T) {
	c := NewChainScheduler()
	err := c.Push(ChainEvent{Kind: models.EventCorner, Depth: maxChainDepth + 1})
	assert.ErrorIs(t, err, ErrChainOverflow)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 1, c.Overflows())
}

func TestChainScheduler_AcceptsAtMaxDepth(t *testing.T) {
	c := NewChainScheduler()
	err := c.Push(ChainEvent{Kind: models.EventCorner, Depth: maxChainDepth})
	assert.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}
