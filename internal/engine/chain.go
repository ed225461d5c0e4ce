package engine

import "github.com/stitts-dev/matchsim/internal/models"

// maxChainDepth bounds the causal chain scheduler to prevent runaway
// follow-up chains (§4.5: "e.g. a goalkeeper parry that rebounds to a shot
// that hits the post").
const maxChainDepth = 5

// ChainEvent is a pending follow-up descriptor. It carries its own
// required coordinates and triggering actor so replay preserves the
// coordinate invariants of §3 regardless of how many resolvers it passed
// through.
type ChainEvent struct {
	Kind            models.EventKind
	Side            models.Side
	Origin          models.Point
	TriggerPlayerID models.PlayerID
	Depth           int
}

// ChainScheduler is the Causal Chain Scheduler (C5): a FIFO queue of
// pending event descriptors attached to the current tick. Resolvers push
// follow-ups; the tick loop drains them before sampling new open play.
type ChainScheduler struct {
	queue     []ChainEvent
	overflows int
}

// NewChainScheduler returns an empty scheduler.
func NewChainScheduler() *ChainScheduler {
	return &ChainScheduler{}
}

// Push enqueues a follow-up. If ev.Depth exceeds maxChainDepth the event
// is dropped and ErrChainOverflow is returned so the caller can log and
// continue with open play instead of aborting (§7).
func (c *ChainScheduler) Push(ev ChainEvent) error {
	if ev.Depth > maxChainDepth {
		c.overflows++
		return ErrChainOverflow
	}
	c.queue = append(c.queue, ev)
	return nil
}

// Pop removes and returns the next pending event, FIFO order.
func (c *ChainScheduler) Pop() (ChainEvent, bool) {
	if len(c.queue) == 0 {
		var zero ChainEvent
		return zero, false
	}
	ev := c.queue[0]
	c.queue = c.queue[1:]
	return ev, true
}

// Len reports how many events are pending.
func (c *ChainScheduler) Len() int { return len(c.queue) }

// Overflows reports how many events this scheduler has dropped for
// exceeding maxChainDepth over the scheduler's lifetime.
func (c *ChainScheduler) Overflows() int { return c.overflows }
