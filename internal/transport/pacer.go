package transport

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// TickRate selects how fast a streamed match advances relative to
// real-world wall clock time.
type TickRate string

const (
	RateRealtime TickRate = "realtime" // one tick per simulated minute, paced to ~1 tick/second
	RateFast     TickRate = "fast"     // bursts of ticks, lightly throttled
	RateInstant  TickRate = "instant"  // no pacing
)

// Pacer throttles how often the server pushes ticks to a streaming
// client, the same rate.Limiter pattern used elsewhere in the backend to
// respect a fixed upstream budget.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer builds a Pacer for the given rate. Instant pacing returns a
// Pacer whose Wait is a no-op.
func NewPacer(r TickRate) *Pacer {
	switch r {
	case RateFast:
		return &Pacer{limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 5)}
	case RateInstant:
		return &Pacer{limiter: nil}
	default:
		return &Pacer{limiter: rate.NewLimiter(rate.Every(time.Second), 1)}
	}
}

// Wait blocks until the pacer permits the next tick to be sent, or the
// context is cancelled.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.limiter == nil {
		return nil
	}
	return p.limiter.Wait(ctx)
}
