package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/stitts-dev/matchsim/internal/broker"
	"github.com/stitts-dev/matchsim/internal/models"
	"github.com/stitts-dev/matchsim/internal/transport"
)

// StreamHandler replays a previously simulated match's ticks over a
// websocket connection at a configurable pace. The engine itself never
// streams anything (§6); this is purely a transport-layer concern.
type StreamHandler struct {
	matches   *MatchHandler
	hub       *transport.Hub
	publisher *broker.TickPublisher // nil if redis wasn't configured
}

// NewStreamHandler wires the stream handler to the match registry, the
// shared websocket hub, and (optionally) a Redis publisher that mirrors
// the same ticks for other replicas to pick up.
func NewStreamHandler(matches *MatchHandler, hub *transport.Hub, publisher *broker.TickPublisher) *StreamHandler {
	return &StreamHandler{matches: matches, hub: hub, publisher: publisher}
}

// HandleStream upgrades the connection via the hub, then replays the
// match's stored ticks at the rate given by the "rate" query parameter
// ("realtime", "fast", or "instant"; default "realtime").
func (s *StreamHandler) HandleStream(c *gin.Context) {
	matchID := c.Param("match_id")
	s.matches.mu.RLock()
	rm, ok := s.matches.matches[matchID]
	s.matches.mu.RUnlock()
	if !ok {
		sendNotFound(c, "match not found")
		return
	}

	rate := transport.TickRate(c.DefaultQuery("rate", string(transport.RateRealtime)))
	pacer := transport.NewPacer(rate)

	s.hub.HandleStream(c)

	go func() {
		rm.mu.Lock()
		ticks := append([]models.Tick(nil), rm.ticks...)
		rm.mu.Unlock()

		ctx := context.Background()
		for _, tick := range ticks {
			if err := pacer.Wait(ctx); err != nil {
				return
			}
			s.hub.BroadcastTick(matchID, tick)
			if s.publisher != nil {
				_ = s.publisher.Publish(ctx, matchID, tick)
			}
		}
	}()
}
