// Package broker fans out simulated match ticks to other processes over
// Redis pub/sub, for deployments where the websocket-serving instance
// isn't the one running the simulation (§6: "message-broker fan-out" is
// an external collaborator the engine itself never touches).
package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/stitts-dev/matchsim/internal/models"
)

// TickPublisher publishes Tick payloads to a per-match Redis channel,
// guarded by a circuit breaker so a degraded Redis instance can't stall
// the tick replay that feeds it.
type TickPublisher struct {
	client  *redis.Client
	logger  *logrus.Logger
	breaker *gobreaker.CircuitBreaker
}

// NewTickPublisher builds a publisher against an already-configured
// redis.Client.
func NewTickPublisher(client *redis.Client, circuitBreakerTrips int, timeout time.Duration, logger *logrus.Logger) *TickPublisher {
	settings := gobreaker.Settings{
		Name:        "tick-publisher",
		MaxRequests: uint32(circuitBreakerTrips),
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"component": "tick_publisher",
				"from":      from.String(),
				"to":        to.String(),
			}).Warn("circuit breaker state changed")
		},
	}

	return &TickPublisher{
		client:  client,
		logger:  logger,
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
}

// ChannelFor returns the Redis pub/sub channel name for a match.
func ChannelFor(matchID string) string {
	return fmt.Sprintf("matchsim:match:%s:ticks", matchID)
}

// Publish pushes one Tick to the match's channel. Failures are returned
// so the caller can log and continue — a dropped broadcast never aborts
// the simulation (§7).
func (p *TickPublisher) Publish(ctx context.Context, matchID string, tick models.Tick) error {
	payload, err := json.Marshal(tick)
	if err != nil {
		return fmt.Errorf("marshal tick: %w", err)
	}

	_, err = p.breaker.Execute(func() (interface{}, error) {
		return nil, p.client.Publish(ctx, ChannelFor(matchID), payload).Err()
	})
	if err != nil {
		p.logger.WithError(err).WithField("match_id", matchID).Error("failed to publish tick")
		return fmt.Errorf("publish tick: %w", err)
	}
	return nil
}

// Subscribe returns a Redis pub/sub subscription for a match's channel,
// used by any secondary process that wants to mirror the stream (e.g. a
// second websocket-serving replica).
func (p *TickPublisher) Subscribe(ctx context.Context, matchID string) *redis.PubSub {
	return p.client.Subscribe(ctx, ChannelFor(matchID))
}

// NewRedisClient builds a redis.Client from a connection URL, shared by
// both the publisher and any subscriber.
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}
