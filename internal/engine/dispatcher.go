package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/matchsim/internal/models"
)

// Resolvers (C4) holds everything a per-kind event resolver needs: match
// state, the attribute resolver, the player selector, the chain
// scheduler, and the injected RNG. Each public Resolve* method produces a
// models.TickEvent and may push follow-ups onto the chain.
type Resolvers struct {
	state *MatchState
	attrs *AttributeResolver
	sel   *PlayerSelector
	chain *ChainScheduler
	rng   *RNG
	log   *logrus.Entry
}

// NewResolvers wires up the Event Resolvers component.
func NewResolvers(state *MatchState, attrs *AttributeResolver, sel *PlayerSelector, chain *ChainScheduler, rng *RNG, log *logrus.Entry) *Resolvers {
	return &Resolvers{state: state, attrs: attrs, sel: sel, chain: chain, rng: rng, log: log}
}

// primaryKind is the tagged variant of open-play event kinds the tick loop
// samples from when no chain is pending.
type primaryKind int

const (
	primaryOpenPlay primaryKind = iota
	primaryPass
	primaryShotAttempt
	primaryTackle
	primaryThrowIn
	primaryGoalKick
	primaryOffside
)

// samplePrimaryKind draws a primary open-play event kind. Weights depend
// on the mentality and tempo of the side in possession and on the current
// zone; pressing and the opponent's tactic do not affect them.
func (res *Resolvers) samplePrimaryKind(side models.Side) primaryKind {
	tactic := res.state.TacticFor(side)
	attackBias := 0.0
	tempo := 0.5
	if tactic != nil {
		attackBias = tactic.Mentality.AttackBias()
		tempo = tactic.Tempo.Factor()
	}

	weights := map[primaryKind]float64{
		primaryOpenPlay:    4.0 + 2.0*tempo,
		primaryPass:        3.0,
		primaryShotAttempt: 1.0 + attackBias,
		primaryTackle:      1.5 - 0.5*attackBias,
		primaryThrowIn:     0.6,
		primaryGoalKick:    0.3,
		primaryOffside:     0.3 + 0.3*attackBias,
	}
	if zoneLabel(res.state.Ball) != "attacking_third" {
		weights[primaryShotAttempt] *= 0.3
		weights[primaryOffside] *= 0.3
	}

	order := []primaryKind{primaryOpenPlay, primaryPass, primaryShotAttempt, primaryTackle, primaryThrowIn, primaryGoalKick, primaryOffside}
	total := 0.0
	for _, k := range order {
		w := weights[k]
		if w < 0.05 {
			w = 0.05
		}
		total += w
	}
	draw := res.rng.Float64() * total
	acc := 0.0
	for _, k := range order {
		w := weights[k]
		if w < 0.05 {
			w = 0.05
		}
		acc += w
		if draw <= acc {
			return k
		}
	}
	return primaryOpenPlay
}

// ResolvePrimary samples and resolves one primary open-play event for the
// side currently in possession.
func (res *Resolvers) ResolvePrimary() models.TickEvent {
	side := res.state.Possession
	switch res.samplePrimaryKind(side) {
	case primaryPass:
		return res.ResolvePass(side)
	case primaryShotAttempt:
		return res.ResolveShot(side)
	case primaryTackle:
		return res.ResolveTackle(side.Opponent())
	case primaryThrowIn:
		return res.ResolveThrowIn(side)
	case primaryGoalKick:
		return res.ResolveGoalKick(side.Opponent())
	case primaryOffside:
		return res.ResolveOffside(side)
	default:
		return res.ResolveOpenPlay(side)
	}
}

// ResolveChain pops and resolves the next pending chain event, if any.
func (res *Resolvers) ResolveChain() (models.TickEvent, bool) {
	ev, ok := res.chain.Pop()
	if !ok {
		var zero models.TickEvent
		return zero, false
	}
	return res.dispatchChain(ev), true
}

func (res *Resolvers) dispatchChain(ev ChainEvent) models.TickEvent {
	switch ev.Kind {
	case models.EventFreeKick:
		return res.ResolveFreeKick(ev)
	case models.EventPenalty:
		return res.ResolvePenalty(ev)
	case models.EventCorner:
		return res.ResolveCorner(ev)
	case models.EventYellowCard, models.EventRedCard:
		return res.ResolveCard(ev)
	case models.EventFoul:
		return res.ResolveFoul(ev)
	case models.EventInterception:
		return res.ResolveInterception(ev)
	case models.EventHeader:
		return res.ResolveHeader(ev)
	case models.EventClearance:
		return res.ResolveClearance(ev)
	case models.EventSave:
		return res.ResolveClaimedSave(ev)
	default:
		return res.ResolveOpenPlay(ev.Side)
	}
}
