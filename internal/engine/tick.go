package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/matchsim/internal/commentary"
	"github.com/stitts-dev/matchsim/internal/models"
)

// maxOnPitchBelow is the on-pitch floor below which a side's lineup can no
// longer field a legal team and the match ends early (§4.3).
const maxOnPitchBelow = 7

// fatigueSubThreshold is the fatigue level past which the tick loop
// considers swapping a player out during the 45-90 substitution window.
const fatigueSubThreshold = 0.65

// substitutionWindowStart is the earliest minute the tick loop evaluates
// AI-driven substitutions (§4.4 "Substitution").
const substitutionWindowStart = 45

// Engine (C7) is the top-level iterator over one match. Each call to
// Next produces one simulated minute's Tick until full time or an early
// termination condition is reached.
type Engine struct {
	state   *MatchState
	attrs   *AttributeResolver
	sel     *PlayerSelector
	chain   *ChainScheduler
	rng     *RNG
	res     *Resolvers
	log     *logrus.Entry
	ended   bool
	endedAt int
	kicked  bool
}

// NewEngine constructs the match from a validated MatchInput. It builds
// both lineups, wires every component, and elects the initial set-piece
// takers, but runs no simulation minutes yet.
func NewEngine(matchID models.MatchID, input models.MatchInput, log *logrus.Entry) (*Engine, error) {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	homeLineup, err := NewLineup(models.Home, input.Home.Starting, input.Home.Formation, input.Home.Bench)
	if err != nil {
		return nil, err
	}
	awayLineup, err := NewLineup(models.Away, input.Away.Starting, input.Away.Formation, input.Away.Bench)
	if err != nil {
		return nil, err
	}

	state := NewMatchState(matchID, input, homeLineup, awayLineup)

	var rng *RNG
	if input.Seed != nil {
		rng = NewRNG(*input.Seed)
	} else {
		rng = NewRandomRNG()
	}

	attrs := NewAttributeResolver(state)
	sel := NewPlayerSelector(state, attrs, rng)
	chain := NewChainScheduler()
	res := NewResolvers(state, attrs, sel, chain, rng, log)

	e := &Engine{state: state, attrs: attrs, sel: sel, chain: chain, rng: rng, res: res, log: log}
	e.electSetPieceTakers()
	return e, nil
}

func (e *Engine) electSetPieceTakers() {
	e.state.SetPieceTakers.Set(models.Home, e.sel.ElectSetPieceTakers(models.Home))
	e.state.SetPieceTakers.Set(models.Away, e.sel.ElectSetPieceTakers(models.Away))
}

// Seed returns the RNG seed this match run was constructed with, so a
// caller can persist it for a reproducible replay.
func (e *Engine) Seed() uint64 { return e.rng.Seed() }

// Next advances the simulation by one minute and returns the resulting
// Tick. ok is false once the match has reached full time or ended early.
// The first call returns the minute-0 kickoff tick before any simulated
// play (§3, §4.7); every subsequent call advances one simulated minute.
func (e *Engine) Next() (models.Tick, bool) {
	if e.ended {
		return models.Tick{}, false
	}

	if !e.kicked {
		e.kicked = true
		e.log.Info("kickoff")
		tick := models.Tick{
			Minute:     0,
			Phase:      models.PhaseKickoff,
			Possession: e.state.Possession,
			Zone:       zoneLabel(e.state.Ball),
			Score:      e.state.Score,
			Ball:       e.state.Ball,
			Stats:      e.state.Stats,
		}
		tick.Commentary = commentary.Build(tick)
		return tick, true
	}

	e.state.Minute++
	minute := e.state.Minute

	overflowsBefore := e.chain.Overflows()
	var events []models.TickEvent
	for e.chain.Len() > 0 {
		ev, ok := e.res.ResolveChain()
		if !ok {
			break
		}
		events = append(events, ev)
	}
	if len(events) == 0 {
		events = append(events, e.res.ResolvePrimary())
	}
	if dropped := e.chain.Overflows() - overflowsBefore; dropped > 0 {
		e.log.WithFields(logrus.Fields{"minute": minute, "dropped": dropped}).Warn(ErrChainOverflow.Error())
	}

	e.state.UpdateFatigue()
	e.state.DecayMorale()

	if minute >= substitutionWindowStart {
		if subEvent, ok := e.maybeSubstitute(models.Home); ok {
			events = append(events, subEvent)
		}
		if subEvent, ok := e.maybeSubstitute(models.Away); ok {
			events = append(events, subEvent)
		}
	}

	phase := models.PhaseOpenPlay
	switch {
	case minute == 45:
		phase = models.PhaseHalfTime
	case minute >= 90:
		phase = models.PhaseFullTime
	}

	tick := models.Tick{
		Minute:     minute,
		Phase:      phase,
		Possession: e.state.Possession,
		Zone:       zoneLabel(e.state.Ball),
		Events:     events,
		Score:      e.state.Score,
		Ball:       e.state.Ball,
		Stats:      e.state.Stats,
	}
	tick.Commentary = commentary.Build(tick)

	if phase == models.PhaseHalfTime {
		e.log.WithField("score", e.state.Score).Info("half time")
	}
	if e.state.LineupFor(models.Home).OnPitchCount() < maxOnPitchBelow ||
		e.state.LineupFor(models.Away).OnPitchCount() < maxOnPitchBelow {
		e.ended = true
		e.endedAt = minute
		e.log.WithFields(logrus.Fields{"minute": minute, "score": e.state.Score}).Info("match ended early")
	}
	if minute >= 90 {
		e.ended = true
		e.endedAt = minute
		e.log.WithField("score", e.state.Score).Info("full time")
	}

	return tick, true
}

// Run drains the iterator to completion and returns every Tick in order.
// Callers that want ticks one at a time can use Next directly instead.
func (e *Engine) Run() []models.Tick {
	var ticks []models.Tick
	for {
		tick, ok := e.Next()
		if !ok {
			break
		}
		ticks = append(ticks, tick)
	}
	return ticks
}

// FinalStats returns the completed per-side aggregate statistics.
func (e *Engine) FinalStats() models.PerTeam[models.TeamStats] {
	return e.state.Stats
}

// FinalScore returns the match's final scoreline.
func (e *Engine) FinalScore() models.Score {
	return e.state.Score
}

// maybeSubstitute evaluates whether the side should bring on a fresh
// player for its most fatigued available outfielder. It is a simple heuristic, not a
// resolver dispatch: substitutions are never chained (§9).
func (e *Engine) maybeSubstitute(side models.Side) (models.TickEvent, bool) {
	lineup := e.state.LineupFor(side)
	if lineup.SubsUsed() >= maxSubstitutions || len(lineup.BenchRemaining()) == 0 {
		return models.TickEvent{}, false
	}

	var tiredest models.PlayerID
	worstFatigue := fatigueSubThreshold
	for _, id := range lineup.AvailableOutfield() {
		ps := e.state.PlayerStateFor(id)
		if ps != nil && ps.Fatigue > worstFatigue {
			worstFatigue = ps.Fatigue
			tiredest = id
		}
	}
	if tiredest == (models.PlayerID{}) {
		return models.TickEvent{}, false
	}
	if !e.rng.Bool(0.15) {
		return models.TickEvent{}, false
	}

	bench := lineup.BenchRemaining()
	incoming := bench[0]
	if err := lineup.Substitute(tiredest, incoming); err != nil {
		return models.TickEvent{}, false
	}
	e.state.ResetFatigue(incoming)
	if ps := e.state.PlayerStateFor(tiredest); ps != nil {
		ps.IsSubbedOff = true
	}

	return models.TickEvent{
		Type: models.EventSubstitution, Team: side,
		PrimaryPlayerID: incoming, PrimaryPlayerName: playerName(e.state, incoming),
		SecondaryPlayerID: ptrPlayerID(tiredest),
		Outcome:           "substitution", Description: playerName(e.state, incoming) + " replaces " + playerName(e.state, tiredest),
		Coordinates: e.state.Ball,
	}, true
}
