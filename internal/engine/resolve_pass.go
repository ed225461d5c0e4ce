package engine

import "github.com/stitts-dev/matchsim/internal/models"

// ResolvePass resolves a single decisive pass: passer picked by vision,
// receiver by a proximity heuristic (off_the_ball), success judged against
// a defensive anticipation draw. Failure becomes an interception credited
// to the defending side; no follow-up chain event is scheduled (§4.4 "Pass").
func (res *Resolvers) ResolvePass(side models.Side) models.TickEvent {
	passer, ok := res.sel.SelectWeighted(side, models.Vision, CommodityAttributeExponent, nil)
	if !ok {
		return res.possessionLossEvent(side, res.state.Ball)
	}
	receiver, ok := res.sel.SelectWeighted(side, models.OffTheBall, CommodityAttributeExponent, map[models.PlayerID]bool{passer: true})
	if !ok {
		return res.possessionLossEvent(side, res.state.Ball)
	}

	defender, hasDefender := res.sel.SelectWeighted(side.Opponent(), models.Anticipation, CommodityAttributeExponent, nil)
	defenderAnticipation := 10.0
	if hasDefender {
		defenderAnticipation = res.attrs.Effective(defender, models.Anticipation)
	}

	passAccuracy := res.attrs.Effective(passer, models.Passing)
	successProb := sigma((passAccuracy - defenderAnticipation) / 6.0)

	dir := attackingDirection(side)
	start := res.state.Ball
	end := clampPitch(models.Point{X: start.X + dir*(4+res.rng.Float64()*14), Y: clampY(start.Y + res.rng.Range(-15, 15))})

	step := models.Step{
		Action:     models.ActionPass,
		ActorID:    passer,
		ActorName:  playerName(res.state, passer),
		BallStart:  start,
		BallEnd:    end,
		TargetID:   ptrPlayerID(receiver),
		DurationMS: res.durationMS(300, 1500),
	}

	res.state.MutateStats(side, func(s *models.TeamStats) { s.Passes++ })

	if res.rng.Bool(successProb) {
		res.state.Ball = end
		res.state.SetAssistCandidate(side, passer)
		return models.TickEvent{
			Type:              models.EventPass,
			Team:              side,
			PrimaryPlayerID:   passer,
			PrimaryPlayerName: playerName(res.state, passer),
			SecondaryPlayerID: ptrPlayerID(receiver),
			Outcome:           "complete",
			Description:       playerName(res.state, passer) + " finds " + playerName(res.state, receiver),
			Coordinates:       end,
			Sequence:          []models.Step{step},
		}
	}

	// Failed pass: possession flips, the intercepting side is credited.
	res.state.Ball = end
	res.state.Possession = side.Opponent()
	res.state.MutateStats(side.Opponent(), func(s *models.TeamStats) { s.Interceptions++ })

	interceptor := defender
	if !hasDefender {
		interceptor = passer // degrade gracefully; no credible defender found
	}

	return models.TickEvent{
		Type:              models.EventInterception,
		Team:              side.Opponent(),
		PrimaryPlayerID:   interceptor,
		PrimaryPlayerName: playerName(res.state, interceptor),
		Outcome:           "intercepted",
		Description:       playerName(res.state, passer) + "'s pass is cut out",
		Coordinates:       end,
		Sequence:          []models.Step{step},
	}
}

// ResolveInterception is the passthrough resolver for an interception
// chain event routed by dispatchChain; no resolver in this package pushes
// one. It produces a short possession-reset event.
func (res *Resolvers) ResolveInterception(ev ChainEvent) models.TickEvent {
	id := ev.TriggerPlayerID
	res.state.Possession = ev.Side
	res.state.MutateStats(ev.Side, func(s *models.TeamStats) { s.Interceptions++ })
	return models.TickEvent{
		Type:              models.EventInterception,
		Team:              ev.Side,
		PrimaryPlayerID:   id,
		PrimaryPlayerName: playerName(res.state, id),
		Outcome:           "won",
		Description:       playerName(res.state, id) + " wins the ball back",
		Coordinates:       ev.Origin,
	}
}
