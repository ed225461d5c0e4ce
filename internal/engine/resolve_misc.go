package engine

import "github.com/stitts-dev/matchsim/internal/models"

// ResolveThrowIn resolves a throw-in awarded to `side`: a short, reliable
// restart with no success roll beyond picking a nearby receiver
// (§4.4 "Throw-in").
func (res *Resolvers) ResolveThrowIn(side models.Side) models.TickEvent {
	thrower, ok := res.sel.SelectWeighted(side, models.LongThrows, CommodityAttributeExponent, nil)
	if !ok {
		return res.possessionLossEvent(side, res.state.Ball)
	}
	receiver, ok := res.sel.SelectWeighted(side, models.OffTheBall, CommodityAttributeExponent, map[models.PlayerID]bool{thrower: true})
	if !ok {
		receiver = thrower
	}

	start := models.Point{X: res.state.Ball.X, Y: pickTouchline(res.rng)}
	end := clampPitch(models.Point{X: start.X + attackingDirection(side)*6, Y: clampY(start.Y + res.rng.Range(-10, 10))})

	res.state.Ball = end
	res.state.Possession = side

	step := models.Step{
		Action: models.ActionPass, ActorID: thrower, ActorName: playerName(res.state, thrower),
		BallStart: start, BallEnd: end, TargetID: ptrPlayerID(receiver), DurationMS: res.durationMS(300, 900),
	}
	return models.TickEvent{
		Type: models.EventThrowIn, Team: side,
		PrimaryPlayerID: thrower, PrimaryPlayerName: playerName(res.state, thrower),
		SecondaryPlayerID: ptrPlayerID(receiver),
		Outcome:           "taken", Description: playerName(res.state, thrower) + " takes the throw-in",
		Coordinates: start, Sequence: []models.Step{step},
	}
}

// pickTouchline snaps a y coordinate to one of the two touchlines.
func pickTouchline(rng *RNG) float64 {
	if rng.Bool(0.5) {
		return 0
	}
	return 100
}

// ResolveGoalKick resolves a goal kick for the defending side: the
// goalkeeper restarts play from inside their own box (§3: "Goal kick
// origin is within the taker's own box, x <= 17 or x >= 83").
func (res *Resolvers) ResolveGoalKick(side models.Side) models.TickEvent {
	gk, hasGK := res.sel.SelectGoalkeeper(side)
	if !hasGK {
		return res.possessionLossEvent(side.Opponent(), res.state.Ball)
	}
	origin := models.Point{X: ownGoalLineX(side) + attackingDirection(side)*6, Y: 50}
	kicking := res.attrs.Effective(gk, models.Kicking)
	distance := 20 + kicking*2
	end := clampPitch(models.Point{X: origin.X + attackingDirection(side)*distance, Y: clampY(res.rng.Range(15, 85))})

	res.state.Ball = end
	res.state.Possession = side

	step := models.Step{
		Action: models.ActionPass, ActorID: gk, ActorName: playerName(res.state, gk),
		BallStart: origin, BallEnd: end, DurationMS: res.durationMS(500, 1200),
	}
	return models.TickEvent{
		Type: models.EventGoalKick, Team: side,
		PrimaryPlayerID: gk, PrimaryPlayerName: playerName(res.state, gk),
		Outcome: "taken", Description: playerName(res.state, gk) + " takes the goal kick",
		Coordinates: origin, Sequence: []models.Step{step},
	}
}

// ResolveOffside resolves an offside flag against the attacking side: the
// move breaks down and possession flips, with no shot or pass payoff
// recorded (§4.4 "Offside").
func (res *Resolvers) ResolveOffside(side models.Side) models.TickEvent {
	attacker, ok := res.sel.SelectWeighted(side, models.OffTheBall, CommodityAttributeExponent, nil)
	if !ok {
		return res.possessionLossEvent(side, res.state.Ball)
	}
	at := res.state.Ball
	res.state.Possession = side.Opponent()
	res.state.MutateStats(side, func(s *models.TeamStats) { s.Offsides++ })

	return models.TickEvent{
		Type: models.EventOffside, Team: side,
		PrimaryPlayerID: attacker, PrimaryPlayerName: playerName(res.state, attacker),
		Outcome: "flagged", Description: playerName(res.state, attacker) + " is caught offside",
		Coordinates: at,
	}
}
