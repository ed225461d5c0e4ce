package engine

import "github.com/stitts-dev/matchsim/internal/models"

// ResolveFreeKick resolves a direct free kick taken by the fouled side's
// elected taker. A sigmoid of free_kick_taking vs the goalkeeper's
// reflexes decides whether it threatens goal; free kicks outside
// shooting range are instead played short and return to open play
// (§4.4 "Free kick").
func (res *Resolvers) ResolveFreeKick(ev ChainEvent) models.TickEvent {
	side := ev.Side
	taker, ok := res.sel.SelectSetPieceTaker(side, SetPieceFreeKick)
	if !ok {
		return res.possessionLossEvent(side.Opponent(), ev.Origin)
	}

	res.state.Possession = side
	direct := inShootingRange(side, ev.Origin)

	if !direct {
		end := clampPitch(models.Point{X: ev.Origin.X + attackingDirection(side)*12, Y: clampY(ev.Origin.Y)})
		res.state.Ball = end
		step := models.Step{
			Action: models.ActionPass, ActorID: taker, ActorName: playerName(res.state, taker),
			BallStart: ev.Origin, BallEnd: end, DurationMS: res.durationMS(400, 1200),
		}
		return models.TickEvent{
			Type: models.EventFreeKick, Team: side,
			PrimaryPlayerID: taker, PrimaryPlayerName: playerName(res.state, taker),
			Outcome: "short", Description: playerName(res.state, taker) + " plays the free kick short",
			Coordinates: ev.Origin, Sequence: []models.Step{step},
		}
	}

	gk, hasGK := res.sel.SelectGoalkeeper(side.Opponent())
	reflexes := 10.0
	if hasGK {
		reflexes = res.attrs.Effective(gk, models.Reflexes)
	}
	ftq := res.attrs.Effective(taker, models.FreeKickTaking)
	onTargetProb := sigma((ftq - reflexes) / 6.0)

	end := res.goalMouthEnd(side)
	step := models.Step{
		Action: models.ActionShoot, ActorID: taker, ActorName: playerName(res.state, taker),
		BallStart: ev.Origin, BallEnd: end, DurationMS: res.durationMS(400, 1200),
	}
	res.state.MutateStats(side, func(s *models.TeamStats) { s.Shots++ })

	if !res.rng.Bool(onTargetProb) {
		res.state.Ball = end
		res.state.Possession = side.Opponent()
		return models.TickEvent{
			Type: models.EventShotOffTarget, Team: side,
			PrimaryPlayerID: taker, PrimaryPlayerName: playerName(res.state, taker),
			Outcome: "off_target", Description: playerName(res.state, taker) + "'s free kick flies over",
			Coordinates: ev.Origin, Sequence: []models.Step{step},
		}
	}

	res.state.MutateStats(side, func(s *models.TeamStats) { s.ShotsOnTarget++ })
	goalProb := sigma((ftq - reflexes) / 4.0)
	if res.rng.Bool(goalProb) {
		res.state.Score.Home, res.state.Score.Away = res.applyGoal(side)
		res.state.Ball = models.Point{X: 50, Y: 50}
		res.state.Possession = side.Opponent()
		res.creditGoal(side, taker)
		return models.TickEvent{
			Type: models.EventGoal, Team: side,
			PrimaryPlayerID: taker, PrimaryPlayerName: playerName(res.state, taker),
			Outcome: "goal", Description: playerName(res.state, taker) + " curls it into the top corner!",
			Coordinates: ev.Origin, Sequence: []models.Step{step},
		}
	}

	res.state.Ball = end
	res.state.MutateStats(side.Opponent(), func(s *models.TeamStats) { s.Saves++ })
	res.state.Possession = side.Opponent()
	return models.TickEvent{
		Type: models.EventShotOnTarget, Team: side,
		PrimaryPlayerID: taker, PrimaryPlayerName: playerName(res.state, taker),
		SecondaryPlayerID: ptrPlayerID(gk),
		Outcome:           "saved", Description: "the goalkeeper keeps out the free kick",
		Coordinates: ev.Origin, Sequence: []models.Step{step},
	}
}

// ResolvePenalty resolves a spot kick: a run-up step followed by a shot
// step, success probability a sigmoid of penalty_taking vs the
// goalkeeper's one_on_ones with composure narrowing the margin
// (§4.4 "Penalty").
func (res *Resolvers) ResolvePenalty(ev ChainEvent) models.TickEvent {
	side := ev.Side
	taker, ok := res.sel.SelectSetPieceTaker(side, SetPiecePenalty)
	if !ok {
		return res.possessionLossEvent(side.Opponent(), ev.Origin)
	}
	gk, hasGK := res.sel.SelectGoalkeeper(side.Opponent())
	oneOnOnes := 10.0
	if hasGK {
		oneOnOnes = res.attrs.Effective(gk, models.OneOnOnes)
	}

	spot := models.Point{X: goalLineX(side) - attackingDirection(side)*12, Y: 50}
	composure := res.attrs.Effective(taker, models.Composure)
	penaltyTaking := res.attrs.Effective(taker, models.PenaltyTaking)
	scoreProb := sigma((penaltyTaking + 0.3*composure - oneOnOnes) / 5.0)

	runUp := models.Step{
		Action: models.ActionRun, ActorID: taker, ActorName: playerName(res.state, taker),
		BallStart: spot, BallEnd: spot, DurationMS: res.durationMS(800, 1800),
	}
	end := res.goalMouthEnd(side)
	shoot := models.Step{
		Action: models.ActionShoot, ActorID: taker, ActorName: playerName(res.state, taker),
		BallStart: spot, BallEnd: end, DurationMS: res.durationMS(150, 400),
	}
	res.state.MutateStats(side, func(s *models.TeamStats) { s.Shots++; s.ShotsOnTarget++ })

	if res.rng.Bool(scoreProb) {
		res.state.Score.Home, res.state.Score.Away = res.applyGoal(side)
		res.state.Ball = models.Point{X: 50, Y: 50}
		res.state.Possession = side.Opponent()
		res.creditGoal(side, taker)
		return models.TickEvent{
			Type: models.EventGoal, Team: side,
			PrimaryPlayerID: taker, PrimaryPlayerName: playerName(res.state, taker),
			Outcome: "goal", Description: playerName(res.state, taker) + " sends the keeper the wrong way!",
			Coordinates: spot, Sequence: []models.Step{runUp, shoot},
		}
	}

	res.state.Ball = end
	res.state.Possession = side.Opponent()
	res.state.MutateStats(side.Opponent(), func(s *models.TeamStats) { s.Saves++ })
	saveStep := models.Step{
		Action: models.ActionSave, ActorID: gk, ActorName: playerName(res.state, gk),
		BallStart: end, BallEnd: models.Point{X: end.X, Y: clampY(end.Y + res.rng.Range(-6, 6))},
		DurationMS: res.durationMS(200, 800),
	}
	return models.TickEvent{
		Type: models.EventShotOnTarget, Team: side,
		PrimaryPlayerID: taker, PrimaryPlayerName: playerName(res.state, taker),
		SecondaryPlayerID: ptrPlayerID(gk),
		Outcome:           "saved", Description: playerName(res.state, gk) + " guesses right and saves it",
		Coordinates: spot, Sequence: []models.Step{runUp, shoot, saveStep},
	}
}

// ResolveCorner resolves a corner kick: a cross step from the flag, then
// an 80%+ chance of chaining a header contest (§8: "at least 80% of
// corners contain a subsequent cross/header step").
func (res *Resolvers) ResolveCorner(ev ChainEvent) models.TickEvent {
	side := ev.Side
	taker, ok := res.sel.SelectSetPieceTaker(side, SetPieceCorner)
	if !ok {
		return res.possessionLossEvent(side.Opponent(), ev.Origin)
	}
	res.state.Possession = side
	res.state.MutateStats(side, func(s *models.TeamStats) { s.Corners++ })

	target := models.Point{X: goalLineX(side) - attackingDirection(side)*8, Y: clampY(50 + res.rng.Range(-15, 15))}
	cross := models.Step{
		Action: models.ActionCross, ActorID: taker, ActorName: playerName(res.state, taker),
		BallStart: ev.Origin, BallEnd: target, DurationMS: res.durationMS(600, 1500),
	}
	res.state.Ball = target
	res.state.SetAssistCandidate(side, taker)

	if res.rng.Bool(0.85) {
		_ = res.chain.Push(ChainEvent{Kind: models.EventHeader, Side: side, Origin: target, Depth: ev.Depth + 1})
	} else {
		res.state.Possession = side.Opponent()
	}

	return models.TickEvent{
		Type: models.EventCorner, Team: side,
		PrimaryPlayerID: taker, PrimaryPlayerName: playerName(res.state, taker),
		Outcome: "delivered", Description: playerName(res.state, taker) + " whips in the corner",
		Coordinates: ev.Origin, Sequence: []models.Step{cross},
	}
}

// ResolveHeader resolves a header contest following a cross, typically
// from a corner: an aerial duel between a heading attacker and a
// defender drawn by jumping_reach, which may end in a goal, an
// on-target header saved by the keeper, or a defensive clearance.
func (res *Resolvers) ResolveHeader(ev ChainEvent) models.TickEvent {
	side := ev.Side
	attacker, ok := res.sel.SelectWeighted(side, models.Heading, KeyAttributeExponent, nil)
	if !ok {
		return res.possessionLossEvent(side.Opponent(), ev.Origin)
	}
	defender, hasDefender := res.sel.SelectWeighted(side.Opponent(), models.JumpingReach, CommodityAttributeExponent, nil)
	defenderJump := 10.0
	if hasDefender {
		defenderJump = res.attrs.Effective(defender, models.JumpingReach)
	}
	heading := res.attrs.Effective(attacker, models.Heading)
	wonProb := sigma((heading - defenderJump) / 5.0)

	step := models.Step{
		Action: models.ActionHeader, ActorID: attacker, ActorName: playerName(res.state, attacker),
		BallStart: ev.Origin, BallEnd: ev.Origin, DurationMS: res.durationMS(150, 500),
	}

	if !res.rng.Bool(wonProb) {
		res.state.Possession = side.Opponent()
		if hasDefender {
			res.state.MutateStats(side.Opponent(), func(s *models.TeamStats) { s.Clearances++ })
		}
		return models.TickEvent{
			Type: models.EventHeader, Team: side,
			PrimaryPlayerID: attacker, PrimaryPlayerName: playerName(res.state, attacker),
			Outcome: "cleared", Description: "the defence heads it clear",
			Coordinates: ev.Origin, Sequence: []models.Step{step},
		}
	}

	gk, hasGK := res.sel.SelectGoalkeeper(side.Opponent())
	reflexes := 10.0
	if hasGK {
		reflexes = res.attrs.Effective(gk, models.Reflexes)
	}
	res.state.MutateStats(side, func(s *models.TeamStats) { s.Shots++; s.ShotsOnTarget++ })
	goalProb := sigma((heading - reflexes) / 5.0)
	end := res.goalMouthEnd(side)

	if res.rng.Bool(goalProb) {
		res.state.Score.Home, res.state.Score.Away = res.applyGoal(side)
		res.state.Ball = models.Point{X: 50, Y: 50}
		res.state.Possession = side.Opponent()
		res.creditGoal(side, attacker)
		return models.TickEvent{
			Type: models.EventGoal, Team: side,
			PrimaryPlayerID: attacker, PrimaryPlayerName: playerName(res.state, attacker),
			Outcome: "goal", Description: playerName(res.state, attacker) + " powers home the header!",
			Coordinates: ev.Origin, Sequence: []models.Step{step},
		}
	}

	res.state.Ball = end
	res.state.Possession = side.Opponent()
	res.state.MutateStats(side.Opponent(), func(s *models.TeamStats) { s.Saves++ })
	return models.TickEvent{
		Type: models.EventShotOnTarget, Team: side,
		PrimaryPlayerID: attacker, PrimaryPlayerName: playerName(res.state, attacker),
		SecondaryPlayerID: ptrPlayerID(gk),
		Outcome:           "saved", Description: "brilliant save from the header",
		Coordinates: ev.Origin, Sequence: []models.Step{step},
	}
}

// ResolveClearance resolves a defensive clearance chain event: the ball
// is booted away from danger, usually upfield, with no immediate
// possession change decision left ambiguous (§8: "at least 60% of
// clearances move the ball back toward the clearing side's attacking
// half").
func (res *Resolvers) ResolveClearance(ev ChainEvent) models.TickEvent {
	side := ev.Side
	defender, ok := res.sel.SelectWeighted(side, models.Strength, CommodityAttributeExponent, nil)
	if !ok {
		return res.possessionLossEvent(side.Opponent(), ev.Origin)
	}
	end := clampPitch(models.Point{X: ev.Origin.X + attackingDirection(side)*(20+res.rng.Float64()*20), Y: clampY(res.rng.Range(10, 90))})
	res.state.Ball = end
	res.state.Possession = side
	res.state.MutateStats(side, func(s *models.TeamStats) { s.Clearances++ })

	step := models.Step{
		Action: models.ActionClearance, ActorID: defender, ActorName: playerName(res.state, defender),
		BallStart: ev.Origin, BallEnd: end, DurationMS: res.durationMS(200, 700),
	}
	return models.TickEvent{
		Type: models.EventClearance, Team: side,
		PrimaryPlayerID: defender, PrimaryPlayerName: playerName(res.state, defender),
		Outcome: "cleared", Description: playerName(res.state, defender) + " hacks it clear",
		Coordinates: ev.Origin, Sequence: []models.Step{step},
	}
}

// ResolveClaimedSave resolves a goalkeeper claim chain event routed by
// dispatchChain; no resolver in this package pushes one.
func (res *Resolvers) ResolveClaimedSave(ev ChainEvent) models.TickEvent {
	side := ev.Side
	gk, hasGK := res.sel.SelectGoalkeeper(side)
	if !hasGK {
		return res.possessionLossEvent(side.Opponent(), ev.Origin)
	}
	res.state.Possession = side
	res.state.MutateStats(side, func(s *models.TeamStats) { s.Saves++ })
	step := models.Step{
		Action: models.ActionSave, ActorID: gk, ActorName: playerName(res.state, gk),
		BallStart: ev.Origin, BallEnd: ev.Origin, DurationMS: res.durationMS(150, 500),
	}
	return models.TickEvent{
		Type: models.EventSave, Team: side,
		PrimaryPlayerID: gk, PrimaryPlayerName: playerName(res.state, gk),
		Outcome: "claimed", Description: playerName(res.state, gk) + " claims it safely",
		Coordinates: ev.Origin, Sequence: []models.Step{step},
	}
}

// inShootingRange reports whether a free kick origin is close enough to
// goal to be taken direct rather than played short (§4.4).
func inShootingRange(side models.Side, origin models.Point) bool {
	distance := origin.X
	if side == models.Home {
		distance = 100 - origin.X
	}
	return distance <= 35
}
