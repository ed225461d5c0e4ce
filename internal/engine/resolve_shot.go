package engine

import "github.com/stitts-dev/matchsim/internal/models"

// ResolveShot resolves a shot attempt for the attacking side. The shooter
// is picked by finishing; on-target probability is a sigmoid of finishing
// vs the goalkeeper's reflexes minus a long-shot penalty for distant
// zones; goal probability conditional on being on target is a sigmoid of
// finishing vs one_on_ones (§4.4 "Shot").
func (res *Resolvers) ResolveShot(side models.Side) models.TickEvent {
	shooter, ok := res.sel.SelectWeighted(side, models.Finishing, KeyAttributeExponent, nil)
	if !ok {
		return res.possessionLossEvent(side, res.state.Ball)
	}

	origin := res.shotOrigin(side)
	gk, hasGK := res.sel.SelectGoalkeeper(side.Opponent())

	finishing := res.attrs.Effective(shooter, models.Finishing)
	reflexes := 10.0
	oneOnOnes := 10.0
	if hasGK {
		reflexes = res.attrs.Effective(gk, models.Reflexes)
		oneOnOnes = res.attrs.Effective(gk, models.OneOnOnes)
	}

	onTargetProb := sigma((finishing - reflexes - longShotPenalty(side, origin)) / 6.0)
	goalProb := sigma((finishing - oneOnOnes) / 5.0)

	buildUp := models.Step{
		Action:     models.ActionDribble,
		ActorID:    shooter,
		ActorName:  playerName(res.state, shooter),
		BallStart:  res.state.Ball,
		BallEnd:    origin,
		DurationMS: res.durationMS(150, 700),
	}

	res.state.MutateStats(side, func(s *models.TeamStats) { s.Shots++ })

	onTarget := res.rng.Bool(onTargetProb)
	if !onTarget {
		end := res.offTargetEnd(side, origin)
		shootStep := models.Step{
			Action: models.ActionShoot, ActorID: shooter, ActorName: playerName(res.state, shooter),
			BallStart: origin, BallEnd: end, DurationMS: res.durationMS(300, 900),
		}
		res.state.Ball = end
		res.state.Possession = side.Opponent()
		return models.TickEvent{
			Type: models.EventShotOffTarget, Team: side,
			PrimaryPlayerID: shooter, PrimaryPlayerName: playerName(res.state, shooter),
			Outcome: "off_target", Description: playerName(res.state, shooter) + " drags the shot wide",
			Coordinates: origin, Sequence: []models.Step{buildUp, shootStep},
		}
	}

	res.state.MutateStats(side, func(s *models.TeamStats) { s.ShotsOnTarget++ })

	// Blocked: a defender gets in the way before it reaches the keeper.
	if res.rng.Bool(0.20) {
		end := res.blockedEnd(side, origin)
		shootStep := models.Step{
			Action: models.ActionShoot, ActorID: shooter, ActorName: playerName(res.state, shooter),
			BallStart: origin, BallEnd: end, DurationMS: res.durationMS(200, 700),
		}
		res.state.Ball = end
		if res.rng.Bool(0.4) {
			_ = res.chain.Push(ChainEvent{Kind: models.EventCorner, Side: side, Origin: cornerOrigin(side, end.Y), Depth: 1})
		} else {
			res.state.Possession = side.Opponent()
		}
		return models.TickEvent{
			Type: models.EventShotBlocked, Team: side,
			PrimaryPlayerID: shooter, PrimaryPlayerName: playerName(res.state, shooter),
			Outcome: "blocked", Description: playerName(res.state, shooter) + "'s effort is blocked",
			Coordinates: origin, Sequence: []models.Step{buildUp, shootStep},
		}
	}

	goalEnd := res.goalMouthEnd(side)
	shootStep := models.Step{
		Action: models.ActionShoot, ActorID: shooter, ActorName: playerName(res.state, shooter),
		BallStart: origin, BallEnd: goalEnd, DurationMS: res.durationMS(300, 900),
	}

	if res.rng.Bool(goalProb) {
		res.state.Ball = models.Point{X: 50, Y: 50} // re-centre for kickoff restart
		res.state.Score.Home, res.state.Score.Away = res.applyGoal(side)
		res.state.Possession = side.Opponent()
		res.creditGoal(side, shooter)
		return models.TickEvent{
			Type: models.EventGoal, Team: side,
			PrimaryPlayerID: shooter, PrimaryPlayerName: playerName(res.state, shooter),
			Outcome: "goal", Description: playerName(res.state, shooter) + " scores!",
			Coordinates: origin, Sequence: []models.Step{buildUp, shootStep},
		}
	}

	// On target, not a goal: the goalkeeper saves it.
	res.state.Ball = goalEnd
	res.state.MutateStats(side.Opponent(), func(s *models.TeamStats) { s.Saves++ })
	saveStep := models.Step{
		Action: models.ActionSave, ActorID: gk, ActorName: playerName(res.state, gk),
		BallStart: goalEnd, BallEnd: models.Point{X: goalEnd.X, Y: clampY(goalEnd.Y + res.rng.Range(-6, 6))},
		DurationMS: res.durationMS(200, 800),
	}
	if res.rng.Bool(0.45) {
		_ = res.chain.Push(ChainEvent{Kind: models.EventCorner, Side: side, Origin: cornerOrigin(side, goalEnd.Y), Depth: 1})
	} else {
		res.state.Possession = side.Opponent()
	}
	return models.TickEvent{
		Type: models.EventShotOnTarget, Team: side,
		PrimaryPlayerID: shooter, PrimaryPlayerName: playerName(res.state, shooter),
		SecondaryPlayerID: ptrPlayerID(gk),
		Outcome:           "saved", Description: playerName(res.state, gk) + " saves " + playerName(res.state, shooter) + "'s shot",
		Coordinates: origin, Sequence: []models.Step{buildUp, shootStep, saveStep},
	}
}

func (res *Resolvers) applyGoal(side models.Side) (int, int) {
	score := res.state.Score
	if side == models.Home {
		score.Home++
	} else {
		score.Away++
	}
	return score.Home, score.Away
}

// shotOrigin enforces §3's "A shot by the home side has x >= 30; by the
// away side x <= 70" invariant while staying near the current ball
// position.
func (res *Resolvers) shotOrigin(side models.Side) models.Point {
	p := res.state.Ball
	if side == models.Home && p.X < 30 {
		p.X = 30 + res.rng.Float64()*10
	}
	if side == models.Away && p.X > 70 {
		p.X = 70 - res.rng.Float64()*10
	}
	p.Y = clampY(p.Y)
	return p
}

// goalMouthEnd returns a point inside the goal frame the side is
// attacking, used for goals and saved on-target shots.
func (res *Resolvers) goalMouthEnd(side models.Side) models.Point {
	return models.Point{X: goalLineX(side), Y: clampY(44 + res.rng.Float64()*12)}
}

// offTargetEnd returns a point beyond or wide of the goal frame.
func (res *Resolvers) offTargetEnd(side models.Side, origin models.Point) models.Point {
	y := 44 + res.rng.Float64()*12
	if res.rng.Bool(0.5) {
		y = clampY(y - 25)
	} else {
		y = clampY(y + 25)
	}
	return models.Point{X: goalLineX(side), Y: y}
}

// blockedEnd returns a point roughly midway between the shot origin and
// goal, representing where a blocking defender met the ball.
func (res *Resolvers) blockedEnd(side models.Side, origin models.Point) models.Point {
	mid := (origin.X + goalLineX(side)) / 2
	return models.Point{X: mid, Y: clampY(origin.Y + res.rng.Range(-5, 5))}
}

// cornerOrigin returns the nearest corner flag to where the ball went out,
// per §3 ("Corner kick origin is at x <= 10 or x >= 90").
func cornerOrigin(defendingAgainst models.Side, y float64) models.Point {
	x := goalLineX(defendingAgainst)
	cornerY := 0.0
	if y >= 50 {
		cornerY = 100
	}
	return models.Point{X: x, Y: cornerY}
}
