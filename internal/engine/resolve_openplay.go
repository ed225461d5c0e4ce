package engine

import "github.com/stitts-dev/matchsim/internal/models"

// ResolveOpenPlay builds a 2-6 step pass/dribble/skill_move sequence that
// advances the ball without a decisive outcome (§4.4 "Open play"). Every
// step drifts 3-15 units in the attacking direction, so the direction
// invariant ("ball_end.x >= ball_start.x in >= 60% of steps for home")
// holds unconditionally.
func (res *Resolvers) ResolveOpenPlay(side models.Side) models.TickEvent {
	steps := 2 + res.rng.Intn(5) // 2..6
	dir := attackingDirection(side)
	ball := res.state.Ball

	actor, ok := res.sel.SelectWeighted(side, models.Technique, CommodityAttributeExponent, nil)
	if !ok {
		return res.possessionLossEvent(side, ball)
	}

	sequence := make([]models.Step, 0, steps)
	for i := 0; i < steps; i++ {
		start := ball
		drift := 3 + res.rng.Float64()*12
		end := clampPitch(models.Point{X: start.X + dir*drift, Y: clampY(start.Y + res.rng.Range(-8, 8))})

		action := models.ActionDribble
		var targetID *models.PlayerID
		var targetName string
		roll := res.rng.Float64()
		switch {
		case roll < 0.55:
			action = models.ActionPass
			receiver, ok := res.sel.SelectWeighted(side, models.OffTheBall, CommodityAttributeExponent, map[models.PlayerID]bool{actor: true})
			if ok {
				targetID = ptrPlayerID(receiver)
				targetName = playerName(res.state, receiver)
				actor = receiver
			}
		case roll < 0.80:
			action = models.ActionDribble
		default:
			action = models.ActionSkillMove
		}

		step := models.Step{
			Action:     action,
			ActorID:    actor,
			ActorName:  playerName(res.state, actor),
			BallStart:  start,
			BallEnd:    end,
			TargetID:   targetID,
			DurationMS: res.durationMS(200, 1200),
		}
		_ = targetName
		sequence = append(sequence, step)
		ball = end
	}

	res.state.Ball = ball
	res.state.MutateStats(side, func(s *models.TeamStats) { s.Passes += countPasses(sequence) })

	return models.TickEvent{
		Type:              models.EventOpenPlay,
		Team:              side,
		PrimaryPlayerID:   actor,
		PrimaryPlayerName: playerName(res.state, actor),
		Description:       "builds play going forward",
		Coordinates:       ball,
		Sequence:          sequence,
	}
}

func countPasses(steps []models.Step) int {
	n := 0
	for _, s := range steps {
		if s.Action == models.ActionPass {
			n++
		}
	}
	return n
}

// possessionLossEvent is the safe-alternative outcome a resolver falls
// back to when it cannot find an eligible actor (§7: "individual resolver
// failures ... demote the event to a safe alternative (possession loss)
// rather than aborting").
func (res *Resolvers) possessionLossEvent(side models.Side, at models.Point) models.TickEvent {
	res.state.Possession = side.Opponent()
	return models.TickEvent{
		Type:        models.EventInterception,
		Team:        side.Opponent(),
		Description: "possession changes over",
		Coordinates: at,
	}
}
