package engine

import "github.com/stitts-dev/matchsim/internal/models"

// ResolveTackle resolves a tackle attempt by `side` against whichever team
// currently holds the ball. A sigmoid of tackling vs dribbling decides
// whether the tackler gets a clean touch; contact tackles then roll
// against the tackler's tactical foul propensity to decide whether it was
// won cleanly or conceded a foul (§4.4 "Tackle").
func (res *Resolvers) ResolveTackle(side models.Side) models.TickEvent {
	attacker := side.Opponent()
	tackler, ok := res.sel.SelectWeighted(side, models.Tackling, KeyAttributeExponent, nil)
	if !ok {
		return res.possessionLossEvent(attacker, res.state.Ball)
	}
	carrier, ok := res.sel.SelectWeighted(attacker, models.Dribbling, CommodityAttributeExponent, nil)
	if !ok {
		return res.possessionLossEvent(attacker, res.state.Ball)
	}

	tackling := res.attrs.Effective(tackler, models.Tackling)
	dribbling := res.attrs.Effective(carrier, models.Dribbling)
	winProb := sigma((tackling - dribbling) / 5.0)

	at := res.state.Ball
	step := models.Step{
		Action:     models.ActionTackle,
		ActorID:    tackler,
		ActorName:  playerName(res.state, tackler),
		BallStart:  at,
		BallEnd:    at,
		TargetID:   ptrPlayerID(carrier),
		DurationMS: res.durationMS(150, 600),
	}

	if !res.rng.Bool(winProb) {
		// The attacker shrugs it off and keeps the ball.
		return models.TickEvent{
			Type: models.EventTackle, Team: side,
			PrimaryPlayerID: tackler, PrimaryPlayerName: playerName(res.state, tackler),
			SecondaryPlayerID: ptrPlayerID(carrier),
			Outcome:           "missed", Description: playerName(res.state, carrier) + " skips past " + playerName(res.state, tackler),
			Coordinates: at, Sequence: []models.Step{step},
		}
	}

	tactic := res.state.TacticFor(side)
	aggression := res.attrs.Effective(tackler, models.Aggression)
	foulProb := 0.12 * (aggression / 10.0)
	if tactic != nil {
		foulProb *= tactic.FoulPropensityFactor()
	}

	res.state.MutateStats(side, func(s *models.TeamStats) { s.Tackles++ })

	if res.rng.Bool(foulProb) {
		_ = res.chain.Push(ChainEvent{
			Kind: models.EventFoul, Side: side, Origin: at, TriggerPlayerID: tackler, Depth: 1,
		})
		return models.TickEvent{
			Type: models.EventTackle, Team: side,
			PrimaryPlayerID: tackler, PrimaryPlayerName: playerName(res.state, tackler),
			SecondaryPlayerID: ptrPlayerID(carrier),
			Outcome:           "foul", Description: playerName(res.state, tackler) + " clips " + playerName(res.state, carrier),
			Coordinates: at, Sequence: []models.Step{step},
		}
	}

	res.state.Possession = side
	return models.TickEvent{
		Type: models.EventTackle, Team: side,
		PrimaryPlayerID: tackler, PrimaryPlayerName: playerName(res.state, tackler),
		SecondaryPlayerID: ptrPlayerID(carrier),
		Outcome:           "won", Description: playerName(res.state, tackler) + " wins the ball cleanly",
		Coordinates: at, Sequence: []models.Step{step},
	}
}
