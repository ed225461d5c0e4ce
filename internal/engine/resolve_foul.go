package engine

import "github.com/stitts-dev/matchsim/internal/models"

// ResolveFoul resolves a pending foul chain event: it records the foul,
// possibly books the fouling player, and schedules the restart — a
// penalty if the foul happened inside either penalty box, otherwise a
// free kick (§4.4 "Foul").
func (res *Resolvers) ResolveFoul(ev ChainEvent) models.TickEvent {
	foulingSide := ev.Side
	fouledSide := foulingSide.Opponent()
	offender := ev.TriggerPlayerID

	res.state.MutateStats(foulingSide, func(s *models.TeamStats) { s.Fouls++ })
	res.state.Possession = fouledSide

	penalty := inPenaltyBox(ev.Origin)

	restartKind := models.EventFreeKick
	if penalty {
		restartKind = models.EventPenalty
	}
	_ = res.chain.Push(ChainEvent{
		Kind: restartKind, Side: fouledSide, Origin: ev.Origin, TriggerPlayerID: offender, Depth: ev.Depth + 1,
	})

	outcome := "free_kick"
	if penalty {
		outcome = "penalty"
	}

	cardChance := 0.18
	if res.rng.Bool(cardChance) {
		redChance := 0.12
		kind := models.EventYellowCard
		if res.rng.Bool(redChance) {
			kind = models.EventRedCard
		}
		_ = res.chain.Push(ChainEvent{
			Kind: kind, Side: foulingSide, Origin: ev.Origin, TriggerPlayerID: offender, Depth: ev.Depth + 1,
		})
	}

	return models.TickEvent{
		Type: models.EventFoul, Team: foulingSide,
		PrimaryPlayerID: offender, PrimaryPlayerName: playerName(res.state, offender),
		Outcome: outcome, Description: playerName(res.state, offender) + " concedes a foul",
		Coordinates: ev.Origin,
	}
}
