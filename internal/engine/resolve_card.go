package engine

import "github.com/stitts-dev/matchsim/internal/models"

// ResolveCard books the offending player. A direct red, or a second
// yellow, removes them from the pitch via the Lineup Manager's
// forced-goalkeeper-replacement rule and decays their morale (§4.3
// "Red-card handling", §4.4 "second yellow -> red", §4.6).
func (res *Resolvers) ResolveCard(ev ChainEvent) models.TickEvent {
	side := ev.Side
	offender := ev.TriggerPlayerID
	lineup := res.state.LineupFor(side)

	secondYellow := false
	if ev.Kind == models.EventYellowCard {
		res.state.MutateStats(side, func(s *models.TeamStats) { s.YellowCards++ })
		res.state.UpdateMorale(offender, models.ReasonYellowCard)
		if ps := res.state.PlayerStateFor(offender); ps != nil {
			ps.YellowCards++
			secondYellow = ps.YellowCards >= 2
		}
		if !secondYellow {
			return models.TickEvent{
				Type: models.EventYellowCard, Team: side,
				PrimaryPlayerID: offender, PrimaryPlayerName: playerName(res.state, offender),
				Outcome: "booked", Description: playerName(res.state, offender) + " is shown a yellow card",
				Coordinates: ev.Origin,
			}
		}
	}

	res.state.MutateStats(side, func(s *models.TeamStats) { s.RedCards++ })
	res.state.UpdateMorale(offender, models.ReasonRedCard)
	lineup.SendOff(offender, func(candidates []models.PlayerID) models.PlayerID {
		return res.highestHandling(candidates)
	})
	if ps := res.state.PlayerStateFor(offender); ps != nil {
		ps.IsSentOff = true
	}

	desc := playerName(res.state, offender) + " is sent off!"
	if secondYellow {
		desc = playerName(res.state, offender) + " is shown a second yellow and sent off!"
	}
	return models.TickEvent{
		Type: models.EventRedCard, Team: side,
		PrimaryPlayerID: offender, PrimaryPlayerName: playerName(res.state, offender),
		Outcome: "sent_off", Description: desc,
		Coordinates: ev.Origin,
	}
}

// highestHandling picks the outfield reassignment target with the best
// handling rating when a sent-off goalkeeper has no bench replacement
// available (§4.3).
func (res *Resolvers) highestHandling(candidates []models.PlayerID) models.PlayerID {
	var best models.PlayerID
	bestVal := -1
	for _, id := range candidates {
		v := res.state.Attribute(id, models.Handling)
		if v > bestVal {
			bestVal = v
			best = id
		}
	}
	return best
}
