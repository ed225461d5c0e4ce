package engine

import (
	"math"

	"github.com/stitts-dev/matchsim/internal/models"
)

// sigma is the logistic function used to turn an attribute differential
// into an outcome probability (§4.4 Shot/Pass).
func sigma(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// attackingDirection returns +1 for the home side (attacking toward
// x=100) and -1 for the away side (attacking toward x=0).
func attackingDirection(side models.Side) float64 {
	if side == models.Home {
		return 1
	}
	return -1
}

// goalLineX returns the x coordinate of the goal line the side is
// attacking toward.
func goalLineX(side models.Side) float64 {
	if side == models.Home {
		return 100
	}
	return 0
}

// ownGoalLineX returns the x coordinate of the side's own goal line.
func ownGoalLineX(side models.Side) float64 {
	return goalLineX(side.Opponent())
}

// clampPitch keeps a point within the ball coordinate invariant of §3
// (-1 <= x, y <= 101).
func clampPitch(p models.Point) models.Point {
	if p.X < -1 {
		p.X = -1
	}
	if p.X > 101 {
		p.X = 101
	}
	if p.Y < -1 {
		p.Y = -1
	}
	if p.Y > 101 {
		p.Y = 101
	}
	return p
}

// clampY keeps a y coordinate within the pitch width.
func clampY(y float64) float64 {
	if y < 0 {
		return 0
	}
	if y > 100 {
		return 100
	}
	return y
}

// zoneLabel classifies the ball's x position into a coarse pitch third,
// used for Tick.Zone and for the long-shot penalty lookup.
func zoneLabel(p models.Point) string {
	switch {
	case p.X <= 33:
		return "defensive_third"
	case p.X <= 66:
		return "midfield"
	default:
		return "attacking_third"
	}
}

// longShotPenalty returns the shot-probability penalty for the zone a shot
// is struck from, relative to the attacking side (distance-from-goal
// proxy used by §4.4's on-target sigmoid).
func longShotPenalty(side models.Side, origin models.Point) float64 {
	distanceFromGoal := math.Abs(goalLineX(side) - origin.X)
	switch {
	case distanceFromGoal <= 15:
		return 0
	case distanceFromGoal <= 30:
		return 1.0
	default:
		return 2.5
	}
}

// inPenaltyBox reports whether a point lies in either penalty box, per
// §4.4 Foul/Free kick ("x > 83 or < 17, 25 <= y <= 75").
func inPenaltyBox(p models.Point) bool {
	if p.Y < 25 || p.Y > 75 {
		return false
	}
	return p.X > 83 || p.X < 17
}

// durationMS draws a step duration uniformly in [min, max] ms.
func (res *Resolvers) durationMS(min, max int) int {
	return min + res.rng.Intn(max-min+1)
}

// creditGoal applies the scorer's Goals tally, an Assists credit to the
// side's most recent completed passer or corner taker (if any, and if not
// the scorer), and the morale
// deltas for scorer, assist provider, and the conceding side (§4.6).
func (res *Resolvers) creditGoal(side models.Side, scorer models.PlayerID) {
	if ps := res.state.PlayerStateFor(scorer); ps != nil {
		ps.Goals++
	}
	res.state.UpdateMorale(scorer, models.ReasonGoalScored)

	if assist, ok := res.state.TakeAssistCandidate(side); ok && assist != scorer {
		if ps := res.state.PlayerStateFor(assist); ps != nil {
			ps.Assists++
		}
		res.state.UpdateMorale(assist, models.ReasonAssist)
	}

	conceding := side.Opponent()
	for _, id := range res.state.LineupFor(conceding).AvailablePlayers() {
		res.state.UpdateMorale(id, models.ReasonConceded)
	}
}

func playerName(state *MatchState, id models.PlayerID) string {
	return state.Roster[id].FullName()
}

func ptrPlayerID(id models.PlayerID) *models.PlayerID {
	v := id
	return &v
}
