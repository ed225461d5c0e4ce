package engine

import "github.com/stitts-dev/matchsim/internal/models"

// AttributeResolver is the Attribute Resolver (C1): a pure, stateless
// (but MatchState-reading) function object computing effective(player,
// attribute) by folding fatigue, position familiarity, tactic, home
// advantage, and morale into the player's raw 1-20 value, in that order
// (§4.1). It never mutates MatchState.
type AttributeResolver struct {
	state *MatchState
}

// NewAttributeResolver binds a resolver to a match's state.
func NewAttributeResolver(state *MatchState) *AttributeResolver {
	return &AttributeResolver{state: state}
}

const fatigueStartMinute = 60

// Effective computes the effective value of one attribute for one player
// at the current minute.
func (r *AttributeResolver) Effective(id models.PlayerID, a models.Attribute) float64 {
	base := float64(r.state.Attribute(id, a))

	value := base
	value *= r.fatigueFactor(id)
	value *= r.positionFactor(id, a)
	value *= r.tacticFactor(id, a)
	value *= r.homeAdvantageFactor(id, a)
	value *= r.moraleFactor(id)

	return value
}

// fatigueFactor applies only after minute 60: multiply by (1 - 0.25 *
// fatigue). Before minute 60 the factor is always 1.0 regardless of
// accumulated fatigue.
func (r *AttributeResolver) fatigueFactor(id models.PlayerID) float64 {
	if r.state.Minute < fatigueStartMinute {
		return 1.0
	}
	ps := r.state.PlayerStateFor(id)
	if ps == nil || ps.Fatigue <= 0 {
		return 1.0
	}
	return 1 - 0.25*ps.Fatigue
}

// positionFactor looks up the compatibility multiplier for the player's
// natural position versus their currently assigned slot. Mental and
// technical attributes receive the same factor as each other; the
// catastrophic goalkeeper/outfield penalty falls out of the same table
// (models.Compatibility already returns <= 0.7 whenever either side of
// the pair is GK).
func (r *AttributeResolver) positionFactor(id models.PlayerID, _ models.Attribute) float64 {
	player := r.state.Roster[id]
	ps := r.state.PlayerStateFor(id)
	if ps == nil {
		return 1.0
	}
	return models.Compatibility(player.NaturalPosition, ps.AssignedPosition)
}

// tacticFactor applies the fixed tactic-to-attribute modifier bundle of
// the player's own side.
func (r *AttributeResolver) tacticFactor(id models.PlayerID, a models.Attribute) float64 {
	side := r.state.SideOf(id)
	tactic := r.state.TacticFor(side)
	return tactic.ModifierFor(a)
}

// homeAdvantageFactor gives home players x1.05 on physical/technical
// attributes and x1.08 on mental attributes; away players and neutral
// venues are unchanged.
func (r *AttributeResolver) homeAdvantageFactor(id models.PlayerID, a models.Attribute) float64 {
	if r.state.Venue == models.VenueNeutral {
		return 1.0
	}
	if r.state.SideOf(id) != models.Home {
		return 1.0
	}
	if isMentalAttribute(a) {
		return 1.08
	}
	return 1.05
}

func isMentalAttribute(a models.Attribute) bool {
	return a >= models.Aggression && a <= models.WorkRate
}

// moraleFactor is the piecewise-linear morale multiplier: 1.0 at morale 7,
// 1.10 at 10, 0.90 at 4, 0.80 at 1, clamped to [0.75, 1.15].
func (r *AttributeResolver) moraleFactor(id models.PlayerID) float64 {
	ps := r.state.PlayerStateFor(id)
	if ps == nil {
		return 1.0
	}
	m := ps.Morale

	var factor float64
	switch {
	case m >= 7:
		// 7 -> 1.0, 10 -> 1.10
		factor = 1.0 + (m-7)*(0.10/3.0)
	case m >= 4:
		// 4 -> 0.90, 7 -> 1.0
		factor = 0.90 + (m-4)*(0.10/3.0)
	default:
		// 1 -> 0.80, 4 -> 0.90
		factor = 0.80 + (m-1)*(0.10/3.0)
	}

	if factor < 0.75 {
		factor = 0.75
	}
	if factor > 1.15 {
		factor = 1.15
	}
	return factor
}
