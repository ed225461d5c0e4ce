package engine

import "github.com/stitts-dev/matchsim/internal/models"

// Selection exponents for the weighted draw: key attributes concentrate
// probability mass on the strongest candidate (k=2), commodity attributes
// spread it more evenly (k=1) (§4.2).
const (
	KeyAttributeExponent       = 2.0
	CommodityAttributeExponent = 1.0
)

// PlayerSelector is the Player Selector (C2): weighted random draws over
// effective attributes, plus goalkeeper lookup and memoised set-piece
// taker election.
type PlayerSelector struct {
	state *MatchState
	attrs *AttributeResolver
	rng   *RNG
}

// NewPlayerSelector binds a selector to a match's state, attribute
// resolver, and RNG.
func NewPlayerSelector(state *MatchState, attrs *AttributeResolver, rng *RNG) *PlayerSelector {
	return &PlayerSelector{state: state, attrs: attrs, rng: rng}
}

// SelectWeighted draws one player from `side` with probability
// proportional to max(0.1, effective(player, attribute))^k. GK is
// excluded from the candidate pool unless no outfield player remains.
// `exclude` lists player ids ineligible for this particular draw (e.g. the
// passer when picking the pass receiver).
func (s *PlayerSelector) SelectWeighted(side models.Side, attribute models.Attribute, k float64, exclude map[models.PlayerID]bool) (models.PlayerID, bool) {
	candidates := s.filteredCandidates(s.state.LineupFor(side).AvailableOutfield(), exclude)
	if len(candidates) == 0 {
		candidates = s.filteredCandidates(s.state.LineupFor(side).AvailablePlayers(), exclude)
	}
	if len(candidates) == 0 {
		var zero models.PlayerID
		return zero, false
	}

	weights := make([]float64, len(candidates))
	total := 0.0
	for i, id := range candidates {
		eff := s.attrs.Effective(id, attribute)
		w := eff
		if w < 0.1 {
			w = 0.1
		}
		w = pow(w, k)
		weights[i] = w
		total += w
	}

	draw := s.rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if draw <= acc {
			return candidates[i], true
		}
	}
	return candidates[len(candidates)-1], true
}

func (s *PlayerSelector) filteredCandidates(pool []models.PlayerID, exclude map[models.PlayerID]bool) []models.PlayerID {
	if len(exclude) == 0 {
		return pool
	}
	out := make([]models.PlayerID, 0, len(pool))
	for _, id := range pool {
		if !exclude[id] {
			out = append(out, id)
		}
	}
	return out
}

// SelectGoalkeeper returns the side's current available goalkeeper.
func (s *PlayerSelector) SelectGoalkeeper(side models.Side) (models.PlayerID, bool) {
	return s.state.LineupFor(side).Goalkeeper()
}

// SetPieceKind is which of the three memoised roles is being requested.
type SetPieceKind int

const (
	SetPieceCorner SetPieceKind = iota
	SetPieceFreeKick
	SetPiecePenalty
)

func (k SetPieceKind) attribute() models.Attribute {
	switch k {
	case SetPieceCorner:
		return models.Corners
	case SetPieceFreeKick:
		return models.FreeKickTaking
	default:
		return models.PenaltyTaking
	}
}

// ElectSetPieceTakers chooses, for each side, the available non-GK player
// with the highest corners/free_kick_taking/penalty_taking respectively.
// Called once at kickoff (§3 "Set-piece takers").
func (s *PlayerSelector) ElectSetPieceTakers(side models.Side) SetPieceTakers {
	return SetPieceTakers{
		Corner:   s.highestRaw(side, models.Corners),
		FreeKick: s.highestRaw(side, models.FreeKickTaking),
		Penalty:  s.highestRaw(side, models.PenaltyTaking),
	}
}

// SelectSetPieceTaker returns the memoised taker for `kind` if still
// available, or re-elects using the same attribute if the memoised player
// has left the pitch (§4.2).
func (s *PlayerSelector) SelectSetPieceTaker(side models.Side, kind SetPieceKind) (models.PlayerID, bool) {
	takers := s.state.SetPieceTakers.Get(side)
	current := takers.forKind(kind)

	if s.state.LineupFor(side).IsAvailable(current) {
		return current, true
	}

	replacement := s.highestRaw(side, kind.attribute())
	var zero models.PlayerID
	if replacement == zero {
		return zero, false
	}
	takers.setForKind(kind, replacement)
	s.state.SetPieceTakers.Set(side, takers)
	return replacement, true
}

func (t SetPieceTakers) forKind(kind SetPieceKind) models.PlayerID {
	switch kind {
	case SetPieceCorner:
		return t.Corner
	case SetPieceFreeKick:
		return t.FreeKick
	default:
		return t.Penalty
	}
}

func (t *SetPieceTakers) setForKind(kind SetPieceKind, id models.PlayerID) {
	switch kind {
	case SetPieceCorner:
		t.Corner = id
	case SetPieceFreeKick:
		t.FreeKick = id
	default:
		t.Penalty = id
	}
}

// highestRaw returns the available outfield player on `side` with the
// highest raw (not effective — set-piece election is a fixed trait, not a
// per-tick draw) value of the given attribute.
func (s *PlayerSelector) highestRaw(side models.Side, attribute models.Attribute) models.PlayerID {
	var best models.PlayerID
	bestVal := -1
	for _, id := range s.state.LineupFor(side).AvailableOutfield() {
		v := s.state.Attribute(id, attribute)
		if v > bestVal {
			bestVal = v
			best = id
		}
	}
	return best
}

func pow(base, exp float64) float64 {
	if exp == 1 {
		return base
	}
	if exp == 2 {
		return base * base
	}
	result := 1.0
	for i := 0.0; i < exp; i++ {
		result *= base
	}
	return result
}
