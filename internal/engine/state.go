package engine

import (
	"github.com/stitts-dev/matchsim/internal/models"
)

// SetPieceTakers is the per-side memoised trio of designated takers.
type SetPieceTakers struct {
	Corner   models.PlayerID
	FreeKick models.PlayerID
	Penalty  models.PlayerID
}

// MatchState (C6) is the single owned struct carrying every piece of
// mutable per-match data. It is mutated only from within the tick loop,
// directly or through the resolvers the loop calls. It is acquired at start-of-match and
// discarded at full_time or early termination — there is no explicit
// release step because Go's GC reclaims it once the Engine is dropped.
type MatchState struct {
	MatchID    models.MatchID
	Minute     int
	Score      models.Score
	Possession models.Side
	Ball       models.Point
	Venue      models.Venue

	Roster      map[models.PlayerID]models.Player
	PlayerSide  map[models.PlayerID]models.Side
	PlayerState map[models.PlayerID]*models.PlayerMatchState

	Lineups        models.PerTeam[*Lineup]
	Tactics        models.PerTeam[*models.Tactic]
	Stats          models.PerTeam[models.TeamStats]
	SetPieceTakers models.PerTeam[SetPieceTakers]

	assistCandidate models.PerTeam[*models.PlayerID]
}

// NewMatchState builds the initial, kickoff MatchState from a validated
// MatchInput. It does not run any tick logic.
func NewMatchState(matchID models.MatchID, input models.MatchInput, homeLineup, awayLineup *Lineup) *MatchState {
	s := &MatchState{
		MatchID:     matchID,
		Minute:      0,
		Possession:  models.Home,
		Ball:        models.Point{X: 50, Y: 50},
		Venue:       input.Venue,
		Roster:      make(map[models.PlayerID]models.Player),
		PlayerSide:  make(map[models.PlayerID]models.Side),
		PlayerState: make(map[models.PlayerID]*models.PlayerMatchState),
	}
	s.Lineups.Set(models.Home, homeLineup)
	s.Lineups.Set(models.Away, awayLineup)
	s.Tactics.Set(models.Home, input.Home.Tactic)
	s.Tactics.Set(models.Away, input.Away.Tactic)

	s.loadSquad(models.Home, input.Home, homeLineup)
	s.loadSquad(models.Away, input.Away, awayLineup)

	return s
}

func (s *MatchState) loadSquad(side models.Side, squad models.SquadInput, lineup *Lineup) {
	all := append(append([]models.Player{}, squad.Starting...), squad.Bench...)
	for _, p := range all {
		s.Roster[p.ID] = p
		s.PlayerSide[p.ID] = side
	}
	for _, id := range lineup.Starting {
		assigned := lineup.AssignedPosition(id)
		st := models.NewPlayerMatchState(id, assigned)
		s.PlayerState[id] = &st
	}
	for _, id := range lineup.Bench {
		assigned := s.Roster[id].NaturalPosition
		st := models.NewPlayerMatchState(id, assigned)
		s.PlayerState[id] = &st
	}
}

// Attribute returns the player's raw (un-resolved) attribute value.
func (s *MatchState) Attribute(id models.PlayerID, a models.Attribute) int {
	return s.Roster[id].Attributes.Get(a)
}

// SideOf returns which team a player belongs to.
func (s *MatchState) SideOf(id models.PlayerID) models.Side {
	return s.PlayerSide[id]
}

// LineupFor returns the Lineup manager for a side.
func (s *MatchState) LineupFor(side models.Side) *Lineup {
	return s.Lineups.Get(side)
}

// PlayerStateFor returns the mutable per-player match state.
func (s *MatchState) PlayerStateFor(id models.PlayerID) *models.PlayerMatchState {
	return s.PlayerState[id]
}

// TacticFor returns the side's tactic, or nil if none was supplied (the
// caller — the Attribute Resolver — treats nil as the 1.0-factor default).
func (s *MatchState) TacticFor(side models.Side) *models.Tactic {
	return s.Tactics.Get(side)
}

// StatsFor returns a copy of one side's running TeamStats.
func (s *MatchState) StatsFor(side models.Side) models.TeamStats {
	return s.Stats.Get(side)
}

// MutateStats applies fn to one side's TeamStats in place.
func (s *MatchState) MutateStats(side models.Side, fn func(*models.TeamStats)) {
	stats := s.Stats.Get(side)
	fn(&stats)
	s.Stats.Set(side, stats)
}

// UpdateMorale adjusts a player's morale per the fixed delta table and
// clamps to [1, 10] (§4.6).
func (s *MatchState) UpdateMorale(id models.PlayerID, reason models.MoraleReason) {
	if ps := s.PlayerState[id]; ps != nil {
		ps.ApplyMorale(reason)
	}
}

// SetAssistCandidate records the player whose pass or cross most recently
// created the current attack for a side, to be credited when that side
// next scores; a missed shot does not clear it (§4.6 assists).
func (s *MatchState) SetAssistCandidate(side models.Side, id models.PlayerID) {
	v := id
	s.assistCandidate.Set(side, &v)
}

// TakeAssistCandidate returns and clears the pending assist candidate for
// a side, if one is set.
func (s *MatchState) TakeAssistCandidate(side models.Side) (models.PlayerID, bool) {
	p := s.assistCandidate.Get(side)
	if p == nil {
		return models.PlayerID{}, false
	}
	s.assistCandidate.Set(side, nil)
	return *p, true
}

// DecayMorale nudges every on-pitch player's morale toward neutral, called
// once per minute (§4.6).
func (s *MatchState) DecayMorale() {
	for _, side := range []models.Side{models.Home, models.Away} {
		for _, id := range s.Lineups.Get(side).AvailablePlayers() {
			if ps := s.PlayerState[id]; ps != nil {
				ps.DecayMorale()
			}
		}
	}
}

// UpdateFatigue increments fatigue for every on-pitch player per §4.6: a
// base of 0.01/minute plus a pressing/tempo multiplier from the player's
// side's tactic, plus 0.005 if work_rate >= 15.
func (s *MatchState) UpdateFatigue() {
	for _, side := range []models.Side{models.Home, models.Away} {
		tactic := s.TacticFor(side)
		pressFactor, tempoFactor := 0.4, 0.5 // DefaultTactic()-equivalent baseline
		if tactic != nil {
			pressFactor = tactic.Pressing.Intensity()
			tempoFactor = tactic.Tempo.Factor()
		}
		tacticalLoad := 0.01 * (pressFactor + tempoFactor)

		for _, id := range s.Lineups.Get(side).AvailablePlayers() {
			ps := s.PlayerState[id]
			if ps == nil {
				continue
			}
			increment := 0.01 + tacticalLoad
			if s.Attribute(id, models.WorkRate) >= 15 {
				increment += 0.005
			}
			ps.Fatigue += increment
			if ps.Fatigue > 1 {
				ps.Fatigue = 1
			}
		}
	}
}

// ResetFatigue clears fatigue for a player coming on as a substitute.
func (s *MatchState) ResetFatigue(id models.PlayerID) {
	if ps := s.PlayerState[id]; ps != nil {
		ps.Fatigue = 0
	}
}
