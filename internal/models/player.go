package models

// Player is immutable for the duration of a match: identity and raw
// attributes never change once the engine is constructed.
type Player struct {
	ID              PlayerID
	FirstName       string
	LastName        string
	ShirtNumber     int
	NaturalPosition PositionTag
	Nationality     string
	Attributes      AttributeSet
}

// FullName returns "First Last", used in TickEvent/Step player names and
// commentary strings.
func (p Player) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	return p.FirstName + " " + p.LastName
}

// MoraleReason is the fixed set of events that move a player's morale via
// MatchState.UpdateMorale (§4.6).
type MoraleReason int

const (
	ReasonGoalScored MoraleReason = iota
	ReasonAssist
	ReasonYellowCard
	ReasonRedCard
	ReasonConceded
	ReasonWin
	ReasonLoss
)

// moraleDelta is the fixed delta table referenced by §4.6.
var moraleDelta = map[MoraleReason]float64{
	ReasonGoalScored: 1.5,
	ReasonAssist:     1.0,
	ReasonYellowCard: -0.3,
	ReasonRedCard:    -3.0,
	ReasonConceded:   -0.4,
	ReasonWin:        0.5,
	ReasonLoss:       -0.5,
}

// PlayerMatchState is the mutable per-player record carried in MatchState.
// Defaults at kickoff: fatigue 0, morale 7, cards 0, flags false (§3).
type PlayerMatchState struct {
	PlayerID         PlayerID
	Fatigue          float64
	YellowCards      int
	IsSentOff        bool
	IsSubbedOff      bool
	Goals            int
	Assists          int
	Morale           float64
	AssignedPosition PositionTag
}

// NewPlayerMatchState returns the kickoff-default state for a player
// assigned to the given pitch slot.
func NewPlayerMatchState(id PlayerID, assigned PositionTag) PlayerMatchState {
	return PlayerMatchState{
		PlayerID:         id,
		Fatigue:          0,
		Morale:           7.0,
		AssignedPosition: assigned,
	}
}

// ApplyMorale adjusts morale by the fixed delta for reason and clamps to
// [1, 10].
func (s *PlayerMatchState) ApplyMorale(reason MoraleReason) {
	s.Morale += moraleDelta[reason]
	s.clampMorale()
}

// DecayMorale nudges morale 0.05 toward the neutral value 7.0, called once
// per minute for every on-pitch player.
func (s *PlayerMatchState) DecayMorale() {
	const neutral = 7.0
	const step = 0.05
	if s.Morale > neutral {
		s.Morale -= step
		if s.Morale < neutral {
			s.Morale = neutral
		}
	} else if s.Morale < neutral {
		s.Morale += step
		if s.Morale > neutral {
			s.Morale = neutral
		}
	}
}

func (s *PlayerMatchState) clampMorale() {
	if s.Morale < 1 {
		s.Morale = 1
	}
	if s.Morale > 10 {
		s.Morale = 10
	}
}
