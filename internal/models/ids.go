package models

import "github.com/google/uuid"

// PlayerID identifies a player uniquely within a match's lineups.
type PlayerID = uuid.UUID

// MatchID identifies one engine run.
type MatchID = uuid.UUID

// NewPlayerID and NewMatchID are thin wrappers kept so callers never touch
// google/uuid directly outside this package.
func NewPlayerID() PlayerID { return uuid.New() }
func NewMatchID() MatchID   { return uuid.New() }

// Side is which team a player, event, or stat belongs to.
type Side int

const (
	Home Side = iota
	Away
)

func (s Side) String() string {
	if s == Home {
		return "home"
	}
	return "away"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Home {
		return Away
	}
	return Home
}

// PerTeam holds one value of T per side, indexed directly by Side.
type PerTeam[T any] struct {
	Home T
	Away T
}

// Get returns the value for the given side.
func (p PerTeam[T]) Get(s Side) T {
	if s == Home {
		return p.Home
	}
	return p.Away
}

// Set writes the value for the given side.
func (p *PerTeam[T]) Set(s Side, v T) {
	if s == Home {
		p.Home = v
	} else {
		p.Away = v
	}
}
