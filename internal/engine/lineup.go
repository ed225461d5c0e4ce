package engine

import (
	"github.com/stitts-dev/matchsim/internal/models"
)

// Lineup is the Lineup Manager (C3) for one side: starting XI plus bench,
// on-pitch/subbed-off/sent-off sets, the substitution cap, and the current
// slot assignment per player.
type Lineup struct {
	Side       models.Side
	Starting   []models.PlayerID
	Bench      []models.PlayerID
	onPitch    map[models.PlayerID]bool
	subbedOff  map[models.PlayerID]bool
	sentOff    map[models.PlayerID]bool
	subsUsed   int
	assigned   map[models.PlayerID]models.PositionTag
	benchOrder []models.PlayerID // remaining bench, in arrival order
}

// NewLineup builds a Lineup Manager from a squad's starting eleven
// (already mapped onto formation slots, same order) and bench.
func NewLineup(side models.Side, starting []models.Player, formation models.Formation, bench []models.Player) (*Lineup, error) {
	if len(starting) != 11 {
		return nil, &InvalidLineupError{Side: side.String(), Reason: "starting XI must have exactly 11 players"}
	}
	if len(bench) > 9 {
		return nil, &InvalidLineupError{Side: side.String(), Reason: "bench may have at most 9 players"}
	}
	if formation == (models.Formation{}) {
		return nil, ErrFormationMissing
	}
	if err := formation.Validate(); err != nil {
		return nil, &InvalidLineupError{Side: side.String(), Reason: err.Error()}
	}

	seen := make(map[models.PlayerID]bool, len(starting)+len(bench))
	l := &Lineup{
		Side:     side,
		onPitch:  make(map[models.PlayerID]bool, 11),
		subbedOff: make(map[models.PlayerID]bool),
		sentOff:  make(map[models.PlayerID]bool),
		assigned: make(map[models.PlayerID]models.PositionTag, 11),
	}

	gkCount := 0
	for i, p := range starting {
		if seen[p.ID] {
			return nil, &InvalidLineupError{Side: side.String(), Reason: "duplicate player in starting XI"}
		}
		seen[p.ID] = true
		slot := formation.Slots[i].Position
		l.Starting = append(l.Starting, p.ID)
		l.onPitch[p.ID] = true
		l.assigned[p.ID] = slot
		if slot == models.GK {
			gkCount++
		}
	}
	if gkCount != 1 {
		return nil, &InvalidLineupError{Side: side.String(), Reason: "starting XI must include exactly one goalkeeper"}
	}

	for _, p := range bench {
		if seen[p.ID] {
			return nil, &InvalidLineupError{Side: side.String(), Reason: "duplicate player between starting XI and bench"}
		}
		seen[p.ID] = true
		l.Bench = append(l.Bench, p.ID)
		l.benchOrder = append(l.benchOrder, p.ID)
	}

	return l, nil
}

// AvailablePlayers returns on-pitch players minus sent-off minus subbed-off,
// starters first in slot order, then substitutes in bench order.
func (l *Lineup) AvailablePlayers() []models.PlayerID {
	out := make([]models.PlayerID, 0, len(l.onPitch))
	for _, group := range [][]models.PlayerID{l.Starting, l.Bench} {
		for _, id := range group {
			if l.onPitch[id] && !l.sentOff[id] && !l.subbedOff[id] {
				out = append(out, id)
			}
		}
	}
	return out
}

// AvailableOutfield is AvailablePlayers excluding the current goalkeeper.
func (l *Lineup) AvailableOutfield() []models.PlayerID {
	gk, hasGK := l.Goalkeeper()
	out := make([]models.PlayerID, 0, len(l.onPitch))
	for _, id := range l.AvailablePlayers() {
		if hasGK && id == gk {
			continue
		}
		out = append(out, id)
	}
	return out
}

// Goalkeeper returns the unique available player assigned to GK, or
// (zero, false) if none remains (e.g. after a GK red card with no
// replacement available).
func (l *Lineup) Goalkeeper() (models.PlayerID, bool) {
	for _, id := range l.AvailablePlayers() {
		if l.assigned[id] == models.GK {
			return id, true
		}
	}
	var zero models.PlayerID
	return zero, false
}

// AssignedPosition returns the pitch slot currently held by a player.
func (l *Lineup) AssignedPosition(id models.PlayerID) models.PositionTag {
	return l.assigned[id]
}

// OnPitchCount returns the number of players currently on the pitch
// (including the goalkeeper), used by the tick loop's early-termination
// check (§4.3: "If any side falls below 7 on-pitch...").
func (l *Lineup) OnPitchCount() int {
	return len(l.AvailablePlayers())
}

// SubsUsed returns how many substitutions this side has made.
func (l *Lineup) SubsUsed() int { return l.subsUsed }

const maxSubstitutions = 5

// Substitute swaps outID off for inID on. It fails with
// ErrSubstitutionRefused if the cap is reached, outID isn't on the pitch,
// or inID isn't on the bench; the caller (tick loop / substitution
// resolver) is expected to simply skip the attempt on failure, never
// surface it (§7).
func (l *Lineup) Substitute(outID, inID models.PlayerID) error {
	if l.subsUsed >= maxSubstitutions {
		return ErrSubstitutionRefused
	}
	if !l.onPitch[outID] || l.sentOff[outID] || l.subbedOff[outID] {
		return ErrSubstitutionRefused
	}
	benchIdx := -1
	for i, id := range l.benchOrder {
		if id == inID {
			benchIdx = i
			break
		}
	}
	if benchIdx == -1 {
		return ErrSubstitutionRefused
	}

	l.onPitch[outID] = false
	l.subbedOff[outID] = true
	l.assigned[inID] = l.assigned[outID]
	l.onPitch[inID] = true
	l.benchOrder = append(l.benchOrder[:benchIdx], l.benchOrder[benchIdx+1:]...)
	l.subsUsed++
	return nil
}

// SendOff removes a player permanently from the match. If the sent-off
// player was the goalkeeper, it forces a GK replacement: a substitution if
// the bench and substitution budget allow it, otherwise a reassignment of
// an already-available outfield player to GK (§4.3 "Red-card handling").
// The reassignment target is the available outfielder with the highest
// handling rating, supplied by the caller because Lineup has no attribute
// access of its own.
func (l *Lineup) SendOff(id models.PlayerID, pickGKReplacement func(candidates []models.PlayerID) models.PlayerID) {
	l.sentOff[id] = true
	l.onPitch[id] = false

	wasGK := l.assigned[id] == models.GK
	if !wasGK {
		return
	}

	if len(l.benchOrder) > 0 && l.subsUsed < maxSubstitutions {
		// Sacrifice the first available outfield player for the first
		// remaining bench player, who takes over in goal. pickGKReplacement
		// is not consulted on this path.
		benchGK := l.benchOrder[0]
		var sacrifice models.PlayerID
		for _, outfield := range l.AvailablePlayers() {
			sacrifice = outfield
			break
		}
		if sacrifice != (models.PlayerID{}) {
			_ = l.Substitute(sacrifice, benchGK)
			l.assigned[benchGK] = models.GK
			return
		}
	}

	candidates := l.AvailablePlayers()
	if len(candidates) == 0 {
		return
	}
	replacement := pickGKReplacement(candidates)
	l.assigned[replacement] = models.GK
}

// IsSentOff reports whether a player has ever been sent off.
func (l *Lineup) IsSentOff(id models.PlayerID) bool { return l.sentOff[id] }

// IsAvailable reports whether a player is currently eligible to appear in
// an event (on pitch, not sent off, not subbed off).
func (l *Lineup) IsAvailable(id models.PlayerID) bool {
	return l.onPitch[id] && !l.sentOff[id] && !l.subbedOff[id]
}

// BenchRemaining returns the players still on the bench.
func (l *Lineup) BenchRemaining() []models.PlayerID {
	out := make([]models.PlayerID, len(l.benchOrder))
	copy(out, l.benchOrder)
	return out
}
