package engine

import "fmt"

// The five error kinds of spec.md §7. Only InvalidLineup and
// FormationMissing are ever returned to a caller; SubstitutionRefused is
// returned by Lineup.Substitute and ignored by its callers (the tick
// loop's substitution heuristic and Lineup.SendOff), and ChainOverflow is
// logged by the tick loop while the overflowing event is dropped.
// ErrInvariantViolated is declared but never produced: the tick loop runs
// no post-tick invariant check.
var (
	ErrInvalidLineup      = fmt.Errorf("invalid lineup")
	ErrFormationMissing   = fmt.Errorf("formation missing")
	ErrSubstitutionRefused = fmt.Errorf("substitution refused")
	ErrChainOverflow      = fmt.Errorf("chain overflow")
	ErrInvariantViolated  = fmt.Errorf("internal invariant violated")
)

// InvalidLineupError wraps ErrInvalidLineup with the specific reason
// (wrong count, no goalkeeper, duplicate player, player not in team).
type InvalidLineupError struct {
	Side   string
	Reason string
}

func (e *InvalidLineupError) Error() string {
	return fmt.Sprintf("invalid lineup (%s): %s", e.Side, e.Reason)
}

func (e *InvalidLineupError) Unwrap() error { return ErrInvalidLineup }
