// Package commentary turns a simulated Tick into a natural-language
// broadcast line. It is a pure function of its input (§9 design note:
// "isolate commentary text generation from the resolvers that decide
// outcomes, so the two can vary independently") and touches no engine
// state.
package commentary

import (
	"fmt"
	"strings"

	"github.com/stitts-dev/matchsim/internal/models"
)

// Build returns the single commentary line for a Tick, derived from its
// most notable event. Goals and cards always win out over routine open
// play; when nothing notable happened it falls back to a minute marker.
func Build(tick models.Tick) string {
	if len(tick.Events) == 0 {
		return fmt.Sprintf("%d' - quiet passage of play", tick.Minute)
	}

	ev := pickHeadline(tick.Events)
	line := lineFor(ev)
	if tick.Phase == models.PhaseHalfTime {
		return fmt.Sprintf("%d' - HALF TIME. %s", tick.Minute, line)
	}
	if tick.Phase == models.PhaseFullTime {
		return fmt.Sprintf("%d' - FULL TIME. %s", tick.Minute, line)
	}
	return fmt.Sprintf("%d' - %s", tick.Minute, line)
}

// headlinePriority ranks event kinds so the most newsworthy one in a
// multi-event tick (e.g. a foul that chains into a converted penalty)
// drives the commentary line.
var headlinePriority = map[models.EventKind]int{
	models.EventGoal:          0,
	models.EventRedCard:       1,
	models.EventPenalty:       2,
	models.EventYellowCard:    3,
	models.EventShotOnTarget:  4,
	models.EventShotBlocked:   5,
	models.EventShotOffTarget: 6,
	models.EventSubstitution:  7,
	models.EventFreeKick:      8,
	models.EventCorner:        9,
	models.EventFoul:          10,
	models.EventHeader:        11,
	models.EventOffside:       12,
	models.EventSave:          13,
	models.EventTackle:        14,
	models.EventInterception:  15,
	models.EventClearance:     16,
	models.EventThrowIn:       17,
	models.EventGoalKick:      18,
	models.EventPass:          19,
	models.EventOpenPlay:      20,
	models.EventError:         21,
}

func pickHeadline(events []models.TickEvent) models.TickEvent {
	best := events[0]
	bestRank := headlinePriority[best.Type]
	for _, ev := range events[1:] {
		if rank := headlinePriority[ev.Type]; rank < bestRank {
			best = ev
			bestRank = rank
		}
	}
	return best
}

func lineFor(ev models.TickEvent) string {
	if ev.Description != "" {
		return strings.TrimSpace(ev.Description)
	}
	return ev.Type.String()
}
