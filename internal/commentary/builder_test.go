package commentary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stitts-dev/matchsim/internal/models"
)

func TestBuild_NoEventsFallsBackToQuietLine(t *testing.T) {
	line := Build(models.Tick{Minute: 23})
	assert.Equal(t, "23' - quiet passage of play", line)
}

func TestBuild_GoalOutranksLesserEvents(t *testing.T) {
	tick := models.Tick{
		Minute: 61,
		Events: []models.TickEvent{
			{Type: models.EventFoul, Description: "a crunching challenge"},
			{Type: models.EventGoal, Description: "thunderbolt into the top corner"},
			{Type: models.EventCorner, Description: "swung in from the left"},
		},
	}
	assert.Equal(t, "61' - thunderbolt into the top corner", Build(tick))
}

func TestBuild_HalfTimePrefix(t *testing.T) {
	tick := models.Tick{
		Minute: 45,
		Phase:  models.PhaseHalfTime,
		Events: []models.TickEvent{{Type: models.EventOpenPlay, Description: "the whistle goes"}},
	}
	assert.Equal(t, "45' - HALF TIME. the whistle goes", Build(tick))
}

func TestBuild_FullTimePrefix(t *testing.T) {
	tick := models.Tick{
		Minute: 90,
		Phase:  models.PhaseFullTime,
		Events: []models.TickEvent{{Type: models.EventOpenPlay, Description: "that's full time"}},
	}
	assert.Equal(t, "90' - FULL TIME. that's full time", Build(tick))
}

func TestBuild_FallsBackToEventTypeWhenNoDescription(t *testing.T) {
	tick := models.Tick{
		Minute: 10,
		Events: []models.TickEvent{{Type: models.EventThrowIn}},
	}
	assert.Equal(t, "10' - "+models.EventThrowIn.String(), Build(tick))
}
