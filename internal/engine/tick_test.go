package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/matchsim/internal/models"
)

func TestEngine_RunReachesFullTimeWithinNinetyOneTicks(t *testing.T) {
	input := buildMatchInput(12)
	seed := uint64(2024)
	input.Seed = &seed

	eng, err := NewEngine(models.NewMatchID(), input, nil)
	require.NoError(t, err)

	ticks := eng.Run()
	assert.LessOrEqual(t, len(ticks), 91)
	assert.NotEmpty(t, ticks)

	first := ticks[0]
	assert.Equal(t, 0, first.Minute)
	assert.Equal(t, models.PhaseKickoff, first.Phase)

	last := ticks[len(ticks)-1]
	if last.Minute == 90 {
		assert.Equal(t, models.PhaseFullTime, last.Phase)
	}
}

func TestEngine_SameSeedIsDeterministic(t *testing.T) {
	seed := uint64(777)

	inputA := buildMatchInput(12)
	inputA.Seed = &seed
	engA, err := NewEngine(models.NewMatchID(), inputA, nil)
	require.NoError(t, err)
	scoreA := engA.Run()

	inputB := buildMatchInput(12)
	inputB.Seed = &seed
	engB, err := NewEngine(models.NewMatchID(), inputB, nil)
	require.NoError(t, err)
	scoreB := engB.Run()

	assert.Equal(t, len(scoreA), len(scoreB))
	assert.Equal(t, engA.FinalScore(), engB.FinalScore())
}

func TestEngine_NextStopsAfterFullTime(t *testing.T) {
	input := buildMatchInput(10)
	seed := uint64(1)
	input.Seed = &seed
	eng, err := NewEngine(models.NewMatchID(), input, nil)
	require.NoError(t, err)

	for {
		_, ok := eng.Next()
		if !ok {
			break
		}
	}
	_, ok := eng.Next()
	assert.False(t, ok, "Next should keep returning false once the match has ended")
}

func TestEngine_FinalStatsShotTotalNonNegativeAfterRun(t *testing.T) {
	input := buildMatchInput(14)
	seed := uint64(55)
	input.Seed = &seed
	eng, err := NewEngine(models.NewMatchID(), input, nil)
	require.NoError(t, err)
	eng.Run()

	stats := eng.FinalStats()
	total := stats.Get(models.Home).Shots + stats.Get(models.Away).Shots
	assert.GreaterOrEqual(t, total, 0)
}
