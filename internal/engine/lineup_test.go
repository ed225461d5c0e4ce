package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/matchsim/internal/models"
)

func TestNewLineup_RejectsWrongSquadSize(t *testing.T) {
	starting, bench := buildSquad(10, 3)
	_, err := NewLineup(models.Home, starting[:10], models.DefaultFormation442(), bench)
	assert.Error(t, err)
}

func TestNewLineup_RejectsOversizedBench(t *testing.T) {
	starting, bench := buildSquad(10, 10)
	_, err := NewLineup(models.Home, starting, models.DefaultFormation442(), bench)
	assert.Error(t, err)
}

func TestLineup_GoalkeeperAndOutfieldSplit(t *testing.T) {
	lineup, starting, _ := buildLineup(models.Home, 10, 3)

	gk, ok := lineup.Goalkeeper()
	require.True(t, ok)
	assert.Equal(t, starting[0].ID, gk, "DefaultFormation442's first slot is GK")

	outfield := lineup.AvailableOutfield()
	assert.Len(t, outfield, 10)
	assert.NotContains(t, outfield, gk)
}

func TestLineup_SubstituteReplacesOnPitchPlayer(t *testing.T) {
	lineup, starting, bench := buildLineup(models.Home, 10, 3)

	outID := starting[5].ID
	inID := bench[0].ID
	require.NoError(t, lineup.Substitute(outID, inID))

	assert.False(t, lineup.IsAvailable(outID))
	assert.True(t, lineup.IsAvailable(inID))
	assert.Equal(t, 1, lineup.SubsUsed())
	assert.Equal(t, lineup.AssignedPosition(outID), lineup.AssignedPosition(inID))
}

func TestLineup_SubstituteRefusesUnknownBenchPlayer(t *testing.T) {
	lineup, starting, _ := buildLineup(models.Home, 10, 0)
	err := lineup.Substitute(starting[5].ID, models.NewPlayerID())
	assert.ErrorIs(t, err, ErrSubstitutionRefused)
}

func TestLineup_SubstituteRefusesOverCap(t *testing.T) {
	lineup, starting, bench := buildLineup(models.Home, 10, 9)
	for i := 0; i < maxSubstitutions; i++ {
		require.NoError(t, lineup.Substitute(starting[i].ID, bench[i].ID))
	}
	err := lineup.Substitute(starting[maxSubstitutions].ID, bench[maxSubstitutions].ID)
	assert.ErrorIs(t, err, ErrSubstitutionRefused)
}

func TestLineup_SendOffNonGoalkeeperJustRemoves(t *testing.T) {
	lineup, starting, _ := buildLineup(models.Home, 10, 3)
	outfielder := starting[5].ID

	lineup.SendOff(outfielder, func(candidates []models.PlayerID) models.PlayerID { return candidates[0] })

	assert.True(t, lineup.IsSentOff(outfielder))
	assert.Equal(t, 10, lineup.OnPitchCount())
}

func TestLineup_SendOffGoalkeeperPullsBenchReplacement(t *testing.T) {
	lineup, starting, bench := buildLineup(models.Home, 10, 3)
	gk := starting[0].ID

	lineup.SendOff(gk, func(candidates []models.PlayerID) models.PlayerID { return candidates[0] })

	newGK, ok := lineup.Goalkeeper()
	require.True(t, ok)
	assert.Equal(t, bench[0].ID, newGK)
	assert.Equal(t, 10, lineup.OnPitchCount())
}

func TestLineup_SendOffGoalkeeperWithNoBenchReassignsOutfielder(t *testing.T) {
	lineup, starting, _ := buildLineup(models.Home, 10, 0)
	gk := starting[0].ID

	lineup.SendOff(gk, func(candidates []models.PlayerID) models.PlayerID { return candidates[0] })

	_, ok := lineup.Goalkeeper()
	assert.True(t, ok)
	assert.Equal(t, 10, lineup.OnPitchCount())
}
