package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/matchsim/internal/models"
)

func newTestSelector(baseline int) (*PlayerSelector, *MatchState) {
	homeStarting, homeBench := buildSquad(baseline, 3)
	awayStarting, awayBench := buildSquad(baseline, 3)
	formation := models.DefaultFormation442()

	homeLineup, err := NewLineup(models.Home, homeStarting, formation, homeBench)
	if err != nil {
		panic(err)
	}
	awayLineup, err := NewLineup(models.Away, awayStarting, formation, awayBench)
	if err != nil {
		panic(err)
	}

	input := models.MatchInput{
		Home: models.SquadInput{Starting: homeStarting, Bench: homeBench, Formation: formation},
		Away: models.SquadInput{Starting: awayStarting, Bench: awayBench, Formation: formation},
	}
	state := NewMatchState(models.NewMatchID(), input, homeLineup, awayLineup)
	attrs := NewAttributeResolver(state)
	rng := NewRNG(99)
	return NewPlayerSelector(state, attrs, rng), state
}

func TestSelectWeighted_StronglyFavorsHighestAttribute(t *testing.T) {
	sel, state := newTestSelector(10)
	lineup := state.LineupFor(models.Home)
	star := lineup.AvailableOutfield()[0]
	state.Roster[star] = models.Player{
		ID:              star,
		NaturalPosition: lineup.AssignedPosition(star),
		Attributes:      boostedAttributeSet(models.Finishing, 20),
	}

	counts := map[models.PlayerID]int{}
	for i := 0; i < 500; i++ {
		id, ok := sel.SelectWeighted(models.Home, models.Finishing, KeyAttributeExponent, nil)
		require.True(t, ok)
		counts[id]++
	}
	// With k=2 the star weighs 20^2 against nine outfielders at 10^2, i.e.
	// 4/13 of the pool (~154 of 500 draws) versus ~50 for a uniform draw.
	assert.Greater(t, counts[star], 120, "the boosted player should win far more than a uniform share of weighted draws")
}

func TestSelectWeighted_ExcludesGivenPlayers(t *testing.T) {
	sel, state := newTestSelector(10)
	lineup := state.LineupFor(models.Home)
	outfield := lineup.AvailableOutfield()
	exclude := map[models.PlayerID]bool{outfield[0]: true}

	for i := 0; i < 50; i++ {
		id, ok := sel.SelectWeighted(models.Home, models.Passing, CommodityAttributeExponent, exclude)
		require.True(t, ok)
		assert.NotEqual(t, outfield[0], id)
	}
}

func TestElectSetPieceTakers_PicksHighestRaw(t *testing.T) {
	sel, state := newTestSelector(10)
	lineup := state.LineupFor(models.Home)
	star := lineup.AvailableOutfield()[0]
	state.Roster[star] = models.Player{
		ID:              star,
		NaturalPosition: lineup.AssignedPosition(star),
		Attributes:      boostedAttributeSet(models.Corners, 20),
	}

	takers := sel.ElectSetPieceTakers(models.Home)
	assert.Equal(t, star, takers.Corner)
}

func boostedAttributeSet(a models.Attribute, value int) models.AttributeSet {
	var set models.AttributeSet
	for i := models.Attribute(0); i < models.NumAttributes; i++ {
		set.Set(i, 10)
	}
	set.Set(a, value)
	return set
}
