package engine

import "github.com/stitts-dev/matchsim/internal/models"

// buildSquad returns 11 starting players mapped onto DefaultFormation442
// slot order plus a bench of n players, every attribute set to a uniform
// baseline so individual tests can bump the one attribute they care about.
func buildSquad(baseline int, benchSize int) ([]models.Player, []models.Player) {
	formation := models.DefaultFormation442()
	starting := make([]models.Player, 11)
	for i, slot := range formation.Slots {
		var set models.AttributeSet
		for a := models.Attribute(0); a < models.NumAttributes; a++ {
			set.Set(a, baseline)
		}
		starting[i] = models.Player{
			ID:              models.NewPlayerID(),
			LastName:        slot.Position.String(),
			NaturalPosition: slot.Position,
			Attributes:      set,
		}
	}

	bench := make([]models.Player, benchSize)
	for i := range bench {
		var set models.AttributeSet
		for a := models.Attribute(0); a < models.NumAttributes; a++ {
			set.Set(a, baseline)
		}
		bench[i] = models.Player{
			ID:              models.NewPlayerID(),
			LastName:        "Sub",
			NaturalPosition: models.CM,
			Attributes:      set,
		}
	}
	return starting, bench
}

func buildLineup(side models.Side, baseline, benchSize int) (*Lineup, []models.Player, []models.Player) {
	starting, bench := buildSquad(baseline, benchSize)
	lineup, err := NewLineup(side, starting, models.DefaultFormation442(), bench)
	if err != nil {
		panic(err)
	}
	return lineup, starting, bench
}

func buildMatchInput(baseline int) models.MatchInput {
	homeStarting, homeBench := buildSquad(baseline, 3)
	awayStarting, awayBench := buildSquad(baseline, 3)
	return models.MatchInput{
		HomeID: "home-fc",
		AwayID: "away-fc",
		Venue:  models.VenueHome,
		Home: models.SquadInput{
			Team:      models.Team{ID: "home-fc", Name: "Home FC"},
			Starting:  homeStarting,
			Bench:     homeBench,
			Formation: models.DefaultFormation442(),
		},
		Away: models.SquadInput{
			Team:      models.Team{ID: "away-fc", Name: "Away FC"},
			Starting:  awayStarting,
			Bench:     awayBench,
			Formation: models.DefaultFormation442(),
		},
	}
}
