package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/matchsim/internal/engine"
	"github.com/stitts-dev/matchsim/internal/models"
	"github.com/stitts-dev/matchsim/internal/pkg/config"
	"github.com/stitts-dev/matchsim/internal/pkg/logger"
)

func main() {
	fixturePath := flag.String("fixture", "", "path to a fixture JSON file describing the home and away squads")
	numMatches := flag.Int("n", 1, "number of matches to simulate")
	workers := flag.Int("workers", 0, "worker pool size (0 => SIMULATION_WORKERS from config)")
	seed := flag.Uint64("seed", 0, "base RNG seed; 0 => random per match")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: simulate -fixture path/to/fixture.json [-n 1000] [-workers 8] [-seed 42]")
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	log := logger.InitLogger("", cfg.IsDevelopment())

	input, err := loadFixture(*fixturePath)
	if err != nil {
		log.Fatalf("failed to load fixture: %v", err)
	}
	if *seed != 0 {
		s := *seed
		input.Seed = &s
	}

	n := *numMatches
	if n <= 0 {
		n = cfg.DefaultBatchSize
	}
	workerCount := *workers
	if workerCount <= 0 {
		workerCount = cfg.SimulationWorkers
	}

	log.WithFields(logrus.Fields{
		"home":    input.Home.Team.Name,
		"away":    input.Away.Team.Name,
		"matches": n,
		"workers": workerCount,
	}).Info("starting batch simulation")

	var progress chan engine.BatchProgress
	if n > 1 {
		progress = make(chan engine.BatchProgress, 1)
		go printProgress(progress)
	}

	start := time.Now()
	result, err := engine.RunBatch(input, n, workerCount, progress, logrus.NewEntry(log))
	if progress != nil {
		close(progress)
	}
	if err != nil {
		log.Fatalf("batch simulation failed: %v", err)
	}

	printSummary(result, time.Since(start))
}

func printProgress(progress <-chan engine.BatchProgress) {
	for p := range progress {
		fmt.Fprintf(os.Stderr, "\r%d/%d matches complete (%s elapsed)", p.Completed, p.Total, p.Elapsed.Round(time.Second))
	}
	fmt.Fprintln(os.Stderr)
}

func printSummary(result *engine.BatchResult, elapsed time.Duration) {
	fmt.Printf("simulated %d matches in %s\n", result.NumMatches, elapsed.Round(time.Millisecond))
	fmt.Printf("home win %% : %.1f%%\n", result.HomeWinPct)
	fmt.Printf("draw %%     : %.1f%%\n", result.DrawPct)
	fmt.Printf("away win %% : %.1f%%\n", result.AwayWinPct)
	fmt.Printf("mean score : %.2f - %.2f\n", result.MeanHomeGoals, result.MeanAwayGoals)
	if result.NumMatches == 1 {
		s := result.Summaries[0]
		fmt.Printf("score      : %d - %d (seed %d)\n", s.Score.Home, s.Score.Away, s.Seed)
	}
}

// fixtureFile is the on-disk shape of a -fixture JSON file: two squads
// plus an optional venue, the CLI's equivalent of the HTTP API's
// startMatchRequest.
type fixtureFile struct {
	Venue string       `json:"venue"`
	Home  squadFixture `json:"home"`
	Away  squadFixture `json:"away"`
}

type squadFixture struct {
	TeamID   string           `json:"team_id"`
	TeamName string           `json:"team_name"`
	Starting []playerFixture  `json:"starting"`
	Bench    []playerFixture  `json:"bench"`
}

type playerFixture struct {
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name"`
	ShirtNumber     int            `json:"shirt_number"`
	NaturalPosition string         `json:"natural_position"`
	Nationality     string         `json:"nationality"`
	Attributes      map[string]int `json:"attributes"`
}

func (p playerFixture) toModel() (models.Player, error) {
	pos, ok := models.PositionByName(p.NaturalPosition)
	if !ok {
		return models.Player{}, fmt.Errorf("unrecognised position %q for %s %s", p.NaturalPosition, p.FirstName, p.LastName)
	}
	var set models.AttributeSet
	for name, value := range p.Attributes {
		a, ok := models.AttributeByName(name)
		if !ok {
			return models.Player{}, fmt.Errorf("unrecognised attribute %q for %s %s", name, p.FirstName, p.LastName)
		}
		set.Set(a, value)
	}
	return models.Player{
		ID:              models.NewPlayerID(),
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		ShirtNumber:     p.ShirtNumber,
		NaturalPosition: pos,
		Nationality:     p.Nationality,
		Attributes:      set,
	}, nil
}

func (s squadFixture) toModel() (models.SquadInput, error) {
	starting := make([]models.Player, 0, len(s.Starting))
	for _, p := range s.Starting {
		player, err := p.toModel()
		if err != nil {
			return models.SquadInput{}, err
		}
		starting = append(starting, player)
	}
	if len(starting) != 11 {
		return models.SquadInput{}, fmt.Errorf("%s: expected 11 starting players, got %d", s.TeamName, len(starting))
	}
	bench := make([]models.Player, 0, len(s.Bench))
	for _, p := range s.Bench {
		player, err := p.toModel()
		if err != nil {
			return models.SquadInput{}, err
		}
		bench = append(bench, player)
	}
	return models.SquadInput{
		Team:      models.Team{ID: s.TeamID, Name: s.TeamName},
		Starting:  starting,
		Bench:     bench,
		Formation: models.DefaultFormation442(),
	}, nil
}

func loadFixture(path string) (models.MatchInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.MatchInput{}, err
	}
	var f fixtureFile
	if err := json.Unmarshal(data, &f); err != nil {
		return models.MatchInput{}, fmt.Errorf("parse fixture: %w", err)
	}

	home, err := f.Home.toModel()
	if err != nil {
		return models.MatchInput{}, err
	}
	away, err := f.Away.toModel()
	if err != nil {
		return models.MatchInput{}, err
	}

	venue := models.VenueHome
	if f.Venue == string(models.VenueNeutral) {
		venue = models.VenueNeutral
	}

	return models.MatchInput{
		HomeID: f.Home.TeamID,
		AwayID: f.Away.TeamID,
		Venue:  venue,
		Home:   home,
		Away:   away,
	}, nil
}
