package engine

import (
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/matchsim/internal/models"
)

// BatchProgress reports how far a running batch has got, mirroring the
// optimization-service's Monte Carlo progress-ticker pattern so a caller
// can drive a progress bar without the engine knowing anything about UI.
type BatchProgress struct {
	Total     int
	Completed int
	Elapsed   time.Duration
}

// MatchSummary is the per-match result a batch run keeps, instead of the
// full tick slice, so aggregating thousands of runs stays cheap.
type MatchSummary struct {
	MatchID models.MatchID
	Seed    uint64
	Score   models.Score
	Stats   models.PerTeam[models.TeamStats]
}

// BatchResult aggregates many independent runs of the same fixture.
type BatchResult struct {
	NumMatches    int
	HomeWins      int
	AwayWins      int
	Draws         int
	MeanHomeGoals float64
	MeanAwayGoals float64
	HomeWinPct    float64
	AwayWinPct    float64
	DrawPct       float64
	Summaries     []MatchSummary
}

// RunBatch simulates the same fixture n times across a worker pool,
// varying only the RNG seed, and aggregates the outcomes. progress may be
// nil; sends on it are non-blocking so a slow or absent consumer never
// stalls a worker.
func RunBatch(input models.MatchInput, n, workers int, progress chan<- BatchProgress, log *logrus.Entry) (*BatchResult, error) {
	if n <= 0 {
		return nil, fmt.Errorf("engine: batch size must be positive, got %d", n)
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	seedSource := rand.New(rand.NewSource(time.Now().UnixNano()))
	jobs := make(chan uint64, n)
	for i := 0; i < n; i++ {
		if input.Seed != nil {
			jobs <- *input.Seed + uint64(i)
		} else {
			jobs <- seedSource.Uint64()
		}
	}
	close(jobs)

	results := make(chan MatchSummary, n)
	errs := make(chan error, n)
	var completed int64

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go runBatchWorker(input, jobs, results, errs, &completed, &wg, log)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(results)
		close(errs)
		close(done)
	}()

	if progress != nil {
		go reportBatchProgress(n, &completed, progress, done)
	}

	summaries := make([]MatchSummary, 0, n)
	for s := range results {
		summaries = append(summaries, s)
	}
	for err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return aggregateBatch(summaries), nil
}

func runBatchWorker(input models.MatchInput, jobs <-chan uint64, results chan<- MatchSummary, errs chan<- error, completed *int64, wg *sync.WaitGroup, log *logrus.Entry) {
	defer wg.Done()
	for seed := range jobs {
		runInput := input
		s := seed
		runInput.Seed = &s

		matchID := models.NewMatchID()
		eng, err := NewEngine(matchID, runInput, log.WithField("match_id", matchID.String()))
		if err != nil {
			errs <- err
			atomic.AddInt64(completed, 1)
			continue
		}
		eng.Run()

		results <- MatchSummary{
			MatchID: matchID,
			Seed:    eng.Seed(),
			Score:   eng.FinalScore(),
			Stats:   eng.FinalStats(),
		}
		atomic.AddInt64(completed, 1)
	}
}

func reportBatchProgress(total int, completed *int64, progress chan<- BatchProgress, done <-chan struct{}) {
	start := time.Now()
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			select {
			case progress <- BatchProgress{Total: total, Completed: int(atomic.LoadInt64(completed)), Elapsed: time.Since(start)}:
			default:
			}
		case <-done:
			return
		}
	}
}

func aggregateBatch(summaries []MatchSummary) *BatchResult {
	result := &BatchResult{NumMatches: len(summaries), Summaries: summaries}
	if len(summaries) == 0 {
		return result
	}

	var homeGoals, awayGoals int
	for _, s := range summaries {
		homeGoals += s.Score.Home
		awayGoals += s.Score.Away
		switch {
		case s.Score.Home > s.Score.Away:
			result.HomeWins++
		case s.Score.Away > s.Score.Home:
			result.AwayWins++
		default:
			result.Draws++
		}
	}

	total := float64(len(summaries))
	result.MeanHomeGoals = float64(homeGoals) / total
	result.MeanAwayGoals = float64(awayGoals) / total
	result.HomeWinPct = float64(result.HomeWins) / total * 100
	result.AwayWinPct = float64(result.AwayWins) / total * 100
	result.DrawPct = float64(result.Draws) / total * 100
	return result
}
