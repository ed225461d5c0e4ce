package handlers

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/matchsim/internal/engine"
	"github.com/stitts-dev/matchsim/internal/models"
	"github.com/stitts-dev/matchsim/internal/persistence"
)

// playerRequest is the wire shape for one squad member.
type playerRequest struct {
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name" binding:"required"`
	ShirtNumber     int            `json:"shirt_number"`
	NaturalPosition string         `json:"natural_position" binding:"required"`
	Nationality     string         `json:"nationality"`
	Attributes      map[string]int `json:"attributes" binding:"required"`
}

func (p playerRequest) toModel() (models.Player, bool) {
	pos, ok := models.PositionByName(p.NaturalPosition)
	if !ok {
		return models.Player{}, false
	}
	var set models.AttributeSet
	for name, value := range p.Attributes {
		if a, ok := models.AttributeByName(name); ok {
			set.Set(a, value)
		}
	}
	return models.Player{
		ID:              models.NewPlayerID(),
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		ShirtNumber:     p.ShirtNumber,
		NaturalPosition: pos,
		Nationality:     p.Nationality,
		Attributes:      set,
	}, true
}

// squadRequest is the wire shape for one side's kickoff squad.
type squadRequest struct {
	TeamID    string          `json:"team_id" binding:"required"`
	TeamName  string          `json:"team_name" binding:"required"`
	Starting  []playerRequest `json:"starting" binding:"required,len=11"`
	Bench     []playerRequest `json:"bench"`
	Formation string          `json:"formation"` // ignored: every squad is mapped onto DefaultFormation442
}

func (s squadRequest) toModel() (models.SquadInput, bool) {
	starting := make([]models.Player, 0, len(s.Starting))
	for _, p := range s.Starting {
		player, ok := p.toModel()
		if !ok {
			return models.SquadInput{}, false
		}
		starting = append(starting, player)
	}
	bench := make([]models.Player, 0, len(s.Bench))
	for _, p := range s.Bench {
		player, ok := p.toModel()
		if !ok {
			return models.SquadInput{}, false
		}
		bench = append(bench, player)
	}
	return models.SquadInput{
		Team:      models.Team{ID: s.TeamID, Name: s.TeamName},
		Starting:  starting,
		Bench:     bench,
		Formation: models.DefaultFormation442(),
	}, true
}

// startMatchRequest is the StartMatch request body.
type startMatchRequest struct {
	Venue string       `json:"venue"` // "home" or "neutral", defaults to "home"
	Home  squadRequest `json:"home" binding:"required"`
	Away  squadRequest `json:"away" binding:"required"`
	Seed  *uint64      `json:"seed"`
}

// runningMatch is one active-or-finished simulation kept in memory for
// the lifetime of the server process.
type runningMatch struct {
	mu     sync.Mutex
	engine *engine.Engine
	ticks  []models.Tick
	done   bool
}

// MatchHandler exposes the engine over HTTP: start a match and fetch its
// status/ticks.
type MatchHandler struct {
	mu      sync.RWMutex
	matches map[string]*runningMatch
	store   *persistence.Store
	log     *logrus.Logger
}

// NewMatchHandler wires the handler; store may be nil if persistence
// wasn't configured (results are then only kept in memory).
func NewMatchHandler(store *persistence.Store, log *logrus.Logger) *MatchHandler {
	return &MatchHandler{matches: make(map[string]*runningMatch), store: store, log: log}
}

func (h *MatchHandler) toMatchInput(req startMatchRequest) (models.MatchInput, bool) {
	venue := models.VenueHome
	if req.Venue == string(models.VenueNeutral) {
		venue = models.VenueNeutral
	}
	home, ok := req.Home.toModel()
	if !ok {
		return models.MatchInput{}, false
	}
	away, ok := req.Away.toModel()
	if !ok {
		return models.MatchInput{}, false
	}
	return models.MatchInput{
		HomeID: req.Home.TeamID,
		AwayID: req.Away.TeamID,
		Venue:  venue,
		Home:   home,
		Away:   away,
		Seed:   req.Seed,
	}, true
}

// StartMatch builds an Engine from the posted squads and immediately
// drains it to full time, storing every tick for later retrieval. A
// client that watches tick-by-tick connects to the websocket stream
// handler, which replays these stored ticks at the chosen rate.
func (h *MatchHandler) StartMatch(c *gin.Context) {
	var req startMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendValidationError(c, err.Error())
		return
	}

	input, ok := h.toMatchInput(req)
	if !ok {
		sendValidationError(c, "unrecognised position name")
		return
	}

	matchID := models.NewMatchID()
	eng, err := engine.NewEngine(matchID, input, logrus.NewEntry(h.log).WithField("match_id", matchID.String()))
	if err != nil {
		sendValidationError(c, err.Error())
		return
	}

	rm := &runningMatch{engine: eng}
	h.mu.Lock()
	h.matches[matchID.String()] = rm
	h.mu.Unlock()

	rm.mu.Lock()
	rm.ticks = eng.Run()
	rm.done = true
	rm.mu.Unlock()

	if h.store != nil {
		if err := h.store.SaveResult(matchID, input.HomeID, input.AwayID, eng.FinalScore(), eng.FinalStats(), eng.Seed()); err != nil {
			h.log.WithError(err).Warn("failed to persist match result")
		}
	}

	sendCreated(c, gin.H{
		"match_id": matchID.String(),
		"seed":     eng.Seed(),
		"minutes":  len(rm.ticks),
	})
}

// GetMatch returns the full tick history and final stats for a
// previously started match.
func (h *MatchHandler) GetMatch(c *gin.Context) {
	id := c.Param("match_id")
	h.mu.RLock()
	rm, ok := h.matches[id]
	h.mu.RUnlock()
	if !ok {
		sendNotFound(c, "match not found")
		return
	}

	rm.mu.Lock()
	defer rm.mu.Unlock()
	sendSuccess(c, gin.H{
		"match_id": id,
		"done":     rm.done,
		"ticks":    rm.ticks,
		"stats":    rm.engine.FinalStats(),
	})
}
