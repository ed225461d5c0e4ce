// Package persistence stores completed match results. The engine itself
// performs no I/O (§6); this package is a collaborator the API handlers
// call after a match finishes.
package persistence

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/stitts-dev/matchsim/internal/models"
)

// DB wraps *gorm.DB the same way the rest of the backend's services do,
// so callers get the connection-pool and logging defaults for free.
type DB struct {
	*gorm.DB
}

// NewConnection opens a pooled Postgres connection.
func NewConnection(databaseURL string, isDevelopment bool) (*DB, error) {
	logLevel := logger.Error
	if isDevelopment {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.Info("database connection established")
	return &DB{db}, nil
}

// Close releases the underlying connection pool.
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates/updates the match_results table.
func (db *DB) Migrate() error {
	return db.AutoMigrate(&MatchResult{})
}

// MatchResult is the persisted summary of one completed simulation: the
// final score and stats, plus the seed so the run can be replayed
// bit-for-bit within this implementation (§5 "Determinism").
type MatchResult struct {
	ID        string `gorm:"primaryKey"`
	HomeID    string
	AwayID    string
	HomeScore int
	AwayScore int
	Seed      uint64
	StatsJSON string `gorm:"type:jsonb"`
	CreatedAt time.Time
}

// Store persists match results via gorm.
type Store struct {
	db *DB
}

// NewStore wraps a DB for match-result persistence.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// SaveResult records a finished match's score, stats, and seed.
func (s *Store) SaveResult(matchID models.MatchID, homeID, awayID string, score models.Score, stats models.PerTeam[models.TeamStats], seed uint64) error {
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	result := MatchResult{
		ID:        matchID.String(),
		HomeID:    homeID,
		AwayID:    awayID,
		HomeScore: score.Home,
		AwayScore: score.Away,
		Seed:      seed,
		StatsJSON: string(statsJSON),
		CreatedAt: time.Now().UTC(),
	}
	return s.db.Create(&result).Error
}

// GetResult loads a previously persisted match result.
func (s *Store) GetResult(matchID models.MatchID) (*MatchResult, error) {
	var result MatchResult
	if err := s.db.First(&result, "id = ?", matchID.String()).Error; err != nil {
		return nil, fmt.Errorf("get match result: %w", err)
	}
	return &result, nil
}
