package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

// InitLogger initialises the structured logger with proper configuration.
func InitLogger(logLevel string, isDevelopment bool) *logrus.Logger {
	log := logrus.New()

	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
		if logLevel == "" {
			if isDevelopment {
				logLevel = "debug"
			} else {
				logLevel = "info"
			}
		}
	}

	if level, err := logrus.ParseLevel(strings.ToLower(logLevel)); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", logLevel).Warn("invalid LOG_LEVEL, using info")
	}

	if !isDevelopment || strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
			ForceColors:     true,
		})
	}

	log.SetOutput(os.Stdout)
	Logger = log
	return log
}

// GetLogger returns the global logger, initialising a default one if
// InitLogger hasn't run yet (useful for unit tests and the CLI entrypoint).
func GetLogger() *logrus.Logger {
	if Logger == nil {
		return InitLogger("info", false)
	}
	return Logger
}

// WithMatchContext creates a logger scoped to one simulated match.
func WithMatchContext(matchID, homeTeam, awayTeam string) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"match_id":  matchID,
		"home_team": homeTeam,
		"away_team": awayTeam,
	})
}

// WithRequestContext creates a logger scoped to one inbound HTTP request.
func WithRequestContext(requestID, matchID string) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"request_id": requestID,
		"match_id":   matchID,
	})
}

// WithStreamContext creates a logger scoped to one websocket connection
// streaming a match's ticks.
func WithStreamContext(matchID, clientID string) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"match_id":  matchID,
		"client_id": clientID,
	})
}
