package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/matchsim/internal/api"
	"github.com/stitts-dev/matchsim/internal/api/middleware"
	"github.com/stitts-dev/matchsim/internal/broker"
	"github.com/stitts-dev/matchsim/internal/persistence"
	"github.com/stitts-dev/matchsim/internal/pkg/config"
	"github.com/stitts-dev/matchsim/internal/pkg/logger"
	"github.com/stitts-dev/matchsim/internal/transport"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	log := logger.InitLogger("", cfg.IsDevelopment())
	log.WithFields(logrus.Fields{
		"environment": cfg.Env,
		"port":        cfg.Port,
	}).Info("starting matchsim server")

	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	var store *persistence.Store
	db, err := persistence.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		log.WithError(err).Warn("database unavailable, match results will not be persisted")
	} else {
		defer db.Close()
		if err := db.Migrate(); err != nil {
			log.WithError(err).Warn("failed to migrate database schema")
		} else {
			store = persistence.NewStore(db)
		}
	}

	var publisher *broker.TickPublisher
	if redisClient, err := broker.NewRedisClient(cfg.RedisURL); err != nil {
		log.WithError(err).Warn("redis unavailable, tick fan-out disabled")
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		pingErr := redisClient.Ping(ctx).Err()
		cancel()
		if pingErr != nil {
			log.WithError(pingErr).Warn("redis unreachable, tick fan-out disabled")
		} else {
			defer redisClient.Close()
			publisher = broker.NewTickPublisher(redisClient, cfg.CircuitBreakerTrips, cfg.RedisCircuitTimeout, log)
		}
	}

	hub := transport.NewHub(log)
	go hub.Run()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.CorsOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "connections": hub.ConnectionCount()})
	})

	apiV1 := router.Group("/api/v1")
	api.SetupRoutes(apiV1, store, hub, publisher, log)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
}
