package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/matchsim/internal/api/handlers"
	"github.com/stitts-dev/matchsim/internal/broker"
	"github.com/stitts-dev/matchsim/internal/persistence"
	"github.com/stitts-dev/matchsim/internal/transport"
)

// SetupRoutes configures every HTTP and websocket route on the given
// router group. publisher may be nil if Redis wasn't configured.
func SetupRoutes(group *gin.RouterGroup, store *persistence.Store, hub *transport.Hub, publisher *broker.TickPublisher, log *logrus.Logger) *handlers.MatchHandler {
	matchHandler := handlers.NewMatchHandler(store, log)
	streamHandler := handlers.NewStreamHandler(matchHandler, hub, publisher)

	group.POST("/matches", matchHandler.StartMatch)
	group.GET("/matches/:match_id", matchHandler.GetMatch)
	group.GET("/matches/:match_id/stream", streamHandler.HandleStream)

	return matchHandler
}
