// Package transport streams a running match's ticks to websocket clients
// and paces how fast they arrive.
package transport

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/matchsim/internal/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Client is one websocket connection subscribed to a single match.
type Client struct {
	MatchID string
	Conn    *websocket.Conn
	Send    chan []byte
	Hub     *Hub
}

// Hub fans out a match's ticks to every client currently watching that
// match, mirroring the register/unregister/broadcast pattern used
// elsewhere in the backend's websocket services.
type Hub struct {
	clients      map[*Client]bool
	matchClients map[string][]*Client
	broadcast    chan matchMessage
	register     chan *Client
	unregister   chan *Client
	logger       *logrus.Logger
	mutex        sync.RWMutex
}

type matchMessage struct {
	MatchID string
	Payload []byte
}

// NewHub creates an empty hub. Call Run in its own goroutine before
// accepting connections.
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients:      make(map[*Client]bool),
		matchClients: make(map[string][]*Client),
		broadcast:    make(chan matchMessage, 256),
		register:     make(chan *Client),
		unregister:   make(chan *Client),
		logger:       logger,
	}
}

// Run processes registrations, disconnects, and broadcasts until the
// process exits; it owns all hub state so every access is funnelled
// through this single goroutine's channel selects plus the mutex used by
// the read-only accessor methods.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			h.matchClients[client.MatchID] = append(h.matchClients[client.MatchID], client)
			h.mutex.Unlock()
			h.logger.WithFields(logrus.Fields{
				"match_id":      client.MatchID,
				"total_clients": len(h.clients),
			}).Info("stream client connected")

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				peers := h.matchClients[client.MatchID]
				for i, c := range peers {
					if c == client {
						h.matchClients[client.MatchID] = append(peers[:i], peers[i+1:]...)
						break
					}
				}
				if len(h.matchClients[client.MatchID]) == 0 {
					delete(h.matchClients, client.MatchID)
				}
			}
			h.mutex.Unlock()
			h.logger.WithField("match_id", client.MatchID).Info("stream client disconnected")

		case msg := <-h.broadcast:
			h.mutex.RLock()
			for _, client := range h.matchClients[msg.MatchID] {
				select {
				case client.Send <- msg.Payload:
				default:
					close(client.Send)
					delete(h.clients, client)
				}
			}
			h.mutex.RUnlock()
		}
	}
}

// HandleStream upgrades an HTTP request to a websocket connection
// subscribed to the match named by the "match_id" path parameter.
func (h *Hub) HandleStream(c *gin.Context) {
	matchID := c.Param("match_id")
	if matchID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "match_id is required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Error("failed to upgrade stream connection")
		return
	}

	client := &Client{MatchID: matchID, Conn: conn, Send: make(chan []byte, 256), Hub: h}
	h.register <- client

	go client.writePump()
	go client.readPump()
}

// BroadcastTick serialises a Tick and fans it out to every client
// watching matchID.
func (h *Hub) BroadcastTick(matchID string, tick models.Tick) {
	data, err := json.Marshal(tick)
	if err != nil {
		h.logger.WithError(err).Error("failed to marshal tick")
		return
	}
	h.broadcast <- matchMessage{MatchID: matchID, Payload: data}
}

// ConnectionCount returns the number of active connections across every
// match, used by the server's health/status handler.
func (h *Hub) ConnectionCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.WithError(err).Error("stream read error")
			}
			break
		}
	}
}

func (c *Client) writePump() {
	defer c.Conn.Close()
	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			c.Hub.logger.WithError(err).Error("failed to write stream message")
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}
