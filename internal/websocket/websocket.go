package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/thryft-app/thryft/internal/auth"
	"github.com/thryft-app/thryft/internal/game"
	"github.com/thryft-app/thryft/internal/logger"
	"github.com/thryft-app/thryft/internal/models"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	sendBuffer = 256
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for now
	},
}

// StateSource supplies the snapshot a newly connected client starts from
type StateSource interface {
	State(ctx context.Context, userID string) game.State
}

// envelope addresses a message to every connection of one user
type envelope struct {
	userID string
	msg    models.WSMessage
}

// Hub maintains the active clients, grouped by user, and routes each
// user's messages to their connections only.
type Hub struct {
	log        logger.Logger
	clients    map[string]map[*Client]bool
	outbound   chan envelope
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	state      StateSource
	done       chan struct{}
}

// Client is a middleman between the websocket connection and the hub
type Client struct {
	hub    *Hub
	userID string
	conn   *websocket.Conn
	send   chan models.WSMessage
}

// New creates a new Hub. state may be nil, in which case new clients get
// no initial snapshot.
func New(log logger.Logger, state StateSource) *Hub {
	return &Hub{
		log:        log,
		clients:    make(map[string]map[*Client]bool),
		outbound:   make(chan envelope, sendBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		state:      state,
		done:       make(chan struct{}),
	}
}

// Run handles client registration and message routing until ctx is done
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			h.log.Debug("WebSocket hub stopped")
			return

		case client := <-h.register:
			h.mutex.Lock()
			if h.clients[client.userID] == nil {
				h.clients[client.userID] = make(map[*Client]bool)
			}
			h.clients[client.userID][client] = true
			h.mutex.Unlock()
			h.log.Debug("Client connected", "user_id", client.userID, "total_clients", h.ClientCount())

			if h.state != nil {
				h.deliver(client, models.WSMessage{
					Type:    string(game.EventState),
					Payload: game.Event{Type: game.EventState, State: h.state.State(ctx, client.userID)},
				})
			}

		case client := <-h.unregister:
			h.remove(client)
			h.log.Debug("Client disconnected", "user_id", client.userID, "total_clients", h.ClientCount())

		case env := <-h.outbound:
			h.mutex.RLock()
			var slow []*Client
			for client := range h.clients[env.userID] {
				if !h.deliver(client, env.msg) {
					slow = append(slow, client)
				}
			}
			h.mutex.RUnlock()

			for _, c := range slow {
				h.log.Warn("Dropping slow client", "user_id", c.userID)
				h.remove(c)
			}
		}
	}
}

// SendToUser implements services.Broadcaster. It never blocks: session
// timers call it, and a full queue drops the message.
func (h *Hub) SendToUser(userID string, msg models.WSMessage) {
	select {
	case h.outbound <- envelope{userID: userID, msg: msg}:
	default:
		h.log.Warn("WebSocket queue full, dropping message", "user_id", userID, "type", msg.Type)
	}
}

// ClientCount returns the number of open connections across all users
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	n := 0
	for _, set := range h.clients {
		n += len(set)
	}
	return n
}

// deliver queues msg for one client without blocking
func (h *Hub) deliver(c *Client, msg models.WSMessage) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (h *Hub) remove(c *Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	set, ok := h.clients[c.userID]
	if !ok || !set[c] {
		return
	}
	delete(set, c)
	if len(set) == 0 {
		delete(h.clients, c.userID)
	}
	close(c.send)
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for userID, set := range h.clients {
		for c := range set {
			close(c.send)
		}
		delete(h.clients, userID)
	}
}

// readPump pumps messages from the websocket connection to the hub
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Debug("WebSocket error", "error", err)
			}
			break
		}

		// The stream is server-to-client; inbound frames are only logged.
		var msg models.WSMessage
		if err := json.Unmarshal(message, &msg); err == nil {
			c.hub.log.Debug("Received message", "user_id", c.userID, "type", msg.Type)
		}
	}
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ServeWs upgrades an authenticated request to the user's event stream
func (h *Hub) ServeWs(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("WebSocket upgrade error", "error", err)
		return
	}

	client := &Client{
		hub:    h,
		userID: userID,
		conn:   conn,
		send:   make(chan models.WSMessage, sendBuffer),
	}
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	// Allow collection of memory referenced by the caller by doing all work in new goroutines
	go client.writePump()
	go client.readPump()
}
