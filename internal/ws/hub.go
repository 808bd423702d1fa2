package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
	"github.com/wrdo/hunt/internal/models"
)

const (
	// writeWait is the maximum time to wait for a write to complete.
	writeWait = 10 * time.Second

	// pongWait is the maximum time to wait for a pong from the client.
	pongWait = 60 * time.Second

	// pingPeriod sends pings at this interval. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// maxMessageSize is the maximum size of an incoming message.
	maxMessageSize = 1024

	// sendBufferSize is the channel buffer for outgoing messages per client.
	sendBufferSize = 64
)

// Topics a client can be attached to. Quotes clients carry a symbol filter;
// notifications clients receive every event on the topic.
const (
	TopicQuotes        = "quotes"
	TopicNotifications = "notifications"
)

// upgrader configures the WebSocket upgrade parameters.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The dashboard is served from a different origin in development.
		return true
	},
}

// client represents a single WebSocket connection.
type client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	topic   string
	symbols map[string]bool // quotes topic only; nil means all symbols
}

// event is a broadcast payload with enough routing context for the hub to
// decide which clients receive it.
type event struct {
	topic  string
	symbol string // quotes topic only
	data   []byte
}

// Hub manages connected WebSocket clients and fans broadcast events out to
// the clients attached to the matching topic.
type Hub struct {
	clients    map[*client]bool
	broadcast  chan event
	register   chan *client
	unregister chan *client
	done       chan struct{}
	mu         sync.RWMutex
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan event, 256),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
	}
}

// Run starts the hub's event loop and blocks until the context is cancelled.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return ctx.Err()

		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()
			log.WithFields(log.Fields{
				"topic":   c.topic,
				"clients": h.clientCount(),
			}).Info("WebSocket client connected")

		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			log.WithFields(log.Fields{
				"topic":   c.topic,
				"clients": h.clientCount(),
			}).Info("WebSocket client disconnected")

		case ev := <-h.broadcast:
			h.mu.RLock()
			for c := range h.clients {
				if !c.wants(ev) {
					continue
				}
				select {
				case c.send <- ev.data:
				default:
					// Send buffer full; drop rather than stall the hub.
					log.Warn("Dropping WebSocket message for slow client")
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Publish broadcasts an envelope to every client on a topic.
func (h *Hub) Publish(topic, msgType string, payload any) {
	h.publish(event{topic: topic}, msgType, payload)
}

// PublishQuote broadcasts a quote to the quotes-topic clients watching the
// symbol.
func (h *Hub) PublishQuote(q models.Quote) {
	h.publish(event{topic: TopicQuotes, symbol: q.Symbol}, "quote", q)
}

func (h *Hub) publish(ev event, msgType string, payload any) {
	data, err := json.Marshal(models.WSMessage{Type: msgType, Data: payload})
	if err != nil {
		log.Errorf("Failed to marshal %s broadcast: %v", msgType, err)
		return
	}
	ev.data = data

	select {
	case h.broadcast <- ev:
	default:
		log.Warn("WebSocket broadcast queue full, dropping event")
	}
}

// WatchedSymbols returns the union of symbols the quotes clients are
// currently filtering on. A client with no filter watches everything, which
// is reported as an empty map with ok false.
func (h *Hub) WatchedSymbols() (map[string]bool, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	union := make(map[string]bool)
	for c := range h.clients {
		if c.topic != TopicQuotes {
			continue
		}
		if c.symbols == nil {
			return nil, false
		}
		for sym := range c.symbols {
			union[sym] = true
		}
	}
	return union, true
}

// HandleQuotes handles GET /api/ws/quotes. The optional symbols query
// parameter limits which tickers this connection receives.
func (h *Hub) HandleQuotes(c *gin.Context) {
	var symbols map[string]bool
	if raw := c.Query("symbols"); raw != "" {
		symbols = make(map[string]bool)
		for _, s := range strings.Split(raw, ",") {
			if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
				symbols[s] = true
			}
		}
	}
	h.serve(c, TopicQuotes, symbols)
}

// HandleNotifications handles GET /api/ws/notifications.
func (h *Hub) HandleNotifications(c *gin.Context) {
	h.serve(c, TopicNotifications, nil)
}

func (h *Hub) serve(c *gin.Context, topic string, symbols map[string]bool) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Errorf("WebSocket upgrade failed: %v", err)
		return
	}

	cl := &client{
		hub:     h,
		conn:    conn,
		send:    make(chan []byte, sendBufferSize),
		topic:   topic,
		symbols: symbols,
	}
	if !h.addClient(cl) {
		conn.Close()
		return
	}

	go cl.writePump()
	go cl.readPump()
}

// addClient hands a new connection to the run loop. Reports false when the
// hub has already shut down.
func (h *Hub) addClient(c *client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// dropClient asks the run loop to forget a client. A no-op once the hub has
// shut down, so connection goroutines never block on exit.
func (h *Hub) dropClient(c *client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// wants reports whether an event should be delivered to this client.
func (c *client) wants(ev event) bool {
	if c.topic != ev.topic {
		return false
	}
	if ev.symbol == "" || c.symbols == nil {
		return true
	}
	return c.symbols[ev.symbol]
}

// readPump drains the connection so pongs and close frames are processed.
// Clients do not send application messages on these endpoints.
func (c *client) readPump() {
	defer func() {
		c.hub.dropClient(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warnf("WebSocket closed unexpectedly: %v", err)
			}
			return
		}
	}
}

// writePump pumps messages from the hub to the connection, interleaving
// keepalive pings.
func (c *client) writePump() {
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
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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
