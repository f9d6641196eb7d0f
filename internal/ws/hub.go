package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/rojahomes/rentmarket/internal/domain"
	"github.com/rojahomes/rentmarket/internal/dto"
	pkgauth "github.com/rojahomes/rentmarket/pkg/auth"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type client struct {
	userID int
	conn   *websocket.Conn
	send   chan dto.MessageResponseDTO
}

// Sender persists an incoming chat frame. It is the chat service, wired
// in after construction because the service itself pushes through the
// hub.
type Sender interface {
	Send(ctx context.Context, senderID, receiverID int, content string) (*domain.Message, error)
}

// Hub tracks live connections per user and fans delivered chat messages
// out to them. A user may hold several connections at once.
type Hub struct {
	mu      sync.RWMutex
	clients map[int]map[*client]struct{}
	sender  Sender
}

func NewHub() *Hub {
	return &Hub{clients: make(map[int]map[*client]struct{})}
}

func (h *Hub) SetSender(sender Sender) {
	h.sender = sender
}

// Push implements the chat service's notifier. It never blocks: slow
// consumers are disconnected instead.
func (h *Hub) Push(userID int, message *domain.Message) {
	payload := dto.MessageResponseDTO{
		ID:         message.ID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Content:    message.Content,
		IsRead:     message.IsRead,
		SentAt:     message.SentAt.Format(time.RFC3339),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		select {
		case c.send <- payload:
		default:
			go h.unregister(c)
		}
	}
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.userID] == nil {
		h.clients[c.userID] = make(map[*client]struct{})
	}
	h.clients[c.userID][c] = struct{}{}
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.clients[c.userID]; ok {
		if _, open := conns[c]; open {
			delete(conns, c)
			close(c.send)
			if len(conns) == 0 {
				delete(h.clients, c.userID)
			}
		}
	}
	c.conn.Close()
}

// ServeHTTP upgrades the connection. Browsers can't set headers on a
// websocket handshake, so the token rides in the query string.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	jwtService := &pkgauth.JWTService{}
	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{
		userID: claims.UserID,
		conn:   conn,
		send:   make(chan dto.MessageResponseDTO, sendBuffer),
	}
	h.register(c)

	go h.writePump(c)
	go h.readPump(c)
}

// readPump persists incoming chat frames through the chat service, which
// pushes the stored message to the receiver's live connections. The
// sender's own connections get an echo so every open tab stays in sync.
// Malformed frames are dropped, the connection stays up.
func (h *Hub) readPump(c *client) {
	defer h.unregister(c)

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		if h.sender == nil {
			continue
		}

		var frame dto.SendMessageRequestDTO
		if err := json.Unmarshal(data, &frame); err != nil || frame.ReceiverID == 0 {
			zap.L().Debug("dropping malformed chat frame", zap.Int("user_id", c.userID))
			continue
		}

		message, err := h.sender.Send(context.Background(), c.userID, frame.ReceiverID, frame.Content)
		if err != nil {
			zap.L().Warn("can't deliver chat frame", zap.Int("user_id", c.userID), zap.Error(err))
			continue
		}
		h.Push(c.userID, message)
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(payload); err != nil {
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
