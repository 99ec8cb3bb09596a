package messaging

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	jwtsvc "theracare/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSClientMessage is what a connected client sends over the socket.
type WSClientMessage struct {
	Type       string `json:"type"`
	ReceiverID int64  `json:"receiver_id,omitempty"`
	BookingID  *int64 `json:"booking_id,omitempty"`
	Content    string `json:"content,omitempty"`
	MessageID  int64  `json:"message_id,omitempty"`
}

type WSHandler struct {
	hub     *Hub
	jwt     *jwtsvc.Service
	service *Service
}

func NewWSHandler(hub *Hub, jwt *jwtsvc.Service, service *Service) *WSHandler {
	return &WSHandler{hub: hub, jwt: jwt, service: service}
}

// HandleWebSocket upgrades GET /ws?token=JWT. The token travels as a
// query parameter because browsers cannot set headers on a websocket
// handshake.
func (h *WSHandler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is required. Use ?token=YOUR_JWT_TOKEN"})
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	h.hub.Register(userID, conn)
	log.Printf("user %d connected via websocket", userID)

	defer func() {
		h.hub.Unregister(userID)
		log.Printf("user %d disconnected from websocket", userID)
	}()

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	})

	go h.pingLoop(conn)

	h.readLoop(conn, userID)
}

func (h *WSHandler) pingLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			return
		}
	}
}

func (h *WSHandler) readLoop(conn *websocket.Conn, userID int64) {
	for {
		_, rawMsg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure) {
				log.Printf("websocket error for user %d: %v", userID, err)
			}
			return
		}

		var msg WSClientMessage
		if err := json.Unmarshal(rawMsg, &msg); err != nil {
			h.sendError(conn, "INVALID_JSON", "Failed to parse message")
			continue
		}

		switch msg.Type {
		case "message":
			h.handleMessage(conn, userID, msg)
		case "read":
			h.handleRead(userID, msg)
		case "ping":
			_ = conn.WriteJSON(WSEvent{Type: "pong"})
		default:
			h.sendError(conn, "UNKNOWN_TYPE", "Unknown message type: "+msg.Type)
		}
	}
}

func (h *WSHandler) handleMessage(conn *websocket.Conn, senderID int64, msg WSClientMessage) {
	ctx := context.Background()

	if msg.ReceiverID <= 0 {
		h.sendError(conn, "INVALID_RECEIVER", "receiver_id is required")
		return
	}
	if msg.Content == "" {
		h.sendError(conn, "EMPTY_CONTENT", "content is required")
		return
	}

	// The service broadcasts to both participants after persisting.
	if _, err := h.service.SendMessage(ctx, senderID, SendMessageRequest{
		ReceiverID: msg.ReceiverID,
		BookingID:  msg.BookingID,
		Content:    msg.Content,
	}); err != nil {
		h.sendError(conn, "SEND_FAILED", err.Error())
	}
}

func (h *WSHandler) handleRead(userID int64, msg WSClientMessage) {
	if msg.MessageID <= 0 {
		return
	}
	_ = h.service.MarkRead(context.Background(), userID, msg.MessageID)
}

func (h *WSHandler) sendError(conn *websocket.Conn, code, detail string) {
	_ = conn.WriteJSON(NewErrorEvent(code, detail))
}
