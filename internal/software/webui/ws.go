package webui

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"ride-management/internal/domain/user"
	"ride-management/internal/general/jwt"
	"ride-management/internal/general/logger"
	"ride-management/internal/ports"
)

const wsWriteTimeout = 5 * time.Second

// Hub fans ride status updates out to connected browsers. Admins see every
// update; riders and drivers only see updates for their own rides.
type Hub struct {
	log *logger.Logger

	mu      sync.Mutex
	clients map[*websocket.Conn]wsViewer
}

type wsViewer struct {
	userID string
	role   user.Role
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		log:     log,
		clients: make(map[*websocket.Conn]wsViewer),
	}
}

func (h *Hub) add(conn *websocket.Conn, v wsViewer) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = v
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}

// Broadcast writes the status message to every viewer allowed to see it.
// Connections that fail to write are dropped.
func (h *Hub) Broadcast(ctx context.Context, msg ports.RideStatusMessage) {
	payload, err := json.Marshal(msg)
	if err != nil {
		h.log.Error(ctx, "ws_broadcast_encode_failed", "Failed to encode status update", err, nil)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	var dead []*websocket.Conn
	for conn, v := range h.clients {
		if !canSee(v, msg) {
			continue
		}
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			dead = append(dead, conn)
		}
	}

	for _, conn := range dead {
		_ = conn.Close()
		delete(h.clients, conn)
	}

	h.log.Debug(ctx, "ws_broadcast", "Broadcast ride status update", map[string]any{
		"ride_id":    msg.RideID,
		"new_status": msg.NewStatus,
	})
}

func canSee(v wsViewer, msg ports.RideStatusMessage) bool {
	if v.role.IsAdmin() {
		return true
	}
	return v.userID == msg.RiderID || v.userID == msg.DriverID
}

// Close drops every connection. Called on shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second),
		)
		_ = conn.Close()
	}
	h.clients = make(map[*websocket.Conn]wsViewer)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// same-origin UI; the token check is the real gate
	CheckOrigin: func(*http.Request) bool { return true },
}

// handleWS handles GET /ws/rides. Auth comes from the auth_token cookie (or
// token query param) via the shared token reader.
func (h *Handler) handleWS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	raw, err := jwt.FromRequest(r)
	if err != nil {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}
	claims, err := h.auth.ParseAndValidate(raw)
	if err != nil {
		http.Error(w, "invalid or expired token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error(ctx, "ws_upgrade_failed", "WebSocket upgrade failed", err, nil)
		return
	}

	viewer := wsViewer{userID: claims.Subject, role: claims.Role}
	h.hub.add(conn, viewer)
	h.logger.Info(ctx, "ws_connected", "WebSocket viewer connected", map[string]any{
		"user_id": claims.Subject,
		"role":    string(claims.Role),
	})

	// reader loop only drains control frames; the feed is one-way
	go func() {
		defer h.hub.remove(conn)
		conn.SetReadLimit(512)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
