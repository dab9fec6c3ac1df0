package server

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The HTTP API is open to any origin; the websocket endpoint matches.
	CheckOrigin: func(*http.Request) bool { return true },
}

// websocket serves one chat turn per connection: the client sends a chat
// request as JSON, receives one JSON message per event and the server closes
// after the terminal event.
func (h *handlers) websocket(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(r.Header.Get(sessionHeader))
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	conn, err := upgrader.Upgrade(w, r, http.Header{sessionHeader: []string{sessionID}})
	if err != nil {
		// Upgrade has already written the HTTP error response.
		h.logger.DebugContext(r.Context(), "websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	var req chatRequest
	if err := conn.ReadJSON(&req); err != nil {
		h.logger.DebugContext(r.Context(), "websocket read failed", "error", err)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		_ = conn.WriteJSON(errorPayload{Type: "error", Message: "message is required"})
		return
	}

	for event := range h.gateway.Process(r.Context(), sessionID, req.Message, processOptions(req)...) {
		payload, ok := encodeEvent(event)
		if !ok {
			continue
		}
		if err := conn.WriteJSON(payload); err != nil {
			h.logger.DebugContext(r.Context(), "websocket write failed", "error", err)
			return
		}
	}

	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
