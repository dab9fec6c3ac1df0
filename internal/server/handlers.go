package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	orchestration "github.com/polliant/megagent-core/core"
)

// sessionHeader carries the conversation session key. The server issues a
// fresh ID when the client sends none and echoes it back either way, so a
// client that replays the header keeps its history.
const sessionHeader = "X-Session-ID"

type handlers struct {
	gateway Gateway
	logger  *slog.Logger
}

func (h *handlers) sessionID(w http.ResponseWriter, r *http.Request) string {
	id := strings.TrimSpace(r.Header.Get(sessionHeader))
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(sessionHeader, id)
	return id
}

func (h *handlers) apiInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Mega Agent API - Powered by Pollinations.AI",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"/chat":   "POST - Send a message to the agent (streaming)",
			"/models": "GET - Get available models",
			"/clear":  "POST - Clear conversation history",
			"/ws":     "GET - Websocket chat",
		},
	})
}

type modelsResponse struct {
	TextModels      []string `json:"text_models"`
	SearchModels    []string `json:"search_models"`
	ReasoningModels []string `json:"reasoning_models"`
	ImageModels     []string `json:"image_models"`
	AudioVoices     []string `json:"audio_voices"`
}

func (h *handlers) models(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, modelsResponse{
		TextModels:      orchestration.TextModels,
		SearchModels:    orchestration.SearchModels,
		ReasoningModels: orchestration.ReasoningModels,
		ImageModels:     orchestration.ImageModels,
		AudioVoices:     orchestration.AudioVoices,
	})
}

func (h *handlers) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorPayload{Type: "error", Message: "invalid request body"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorPayload{Type: "error", Message: "message is required"})
		return
	}

	sessionID := h.sessionID(w, r)

	writer, err := newSSEWriter(w)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Once the stream is open, failures can only surface in-band. A panic
	// mid-stream becomes a final error event instead of a broken connection.
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.ErrorContext(r.Context(), "panic during chat stream", "panic", rec)
			_ = writer.writeEvent(errorPayload{Type: "error", Message: fmt.Sprint(rec)})
		}
	}()

	for event := range h.gateway.Process(r.Context(), sessionID, req.Message, processOptions(req)...) {
		payload, ok := encodeEvent(event)
		if !ok {
			continue
		}
		if err := writer.writeEvent(payload); err != nil {
			h.logger.DebugContext(r.Context(), "chat stream interrupted", "error", err)
			return
		}
	}
}

func (h *handlers) clear(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessionID(w, r)
	h.gateway.ClearHistory(sessionID)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Conversation history cleared"})
}

func processOptions(req chatRequest) []orchestration.ProcessOption {
	if len(req.Models) == 0 {
		return nil
	}
	return []orchestration.ProcessOption{
		orchestration.WithModelSelection(req.modelSelection()),
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Debug("write response", "error", err)
	}
}
