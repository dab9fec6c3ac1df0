package server

import (
	orchestration "github.com/polliant/megagent-core/core"
	"github.com/polliant/megagent-core/core/events"
)

// Wire-format event payloads. The vocabulary is part of the public API:
// clients switch on the type field.
type toolSelectionPayload struct {
	Type     string `json:"type"`
	Tool     string `json:"tool"`
	ToolType string `json:"tool_type"`
}

type statusPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type textChunkPayload struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type imagePayload struct {
	Type   string `json:"type"`
	URL    string `json:"url"`
	Prompt string `json:"prompt"`
}

type audioPayload struct {
	Type string `json:"type"`
	URL  string `json:"url"`
	Text string `json:"text"`
}

type donePayload struct {
	Type string `json:"type"`
}

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// encodeEvent maps a core event to its wire payload. Unknown event types are
// dropped rather than leaked to clients in an improvised shape.
func encodeEvent(event events.Event) (any, bool) {
	switch e := event.(type) {
	case events.ToolSelected:
		return toolSelectionPayload{Type: "tool_selection", Tool: e.Label, ToolType: e.Capability}, true
	case events.Status:
		return statusPayload{Type: "status", Message: e.Message}, true
	case events.ResponseSegment:
		return textChunkPayload{Type: "text_chunk", Content: e.Segment}, true
	case events.MediaGenerated:
		if e.Capability == string(orchestration.CapabilityTextToSpeech) {
			return audioPayload{Type: "audio", URL: e.URL, Text: e.Prompt}, true
		}
		return imagePayload{Type: "image", URL: e.URL, Prompt: e.Prompt}, true
	case events.TurnCompleted:
		return donePayload{Type: "done"}, true
	case events.TurnFailed:
		return errorPayload{Type: "error", Message: e.Message}, true
	default:
		return nil, false
	}
}

// chatRequest is the body of POST /chat and the websocket request message.
type chatRequest struct {
	Message string `json:"message"`
	// Models optionally overrides per-capability models for this turn. Keys:
	// text, search, reasoning, image, audio.
	Models map[string]string `json:"models,omitempty"`
}

func (r chatRequest) modelSelection() orchestration.ModelSelection {
	return orchestration.ModelSelection{
		Text:      r.Models["text"],
		Search:    r.Models["search"],
		Reasoning: r.Models["reasoning"],
		Image:     r.Models["image"],
		Voice:     r.Models["audio"],
	}
}
