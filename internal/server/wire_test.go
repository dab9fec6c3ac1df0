package server

import (
	"encoding/json"
	"testing"

	orchestration "github.com/polliant/megagent-core/core"
	"github.com/polliant/megagent-core/core/events"
)

func TestEncodeEventWireVocabulary(t *testing.T) {
	testCases := []struct {
		name     string
		event    events.Event
		expected map[string]any
	}{
		{
			name:  "tool selection",
			event: events.NewToolSelected("💬 Geração de Texto", "text_generation"),
			expected: map[string]any{
				"type":      "tool_selection",
				"tool":      "💬 Geração de Texto",
				"tool_type": "text_generation",
			},
		},
		{
			name:     "status",
			event:    events.NewStatus("Gerando resposta..."),
			expected: map[string]any{"type": "status", "message": "Gerando resposta..."},
		},
		{
			name:     "text chunk",
			event:    events.NewResponseSegment("olá"),
			expected: map[string]any{"type": "text_chunk", "content": "olá"},
		},
		{
			name:  "image media",
			event: events.NewMediaGenerated("https://example.com/img", "a cat", string(orchestration.CapabilityImageGeneration)),
			expected: map[string]any{
				"type":   "image",
				"url":    "https://example.com/img",
				"prompt": "a cat",
			},
		},
		{
			name:  "audio media",
			event: events.NewMediaGenerated("https://example.com/audio", "say hi", string(orchestration.CapabilityTextToSpeech)),
			expected: map[string]any{
				"type": "audio",
				"url":  "https://example.com/audio",
				"text": "say hi",
			},
		},
		{
			name:     "done",
			event:    events.NewTurnCompleted(),
			expected: map[string]any{"type": "done"},
		},
		{
			name:     "error",
			event:    events.NewTurnFailed("boom"),
			expected: map[string]any{"type": "error", "message": "boom"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			payload, ok := encodeEvent(testCase.event)
			if !ok {
				t.Fatalf("expected %T to encode", testCase.event)
			}

			encoded, err := json.Marshal(payload)
			if err != nil {
				t.Fatalf("marshal payload: %v", err)
			}
			var got map[string]any
			if err := json.Unmarshal(encoded, &got); err != nil {
				t.Fatalf("unmarshal payload: %v", err)
			}

			if len(got) != len(testCase.expected) {
				t.Fatalf("expected fields %v, got %v", testCase.expected, got)
			}
			for key, want := range testCase.expected {
				if got[key] != want {
					t.Fatalf("field %q: expected %v, got %v", key, want, got[key])
				}
			}
		})
	}
}

func TestChatRequestModelSelection(t *testing.T) {
	req := chatRequest{
		Message: "hi",
		Models:  map[string]string{"text": "mistral", "audio": "echo"},
	}

	selection := req.modelSelection()
	if selection.Text != "mistral" {
		t.Fatalf("expected text model mistral, got %q", selection.Text)
	}
	if selection.Voice != "echo" {
		t.Fatalf("expected voice echo, got %q", selection.Voice)
	}
	if selection.Search != "" || selection.Reasoning != "" || selection.Image != "" {
		t.Fatalf("expected unset capabilities to stay empty, got %+v", selection)
	}
}
