// Package orchestration routes a user message to one of the gateway's
// generative capabilities and streams the interaction's progress as an
// ordered event sequence.
package orchestration

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"sync"

	"github.com/polliant/megagent-core/core/events"
	"github.com/polliant/megagent-core/core/imagegen"
	imagepollinations "github.com/polliant/megagent-core/core/imagegen/pollinations"
	"github.com/polliant/megagent-core/core/llms"
	llmpollinations "github.com/polliant/megagent-core/core/llms/pollinations"
	"github.com/polliant/megagent-core/core/texttospeech"
	speechpollinations "github.com/polliant/megagent-core/core/texttospeech/pollinations"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	// defaultMaxHistoryTurns keeps the last 5 exchanges per session.
	defaultMaxHistoryTurns = 10
	// defaultPromptWindowTurns sends the last 3 exchanges with each prompt.
	defaultPromptWindowTurns = 6

	defaultTemperature = 0.7

	textSystemPrompt      = "Você é um assistente útil e amigável que responde em português."
	reasoningSystemPrompt = "Você é um assistente que pensa profundamente sobre problemas complexos."
)

// Orchestrator classifies incoming messages, dispatches them to the matching
// capability adapter and maintains a bounded conversation history per
// session. Safe for concurrent use: each session's history is keyed by the
// caller-supplied session ID, never shared across sessions.
type Orchestrator struct {
	llm          StreamingLLM
	imageClient  ImageURLBuilder
	speechClient SpeechURLBuilder

	defaultModels     ModelSelection
	maxHistoryTurns   int
	promptWindowTurns int

	mu       sync.Mutex
	sessions map[string]*history
}

func NewOrchestrator(opts ...OrchestratorOption) *Orchestrator {
	o := &Orchestrator{
		llm:          llmpollinations.NewClient(),
		imageClient:  imagepollinations.NewClient(),
		speechClient: speechpollinations.NewClient(),
		defaultModels: ModelSelection{
			Text:      DefaultTextModel,
			Search:    DefaultSearchModel,
			Reasoning: DefaultReasoningModel,
			Image:     DefaultImageModel,
			Voice:     DefaultAudioVoice,
		},
		maxHistoryTurns:   defaultMaxHistoryTurns,
		promptWindowTurns: defaultPromptWindowTurns,
		sessions:          map[string]*history{},
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Process routes the message through classification, capability dispatch and
// history bookkeeping, yielding the turn's events in order as they are
// produced. The sequence is lazily pulled: the caller controls the pace and
// no background work happens between pulls.
//
// Event order: ToolSelected, Status, then either ResponseSegment* or one
// MediaGenerated, then TurnCompleted. Any failure replaces the remainder of
// the sequence with a single TurnFailed.
func (o *Orchestrator) Process(ctx context.Context, sessionID, message string, opts ...ProcessOption) iter.Seq[events.Event] {
	options := ProcessOptions{models: o.defaultModels}
	for _, opt := range opts {
		opt(&options)
	}

	return func(yield func(events.Event) bool) {
		ctx, span := tracer.Start(ctx, "process turn")
		defer span.End()

		capability := Classify(message)
		span.SetAttributes(
			attribute.String("turn.session_id", sessionID),
			attribute.String("turn.capability", string(capability)),
		)

		fail := func(err error) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			yield(events.NewTurnFailed(err.Error()))
		}

		if !yield(events.NewToolSelected(capability.Label(), string(capability))) {
			return
		}
		if !yield(events.NewStatus(capability.statusLine())) {
			return
		}

		// consume drives a completion stream, forwarding one segment event
		// per chunk and accumulating the full response for the history.
		// A false keepGoing means the consumer stopped pulling.
		consume := func(stream llms.Stream) (response string, keepGoing bool, err error) {
			var full strings.Builder
			for chunk, err := range stream.Chunks(ctx) {
				if err != nil {
					return full.String(), true, err
				}
				content, ok := chunk.(llms.StreamContentChunk)
				if !ok {
					continue
				}
				full.WriteString(content.Content())
				if !yield(events.NewResponseSegment(content.Content())) {
					return full.String(), false, nil
				}
			}
			return full.String(), true, nil
		}

		var assistantResponse string
		switch capability {
		case CapabilityImageGeneration:
			span.SetAttributes(attribute.String("request.model", options.models.Image))
			imageOptions := append([]imagegen.Option{imagegen.WithModel(options.models.Image)}, options.imageOptions...)
			url := o.imageClient.ImageURL(message, imageOptions...)
			if !yield(events.NewMediaGenerated(url, message, string(capability))) {
				return
			}
			assistantResponse = "Imagem gerada com sucesso! URL: " + url

		case CapabilityTextToSpeech:
			span.SetAttributes(attribute.String("request.voice", options.models.Voice))
			speechOptions := append([]texttospeech.Option{texttospeech.WithVoice(options.models.Voice)}, options.speechOptions...)
			url := o.speechClient.SpeechURL(message, speechOptions...)
			if !yield(events.NewMediaGenerated(url, message, string(capability))) {
				return
			}
			assistantResponse = "Áudio gerado com sucesso!"

		case CapabilitySearch:
			span.SetAttributes(attribute.String("request.model", options.models.Search))
			// Single-turn on purpose: search prompts carry no conversation
			// history and no system prompt.
			stream := o.llm.PromptWithStream(ctx, options.models.Search, &message)
			response, keepGoing, err := consume(stream)
			if err != nil {
				fail(err)
				return
			}
			if !keepGoing {
				return
			}
			assistantResponse = response

		case CapabilityReasoning:
			span.SetAttributes(attribute.String("request.model", options.models.Reasoning))
			stream := o.llm.PromptWithStream(ctx, options.models.Reasoning, &message,
				llms.WithSystemPrompt(reasoningSystemPrompt),
				llms.WithTurns(o.promptWindow(sessionID)...),
				llms.WithTemperature(defaultTemperature),
			)
			response, keepGoing, err := consume(stream)
			if err != nil {
				fail(err)
				return
			}
			if !keepGoing {
				return
			}
			assistantResponse = response

		case CapabilityTextGeneration:
			span.SetAttributes(attribute.String("request.model", options.models.Text))
			stream := o.llm.PromptWithStream(ctx, options.models.Text, &message,
				llms.WithSystemPrompt(textSystemPrompt),
				llms.WithTurns(o.promptWindow(sessionID)...),
				llms.WithTemperature(defaultTemperature),
			)
			response, keepGoing, err := consume(stream)
			if err != nil {
				fail(err)
				return
			}
			if !keepGoing {
				return
			}
			assistantResponse = response

		default:
			// Classify can only return the capabilities handled above; a new
			// capability wired into the dispatch table without a branch here
			// is a programming error and should fail loudly.
			fail(fmt.Errorf("no handler for capability %q", capability))
			return
		}

		o.recordExchange(sessionID, message, assistantResponse)

		yield(events.NewTurnCompleted())
	}
}

// ClearHistory resets the session's conversation history. It has no effect on
// a turn already in flight.
func (o *Orchestrator) ClearHistory(sessionID string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if h, ok := o.sessions[sessionID]; ok {
		h.clear()
	}
}

// History returns a point-in-time copy of the session's retained turns,
// oldest first.
func (o *Orchestrator) History(sessionID string) []llms.Turn {
	o.mu.Lock()
	defer o.mu.Unlock()

	h, ok := o.sessions[sessionID]
	if !ok {
		return nil
	}
	return h.snapshot()
}

func (o *Orchestrator) promptWindow(sessionID string) []llms.Turn {
	o.mu.Lock()
	defer o.mu.Unlock()

	h, ok := o.sessions[sessionID]
	if !ok {
		return nil
	}
	return h.window(o.promptWindowTurns)
}

func (o *Orchestrator) recordExchange(sessionID, userMessage, assistantResponse string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	h, ok := o.sessions[sessionID]
	if !ok {
		h = newHistory(o.maxHistoryTurns)
		o.sessions[sessionID] = h
	}
	h.append(userMessage, assistantResponse)
}
