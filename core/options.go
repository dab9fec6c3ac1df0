package orchestration

import (
	"context"

	"github.com/polliant/megagent-core/core/imagegen"
	"github.com/polliant/megagent-core/core/llms"
	"github.com/polliant/megagent-core/core/texttospeech"
)

type OrchestratorOption func(*Orchestrator)

// StreamingLLM is the completion surface driven for the text, search and
// reasoning capabilities.
type StreamingLLM interface {
	PromptWithStream(ctx context.Context, model string, prompt *string, opts ...llms.StreamingPromptOption) llms.Stream
}

// ImageURLBuilder derives image resource URLs; rendering happens out-of-band
// when the URL is fetched.
type ImageURLBuilder interface {
	ImageURL(prompt string, opts ...imagegen.Option) string
}

// SpeechURLBuilder derives audio resource URLs; synthesis happens out-of-band
// when the URL is fetched.
type SpeechURLBuilder interface {
	SpeechURL(message string, opts ...texttospeech.Option) string
}

func WithStreamingLLM(client StreamingLLM) OrchestratorOption {
	return func(o *Orchestrator) { o.llm = client }
}

func WithImageClient(client ImageURLBuilder) OrchestratorOption {
	return func(o *Orchestrator) { o.imageClient = client }
}

func WithSpeechClient(client SpeechURLBuilder) OrchestratorOption {
	return func(o *Orchestrator) { o.speechClient = client }
}

// WithMaxHistoryTurns bounds how many turns each session retains. The bound
// counts turns, not exchanges: 10 turns keep the last 5 exchanges.
func WithMaxHistoryTurns(turns int) OrchestratorOption {
	return func(o *Orchestrator) {
		if turns > 0 {
			o.maxHistoryTurns = turns
		}
	}
}

// WithPromptWindowTurns bounds how many of the retained turns are sent to the
// provider with each text or reasoning prompt, independent of the retention
// bound.
func WithPromptWindowTurns(turns int) OrchestratorOption {
	return func(o *Orchestrator) {
		if turns > 0 {
			o.promptWindowTurns = turns
		}
	}
}

// WithDefaultModels overrides the built-in per-capability model defaults.
// Empty fields keep the built-in default.
func WithDefaultModels(models ModelSelection) OrchestratorOption {
	return func(o *Orchestrator) {
		o.defaultModels = o.defaultModels.merged(models)
	}
}

// ModelSelection carries per-capability model choices. Empty fields fall back
// to the defaults; names are not validated here, unrecognized ones are passed
// through to the provider.
type ModelSelection struct {
	Text      string
	Search    string
	Reasoning string
	Image     string
	// Voice is the audio capability's voice identifier rather than a model:
	// the audio model itself is fixed.
	Voice string
}

func (m ModelSelection) merged(override ModelSelection) ModelSelection {
	if override.Text != "" {
		m.Text = override.Text
	}
	if override.Search != "" {
		m.Search = override.Search
	}
	if override.Reasoning != "" {
		m.Reasoning = override.Reasoning
	}
	if override.Image != "" {
		m.Image = override.Image
	}
	if override.Voice != "" {
		m.Voice = override.Voice
	}
	return m
}

type ProcessOptions struct {
	models        ModelSelection
	imageOptions  []imagegen.Option
	speechOptions []texttospeech.Option
}

type ProcessOption func(*ProcessOptions)

// WithModelSelection applies per-capability model overrides for one turn.
func WithModelSelection(models ModelSelection) ProcessOption {
	return func(o *ProcessOptions) {
		o.models = o.models.merged(models)
	}
}

// WithImageOptions forwards image parameters (size, seed) to the image
// capability when it is selected for this turn.
func WithImageOptions(opts ...imagegen.Option) ProcessOption {
	return func(o *ProcessOptions) {
		o.imageOptions = append(o.imageOptions, opts...)
	}
}

// WithSpeechOptions forwards speech parameters to the speech capability when
// it is selected for this turn.
func WithSpeechOptions(opts ...texttospeech.Option) ProcessOption {
	return func(o *ProcessOptions) {
		o.speechOptions = append(o.speechOptions, opts...)
	}
}
