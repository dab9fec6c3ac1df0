package orchestration

// Model catalogs exposed for discovery. Callers may override the model per
// capability by name; unrecognized names are passed through to the provider
// uninterpreted.
var (
	TextModels      = []string{"openai", "openai-fast", "mistral", "claude"}
	SearchModels    = []string{"searchgpt"}
	ReasoningModels = []string{"openai-reasoning", "openai"}
	ImageModels     = []string{"flux", "flux-realism", "flux-anime", "flux-3d", "turbo"}
	AudioVoices     = []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}
)

const (
	DefaultTextModel      = "openai"
	DefaultSearchModel    = "searchgpt"
	DefaultReasoningModel = "openai-reasoning"
	DefaultImageModel     = "flux"
	DefaultAudioVoice     = "nova"
)
