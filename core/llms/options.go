package llms

// StreamingPromptOptions contains everything a completion call can be
// configured with beyond the model and the prompt itself.
type StreamingPromptOptions struct {
	Instructions string
	Turns        []Turn
	Temperature  *float64
}

type StreamingPromptOption func(*StreamingPromptOptions)

// WithSystemPrompt sets the system prompt for the completion call.
// Repeating this option overwrites the previous system prompt.
func WithSystemPrompt(prompt string) StreamingPromptOption {
	return func(opts *StreamingPromptOptions) {
		opts.Instructions = prompt
	}
}

// WithTurns adds prior conversation turns to the completion call.
// Repeating this option sequentially adds more turns.
func WithTurns(turns ...Turn) StreamingPromptOption {
	return func(opts *StreamingPromptOptions) {
		opts.Turns = append(opts.Turns, turns...)
	}
}

// WithTemperature sets the sampling temperature. When the option is absent
// the provider's default is used.
func WithTemperature(temperature float64) StreamingPromptOption {
	return func(opts *StreamingPromptOptions) {
		opts.Temperature = &temperature
	}
}
